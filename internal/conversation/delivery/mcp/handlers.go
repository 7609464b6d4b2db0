package mcp

import (
	"net/http"
	"sort"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/gin-gonic/gin"

	"fitness-agent/pkg/response"
)

// CallTool runs one MCP tool call.
// @Summary Call an MCP tool
// @Description Runs chat, get_summary, get_goal or set_goal and returns an MCP CallToolResult
// @Tags mcp
// @Accept json
// @Produce json
// @Param request body object true "CallToolRequest"
// @Success 200 {object} object
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /mcp/tools/call [post]
func (h *handler) CallTool(c *gin.Context) {
	ctx := c.Request.Context()

	var req protocol.CallToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "mcp.CallTool: bind: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	t, ok := h.tools[req.Name]
	if !ok {
		h.l.Warnf(ctx, "mcp.CallTool: unknown tool %q", req.Name)
		response.Error(c, errUnknownTool, nil)
		return
	}

	result, err := t.call(ctx, &req)
	if err != nil {
		if toolError(err) {
			c.JSON(http.StatusOK, textResult(err.Error(), true))
			return
		}
		h.l.Errorf(ctx, "mcp.CallTool %s: %v", req.Name, err)
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListTools describes the available tools.
// @Summary List MCP tools
// @Tags mcp
// @Produce json
// @Success 200 {object} response.Resp
// @Router /mcp/tools [get]
func (h *handler) ListTools(c *gin.Context) {
	out := make([]toolInfo, 0, len(h.tools))
	for _, t := range h.tools {
		out = append(out, t.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	response.OK(c, out)
}
