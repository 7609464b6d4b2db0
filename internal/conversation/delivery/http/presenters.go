package http

import (
	"fitness-agent/internal/conversation"
)

type chatReq struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type chatResp struct {
	Response   string         `json:"response"`
	Intent     *string        `json:"intent"`
	Confidence *float64       `json:"confidence"`
	Metadata   map[string]any `json:"metadata"`
}

func (h *handler) newChatResp(res conversation.Result) chatResp {
	out := chatResp{
		Response: res.Response,
		Metadata: res.Metadata,
	}
	if res.Intent != "" {
		intent := string(res.Intent)
		confidence := res.Confidence
		out.Intent = &intent
		out.Confidence = &confidence
	}
	if out.Metadata == nil {
		out.Metadata = map[string]any{}
	}
	return out
}

// wsError is sent on the websocket instead of a chatResp when a message is
// rejected or the request failed.
type wsError struct {
	Error    string `json:"error"`
	Response string `json:"response,omitempty"`
}
