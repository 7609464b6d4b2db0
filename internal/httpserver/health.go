package httpserver

import (
	"github.com/gin-gonic/gin"

	"fitness-agent/pkg/response"
)

// Service identity reported by the probes.
const (
	HealthMessage = "Fitness AI Agent API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "fitness-agent"
)

func probeBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck reports that the process is serving.
// @Summary     Health Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp "API is healthy"
// @Router      /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probeBody("healthy"))
}

// readyCheck also lists which optional integrations are wired.
// @Summary     Readiness Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp "API is ready"
// @Router      /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	body := probeBody("ready")
	body["integrations"] = gin.H{
		"reminders": srv.calendar != nil,
		"telegram":  srv.telegramBot != nil,
	}
	response.OK(c, body)
}

// liveCheck is the liveness probe.
// @Summary     Liveness Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp "API is alive"
// @Router      /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probeBody("alive"))
}
