package httpserver

import (
	"github.com/gin-gonic/gin"

	"healthsmart-chatbot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	WelcomeMessage = "Welcome to the Smart Health Chatbot API"
	HealthVersion  = "1.0.0"
	ServiceName    = "healthsmart-chatbot"
)

func (srv HTTPServer) systemStatus(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": WelcomeMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// rootCheck returns the welcome banner
// @Summary Welcome
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Welcome message"
// @Router / [get]
func (srv HTTPServer) rootCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"message": WelcomeMessage + " v" + HealthVersion,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.systemStatus("healthy"))
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.systemStatus("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.systemStatus("alive"))
}
