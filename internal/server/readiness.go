package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type readinessResponse struct {
	Status            string   `json:"status"`
	ConfiguredMethods []string `json:"configured_methods"`
	Issues            []string `json:"issues,omitempty"`
}

// GetReadiness
// GET /readyz
func (s *Server) GetReadiness(c *gin.Context) {
	issues := []string{}

	if err := s.redis.Ping(c.Request.Context()).Err(); err != nil {
		issues = append(issues, "redis: "+err.Error())
	}

	methods := s.gateway.AvailableMethods()
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, string(m))
	}

	resp := readinessResponse{Status: "ready", ConfiguredMethods: names, Issues: issues}
	status := http.StatusOK
	if len(issues) > 0 {
		resp.Status = "not_ready"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
