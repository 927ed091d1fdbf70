package api

import (
	"net/http"

	"github.com/storefrontapp/storefront-server/internal/http/response"
)

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
}

// handleHealthCheck reports whether the vendor integrations are
// configured. The service stays up without them, so missing config is
// "degraded", not "unhealthy".
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]ComponentHealth)
	overall := "healthy"

	if s.cms != nil {
		components["cms"] = ComponentHealth{Status: "configured"}
	} else {
		components["cms"] = ComponentHealth{
			Status:  "not_configured",
			Message: "content endpoints will answer with a configuration error",
		}
		overall = "degraded"
	}

	if s.personalizer != nil {
		components["personalize"] = ComponentHealth{Status: "configured"}
	} else {
		components["personalize"] = ComponentHealth{
			Status:  "not_configured",
			Message: "personalize-sdk endpoint will answer with a configuration error",
		}
		overall = "degraded"
	}

	response.Success(w, HealthResponse{
		Status:     overall,
		Components: components,
	}, s.logger)
}
