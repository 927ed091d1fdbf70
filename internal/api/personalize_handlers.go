package api

import (
	"net/http"

	"github.com/storefrontapp/storefront-server/internal/http/response"
	"github.com/storefrontapp/storefront-server/internal/identity"
	"github.com/storefrontapp/storefront-server/internal/personalize"
)

// PersonalizeSDKResponse is what the front-end needs to bootstrap its
// personalization SDK: the project binding, the durable anonymous user
// id, the seeded attributes, and the user's current variant data.
type PersonalizeSDKResponse struct {
	ProjectUID     string                   `json:"projectUid"`
	EdgeURL        string                   `json:"edgeUrl"`
	UserID         string                   `json:"userId"`
	Attributes     map[string]any           `json:"attributes"`
	VariantAliases []string                 `json:"variantAliases"`
	Experiences    []personalize.Experience `json:"experiences"`
	VariantIDs     string                   `json:"variantIds"`
}

// handlePersonalizeSDK serves GET /personalize-sdk. It always sets the
// anonymous-id cookie, even when session initialization fails.
func (s *Server) handlePersonalizeSDK(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	attrs := map[string]any{}
	if category := values.Get("category"); category != "" {
		attrs["category"] = category
	}
	if subcategory := values.Get("subcategory"); subcategory != "" {
		attrs["subcategory"] = subcategory
	}

	userID := identity.GetOrCreate(w, r, s.cfg.App.IsProduction())

	if s.personalizer == nil {
		response.HandleError(w, personalize.ErrNotConfigured, s.logger)
		return
	}

	session, err := s.personalizer.InitSession(r.Context(), userID, attrs)
	if err != nil {
		s.logger.Error("personalize session init failed", "error", err, "user_id", userID)
		response.InternalError(w, err.Error(), s.logger)
		return
	}

	response.Success(w, PersonalizeSDKResponse{
		ProjectUID:     s.personalizer.ProjectUID(),
		EdgeURL:        s.personalizer.EdgeURL(),
		UserID:         userID,
		Attributes:     attrs,
		VariantAliases: session.VariantAliases,
		Experiences:    session.Experiences,
		VariantIDs:     session.VariantIDs,
	}, s.logger)
}
