package providers

import (
	"github.com/samber/do/v2"

	"github.com/storefrontapp/storefront-server/internal/config"
	"github.com/storefrontapp/storefront-server/internal/contentstack"
	"github.com/storefrontapp/storefront-server/internal/logger"
	"github.com/storefrontapp/storefront-server/internal/personalize"
)

// ContentstackClientHandle wraps the delivery client. The client is nil
// when the CMS credentials are absent; the server starts degraded and
// content endpoints report the missing configuration per request.
type ContentstackClientHandle struct {
	Client *contentstack.Client
}

// ProvideContentstackClient provides the Contentstack Delivery API client.
func ProvideContentstackClient(i do.Injector) (*ContentstackClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	csCfg := contentstack.Config{
		APIKey:        cfg.Contentstack.APIKey,
		DeliveryToken: cfg.Contentstack.DeliveryToken,
		PreviewToken:  cfg.Contentstack.PreviewToken,
		PreviewHost:   cfg.Contentstack.PreviewHost,
		Environment:   cfg.Contentstack.Environment,
		Host:          cfg.Contentstack.Host,
	}

	client, err := contentstack.New(csCfg, log.Logger)
	if err != nil {
		log.Warn("Contentstack client unavailable, content endpoints degraded", "error", err)
		return &ContentstackClientHandle{Client: nil}, nil
	}

	log.Info("Contentstack client initialized",
		"host", csCfg.Host,
		"environment", csCfg.Environment,
	)

	return &ContentstackClientHandle{Client: client}, nil
}

// PersonalizeClientHandle wraps the Personalize Edge client. The client
// is nil when the project binding is absent.
type PersonalizeClientHandle struct {
	Client *personalize.Client
}

// ProvidePersonalizeClient provides the Personalize Edge API client.
func ProvidePersonalizeClient(i do.Injector) (*PersonalizeClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client, err := personalize.New(cfg.Personalize.ProjectUID, cfg.Personalize.EdgeAPIURL, log.Logger)
	if err != nil {
		log.Warn("Personalize client unavailable, personalization degraded", "error", err)
		return &PersonalizeClientHandle{Client: nil}, nil
	}

	log.Info("Personalize client initialized",
		"project_uid", cfg.Personalize.ProjectUID,
		"edge_url", client.EdgeURL(),
	)

	return &PersonalizeClientHandle{Client: client}, nil
}
