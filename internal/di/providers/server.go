package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/storefrontapp/storefront-server/internal/api"
	"github.com/storefrontapp/storefront-server/internal/config"
	"github.com/storefrontapp/storefront-server/internal/logger"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	csHandle := do.MustInvoke[*ContentstackClientHandle](i)
	pzHandle := do.MustInvoke[*PersonalizeClientHandle](i)

	// Assign only non-nil clients so the handlers' nil checks work on
	// the interface values.
	var cms api.EntrySource
	if csHandle.Client != nil {
		cms = csHandle.Client
	}
	var personalizer api.SessionSource
	if pzHandle.Client != nil {
		personalizer = pzHandle.Client
	}

	handler := api.NewServer(cfg, cms, personalizer, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
