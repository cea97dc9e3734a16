package admin

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/safehaven-world/safehaven/config"
	"github.com/safehaven-world/safehaven/pkg/safe"
	"go.uber.org/zap"
)

// Admin is the Basic-Auth-gated operations server
type Admin struct {
	cfg *config.AdminConfig
	s   *http.Server
}

func NewAdmin(cfg config.AdminConfig, handler http.Handler) *Admin {
	s := &http.Server{
		Handler: handler,
		Addr:    cfg.Listen,

		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	return &Admin{
		cfg: &cfg,
		s:   s,
	}
}

// Start starts the HTTP server
func (a *Admin) Start() {
	safe.Go(func() {
		tls := a.cfg.TLS
		if tls.Enabled() {
			if err := a.s.ListenAndServeTLS(tls.Cert, tls.Key); err != nil && err != http.ErrServerClosed {
				zap.S().Errorf("Failed to start Admin : %v", err)
				os.Exit(1)
			}
		} else {
			if err := a.s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				zap.S().Errorf("Failed to start Admin : %v", err)
				os.Exit(1)
			}
		}
	})
}

// Stop stops the HTTP server
func (a *Admin) Stop() error {
	if err := a.s.Shutdown(context.TODO()); err != nil {
		return err
	}
	return nil
}
