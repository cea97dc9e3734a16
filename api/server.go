package api

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/safehaven-world/safehaven/config"
	"github.com/safehaven-world/safehaven/pkg/safe"
	"go.uber.org/zap"
)

// Server is the public site HTTP server
type Server struct {
	cfg *config.ServerConfig
	s   *http.Server
}

func NewServer(cfg config.ServerConfig, handler http.Handler) *Server {
	s := &http.Server{
		Handler: handler,
		Addr:    cfg.Listen,

		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	return &Server{
		cfg: &cfg,
		s:   s,
	}
}

// Start starts the HTTP server
func (srv *Server) Start() {
	safe.Go(func() {
		tls := srv.cfg.TLS
		if tls.Enabled() {
			if err := srv.s.ListenAndServeTLS(tls.Cert, tls.Key); err != nil && err != http.ErrServerClosed {
				zap.S().Errorf("Failed to start Server : %v", err)
				os.Exit(1)
			}
		} else {
			if err := srv.s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				zap.S().Errorf("Failed to start Server : %v", err)
				os.Exit(1)
			}
		}
	})
}

// Stop stops the HTTP server
func (srv *Server) Stop() error {
	if err := srv.s.Shutdown(context.TODO()); err != nil {
		return err
	}
	return nil
}
