// Package httpapi exposes the converter over HTTP. Documents are posted
// as multipart uploads, either a single file or a zip archive bundling
// the document with its images, and come back converted to the format
// named in the URL.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/docmorph/internal/logging"
	"github.com/yaklabco/docmorph/pkg/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	// maxUploadBytes caps the in-memory portion of a multipart upload.
	maxUploadBytes = 32 << 20
)

// Server serves the conversion API.
type Server struct {
	cfg    *config.Config
	logger *log.Logger
}

// New creates a Server with the given configuration and logger.
func New(cfg *config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	return &Server{cfg: cfg, logger: logger}
}

// Handler returns the server's routing handler. Each request carries the
// server logger in its context.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /convert/{format}", s.handleConvert)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, r.WithContext(logging.WithLogger(r.Context(), s.logger)))
	})
}

// ListenAndServe runs the server until ctx is cancelled, then shuts it
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.FieldAddr, srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
