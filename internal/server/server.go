// Package server exposes release and platform detection to the download page over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/deadelineurz/rustupolis-downloads/internal/config"
	"github.com/deadelineurz/rustupolis-downloads/internal/download"
	"github.com/deadelineurz/rustupolis-downloads/internal/platform"
	"github.com/deadelineurz/rustupolis-downloads/internal/release"
)

// shutdownTimeout bounds graceful shutdown once the serve context is cancelled.
const shutdownTimeout = 5 * time.Second

// AssetResolver resolves the newest release of a repository.
type AssetResolver interface {
	FetchLatestReleaseAssets(ctx context.Context, org, repo string) (*release.PlatformAssets, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	resolver   AssetResolver
	cfg        *config.Config
	logger     hclog.Logger
}

// New creates a new server instance.
func New(resolver AssetResolver, cfg *config.Config, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Server{
		resolver: resolver,
		cfg:      cfg,
		logger:   logger.Named("server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.health)
	mux.HandleFunc("GET /api/os", s.detectOS)
	mux.HandleFunc("GET /api/download", s.download)

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           corsMiddleware(loggingMiddleware(s.logger, mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the root handler, including middleware.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.httpServer.Addr, "org", s.cfg.Org, "repo", s.cfg.Repo)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// navigatorFromRequest reads the user agent from the request header and the
// platform from the query, where the page script forwards navigator.platform.
func navigatorFromRequest(r *http.Request) platform.Navigator {
	return platform.Navigator{
		Platform:  r.URL.Query().Get("platform"),
		UserAgent: r.UserAgent(),
	}
}

func (s *Server) detectOS(w http.ResponseWriter, r *http.Request) {
	detected := platform.Detect(navigatorFromRequest(r).Environment())
	writeJSON(w, http.StatusOK, map[string]platform.OS{"os": detected})
}

func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	detected := platform.Detect(navigatorFromRequest(r).Environment())

	assets, err := s.resolver.FetchLatestReleaseAssets(r.Context(), s.cfg.Org, s.cfg.Repo)
	if err != nil {
		s.logger.Error("failed to resolve release", "org", s.cfg.Org, "repo", s.cfg.Repo, "error", err)
		writeError(w, http.StatusBadGateway, "failed to resolve latest release")
		return
	}

	writeJSON(w, http.StatusOK, download.Select(detected, assets))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
