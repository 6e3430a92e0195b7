// Package server exposes the analyzer as a JSON REST API.
//
// Endpoints:
//
//	POST /api/analyze           body: {"text":"...","language":"ru",...}
//	POST /api/analyze/batch     body: {"papers":[{...}],"language":"ru"}
//	GET  /api/languages
//	GET  /api/languages/{code}
//	GET  /api/indexables/{id}
//	GET  /healthz
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/config"
	"github.com/pthm/contentlint/internal/store"
)

// Server serves analysis requests over HTTP.
type Server struct {
	cfg      config.Config
	analyzer *analysis.Analyzer
	store    *store.Store
	log      zerolog.Logger
}

// New creates a Server. st may be nil, in which case results are not
// persisted and the indexables endpoint answers 404.
func New(cfg config.Config, a *analysis.Analyzer, st *store.Store, log zerolog.Logger) *Server {
	return &Server{cfg: cfg, analyzer: a, store: st, log: log}
}

// Handler returns the routed handler wrapped in CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/analyze/batch", s.handleAnalyzeBatch)
	mux.HandleFunc("GET /api/languages", s.handleLanguages)
	mux.HandleFunc("GET /api/languages/{code}", s.handleLanguage)
	mux.HandleFunc("GET /api/indexables/{id}", s.handleIndexable)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   config.SplitList(s.cfg.CORS.AllowedOrigins),
		AllowedMethods:   config.SplitList(s.cfg.CORS.AllowedMethods),
		AllowedHeaders:   config.SplitList(s.cfg.CORS.AllowedHeaders),
		AllowCredentials: s.cfg.CORS.AllowCredentials,
		MaxAge:           s.cfg.CORS.MaxAge,
	})
	return s.logRequests(c.Handler(mux))
}

// Serve listens on the configured address until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr())
	if err != nil {
		return err
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
