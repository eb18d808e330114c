package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/vbonduro/ecoleta/internal/photostore"
	"github.com/vbonduro/ecoleta/internal/presenter"
	"github.com/vbonduro/ecoleta/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	service   *service.PointService
	presenter *presenter.Presenter
	uploads   photostore.PhotoStore
	mux       *http.ServeMux
	logger    *slog.Logger
}

func NewServer(svc *service.PointService, p *presenter.Presenter, uploads photostore.PhotoStore, logger *slog.Logger) *Server {
	s := &Server{
		service:   svc,
		presenter: p,
		uploads:   uploads,
		mux:       http.NewServeMux(),
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /items", s.handleListItems)
	s.mux.HandleFunc("GET /points", s.handleListPoints)
	s.mux.HandleFunc("POST /points", s.handleCreatePoint)
	s.mux.HandleFunc("GET /points/{id}", s.handleGetPoint)
	s.mux.HandleFunc("DELETE /points/{id}", s.handleDeletePoint)
	s.mux.HandleFunc("GET /uploads/{filename}", s.handleGetUpload)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

// cors lets the web and mobile clients call the API from any origin.
// Preflight requests are answered here and never reach the mux.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, cors(securityHeaders(s.mux))).ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests before returning.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
