package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"algotrace/pkg/config"
	"algotrace/pkg/metrics"
	"algotrace/pkg/registry"
)

const (
	contentTypeJSON = "application/json"
)

// iMetrics - коллектор метрик, который умеет отдавать текстовый дамп
type iMetrics interface {
	metrics.Collector
	WriteText(w io.Writer) error
}

// Server represents the HTTP adapter around the trace engines
type Server struct {
	cfg        config.Config
	sorters    *registry.Registry[float64]
	metrics    iMetrics
	httpServer *http.Server
	URL        string
	addr       string
}

// NewServer creates a new server instance. A nil registry means the built-in engines.
func NewServer(cfg config.Config, sorters *registry.Registry[float64], collector iMetrics) *Server {
	if sorters == nil {
		sorters = registry.Default[float64]()
	}
	if collector == nil {
		collector = metrics.NewMemory()
	}
	port := strconv.Itoa(cfg.Server.Port)
	return &Server{
		cfg:     cfg,
		sorters: sorters,
		metrics: collector,
		URL:     "http://localhost:" + port,
		addr:    ":" + port,
	}
}

// Start binds the listener and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		s.URL = "http://localhost:" + strconv.Itoa(tcp.Port)
	}

	s.httpServer = &http.Server{
		Handler:           s.createRouter(),
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("HTTP server started", "addr", s.URL)
	return nil
}

// Stop stops the server
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	slog.Info("HTTP server stopped", "addr", s.URL)
	return nil
}

// Handler exposes the router, mainly for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.createRouter()
}

// createRouter builds chi router
func (s *Server) createRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logRequests)

	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
	r.Get("/algorithms", s.handleAlgorithms)

	r.Post("/sort", s.handleSortBatch)
	r.Post("/sort/{algorithm}", s.handleSort)
	r.Post("/ds/{structure}", s.handleStructure)
	r.Post("/array/upload", s.handleUpload)

	return r
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		slog.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("Error encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, route string, status int, msg string) {
	s.metrics.IncCounter(metrics.RequestErrors, map[string]string{
		"route":  route,
		"status": strconv.Itoa(status),
	}, 1)
	s.writeJSON(w, status, NewErrorResponse(msg))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, NewOKResponse())
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	if _, err := io.WriteString(w, "# algotrace metrics\n"); err != nil {
		slog.Warn("Failed to write metrics response", "error", err)
		return
	}
	if err := s.metrics.WriteText(w); err != nil {
		slog.Warn("Failed to write metrics response", "error", err)
	}
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, AlgorithmsResponse{Algorithms: s.sorters.Names()})
}
