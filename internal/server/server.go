// Package server exposes comment extraction over a small JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phyten/commentx/internal/engine"
	"github.com/phyten/commentx/internal/model"
	"github.com/phyten/commentx/internal/syntax"
)

// Config holds the handler settings.
type Config struct {
	MaxBodyBytes int64
	ReadTimeout  time.Duration
	// Separator joins comment bodies in /api/selection responses.
	Separator string
}

// Server routes API requests. It is safe for concurrent use.
type Server struct {
	cfg      Config
	registry *syntax.Registry
	logger   log.Logger
	metrics  *metrics
	router   *mux.Router
}

// New builds a server. Metrics are registered on reg and served from
// /metrics; a fresh registry per server keeps tests independent.
func New(cfg Config, registry *syntax.Registry, logger log.Logger, reg *prometheus.Registry) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if cfg.Separator == "" {
		cfg.Separator = "\n"
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s := &Server{
		cfg:      cfg,
		registry: registry,
		logger:   logger,
		metrics:  newMetrics(reg),
		router:   mux.NewRouter(),
	}
	s.RegisterRoutes(s.router, reg)
	return s
}

// RegisterRoutes registers all HTTP routes
func (s *Server) RegisterRoutes(r *mux.Router, gatherer prometheus.Gatherer) {
	r.HandleFunc("/api/extract", s.instrument("extract", s.ExtractHandler)).Methods(http.MethodPost)
	r.HandleFunc("/api/selection", s.instrument("selection", s.SelectionHandler)).Methods(http.MethodPost)
	r.HandleFunc("/api/languages", s.instrument("languages", s.LanguagesHandler)).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errCh := make(chan error, 1)
	go func() {
		level.Info(s.logger).Log("msg", "server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		level.Info(s.logger).Log("msg", "shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			level.Error(s.logger).Log("msg", "error during shutdown", "err", err)
			return err
		}
		level.Info(s.logger).Log("msg", "server stopped")
		return nil
	}
}

type extractRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Offset   int    `json:"offset"`
}

type regionResponse struct {
	Start        int              `json:"start"`
	Length       int              `json:"length"`
	Kind         model.RegionKind `json:"kind"`
	Unterminated bool             `json:"unterminated"`
	Content      string           `json:"content"`
	Span         model.Span       `json:"span"`
}

type extractResponse struct {
	Language  string           `json:"language"`
	Supported bool             `json:"supported"`
	Regions   []regionResponse `json:"regions"`
}

// ExtractHandler lists every comment region in the posted text.
func (s *Server) ExtractHandler(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Offset < 0 {
		writeError(w, http.StatusBadRequest, "offset must be >= 0")
		return
	}
	if err := engine.CheckOffset(req.Offset, len(req.Text)); err != nil {
		writeError(w, http.StatusBadRequest, "offset plus text length overflows")
		return
	}
	sx, ok := s.lookup(req.Language)
	resp := extractResponse{Language: req.Language, Supported: ok, Regions: []regionResponse{}}
	if ok {
		resp.Language = sx.Name()
		for _, c := range engine.Extract(req.Text, sx, req.Offset) {
			if c.Region.Unterminated {
				level.Debug(s.logger).Log("msg", "unterminated comment", "language", sx.Name(), "start", c.Region.Start)
			}
			resp.Regions = append(resp.Regions, regionResponse{
				Start:        c.Region.Start,
				Length:       c.Region.Length,
				Kind:         c.Region.Kind,
				Unterminated: c.Region.Unterminated,
				Content:      c.Content,
				Span:         c.Span,
			})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type selectionRequest struct {
	Text      string  `json:"text"`
	Language  string  `json:"language"`
	Separator *string `json:"separator"`
}

// SelectionHandler returns the text a host would hand to a translator.
func (s *Server) SelectionHandler(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if !s.decode(w, r, &req) {
		return
	}
	sx, ok := s.lookup(req.Language)
	opts := engine.Options{Separator: s.cfg.Separator}
	if req.Separator != nil {
		opts.Separator = *req.Separator
	}
	sel := engine.PrepareSelection(req.Text, sx, opts)
	if !ok {
		sel.Language = req.Language
	}
	writeJSON(w, http.StatusOK, sel)
}

// LanguagesHandler lists built-in and configured language names.
func (s *Server) LanguagesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"languages": s.registry.Names()})
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) lookup(language string) (syntax.Syntax, bool) {
	sx, ok := s.registry.Lookup(language)
	if !ok {
		s.metrics.unsupported.Inc()
		level.Debug(s.logger).Log("msg", "unsupported language", "language", language)
	}
	return sx, ok
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.code = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(rec, r)
		elapsed := time.Since(start)
		code := strconv.Itoa(rec.code)
		s.metrics.requests.WithLabelValues(route, code).Inc()
		s.metrics.duration.WithLabelValues(route).Observe(elapsed.Seconds())
		level.Info(s.logger).Log("msg", "request", "route", route, "method", r.Method, "code", code, "duration", elapsed)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
