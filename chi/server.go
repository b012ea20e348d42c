// Package chi provides the HTTP API for running analyses and retrieving
// reports, backed by the chi router.
package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/analyze"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves the analysis API.
type Server struct {
	router   chi.Router
	analyzer *analyze.Analyzer
	reports  gapscan.ReportService
	logger   *slog.Logger
}

// NewServer creates a Server. reports may be nil, in which case the
// report-listing endpoints return 404s.
func NewServer(analyzer *analyze.Analyzer, reports gapscan.ReportService, logger *slog.Logger) *Server {
	s := &Server{
		analyzer: analyzer,
		reports:  reports,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/plan", s.handlePlan)
		r.Get("/reports", s.handleListReports)
		r.Get("/reports/{id}", s.handleGetReport)
		r.Delete("/reports/{id}", s.handleDeleteReport)
		r.Get("/reports/{id}/export", s.handleExportReport)
	})
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves the API on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("api listening", "addr", addr)
	return srv.ListenAndServe()
}

// requestLogger logs one line per request with status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		begin := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(begin),
		)
	})
}

// jsonResponse writes v as JSON with the given status.
func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// jsonError writes an error response, mapping application error codes to
// HTTP statuses.
func jsonError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch gapscan.ErrorCode(err) {
	case gapscan.EINVALID:
		status = http.StatusBadRequest
	case gapscan.ENOTFOUND:
		status = http.StatusNotFound
	case gapscan.EUNAVAILABLE:
		status = http.StatusBadGateway
	case gapscan.ECONFLICT:
		status = http.StatusConflict
	}
	jsonResponse(w, status, map[string]string{"error": gapscan.ErrorMessage(err)})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
