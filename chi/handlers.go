package chi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/export"
	"github.com/go-chi/chi/v5"
)

// analyzeRequest is the body of POST /api/analyze.
type analyzeRequest struct {
	PrimaryURL     string   `json:"primary_url"`
	CompetitorURLs []string `json:"competitor_urls"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, gapscan.Errorf(gapscan.EINVALID, "invalid request body: %v", err))
		return
	}

	report, err := s.analyzer.AnalyzeUpdate(r.Context(), req.PrimaryURL, req.CompetitorURLs)
	if err != nil {
		jsonError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, report)
}

// planRequest is the body of POST /api/plan.
type planRequest struct {
	Title          string   `json:"title"`
	CompetitorURLs []string `json:"competitor_urls"`
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, gapscan.Errorf(gapscan.EINVALID, "invalid request body: %v", err))
		return
	}

	report, err := s.analyzer.PlanNew(r.Context(), req.Title, req.CompetitorURLs)
	if err != nil {
		jsonError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.reports == nil {
		jsonError(w, gapscan.Errorf(gapscan.ENOTFOUND, "report storage not configured"))
		return
	}

	var filter gapscan.ReportFilter
	if mode := r.URL.Query().Get("mode"); mode != "" {
		filter.Mode = &mode
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
		filter.Offset = offset
	}

	reports, err := s.reports.FindReports(r.Context(), filter)
	if err != nil {
		jsonError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"reports": reports})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.findReport(r)
	if err != nil {
		jsonError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	if s.reports == nil {
		jsonError(w, gapscan.Errorf(gapscan.ENOTFOUND, "report storage not configured"))
		return
	}
	if err := s.reports.DeleteReport(r.Context(), chi.URLParam(r, "id")); err != nil {
		jsonError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.findReport(r)
	if err != nil {
		jsonError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = export.FormatCSV
	}

	switch format {
	case export.FormatCSV:
		w.Header().Set("Content-Type", "text/csv")
	case export.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
	case export.FormatMarkdown:
		w.Header().Set("Content-Type", "text/markdown")
	}

	if err := export.Write(w, report, format); err != nil {
		jsonError(w, err)
	}
}

func (s *Server) findReport(r *http.Request) (*gapscan.Report, error) {
	if s.reports == nil {
		return nil, gapscan.Errorf(gapscan.ENOTFOUND, "report storage not configured")
	}
	return s.reports.FindReportByID(r.Context(), chi.URLParam(r, "id"))
}
