package server

import (
	"encoding/json"
	"net/http"

	"github.com/mashaer-ai/mashaer/internal/model"
)

type analyzeRequest struct {
	ProjectID  string   `json:"project_id"`
	UserID     string   `json:"user_id"`
	ArticleIDs []string `json:"article_ids,omitempty"`
}

type analyzeResponse struct {
	Success   bool                `json:"success"`
	Processed int                 `json:"processed"`
	Errors    int                 `json:"errors"`
	Total     int                 `json:"total"`
	Results   []model.ItemSummary `json:"results"`
	Message   string              `json:"message"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// handleAnalyze validates the request shape, runs one batch, and returns
// the aggregate report. Request-shape problems are 400; a failure to even
// list the target articles is 500. Per-item failures never surface as
// non-200 here.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.ProjectID == "" || req.UserID == "" {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "project_id and user_id are required"})
		return
	}

	report, err := s.orchestrator.Run(r.Context(), req.ProjectID, req.UserID, req.ArticleIDs)
	if err != nil {
		s.log.Error("batch failed", "project_id", req.ProjectID, "error", err)
		s.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch articles for analysis"})
		return
	}

	results := report.Results
	if results == nil {
		results = []model.ItemSummary{}
	}

	s.respondJSON(w, http.StatusOK, analyzeResponse{
		Success:   true,
		Processed: report.Processed,
		Errors:    report.Errors,
		Total:     report.Total,
		Results:   results,
		Message:   report.Message,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("write response", "error", err)
	}
}
