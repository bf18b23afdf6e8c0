package server

import (
	"encoding/json"
	"net/http"

	"github.com/nao1215/aioready/internal/model"
	"github.com/nao1215/aioready/internal/pipeline"
)

// CheckRequest is the body of POST /aio-check.
type CheckRequest struct {
	URLs []string `json:"urls"`
}

// ResultRow is one evaluated URL. Trust is reported as "reliability"
// for compatibility with existing front ends.
type ResultRow struct {
	URL            string  `json:"url"`
	Status         string  `json:"status"`
	TotalScore     int     `json:"total_score"`
	CrawlIndex     int     `json:"crawl_index"`
	Answerability  int     `json:"answerability"`
	Reliability    int     `json:"reliability"`
	StructuredData int     `json:"structured_data"`
	Consistency    int     `json:"consistency"`
	LLMReport      *string `json:"llm_report"`
}

// CheckResponse is the body returned by POST /aio-check.
type CheckResponse struct {
	Results []ResultRow `json:"results"`
}

// errorResponse mirrors the usual {"detail": "..."} error body.
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewResultRow flattens a page result. Unevaluated pages get zero scores.
func NewResultRow(r model.PageResult) ResultRow {
	row := ResultRow{
		URL:    r.URL,
		Status: r.Status,
	}
	if r.Scores != nil {
		row.TotalScore = r.Scores.Total
		row.CrawlIndex = r.Scores.CrawlIndex
		row.Answerability = r.Scores.Answerability
		row.Reliability = r.Scores.Trust
		row.StructuredData = r.Scores.StructuredData
		row.Consistency = r.Scores.Consistency
	}
	if r.Report != "" {
		report := r.Report
		row.LLMReport = &report
	}
	return row
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "AIO Readiness Checker API",
		"status":  "ok",
	})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body: " + err.Error()})
		return
	}
	if len(req.URLs) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "URLリストが空です"})
		return
	}

	urls := pipeline.CleanURLs(req.URLs)
	results, err := s.evaluator.ProcessBatch(r.Context(), urls)
	if err != nil {
		s.logger.Warn("batch interrupted", "error", err)
	}

	resp := CheckResponse{Results: make([]ResultRow, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, NewResultRow(res))
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // client went away
}
