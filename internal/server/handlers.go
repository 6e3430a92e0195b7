package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/paper"
	"github.com/pthm/contentlint/internal/researcher"
	"github.com/pthm/contentlint/internal/store"
)

// maxBatchPapers caps the papers accepted by one batch request.
const maxBatchPapers = 100

type analyzeRequest struct {
	analysis.Options
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

type analyzeResponse struct {
	RunID  string           `json:"run_id,omitempty"`
	Report *analysis.Report `json:"report"`
}

type batchRequest struct {
	Language string           `json:"language,omitempty"`
	Papers   []analyzeRequest `json:"papers"`
}

type batchResponse struct {
	RunID   string             `json:"run_id,omitempty"`
	Reports []*analysis.Report `json:"reports"`
}

type languagesResponse struct {
	Languages []researcher.Capabilities `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decode reads a JSON body of at most limit bytes into v and reports the
// status to answer with on failure.
func decode(w http.ResponseWriter, r *http.Request, limit int64, v any) (int, error) {
	body := http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", limit)
		}
		return http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err)
	}
	return 0, nil
}

// bodyLimit leaves room for JSON escaping and the non-text fields.
func (s *Server) bodyLimit(texts int) int64 {
	return int64(texts)*int64(s.cfg.Analysis.MaxTextBytes)*2 + 64<<10
}

func (s *Server) checkText(text string) (int, error) {
	if len(text) > s.cfg.Analysis.MaxTextBytes {
		return http.StatusRequestEntityTooLarge, fmt.Errorf("text exceeds %d bytes", s.cfg.Analysis.MaxTextBytes)
	}
	return 0, nil
}

// save persists reports when a store is configured and returns the run id.
func (s *Server) save(r *http.Request, reports []*analysis.Report) string {
	if s.store == nil {
		return ""
	}
	runID := store.NewRunID()
	if err := s.store.SaveRun(r.Context(), runID, reports); err != nil {
		s.log.Error().Err(err).Str("run", runID).Msg("saving results")
		return ""
	}
	return runID
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if status, err := decode(w, r, s.bodyLimit(1), &req); err != nil {
		writeError(w, status, err.Error())
		return
	}
	if status, err := s.checkText(req.Text); err != nil {
		writeError(w, status, err.Error())
		return
	}

	rep := s.analyzer.Analyze(r.Context(), req.Text, req.Language, req.Options)
	writeJSON(w, http.StatusOK, analyzeResponse{
		RunID:  s.save(r, []*analysis.Report{rep}),
		Report: rep,
	})
}

func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if status, err := decode(w, r, s.bodyLimit(maxBatchPapers), &req); err != nil {
		writeError(w, status, err.Error())
		return
	}
	if len(req.Papers) == 0 {
		writeError(w, http.StatusBadRequest, "papers must not be empty")
		return
	}
	if len(req.Papers) > maxBatchPapers {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("at most %d papers per batch", maxBatchPapers))
		return
	}

	papers := make([]*paper.Paper, len(req.Papers))
	ids := make([]string, len(req.Papers))
	for i, pr := range req.Papers {
		if status, err := s.checkText(pr.Text); err != nil {
			writeError(w, status, fmt.Sprintf("papers[%d]: %v", i, err))
			return
		}
		opts := pr.Options
		if pr.Language != "" {
			opts.Locale = pr.Language
		}
		if opts.ID == "" {
			opts.ID = fmt.Sprintf("#%d", i+1)
		}
		papers[i] = opts.Paper(pr.Text)
		ids[i] = opts.ID
	}
	if err := store.CheckIDs(ids); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reports, err := s.analyzer.AnalyzeBatch(r.Context(), papers, req.Language, s.cfg.Analysis.Workers)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, batchResponse{RunID: s.save(r, reports), Reports: reports})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	reg := s.analyzer.Researchers()
	out := languagesResponse{Languages: []researcher.Capabilities{}}
	for _, code := range reg.Languages() {
		c, err := reg.Capabilities(code)
		if err != nil {
			s.log.Warn().Err(err).Str("language", code).Msg("skipping language")
			continue
		}
		out.Languages = append(out.Languages, c)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	c, err := s.analyzer.Researchers().Capabilities(code)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, researcher.ErrUnknownLanguage) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleIndexable(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, "no results store configured")
		return
	}
	ix, err := s.store.Indexable(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ix)
}
