package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/cleaner"
	"github.com/xiaoxiongflippy/AI-project-Text-Correction/pkg/utils"
)

// cleanRequest carries the raw text plus per-request switch overrides.
// Unset switches fall back to the server's configured profile.
type cleanRequest struct {
	Text                 string `json:"text"`
	RemoveMarkdown       *bool  `json:"remove_markdown,omitempty"`
	NormalizePunctuation *bool  `json:"normalize_punctuation,omitempty"`
	NormalizeWhitespace  *bool  `json:"normalize_whitespace,omitempty"`
	MergeWrappedLines    *bool  `json:"merge_wrapped_lines,omitempty"`
	RemoveEmoji          *bool  `json:"remove_emoji,omitempty"`
	IndentParagraph      *bool  `json:"indent_paragraph,omitempty"`
	KeepTables           *bool  `json:"keep_tables,omitempty"`
}

func (req *cleanRequest) options(base cleaner.Options) cleaner.Options {
	opts := base
	overlay := []struct {
		dst *bool
		src *bool
	}{
		{&opts.RemoveMarkdown, req.RemoveMarkdown},
		{&opts.NormalizePunctuation, req.NormalizePunctuation},
		{&opts.NormalizeWhitespace, req.NormalizeWhitespace},
		{&opts.MergeWrappedLines, req.MergeWrappedLines},
		{&opts.RemoveEmoji, req.RemoveEmoji},
		{&opts.IndentParagraph, req.IndentParagraph},
		{&opts.KeepTables, req.KeepTables},
	}
	for _, o := range overlay {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	return opts
}

type cleanResponse struct {
	RequestID string   `json:"request_id"`
	Text      string   `json:"text"`
	Score     int      `json:"score"`
	Band      string   `json:"band"`
	Warnings  []string `json:"warnings,omitempty"`
}

type diagnoseResponse struct {
	RequestID string   `json:"request_id"`
	Score     int      `json:"score"`
	Band      string   `json:"band"`
	Warnings  []string `json:"warnings,omitempty"`
}

func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	var req cleanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		s.respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	requestID := uuid.New().String()
	s.logger.Debug("clean request",
		zap.String("request_id", requestID),
		zap.String("text", utils.Truncate(req.Text, 80)))

	cleaned := cleaner.Clean(req.Text, req.options(s.options))
	score := cleaner.QualityScore(cleaned)
	s.respondJSON(w, http.StatusOK, cleanResponse{
		RequestID: requestID,
		Text:      cleaned,
		Score:     score,
		Band:      cleaner.QualityBand(score),
		Warnings:  cleaner.PunctuationConsistencyWarnings(cleaned),
	})
}

func (s *Server) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	var req cleanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		s.respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	requestID := uuid.New().String()
	s.logger.Debug("diagnose request",
		zap.String("request_id", requestID),
		zap.String("text", utils.Truncate(req.Text, 80)))

	score := cleaner.QualityScore(req.Text)
	s.respondJSON(w, http.StatusOK, diagnoseResponse{
		RequestID: requestID,
		Score:     score,
		Band:      cleaner.QualityBand(score),
		Warnings:  cleaner.PunctuationConsistencyWarnings(req.Text),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
