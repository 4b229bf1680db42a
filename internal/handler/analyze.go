package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clearclause/clearclause/internal/domain"
	"github.com/clearclause/clearclause/internal/service"
	"github.com/clearclause/clearclause/internal/session"
	"github.com/clearclause/clearclause/internal/view"
)

// AnalyzeHandler serves the readability-analysis page.
type AnalyzeHandler struct {
	analyzer *service.Analyzer
	limiter  *service.TokenBucket
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analyzer *service.Analyzer, limiter *service.TokenBucket) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, limiter: limiter}
}

// HandleAnalyzePage renders the analysis form.
// GET /analyze
func (h *AnalyzeHandler) HandleAnalyzePage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	view.AnalyzePage(user.Name, nil).Render(r.Context(), w)
}

// HandleAnalyze scores the submitted text and renders the readability
// metrics alongside the stopword-stripped version of the text.
// POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	text, err := documentText(r)
	if err != nil {
		view.AnalyzePage(user.Name, uploadFlash(err)).Render(r.Context(), w)
		return
	}

	if !h.limiter.AllowUser(user.ID) {
		view.AnalyzePage(user.Name, &session.Flash{
			Message: "Too many requests. Please wait a moment and try again.",
			IsError: true,
		}).Render(r.Context(), w)
		return
	}

	scores, err := h.analyzer.Scores(text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			view.AnalyzePage(user.Name, &session.Flash{
				Message: "Please upload a document or paste some text first.",
				IsError: true,
			}).Render(r.Context(), w)
			return
		}
		slog.Error("score readability", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.AnalyzeResultPage(user.Name, scores, h.analyzer.Clean(text)).Render(r.Context(), w)
}
