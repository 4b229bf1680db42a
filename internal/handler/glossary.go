package handler

import (
	"log/slog"
	"net/http"

	"github.com/clearclause/clearclause/internal/service"
	"github.com/clearclause/clearclause/internal/view"
	datastar "github.com/starfederation/datastar-go/datastar"
)

// GlossaryHandler serves the legal-terms glossary and its live search.
type GlossaryHandler struct {
	glossary *service.GlossaryService
}

// NewGlossaryHandler creates a new GlossaryHandler.
func NewGlossaryHandler(glossary *service.GlossaryService) *GlossaryHandler {
	return &GlossaryHandler{glossary: glossary}
}

// HandleGlossaryPage renders the full glossary with the search box.
// GET /glossary
func (h *GlossaryHandler) HandleGlossaryPage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	terms, err := h.glossary.All(r.Context())
	if err != nil {
		slog.Error("load glossary", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.GlossaryPage(user.Name, terms).Render(r.Context(), w)
}

// HandleGlossarySearch patches the result list as the user types.
// GET /glossary/search
func (h *GlossaryHandler) HandleGlossarySearch(w http.ResponseWriter, r *http.Request) {
	var signals struct {
		Query string `json:"query"`
	}
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	terms, err := h.glossary.Search(r.Context(), signals.Query)
	if err != nil {
		slog.Error("search glossary", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.GlossaryResults(terms))
}
