package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/clearclause/clearclause/internal/domain"
	"github.com/clearclause/clearclause/internal/extract"
	"github.com/clearclause/clearclause/internal/service"
	"github.com/clearclause/clearclause/internal/session"
	"github.com/clearclause/clearclause/internal/view"
)

// SimplifyHandler serves the contract-simplification page.
type SimplifyHandler struct {
	simplifier *service.Simplifier
	glossary   *service.GlossaryService
	limiter    *service.TokenBucket
}

// NewSimplifyHandler creates a new SimplifyHandler.
func NewSimplifyHandler(simplifier *service.Simplifier, glossary *service.GlossaryService, limiter *service.TokenBucket) *SimplifyHandler {
	return &SimplifyHandler{simplifier: simplifier, glossary: glossary, limiter: limiter}
}

// HandleSimplifyPage renders the upload/paste form.
// GET /simplify
func (h *SimplifyHandler) HandleSimplifyPage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	view.SimplifyPage(user.Name, nil).Render(r.Context(), w)
}

// HandleSimplify extracts the submitted document, rewrites it at the chosen
// level, and renders the original and simplified text side by side with
// glossary terms highlighted.
// POST /simplify
func (h *SimplifyHandler) HandleSimplify(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	text, err := documentText(r)
	if err != nil {
		view.SimplifyPage(user.Name, uploadFlash(err)).Render(r.Context(), w)
		return
	}

	if !h.limiter.AllowUser(user.ID) {
		view.SimplifyPage(user.Name, &session.Flash{
			Message: "Too many requests. Please wait a moment and try again.",
			IsError: true,
		}).Render(r.Context(), w)
		return
	}

	level := domain.ParseLevel(r.FormValue("level"))
	simplified, err := h.simplifier.Simplify(r.Context(), user.ID, text, level)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			view.SimplifyPage(user.Name, &session.Flash{
				Message: "Please upload a document or paste some text first.",
				IsError: true,
			}).Render(r.Context(), w)
		case errors.Is(err, domain.ErrSimplifyUnavailable):
			slog.Error("simplify contract", "error", err)
			view.SimplifyPage(user.Name, &session.Flash{
				Message: "The simplification model is unavailable right now. Please try again later.",
				IsError: true,
			}).Render(r.Context(), w)
		default:
			slog.Error("simplify contract", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	original, err := h.glossary.Annotate(r.Context(), text)
	if err != nil {
		slog.Error("annotate glossary terms", "error", err)
		original = []service.Segment{{Text: text}}
	}

	view.SimplifyResultPage(user.Name, level, original, simplified).Render(r.Context(), w)
}

// documentText returns the contract text from the uploaded file if one was
// provided, otherwise from the paste box.
func documentText(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(extract.MaxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return "", domain.ErrInvalidInput
	}

	file, header, err := r.FormFile("document")
	if err == nil {
		defer file.Close()
		return extract.Text(header.Filename, file)
	}

	return strings.TrimSpace(r.FormValue("text")), nil
}

// uploadFlash maps a document-extraction failure to the user-facing message.
func uploadFlash(err error) *session.Flash {
	msg := "Could not read the uploaded document. Please check the file and try again."
	if errors.Is(err, domain.ErrUnsupportedFormat) {
		msg = "Unsupported file type. Please upload a PDF, DOCX, or TXT file."
	}
	return &session.Flash{Message: msg, IsError: true}
}
