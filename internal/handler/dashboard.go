package handler

import (
	"log/slog"
	"net/http"

	"github.com/clearclause/clearclause/internal/service"
	"github.com/clearclause/clearclause/internal/view"
)

const recentActivityLimit = 10

// DashboardHandler serves the usage-insights page.
type DashboardHandler struct {
	auth       *service.AuthService
	simplifier *service.Simplifier
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(auth *service.AuthService, simplifier *service.Simplifier) *DashboardHandler {
	return &DashboardHandler{auth: auth, simplifier: simplifier}
}

// HandleDashboard renders platform-wide aggregates and the user's recent
// simplification requests.
// GET /dashboard
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	userCount, err := h.auth.CountUsers(r.Context())
	if err != nil {
		slog.Error("count users for dashboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	stats, err := h.simplifier.Stats(r.Context())
	if err != nil {
		slog.Error("load usage stats for dashboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	recent, err := h.simplifier.RecentByUser(r.Context(), user.ID, recentActivityLimit)
	if err != nil {
		slog.Error("load recent activity for dashboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.DashboardPage(user.Name, userCount, stats, recent).Render(r.Context(), w)
}
