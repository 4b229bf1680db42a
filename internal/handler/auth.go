package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/clearclause/clearclause/internal/domain"
	"github.com/clearclause/clearclause/internal/service"
	"github.com/clearclause/clearclause/internal/session"
	"github.com/clearclause/clearclause/internal/view"
)

// AuthHandler drives the sign-in, sign-up, and password-reset screens.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// HandleHome renders whichever authentication screen the session is on.
// Logged-in visitors are sent straight to the simplifier.
// GET /
func (h *AuthHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if sess.LoggedIn() {
		http.Redirect(w, r, "/simplify", http.StatusSeeOther)
		return
	}

	flash := sess.ConsumeFlash()
	switch sess.Screen() {
	case session.ScreenSignup:
		view.SignupPage(flash).Render(r.Context(), w)
	case session.ScreenForgot:
		view.ForgotPage(flash).Render(r.Context(), w)
	default:
		view.LoginPage(flash).Render(r.Context(), w)
	}
}

// HandleLogin verifies submitted credentials. Success issues the identity
// token and moves the session to the logged-in state; failure queues an
// inline error on the login screen.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	identity, err := h.auth.VerifyCredentials(r.Context(), r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			slog.Error("verify credentials", "error", err)
		}
		sess.LoginFailed("Invalid email or password.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	token, err := h.auth.IssueToken(identity)
	if err != nil {
		slog.Error("issue token", "error", err)
		sess.LoginFailed("An unexpected error occurred. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess.LoginSucceeded(identity)
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})

	http.Redirect(w, r, "/simplify", http.StatusSeeOther)
}

// HandleSignup creates a new account. Success returns the session to the
// login screen with a prompt to log in; the new identity is never trusted
// without a fresh credential check.
// POST /signup
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	_, err := h.auth.Register(r.Context(),
		r.FormValue("name"), r.FormValue("email"),
		r.FormValue("password"), r.FormValue("confirm"))
	switch {
	case err == nil:
		sess.SignupSucceeded()
	case errors.Is(err, domain.ErrDuplicateEmail):
		sess.SignupFailed("An account with that email already exists.")
	case errors.Is(err, domain.ErrInvalidInput):
		sess.SignupFailed(inputMessage(err))
	default:
		slog.Error("register user", "error", err)
		sess.SignupFailed("An unexpected error occurred. Please try again.")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleForgot replaces the credential for the submitted email. Unknown
// emails succeed silently so the form does not reveal which addresses are
// registered.
// POST /forgot-password
func (h *AuthHandler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	err := h.auth.ResetPassword(r.Context(),
		r.FormValue("email"), r.FormValue("new_password"), r.FormValue("confirm"))
	switch {
	case err == nil:
		sess.ResetSucceeded()
	case errors.Is(err, domain.ErrInvalidInput):
		sess.ResetFailed(inputMessage(err))
	default:
		slog.Error("reset password", "error", err)
		sess.ResetFailed("An unexpected error occurred. Please try again.")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleNav switches between the logged-out screens.
// POST /nav/{target}
func (h *AuthHandler) HandleNav(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	switch r.PathValue("target") {
	case "signup":
		sess.ShowSignup()
	case "forgot":
		sess.ShowForgot()
	case "back":
		sess.Back()
	default:
		w.WriteHeader(http.StatusNotFound)
		view.ErrorPage(http.StatusNotFound, "Page Not Found", "That page does not exist.").Render(r.Context(), w)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout drops the session identity and clears the auth cookie.
// POST /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	sess.Logout()

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// inputMessage turns a validation error into the user-facing flash text.
func inputMessage(err error) string {
	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, domain.ErrInvalidInput.Error()+": "); ok {
		msg = cut
	}
	if msg == "" {
		return "Invalid input."
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}
