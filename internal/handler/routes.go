package handler

import (
	"net/http"

	"github.com/clearclause/clearclause/internal/service"
	"github.com/clearclause/clearclause/internal/session"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth       *service.AuthService
	Simplifier *service.Simplifier
	Analyzer   *service.Analyzer
	Glossary   *service.GlossaryService
	Limiter    *service.TokenBucket
	Sessions   *session.Store

	CookieSecure bool
}

// RegisterRoutes sets up all HTTP routes on the given mux and returns the
// wrapped handler with session and security middleware applied.
func RegisterRoutes(mux *http.ServeMux, svc Services) http.Handler {
	authHandler := NewAuthHandler(svc.Auth, svc.CookieSecure)
	simplifyHandler := NewSimplifyHandler(svc.Simplifier, svc.Glossary, svc.Limiter)
	analyzeHandler := NewAnalyzeHandler(svc.Analyzer, svc.Limiter)
	glossaryHandler := NewGlossaryHandler(svc.Glossary)
	dashboardHandler := NewDashboardHandler(svc.Auth, svc.Simplifier)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /{$}", authHandler.HandleHome)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.HandleFunc("POST /signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /forgot-password", authHandler.HandleForgot)
	mux.HandleFunc("POST /nav/{target}", authHandler.HandleNav)
	mux.HandleFunc("POST /logout", authHandler.HandleLogout)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(svc.Auth, h)
	}
	mux.Handle("GET /simplify", protected(simplifyHandler.HandleSimplifyPage))
	mux.Handle("POST /simplify", protected(simplifyHandler.HandleSimplify))
	mux.Handle("GET /analyze", protected(analyzeHandler.HandleAnalyzePage))
	mux.Handle("POST /analyze", protected(analyzeHandler.HandleAnalyze))
	mux.Handle("GET /glossary", protected(glossaryHandler.HandleGlossaryPage))
	mux.Handle("GET /glossary/search", protected(glossaryHandler.HandleGlossarySearch))
	mux.Handle("GET /dashboard", protected(dashboardHandler.HandleDashboard))

	return SecurityHeaders(WithSession(svc.Sessions, svc.CookieSecure, mux))
}
