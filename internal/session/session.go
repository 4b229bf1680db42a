package session

import (
	"sync"

	"github.com/clearclause/clearclause/internal/domain"
)

// Screen identifies which authentication form a logged-out session shows.
type Screen string

const (
	ScreenLogin  Screen = "login"
	ScreenSignup Screen = "signup"
	ScreenForgot Screen = "forgot"
)

// Flash is a one-shot message rendered on the next page load.
type Flash struct {
	Message string
	IsError bool
}

// Session is the connection-scoped authentication state: the current screen
// while logged out, and the public identity once logged in. It is never
// persisted. Parallel requests can share one session (two tabs, a double
// submit), so every transition locks. Safe for concurrent use.
type Session struct {
	ID string

	mu       sync.Mutex
	screen   Screen
	identity *domain.PublicIdentity
	flash    *Flash
	lastSeen int64
}

func newSession(id string, now int64) *Session {
	return &Session{ID: id, screen: ScreenLogin, lastSeen: now}
}

// Screen returns the active authentication screen. Once logged in the
// screen no longer applies.
func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// LoggedIn reports whether the session carries an authenticated identity.
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// Identity returns the authenticated public identity, or nil while logged out.
func (s *Session) Identity() *domain.PublicIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// ConsumeFlash returns the pending flash message and clears it.
func (s *Session) ConsumeFlash() *Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.flash
	s.flash = nil
	return f
}

// ShowSignup moves from the login screen to the signup screen.
func (s *Session) ShowSignup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil && s.screen == ScreenLogin {
		s.screen = ScreenSignup
	}
}

// ShowForgot moves from the login screen to the password-reset screen.
func (s *Session) ShowForgot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil && s.screen == ScreenLogin {
		s.screen = ScreenForgot
	}
}

// Back returns from the signup or password-reset screen to the login screen.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		s.screen = ScreenLogin
		s.flash = nil
	}
}

// LoginSucceeded records a verified identity and leaves the logged-out
// screens behind.
func (s *Session) LoginSucceeded(identity *domain.PublicIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	s.screen = ScreenLogin
	s.flash = nil
}

// LoginFailed keeps the login screen and queues an inline error.
func (s *Session) LoginFailed(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenLogin
	s.flash = &Flash{Message: message, IsError: true}
}

// SignupSucceeded returns to the login screen with a success message
// prompting the user to log in.
func (s *Session) SignupSucceeded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenLogin
	s.flash = &Flash{Message: "Account created successfully! Please log in."}
}

// SignupFailed keeps the signup screen and queues the specific error.
func (s *Session) SignupFailed(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenSignup
	s.flash = &Flash{Message: message, IsError: true}
}

// ResetSucceeded returns to the login screen with a success message.
func (s *Session) ResetSucceeded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenLogin
	s.flash = &Flash{Message: "Password reset successfully! Please log in."}
}

// ResetFailed keeps the password-reset screen and queues the specific error.
func (s *Session) ResetFailed(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenForgot
	s.flash = &Flash{Message: message, IsError: true}
}

// Logout drops the identity and returns to the login screen.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.screen = ScreenLogin
	s.flash = nil
}
