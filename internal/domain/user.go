package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application.
// Emails are compared by case-sensitive exact match throughout.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicIdentity is the subset of a User that is safe to expose to
// callers and downstream pages. It never carries the password hash.
type PublicIdentity struct {
	ID    int64
	Name  string
	Email string
}

// Public returns the exposable identity of the user.
func (u *User) Public() *PublicIdentity {
	return &PublicIdentity{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdatePasswordHash replaces the credential of the user with the
	// given email and reports how many rows were affected. Zero rows
	// means no such email exists; the caller decides what that means.
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) (int64, error)
	Count(ctx context.Context) (int, error)
}
