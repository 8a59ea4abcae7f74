package domain

import (
	"context"
	"time"
)

// Session is the identity attached to a request: the provider's principal
// id, the verified email, and a bearer token for the remote API. The core
// only reads sessions; their lifetime belongs to the identity provider.
type Session struct {
	Subject     string
	Email       string
	AccessToken string
}

// Usable reports whether the session carries everything the core needs.
// A partially populated session (token without subject, etc.) counts as
// no session at all.
func (s *Session) Usable() bool {
	return s != nil && s.Subject != "" && s.Email != "" && s.AccessToken != ""
}

// SessionRecord is a server-side session as persisted behind the opaque
// cookie token.
type SessionRecord struct {
	Token       string
	Subject     string
	Email       string
	AccessToken string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// SessionRepository defines the port for session persistence.
type SessionRepository interface {
	Create(ctx context.Context, rec SessionRecord) error
	// GetByToken returns nil without error when the token is unknown
	// or expired.
	GetByToken(ctx context.Context, token string) (*SessionRecord, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

// SessionSource yields the session for the current request, or nil when
// the caller is not signed in.
type SessionSource interface {
	Session(ctx context.Context) (*Session, error)
}
