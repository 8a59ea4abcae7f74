// Package app holds the application services: the profile flow resolver
// and the form validators.
package app

import (
	"context"

	"fittrack/internal/domain"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession attaches the request's session to the context. The HTTP
// adapter calls this after resolving the session cookie.
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SessionFromContext returns the session attached to the context, or nil
// when the caller is not signed in.
func SessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return sess
}

// ContextSessionSource reads the request-scoped session placed on the
// context by the HTTP adapter. It is the SessionSource handed to the flow
// resolver and the authenticated API client.
type ContextSessionSource struct{}

var _ domain.SessionSource = ContextSessionSource{}

// Session implements domain.SessionSource.
func (ContextSessionSource) Session(ctx context.Context) (*domain.Session, error) {
	return SessionFromContext(ctx), nil
}
