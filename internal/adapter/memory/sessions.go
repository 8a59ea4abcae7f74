// Package memory implements session persistence in process memory, for
// development and for deployments without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"fittrack/internal/domain"
)

// SessionRepo keeps session records keyed by their opaque token. Expired
// records are dropped lazily on read and in bulk via DeleteExpired.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.SessionRecord
	now      func() time.Time
}

// NewSessionRepo creates an empty repository.
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]domain.SessionRecord),
		now:      time.Now,
	}
}

var _ domain.SessionRepository = (*SessionRepo)(nil)

// Create stores a session record.
func (r *SessionRepo) Create(ctx context.Context, rec domain.SessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[rec.Token] = rec
	return nil
}

// GetByToken retrieves a session by token. Unknown and expired tokens both
// yield nil without error; an expired record is removed on the way out.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.SessionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	if r.now().After(rec.ExpiresAt) {
		delete(r.sessions, token)
		return nil, nil
	}
	return &rec, nil
}

// Delete removes a session. Deleting an unknown token is not an error.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for token, rec := range r.sessions {
		if now.After(rec.ExpiresAt) {
			delete(r.sessions, token)
		}
	}
	return nil
}
