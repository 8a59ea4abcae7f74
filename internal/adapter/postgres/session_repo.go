package postgres

import (
	"context"
	"database/sql"
	"time"

	"fittrack/internal/domain"
)

// SessionRepo implements session repository operations on DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

var _ domain.SessionRepository = (*SessionRepo)(nil)

// Create stores a session record.
func (r *SessionRepo) Create(ctx context.Context, rec domain.SessionRecord) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO sessions (token, subject, email, access_token, expires_at, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		rec.Token, rec.Subject, rec.Email, rec.AccessToken, rec.ExpiresAt, rec.CreatedAt,
	)
	return err
}

// GetByToken retrieves a session by token. Unknown and expired tokens both
// yield nil without error.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.SessionRecord, error) {
	var rec domain.SessionRecord
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT token, subject, email, access_token, expires_at, created_at FROM sessions WHERE token = $1 AND expires_at > $2",
		token, time.Now(),
	).Scan(&rec.Token, &rec.Subject, &rec.Email, &rec.AccessToken, &rec.ExpiresAt, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1", token)
	return err
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < $1", time.Now())
	return err
}
