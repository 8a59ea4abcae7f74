package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/domain"
)

func newTestRepo(now time.Time) *SessionRepo {
	r := NewSessionRepo()
	r.now = func() time.Time { return now }
	return r
}

func record(token string, expiresAt time.Time) domain.SessionRecord {
	return domain.SessionRecord{
		Token:       token,
		Subject:     "auth0|abc",
		Email:       "alex@example.com",
		AccessToken: "secret-token",
		ExpiresAt:   expiresAt,
		CreatedAt:   expiresAt.Add(-time.Hour),
	}
}

func TestCreateAndGetByToken(t *testing.T) {
	now := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	r := newTestRepo(now)
	ctx := context.Background()

	rec := record("tok-1", now.Add(time.Hour))
	require.NoError(t, r.Create(ctx, rec))

	got, err := r.GetByToken(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestGetByTokenUnknownIsNil(t *testing.T) {
	r := newTestRepo(time.Now())

	got, err := r.GetByToken(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetByTokenExpiredIsNilAndRemoved(t *testing.T) {
	now := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	r := newTestRepo(now)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, record("tok-1", now.Add(-time.Minute))))

	got, err := r.GetByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, r.sessions)
}

func TestDelete(t *testing.T) {
	now := time.Now()
	r := newTestRepo(now)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, record("tok-1", now.Add(time.Hour))))
	require.NoError(t, r.Delete(ctx, "tok-1"))
	require.NoError(t, r.Delete(ctx, "tok-1"))

	got, err := r.GetByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteExpired(t *testing.T) {
	now := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	r := newTestRepo(now)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, record("live", now.Add(time.Hour))))
	require.NoError(t, r.Create(ctx, record("dead", now.Add(-time.Hour))))

	require.NoError(t, r.DeleteExpired(ctx))

	live, err := r.GetByToken(ctx, "live")
	require.NoError(t, err)
	assert.NotNil(t, live)
	assert.Len(t, r.sessions, 1)
}
