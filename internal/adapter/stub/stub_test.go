package stub

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/apierr"
	"fittrack/internal/domain"
)

const subject = "auth0|abc"

func ptr[T any](v T) *T { return &v }

// newTestStore returns a store with a deterministic clock and id sequence.
func newTestStore() *Store {
	s := New()
	tick := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("entry-%d", seq)
	}
	return s
}

func TestProvision(t *testing.T) {
	s := newTestStore()

	assert.NoError(t, s.Provision(context.Background(), subject, "alex@example.com"))
	// Idempotent: provisioning again is still a success.
	assert.NoError(t, s.Provision(context.Background(), subject, "alex@example.com"))

	err := s.Provision(context.Background(), "", "alex@example.com")
	assert.True(t, apierr.HasStatus(err, 401))
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.Create(ctx, subject, domain.CreateProfileRequest{
		Username:        "alex",
		UnitsPreference: domain.UnitsMetric,
		HeightCm:        ptr(177.8),
	})
	require.NoError(t, err)
	assert.Equal(t, "alex", created.Username)
	assert.Nil(t, created.DisplayName, "unspecified optional fields resolve to unset")
	assert.Nil(t, created.Gender)
	assert.Nil(t, created.Birthdate)

	got, err := s.Get(ctx, subject)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetMissingProfileIsNotFound(t *testing.T) {
	s := newTestStore()

	_, err := s.Get(context.Background(), subject)
	apiErr, ok := apierr.As(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "Profile not found", apiErr.Message)
}

func TestDuplicateCreateConflicts(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Create(ctx, subject, domain.CreateProfileRequest{
		Username:        "alex",
		UnitsPreference: domain.UnitsMetric,
	})
	require.NoError(t, err)

	_, err = s.Create(ctx, subject, domain.CreateProfileRequest{
		Username:        "impostor",
		UnitsPreference: domain.UnitsImperial,
	})
	assert.True(t, apierr.HasStatus(err, 409))

	// The existing record is unaltered by the failed create.
	got, err := s.Get(ctx, subject)
	require.NoError(t, err)
	assert.Equal(t, "alex", got.Username)
	assert.Equal(t, domain.UnitsMetric, got.UnitsPreference)
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Create(ctx, subject, domain.CreateProfileRequest{
		Username:        "alex",
		UnitsPreference: domain.UnitsMetric,
		DisplayName:     ptr("Alex"),
		Birthdate:       ptr("1990-06-15"),
		HeightCm:        ptr(177.8),
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, subject, domain.UpdateProfileRequest{
		UnitsPreference: domain.UnitsImperial,
		HeightCm:        ptr(180.0),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.UnitsImperial, updated.UnitsPreference)
	require.NotNil(t, updated.HeightCm)
	assert.Equal(t, 180.0, *updated.HeightCm)
	// Unsupplied fields retain their prior values.
	require.NotNil(t, updated.DisplayName)
	assert.Equal(t, "Alex", *updated.DisplayName)
	require.NotNil(t, updated.Birthdate)
	assert.Equal(t, "1990-06-15", *updated.Birthdate)
	assert.Equal(t, "alex", updated.Username)
}

func TestUpdateMissingProfileIsNotFound(t *testing.T) {
	s := newTestStore()

	_, err := s.Update(context.Background(), subject, domain.UpdateProfileRequest{
		UnitsPreference: domain.UnitsMetric,
	})
	assert.True(t, apierr.HasStatus(err, 404))
}

func TestMissingCallerKeyIsUnauthorized(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "")
	assert.True(t, apierr.HasStatus(err, 401))
	_, err = s.Create(ctx, "", domain.CreateProfileRequest{Username: "alex", UnitsPreference: domain.UnitsMetric})
	assert.True(t, apierr.HasStatus(err, 401))
	_, err = s.Update(ctx, "", domain.UpdateProfileRequest{UnitsPreference: domain.UnitsMetric})
	assert.True(t, apierr.HasStatus(err, 401))
	_, err = s.WeightLog().History(ctx, "")
	assert.True(t, apierr.HasStatus(err, 401))
	_, err = s.WeightLog().Create(ctx, "", domain.CreateBodyWeightRequest{Weight: 80, Date: "2026-02-20"})
	assert.True(t, apierr.HasStatus(err, 401))
}

func TestHistoryUnknownSubjectIsEmpty(t *testing.T) {
	s := newTestStore()

	entries, err := s.WeightLog().History(context.Background(), subject)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateEntryAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore()

	entry, err := s.WeightLog().Create(context.Background(), subject, domain.CreateBodyWeightRequest{
		Weight: 80.456,
		Date:   "2026-02-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "entry-1", entry.ID)
	assert.Equal(t, 80.46, entry.Weight, "weight stored rounded to two decimals")
	assert.Equal(t, "2026-02-20", entry.Date)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestHistoryOrdersNewestFirst(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	log := s.WeightLog()

	_, err := log.Create(ctx, subject, domain.CreateBodyWeightRequest{Weight: 80, Date: "2026-02-20"})
	require.NoError(t, err)
	_, err = log.Create(ctx, subject, domain.CreateBodyWeightRequest{Weight: 79.5, Date: "2026-02-24"})
	require.NoError(t, err)

	entries, err := log.History(ctx, subject)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2026-02-24", entries[0].Date)
	assert.Equal(t, "2026-02-20", entries[1].Date)
}

func TestHistoryBreaksDateTiesByCreationTime(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	log := s.WeightLog()

	first, err := log.Create(ctx, subject, domain.CreateBodyWeightRequest{Weight: 80, Date: "2026-02-20"})
	require.NoError(t, err)
	second, err := log.Create(ctx, subject, domain.CreateBodyWeightRequest{Weight: 79.8, Date: "2026-02-20"})
	require.NoError(t, err)

	entries, err := log.History(ctx, subject)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID, "later entry for the same date sorts first")
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestHistoriesAreScopedPerSubject(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	log := s.WeightLog()

	_, err := log.Create(ctx, subject, domain.CreateBodyWeightRequest{Weight: 80, Date: "2026-02-20"})
	require.NoError(t, err)

	entries, err := log.History(ctx, "auth0|someone-else")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
