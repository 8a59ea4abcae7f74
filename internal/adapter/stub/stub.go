// Package stub implements the resource API ports against in-memory maps.
// It stands in for the remote fitness API during development and testing,
// mirroring its status codes, ordering, and partial-update semantics.
package stub

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"fittrack/internal/apierr"
	"fittrack/internal/domain"
)

// Store holds per-subject profiles and weight entries. Construct one per
// process (or per test); nothing here is package-level, so tests reset
// state by making a fresh Store.
type Store struct {
	mu       sync.Mutex
	profiles map[string]*domain.UserProfile
	entries  map[string][]domain.BodyWeightEntry

	now   func() time.Time
	newID func() string
}

// New creates an empty store.
func New() *Store {
	return &Store{
		profiles: make(map[string]*domain.UserProfile),
		entries:  make(map[string][]domain.BodyWeightEntry),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Ensure interfaces are met.
var _ domain.ProfileAPI = (*Store)(nil)
var _ domain.BodyWeightAPI = (*WeightLog)(nil)

func errNoSession() error {
	return apierr.New(http.StatusUnauthorized, "No active session", nil)
}

func errProfileNotFound() error {
	return apierr.New(http.StatusNotFound, "Profile not found",
		map[string]any{"message": "Profile not found"})
}

// --- ProfileAPI ---

// Provision is a no-op success: the stub has no identity side effects to
// simulate. It still insists on a caller key like the real mode does.
func (s *Store) Provision(_ context.Context, subjectID, _ string) error {
	if subjectID == "" {
		return errNoSession()
	}
	return nil
}

// Get returns the subject's profile, or a 404 error when none was created.
func (s *Store) Get(_ context.Context, subjectID string) (*domain.UserProfile, error) {
	if subjectID == "" {
		return nil, errNoSession()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[subjectID]
	if !ok {
		return nil, errProfileNotFound()
	}
	copied := *profile
	return &copied, nil
}

// Create stores the subject's profile exactly once; a second create fails
// with 409 and leaves the existing record untouched.
func (s *Store) Create(_ context.Context, subjectID string, req domain.CreateProfileRequest) (*domain.UserProfile, error) {
	if subjectID == "" {
		return nil, errNoSession()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[subjectID]; ok {
		return nil, apierr.New(http.StatusConflict, "Profile already exists",
			map[string]any{"message": "Profile already exists"})
	}

	profile := &domain.UserProfile{
		Username:        req.Username,
		UnitsPreference: req.UnitsPreference,
		DisplayName:     req.DisplayName,
		Gender:          req.Gender,
		Birthdate:       req.Birthdate,
		HeightCm:        req.HeightCm,
	}
	s.profiles[subjectID] = profile

	copied := *profile
	return &copied, nil
}

// Update merges only the supplied fields into the existing profile; nil
// fields are left untouched. Username is immutable and never part of the
// update payload.
func (s *Store) Update(_ context.Context, subjectID string, req domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	if subjectID == "" {
		return nil, errNoSession()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[subjectID]
	if !ok {
		return nil, errProfileNotFound()
	}

	if req.UnitsPreference != "" {
		profile.UnitsPreference = req.UnitsPreference
	}
	if req.DisplayName != nil {
		profile.DisplayName = req.DisplayName
	}
	if req.Gender != nil {
		profile.Gender = req.Gender
	}
	if req.Birthdate != nil {
		profile.Birthdate = req.Birthdate
	}
	if req.HeightCm != nil {
		profile.HeightCm = req.HeightCm
	}

	copied := *profile
	return &copied, nil
}

// --- BodyWeightAPI ---

// WeightLog is the body-weight view over the store.
type WeightLog struct {
	store *Store
}

// WeightLog returns the store's body-weight API.
func (s *Store) WeightLog() *WeightLog {
	return &WeightLog{store: s}
}

// History returns the subject's entries newest-first. An unknown subject
// has an empty history, not an error.
func (l *WeightLog) History(_ context.Context, subjectID string) ([]domain.BodyWeightEntry, error) {
	if subjectID == "" {
		return nil, errNoSession()
	}
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	entries := make([]domain.BodyWeightEntry, len(l.store.entries[subjectID]))
	copy(entries, l.store.entries[subjectID])
	domain.SortEntriesNewestFirst(entries)
	return entries, nil
}

// Create appends one entry with a fresh id and the current timestamp.
func (l *WeightLog) Create(_ context.Context, subjectID string, req domain.CreateBodyWeightRequest) (*domain.BodyWeightEntry, error) {
	if subjectID == "" {
		return nil, errNoSession()
	}
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	entry := domain.BodyWeightEntry{
		ID:        l.store.newID(),
		Weight:    domain.Round2(req.Weight),
		Date:      req.Date,
		CreatedAt: l.store.now().UTC(),
	}
	l.store.entries[subjectID] = append(l.store.entries[subjectID], entry)

	copied := entry
	return &copied, nil
}
