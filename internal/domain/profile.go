// Package domain contains the core business entities and ports.
package domain

import "context"

// UnitsPreference selects the measurement system used for display.
type UnitsPreference string

// Supported units preferences.
const (
	UnitsMetric   UnitsPreference = "metric"
	UnitsImperial UnitsPreference = "imperial"
)

// Gender is an optional self-reported profile attribute.
type Gender string

// Supported gender options.
const (
	GenderMale         Gender = "male"
	GenderFemale       Gender = "female"
	GenderNonBinary    Gender = "non_binary"
	GenderPreferNotSay Gender = "prefer_not_to_say"
)

// UserProfile is the per-account profile record. Username is immutable once
// created; HeightCm is always stored in centimeters, whatever unit the form
// displayed.
type UserProfile struct {
	Username        string          `json:"username"`
	UnitsPreference UnitsPreference `json:"unitsPreference"`
	DisplayName     *string         `json:"displayName"`
	Gender          *Gender         `json:"gender"`
	Birthdate       *string         `json:"birthdate"`
	HeightCm        *float64        `json:"heightCm"`
}

// CreateProfileRequest is the payload for one-time profile creation.
// Optional fields are sent as explicit nulls when unset.
type CreateProfileRequest struct {
	Username        string          `json:"username"`
	UnitsPreference UnitsPreference `json:"unitsPreference"`
	DisplayName     *string         `json:"displayName"`
	Gender          *Gender         `json:"gender"`
	Birthdate       *string         `json:"birthdate"`
	HeightCm        *float64        `json:"heightCm"`
}

// UpdateProfileRequest is a partial-update payload: nil fields are omitted
// from the wire and left untouched by the store.
type UpdateProfileRequest struct {
	UnitsPreference UnitsPreference `json:"unitsPreference"`
	DisplayName     *string         `json:"displayName,omitempty"`
	Gender          *Gender         `json:"gender,omitempty"`
	Birthdate       *string         `json:"birthdate,omitempty"`
	HeightCm        *float64        `json:"heightCm,omitempty"`
}

// ProfileAPI is the port for account provisioning and profile CRUD. The
// subjectID parameter is the caller's identity-provider principal; the
// remote implementation authenticates with the session token instead and
// ignores it where the wire call is already identity-scoped.
type ProfileAPI interface {
	// Provision idempotently ensures an account record exists for the
	// identity. A conflict on an already-provisioned account is surfaced
	// as a 409-classified error; callers treat it as success.
	Provision(ctx context.Context, subjectID, email string) error
	// Get fetches the profile. A missing profile is a 404-classified error.
	Get(ctx context.Context, subjectID string) (*UserProfile, error)
	// Create creates the profile exactly once; duplicates fail with 409.
	Create(ctx context.Context, subjectID string, req CreateProfileRequest) (*UserProfile, error)
	// Update merges only the supplied fields into an existing profile.
	Update(ctx context.Context, subjectID string, req UpdateProfileRequest) (*UserProfile, error)
}
