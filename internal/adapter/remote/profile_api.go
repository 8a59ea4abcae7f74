package remote

import (
	"context"
	"net/http"

	"fittrack/internal/domain"
)

// ProfileAPI is the real-mode implementation of domain.ProfileAPI. Each
// operation maps 1:1 onto an identity-scoped REST call; failures propagate
// the client's typed error unchanged and nothing is cached.
type ProfileAPI struct {
	client *Client
}

// NewProfileAPI wraps the request client.
func NewProfileAPI(client *Client) *ProfileAPI {
	return &ProfileAPI{client: client}
}

var _ domain.ProfileAPI = (*ProfileAPI)(nil)

type provisionRequest struct {
	SubjectID string `json:"subjectId"`
	Email     string `json:"email"`
}

// Provision ensures an account record exists for the identity. The remote
// API reports 409 for an already-provisioned account; callers tolerate it.
func (a *ProfileAPI) Provision(ctx context.Context, subjectID, email string) error {
	return a.client.Authenticated(ctx, http.MethodPost, "/users/me",
		provisionRequest{SubjectID: subjectID, Email: email}, nil)
}

// Get fetches the caller's profile. The wire call is scoped by the bearer
// token; the subject id is not part of the request.
func (a *ProfileAPI) Get(ctx context.Context, _ string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := a.client.Authenticated(ctx, http.MethodGet, "/users/me/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create creates the caller's profile.
func (a *ProfileAPI) Create(ctx context.Context, _ string, req domain.CreateProfileRequest) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := a.client.Authenticated(ctx, http.MethodPost, "/users/me/profile", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update partially updates the caller's profile; only supplied fields are
// on the wire.
func (a *ProfileAPI) Update(ctx context.Context, _ string, req domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := a.client.Authenticated(ctx, http.MethodPatch, "/users/me/profile", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
