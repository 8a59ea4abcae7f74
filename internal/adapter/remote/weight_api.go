package remote

import (
	"context"
	"net/http"

	"fittrack/internal/domain"
)

// WeightAPI is the real-mode implementation of domain.BodyWeightAPI.
type WeightAPI struct {
	client *Client
}

// NewWeightAPI wraps the request client.
func NewWeightAPI(client *Client) *WeightAPI {
	return &WeightAPI{client: client}
}

var _ domain.BodyWeightAPI = (*WeightAPI)(nil)

// History fetches the caller's entries. The server's order is not part of
// its contract, so the list is re-sorted newest-first on every fetch.
func (a *WeightAPI) History(ctx context.Context, _ string) ([]domain.BodyWeightEntry, error) {
	var entries []domain.BodyWeightEntry
	if err := a.client.Authenticated(ctx, http.MethodGet, "/users/me/body-weight-history", nil, &entries); err != nil {
		return nil, err
	}
	domain.SortEntriesNewestFirst(entries)
	return entries, nil
}

// Create appends one entry.
func (a *WeightAPI) Create(ctx context.Context, _ string, req domain.CreateBodyWeightRequest) (*domain.BodyWeightEntry, error) {
	var entry domain.BodyWeightEntry
	if err := a.client.Authenticated(ctx, http.MethodPost, "/users/me/body-weight-history", req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
