package domain

import (
	"context"
	"sort"
	"time"
)

// BodyWeightEntry represents a single logged weight measurement. Entries are
// append-only; Date is the semantic key (several entries may share a date)
// and CreatedAt breaks ties for ordering.
type BodyWeightEntry struct {
	ID        string    `json:"id"`
	Weight    float64   `json:"weight"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateBodyWeightRequest is the payload for appending one entry.
type CreateBodyWeightRequest struct {
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
}

// BodyWeightAPI is the port for body-weight history access.
type BodyWeightAPI interface {
	// History returns the caller's entries sorted newest-first. An account
	// with no entries yields an empty list, not an error.
	History(ctx context.Context, subjectID string) ([]BodyWeightEntry, error)
	// Create appends one entry and returns it with its assigned id and
	// creation timestamp.
	Create(ctx context.Context, subjectID string, req CreateBodyWeightRequest) (*BodyWeightEntry, error)
}

// SortEntriesNewestFirst orders entries by (date, createdAt) descending,
// in place. Display order never trusts the server's order.
func SortEntriesNewestFirst(entries []BodyWeightEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
