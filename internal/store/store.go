// Package store persists trips and their chat history.
package store

import (
	"context"

	"github.com/pkg/errors"

	"triply/internal/trip"
)

var (
	ErrTripNotFound = errors.New("trip not found")
	// ErrNotApplicable is returned for suggestions that carry nothing to save.
	ErrNotApplicable = errors.New("suggestion has nothing to apply")
)

type TripStore interface {
	ListTrips(ctx context.Context) ([]trip.Trip, error)
	GetTrip(ctx context.Context, id string) (*trip.Trip, error)
	// CreateTrip assigns the ID and timestamps.
	CreateTrip(ctx context.Context, t *trip.Trip) error
	// UpdateTrip loads the trip, lets fn edit it and saves the result.
	UpdateTrip(ctx context.Context, id string, fn func(*trip.Trip) error) (*trip.Trip, error)
	// DeleteTrip removes the trip together with its chat history.
	DeleteTrip(ctx context.Context, id string) error
}

type ChatStore interface {
	AppendMessages(ctx context.Context, tripID string, msgs ...trip.ChatMessage) error
	// Messages returns the last limit messages oldest first; limit <= 0 means all.
	Messages(ctx context.Context, tripID string, limit int) ([]trip.ChatMessage, error)
}

type Store interface {
	TripStore
	ChatStore
	Close(ctx context.Context) error
}
