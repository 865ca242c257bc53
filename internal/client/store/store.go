// Package store is the client's trip list container. All transitions go
// through Reduce; Store serialises them and talks to the API.
package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/packmate/internal/client/models"
	"github.com/dmitrijs2005/packmate/internal/logging"
)

// TripAPI is the part of the remote API the store needs.
type TripAPI interface {
	ListTrips(ctx context.Context) ([]models.Trip, error)
	CreateTrip(ctx context.Context, trip models.NewTrip) (models.Trip, error)
}

type Store struct {
	api TripAPI
	log logging.Logger

	mu    sync.Mutex
	state State
}

func New(api TripAPI, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{api: api, log: log}
}

func (s *Store) dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// FetchTrips replaces the list with the server's. A failure sets
// ErrMsgFetchTrips and keeps the previous list.
func (s *Store) FetchTrips(ctx context.Context) error {
	s.dispatch(FetchStarted{})

	trips, err := s.api.ListTrips(ctx)
	if err != nil {
		s.log.Error(ctx, "fetch trips failed", "error", err)
		s.dispatch(FetchFailed{})
		return err
	}

	s.dispatch(FetchSucceeded{Trips: trips})
	s.log.Debug(ctx, "trips fetched", "count", len(trips))
	return nil
}

// AddTrip creates a trip and appends exactly what the server returned.
func (s *Store) AddTrip(ctx context.Context, trip models.NewTrip) (models.Trip, error) {
	s.dispatch(AddStarted{})

	created, err := s.api.CreateTrip(ctx, trip)
	if err != nil {
		s.log.Error(ctx, "add trip failed", "error", err)
		s.dispatch(AddFailed{})
		return models.Trip{}, err
	}

	s.dispatch(AddSucceeded{Trip: created})
	return created, nil
}
