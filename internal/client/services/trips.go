// Package services contains the per-view application services of the
// packmate client: trip details, planning helpers and receipts.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/packmate/internal/client/models"
	"github.com/dmitrijs2005/packmate/internal/logging"
)

var ErrItemNotFound = errors.New("packing item not found")

// TripAPI is the subset of the remote API used by TripService.
type TripAPI interface {
	GetTrip(ctx context.Context, id string) (models.Trip, error)
	EditPackingList(ctx context.Context, tripID string, items []models.PackingItem) error
}

// TripService backs the trip details view.
//
// Contract:
//   - Get: load one trip by server id.
//   - ToggleItem: flip one packing item's checked flag and push the full
//     list to the server. The returned trip carries the change only if the
//     server accepted it; otherwise the input trip comes back unchanged with
//     the error.
type TripService interface {
	Get(ctx context.Context, id string) (models.Trip, error)
	ToggleItem(ctx context.Context, trip models.Trip, itemID string) (models.Trip, error)
}

type tripService struct {
	api TripAPI
	log logging.Logger
}

func NewTripService(api TripAPI, log logging.Logger) TripService {
	if log == nil {
		log = logging.Nop()
	}
	return &tripService{api: api, log: log}
}

func (s *tripService) Get(ctx context.Context, id string) (models.Trip, error) {
	trip, err := s.api.GetTrip(ctx, id)
	if err != nil {
		return models.Trip{}, fmt.Errorf("get trip %s: %w", id, err)
	}
	return trip, nil
}

func (s *tripService) ToggleItem(ctx context.Context, trip models.Trip, itemID string) (models.Trip, error) {
	toggled, ok := trip.WithItemToggled(itemID)
	if !ok {
		return trip, ErrItemNotFound
	}

	if err := s.api.EditPackingList(ctx, trip.ID.String(), toggled.PackingList); err != nil {
		s.log.Error(ctx, "update packing list failed", "trip_id", trip.ID.String(), "error", err)
		return trip, fmt.Errorf("update packing list: %w", err)
	}
	return toggled, nil
}
