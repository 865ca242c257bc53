package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/packmate/internal/client/models"
)

// PlannerAPI is the subset of the remote API used by PlannerService.
type PlannerAPI interface {
	GeneratePackingList(ctx context.Context, req models.PackingRequest) (models.GeneratedList, error)
	GetSuggestions(ctx context.Context, destination string) (string, error)
}

// PlannerService turns server-generated text into display rows.
type PlannerService interface {
	PackingList(ctx context.Context, trip models.Trip) ([]string, error)
	Suggestions(ctx context.Context, destination string) ([]string, error)
	Luggage(trip models.Trip) []models.Compartment
}

type plannerService struct {
	api PlannerAPI
}

func NewPlannerService(api PlannerAPI) PlannerService {
	return &plannerService{api: api}
}

func (s *plannerService) PackingList(ctx context.Context, trip models.Trip) ([]string, error) {
	list, err := s.api.GeneratePackingList(ctx, models.PackingRequestFor(trip))
	if err != nil {
		return nil, fmt.Errorf("generate packing list: %w", err)
	}
	return list.Rows(), nil
}

func (s *plannerService) Suggestions(ctx context.Context, destination string) ([]string, error) {
	text, err := s.api.GetSuggestions(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("get suggestions: %w", err)
	}
	return models.SplitLines(text), nil
}

// Luggage groups the trip's items by compartment; it needs no request.
func (s *plannerService) Luggage(trip models.Trip) []models.Compartment {
	return models.GroupByCompartment(trip.PackingList)
}
