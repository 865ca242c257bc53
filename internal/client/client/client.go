package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/packmate/internal/client/models"
)

// Client is the full surface of the remote travel-assistant API.
type Client interface {
	Ping(ctx context.Context) error
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error

	ListTrips(ctx context.Context) ([]models.Trip, error)
	CreateTrip(ctx context.Context, trip models.NewTrip) (models.Trip, error)
	GetTrip(ctx context.Context, id string) (models.Trip, error)
	EditPackingList(ctx context.Context, tripID string, items []models.PackingItem) error

	GeneratePackingList(ctx context.Context, req models.PackingRequest) (models.GeneratedList, error)
	GetSuggestions(ctx context.Context, destination string) (string, error)

	AnalyzeReceipt(ctx context.Context, filename string, image io.Reader) (models.Receipt, error)
	AddInvoice(ctx context.Context, receipt models.Receipt) error
}

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means the request goes out without an Authorization header.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }
