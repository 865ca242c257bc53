package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/packmate/internal/client/models"
)

// fakeAPI implements every API subset used by the services.
type fakeAPI struct {
	trip    models.Trip
	getErr  error
	editErr error

	editedTripID string
	editedItems  []models.PackingItem

	generated   models.GeneratedList
	generateErr error
	lastRequest models.PackingRequest

	suggestions    string
	suggestionsErr error
	lastDest       string

	receipt     models.Receipt
	analyzeErr  error
	uploadName  string
	uploadBody  string
	invoiceErr  error
	lastInvoice models.Receipt
}

func (f *fakeAPI) GetTrip(_ context.Context, id string) (models.Trip, error) {
	return f.trip, f.getErr
}

func (f *fakeAPI) EditPackingList(_ context.Context, tripID string, items []models.PackingItem) error {
	f.editedTripID = tripID
	f.editedItems = items
	return f.editErr
}

func (f *fakeAPI) GeneratePackingList(_ context.Context, req models.PackingRequest) (models.GeneratedList, error) {
	f.lastRequest = req
	return f.generated, f.generateErr
}

func (f *fakeAPI) GetSuggestions(_ context.Context, destination string) (string, error) {
	f.lastDest = destination
	return f.suggestions, f.suggestionsErr
}

func (f *fakeAPI) AnalyzeReceipt(_ context.Context, filename string, image io.Reader) (models.Receipt, error) {
	f.uploadName = filename
	b, _ := io.ReadAll(image)
	f.uploadBody = string(b)
	return f.receipt, f.analyzeErr
}

func (f *fakeAPI) AddInvoice(_ context.Context, r models.Receipt) error {
	f.lastInvoice = r
	return f.invoiceErr
}
