package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/packmate/internal/client/fetch"
	"github.com/dmitrijs2005/packmate/internal/client/ui"
)

const (
	msgPackingFailed     = "Failed to generate packing list"
	msgSuggestionsFailed = "Failed to fetch suggestions"
)

func (a *App) requireTrip() bool {
	if a.current == nil {
		fmt.Fprintln(a.out, "No trip shown. Type 'show <id|#>' first.")
		return false
	}
	return true
}

// Packing asks the server for a packing list for the shown trip.
func (a *App) Packing(ctx context.Context, _ []string) error {
	if !a.requireTrip() {
		return errNoTripShown
	}
	trip := *a.current

	tr := viewTracker[[]string](a)
	rows, err := load(ctx, a, tr, "Generating packing list...", func(ctx context.Context) ([]string, error) {
		return a.planner.PackingList(ctx, trip)
	})
	if errors.Is(err, fetch.ErrStale) || errors.Is(err, fetch.ErrClosed) {
		return nil
	}
	if err != nil {
		ui.ErrorBanner(a.out, a.palette, msgPackingFailed, "")
		return err
	}

	ui.Header(a.out, a.palette, "Packing list for "+trip.Destination)
	if len(rows) == 0 {
		ui.Info(a.out, a.palette, "Nothing to pack.")
		return nil
	}
	ui.List(a.out, a.palette, rows, true)
	return nil
}

// Suggest shows things to do at a destination: the argument if given,
// otherwise the shown trip's.
func (a *App) Suggest(ctx context.Context, args []string) error {
	destination := strings.TrimSpace(strings.Join(args, " "))
	if destination == "" && a.current != nil {
		destination = a.current.Destination
	}
	if destination == "" {
		fmt.Fprintln(a.out, "Usage: suggest <destination>")
		return nil
	}

	tr := viewTracker[[]string](a)
	rows, err := load(ctx, a, tr, "Finding suggestions...", func(ctx context.Context) ([]string, error) {
		return a.planner.Suggestions(ctx, destination)
	})
	if errors.Is(err, fetch.ErrStale) || errors.Is(err, fetch.ErrClosed) {
		return nil
	}
	if err != nil {
		ui.ErrorBanner(a.out, a.palette, msgSuggestionsFailed, "")
		return err
	}

	ui.Header(a.out, a.palette, "Suggestions for "+destination)
	if len(rows) == 0 {
		ui.Info(a.out, a.palette, "No suggestions yet.")
		return nil
	}
	ui.List(a.out, a.palette, rows, false)
	return nil
}

// Luggage groups the shown trip's items by compartment.
func (a *App) Luggage(ctx context.Context, _ []string) error {
	if !a.requireTrip() {
		return errNoTripShown
	}

	groups := a.planner.Luggage(*a.current)
	ui.Header(a.out, a.palette, "Luggage organization")
	if len(groups) == 0 {
		ui.Info(a.out, a.palette, "The packing list is empty.")
		return nil
	}

	for _, g := range groups {
		a.palette.Secondary.Fprintln(a.out, g.Name)
		for _, it := range g.Items {
			fmt.Fprintf(a.out, "  %s %s\n", checkMark(it.Checked), it.Name)
		}
	}
	return nil
}
