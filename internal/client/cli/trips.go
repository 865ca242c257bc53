package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/packmate/internal/client/fetch"
	"github.com/dmitrijs2005/packmate/internal/client/models"
	"github.com/dmitrijs2005/packmate/internal/client/services"
	"github.com/dmitrijs2005/packmate/internal/client/ui"
)

const (
	msgCreateTripFailed = "Failed to create trip. Please try again."
	msgLoadTripFailed   = "Failed to load trip details"
	msgToggleFailed     = "Failed to update item status"
)

var errNoTripShown = errors.New("no trip shown")

func (a *App) showDashboard(ctx context.Context) error {
	a.enterView("dashboard")
	return a.Dashboard(ctx, nil)
}

// Dashboard fetches the trip list and renders it.
func (a *App) Dashboard(ctx context.Context, _ []string) error {
	rctx, cancel := a.requestCtx(ctx)
	sp := ui.NewSpinner(a.out, a.palette, "Loading trips...")
	sp.Start()
	err := a.trips.FetchTrips(rctx)
	sp.Stop()
	cancel()

	st := a.trips.Snapshot()
	if st.Error != "" {
		ui.ErrorBanner(a.out, a.palette, st.Error, "type 'retry' to try again")
		return err
	}

	ui.Header(a.out, a.palette, "Your trips")
	if len(st.Trips) == 0 {
		ui.Info(a.out, a.palette, "No trips yet. Type 'addtrip' to plan one.")
		return nil
	}

	tbl := ui.NewTable(a.out, a.palette, "#", "Destination", "Date", "Duration", "Purpose", "Weather", "Packed", "ID")
	for i, t := range st.Trips {
		tbl.AddRow(
			strconv.Itoa(i+1),
			t.Destination,
			t.DisplayDate(),
			t.Duration,
			t.Purpose,
			t.Weather,
			fmt.Sprintf("%d/%d", t.CheckedCount(), len(t.PackingList)),
			t.ID.String(),
		)
	}
	tbl.Render()
	ui.Info(a.out, a.palette, "Type 'show <#>' for details.")
	return nil
}

// AddTrip runs the new-trip form, creates the trip and returns to the
// dashboard.
func (a *App) AddTrip(ctx context.Context, _ []string) error {
	nt, err := tripForm(a.prompter, a.now())
	if err != nil {
		return err
	}
	if err := nt.Validate(); err != nil {
		ui.ErrorBanner(a.out, a.palette, fmt.Sprintf("Invalid trip: %v", err), "")
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	sp := ui.NewSpinner(a.out, a.palette, "Creating trip...")
	sp.Start()
	created, err := a.trips.AddTrip(rctx, nt)
	sp.Stop()
	cancel()

	if err != nil {
		ui.ErrorBanner(a.out, a.palette, msgCreateTripFailed, "")
		return err
	}

	ui.SuccessBanner(a.out, a.palette, fmt.Sprintf("Trip to %s created", created.Destination))
	return a.showDashboard(ctx)
}

// tripIDFor accepts either a list position from the dashboard or a raw id.
func (a *App) tripIDFor(arg string) string {
	if n, err := strconv.Atoi(arg); err == nil {
		trips := a.trips.Snapshot().Trips
		if n >= 1 && n <= len(trips) {
			return trips[n-1].ID.String()
		}
	}
	return arg
}

// Show loads one trip and makes it the shown trip for toggle, packing and
// luggage.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <id|#>")
		return nil
	}
	id := a.tripIDFor(args[0])

	tr := viewTracker[models.Trip](a)
	trip, err := load(ctx, a, tr, "Loading trip details...", func(ctx context.Context) (models.Trip, error) {
		return a.tripSvc.Get(ctx, id)
	})
	switch {
	case errors.Is(err, fetch.ErrStale), errors.Is(err, fetch.ErrClosed):
		return nil
	case err != nil:
		ui.ErrorBanner(a.out, a.palette, msgLoadTripFailed, "")
		return err
	}

	a.current = &trip
	a.renderTrip(trip)
	return nil
}

func (a *App) renderTrip(t models.Trip) {
	ui.Header(a.out, a.palette, t.Destination)
	ui.KeyValues(a.out, a.palette, [][2]string{
		{"Date", t.DisplayDate()},
		{"Duration", t.Duration},
		{"Purpose", t.Purpose},
		{"Weather", t.Weather},
		{"Total weight", fmt.Sprintf("%.1f kg", t.TotalWeight)},
		{"Packed", fmt.Sprintf("%d/%d", t.CheckedCount(), len(t.PackingList))},
	})
	fmt.Fprintln(a.out)
	a.renderPackingItems(t)
}

func (a *App) renderPackingItems(t models.Trip) {
	if len(t.PackingList) == 0 {
		ui.Info(a.out, a.palette, "The packing list is empty.")
		return
	}
	tbl := ui.NewTable(a.out, a.palette, "#", "Packed", "Item", "Compartment", "Weight")
	for i, it := range t.PackingList {
		tbl.AddRow(strconv.Itoa(i+1), checkMark(it.Checked), it.Name, it.Compartment, fmt.Sprintf("%.1f kg", it.Weight))
	}
	tbl.Render()
	ui.Info(a.out, a.palette, "Type 'toggle <#>' to mark an item packed.")
}

func checkMark(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// Toggle flips the packed state of the nth item of the shown trip.
func (a *App) Toggle(ctx context.Context, args []string) error {
	if a.current == nil {
		fmt.Fprintln(a.out, "No trip shown. Type 'show <id|#>' first.")
		return errNoTripShown
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: toggle <#>")
		return nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || n < 1 || n > len(a.current.PackingList) {
		fmt.Fprintf(a.out, "No item #%s on this list.\n", args[0])
		return services.ErrItemNotFound
	}
	item := a.current.PackingList[n-1]

	rctx, cancel := a.requestCtx(ctx)
	updated, err := a.tripSvc.ToggleItem(rctx, *a.current, item.ID)
	cancel()
	if err != nil {
		ui.ErrorBanner(a.out, a.palette, msgToggleFailed, "")
		return err
	}

	a.current = &updated
	state := "unpacked"
	if !item.Checked {
		state = "packed"
	}
	ui.SuccessBanner(a.out, a.palette, fmt.Sprintf("%s %s", item.Name, state))
	a.renderPackingItems(updated)
	return nil
}
