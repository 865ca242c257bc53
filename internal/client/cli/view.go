package cli

import (
	"context"

	"github.com/dmitrijs2005/packmate/internal/client/fetch"
	"github.com/dmitrijs2005/packmate/internal/client/ui"
)

// viewState is the view currently on screen. teardown closes every tracker
// the view created, so a request still running when the user moves on is
// cancelled and its result dropped.
type viewState struct {
	name     string
	teardown []func()
}

func (a *App) enterView(name string) {
	a.leaveView()
	a.view = viewState{name: name}
}

func (a *App) leaveView() {
	for _, fn := range a.view.teardown {
		fn()
	}
	a.view = viewState{}
}

// viewTracker returns a tracker owned by the current view.
func viewTracker[T any](a *App) *fetch.Tracker[T] {
	tr := fetch.New[T]()
	a.view.teardown = append(a.view.teardown, tr.Close)
	return tr
}

// load runs fn through tr in the background and keeps a spinner on screen
// until it finishes. The call is bounded by the configured request timeout.
func load[T any](ctx context.Context, a *App, tr *fetch.Tracker[T], msg string, fn fetch.Func[T]) (T, error) {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	gen, done, err := tr.Go(ctx, fn)
	if err != nil {
		var zero T
		return zero, err
	}
	ui.NewSpinner(a.out, a.palette, msg).Wait(done)

	return tr.Outcome(gen)
}
