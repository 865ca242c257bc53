package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/packmate/internal/client/client"
	"github.com/dmitrijs2005/packmate/internal/client/config"
	"github.com/dmitrijs2005/packmate/internal/client/models"
	"github.com/dmitrijs2005/packmate/internal/client/router"
	"github.com/dmitrijs2005/packmate/internal/client/services"
	"github.com/dmitrijs2005/packmate/internal/client/session"
	"github.com/dmitrijs2005/packmate/internal/client/store"
	"github.com/dmitrijs2005/packmate/internal/client/ui"
	"github.com/dmitrijs2005/packmate/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	api    client.Client

	session  *session.Store
	trips    *store.Store
	tripSvc  services.TripService
	planner  services.PlannerService
	receipts services.ReceiptService
	router   *router.Router

	palette  ui.Palette
	out      io.Writer
	reader   *bufio.Reader
	prompter Prompter
	now      func() time.Time

	modeMu sync.RWMutex
	mode   Mode

	view    viewState
	current *models.Trip
}

// appDeps are the collaborators newApp wires together. NewApp fills them
// from config; tests supply their own.
type appDeps struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	api      client.Client
	in       io.Reader
	out      io.Writer
	prompter Prompter
	noColor  bool
	now      func() time.Time
}

func newApp(d appDeps) *App {
	if d.log == nil {
		d.log = logging.Nop()
	}
	if d.now == nil {
		d.now = time.Now
	}

	a := &App{
		config:   d.config,
		log:      d.log,
		db:       d.db,
		api:      d.api,
		session:  session.NewStore(d.api, session.NewSQLPersister(d.db), d.log.With("component", "session")),
		trips:    store.New(d.api, d.log.With("component", "trips")),
		tripSvc:  services.NewTripService(d.api, d.log),
		planner:  services.NewPlannerService(d.api),
		receipts: services.NewReceiptService(d.api, d.log),
		palette:  ui.NewPalette(d.noColor),
		out:      d.out,
		reader:   bufio.NewReader(d.in),
		prompter: d.prompter,
		now:      d.now,
	}
	a.router = a.routes()
	return a
}

// NewApp opens the local database, builds the API client and wires the
// stores, services and routes.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(appDeps{
		config:   c,
		log:      log,
		db:       db,
		api:      api,
		in:       os.Stdin,
		out:      os.Stdout,
		prompter: surveyPrompter{},
	})
	api.SetTokenSource(a.session)

	return a, nil
}

// Run hydrates the session, starts the connectivity watcher and blocks in
// the REPL until the user leaves or in reaches EOF.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	go func() {
		_ = a.session.Hydrate(ctx)
	}()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to packmate (type 'help' for commands)")
	_ = a.Dispatch(ctx, "dashboard", nil)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close tears down the active view and releases the local database.
func (a *App) Close() error {
	a.leaveView()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

// checkOnline probes the API once and records the result.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if sess := a.session.Snapshot(); sess.Username != "" {
		s = sess.Username + " "
	}
	if m := a.Mode(); m != ModeUnknown {
		s += string(m)
	}
	if s = strings.TrimSpace(s); s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// requestCtx bounds a single API call by the configured timeout.
func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
