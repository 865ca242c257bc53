package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/packmate/internal/client/client"
	"github.com/dmitrijs2005/packmate/internal/client/config"
	"github.com/dmitrijs2005/packmate/internal/client/models"
)

// fakeAPI is an in-memory travel-assistant backend.
type fakeAPI struct {
	mu sync.Mutex

	password string
	trips    []models.Trip

	listFailures int
	failCreate   bool
	failEdit     bool
	failGenerate bool

	packingList string
	suggestions map[string]string
	scanned     models.Receipt

	edits    []editBody
	invoices []models.Receipt
	created  []models.NewTrip
	auth     []string
}

type editBody struct {
	TripID string `json:"trip_id"`
	Items  []struct {
		Name    string `json:"name"`
		Checked bool   `json:"checked"`
	} `json:"items"`
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		password: "pw",
		trips: []models.Trip{{
			ID:          "t1",
			Destination: "Paris",
			Purpose:     "leisure",
			Duration:    "7 days",
			Weather:     "mild",
			TripDate:    "2026-05-01",
			PackingList: []models.PackingItem{
				{Name: "Socks", Compartment: "Main Compartment", Weight: 0.2},
				{Name: "Socks", Compartment: "Side Pocket", Weight: 0.2},
				{Name: "Passport", Compartment: "Front Pocket", Weight: 0.1, Checked: true},
			},
			TotalWeight: 0.5,
		}},
		packingList: "Passport\n\nUmbrella\n",
		suggestions: map[string]string{"Paris": "Louvre\nSeine cruise\n"},
		scanned:     models.Receipt{ProductName: "Kettle", Price: "25"},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) authorized(r *http.Request) bool {
	h := r.Header.Get("Authorization")
	f.auth = append(f.auth, h)
	return strings.HasPrefix(h, "Bearer tok-")
}

func (f *fakeAPI) handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"data": "ok"})
	})

	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var c struct{ Username, Password string }
		_ = json.NewDecoder(r.Body).Decode(&c)
		f.mu.Lock()
		defer f.mu.Unlock()
		if c.Password != f.password {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": "tok-" + c.Username})
	})

	r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		var c struct{ Username string }
		_ = json.NewDecoder(r.Body).Decode(&c)
		if c.Username == "taken" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Username already exists"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
	})

	r.Get("/trips", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token is missing"})
			return
		}
		if f.listFailures > 0 {
			f.listFailures--
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "db down"})
			return
		}
		writeJSON(w, http.StatusOK, f.trips)
	})

	r.Post("/trips", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) || f.failCreate {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "nope"})
			return
		}
		var nt models.NewTrip
		_ = json.NewDecoder(r.Body).Decode(&nt)
		f.created = append(f.created, nt)
		trip := models.Trip{
			ID:          models.ObjectID(fmt.Sprintf("t%d", len(f.trips)+1)),
			Destination: nt.Destination,
			Purpose:     nt.Purpose,
			Duration:    nt.Duration,
			Weather:     nt.Weather,
			TripDate:    nt.TripDate,
			PackingList: []models.PackingItem{{Name: "Sunscreen", Compartment: "Side Pocket", Weight: 0.3}},
			TotalWeight: 0.3,
		}
		f.trips = append(f.trips, trip)
		writeJSON(w, http.StatusCreated, map[string]any{
			"_id": map[string]string{"$oid": trip.ID.String()}, "destination": trip.Destination,
			"purpose": trip.Purpose, "duration": trip.Duration, "weather": trip.Weather,
			"trip_date": trip.TripDate, "packing_list": trip.PackingList, "total_weight": trip.TotalWeight,
		})
	})

	r.Get("/trips/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeJSON(w, http.StatusUnauthorized, nil)
			return
		}
		for _, t := range f.trips {
			if t.ID.String() == chi.URLParam(r, "id") {
				writeJSON(w, http.StatusOK, t)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Trip not found"})
	})

	r.Post("/edit_packing_list", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) || f.failEdit {
			writeJSON(w, http.StatusInternalServerError, nil)
			return
		}
		var b editBody
		_ = json.NewDecoder(r.Body).Decode(&b)
		f.edits = append(f.edits, b)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Packing list updated"})
	})

	r.Post("/generate_packing_list", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failGenerate {
			writeJSON(w, http.StatusInternalServerError, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"packing_list": f.packingList})
	})

	r.Post("/get_suggestions", func(w http.ResponseWriter, r *http.Request) {
		var b struct{ Destination string }
		_ = json.NewDecoder(r.Body).Decode(&b)
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"suggestions": f.suggestions[b.Destination]})
	})

	r.Post("/analyze-receipt", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeJSON(w, http.StatusUnauthorized, nil)
			return
		}
		writeJSON(w, http.StatusOK, f.scanned)
	})

	r.Post("/invoice/add", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeJSON(w, http.StatusUnauthorized, nil)
			return
		}
		var rec models.Receipt
		_ = json.NewDecoder(r.Body).Decode(&rec)
		f.invoices = append(f.invoices, rec)
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Invoice added"})
	})

	return r
}

// scriptPrompter answers form prompts from queues. An empty input answer
// accepts the prompt's default.
type scriptPrompter struct {
	inputs   []string
	selects  []string
	confirms []bool
	asked    []string
}

func (p *scriptPrompter) Input(message, def string, _ bool) (string, error) {
	p.asked = append(p.asked, message)
	if len(p.inputs) == 0 {
		return def, nil
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	if v == "" {
		return def, nil
	}
	return v, nil
}

func (p *scriptPrompter) Select(message string, options []string, _ string) (string, error) {
	p.asked = append(p.asked, message)
	if len(p.selects) == 0 {
		return options[0], nil
	}
	v := p.selects[0]
	p.selects = p.selects[1:]
	return v, nil
}

func (p *scriptPrompter) Confirm(message string, def bool) (bool, error) {
	p.asked = append(p.asked, message)
	if len(p.confirms) == 0 {
		return def, nil
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	app *App
	api *fakeAPI
	out *strings.Builder
	srv *httptest.Server
}

// newTestEnv wires a real App against the fake backend and a temp SQLite
// file. stdin supplies login prompts.
func newTestEnv(t *testing.T, api *fakeAPI, stdin string, p Prompter) *testEnv {
	t.Helper()

	oldTTY := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = oldTTY })

	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "packmate.db"))
	require.NoError(t, err)

	httpc, err := client.NewHTTPClient(srv.URL, 5*time.Second)
	require.NoError(t, err)

	if p == nil {
		p = &scriptPrompter{}
	}

	out := &strings.Builder{}
	a := newApp(appDeps{
		config:   &config.Config{APIBaseURL: srv.URL, RequestTimeout: 5 * time.Second},
		db:       db,
		api:      httpc,
		in:       strings.NewReader(stdin),
		out:      out,
		prompter: p,
		noColor:  true,
		now:      func() time.Time { return testNow },
	})
	httpc.SetTokenSource(a.session)
	t.Cleanup(func() { _ = a.Close() })

	return &testEnv{app: a, api: api, out: out, srv: srv}
}

// loggedIn hydrates the session and logs in as alice.
func (e *testEnv) loggedIn(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.app.session.Hydrate(ctx))
	require.NoError(t, e.app.session.Login(ctx, "alice", "pw"))
	return e
}
