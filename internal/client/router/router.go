// Package router maps view names to handlers and keeps protected views
// behind the login view.
package router

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnknownRoute   = errors.New("unknown route")
	ErrDuplicateRoute = errors.New("duplicate route")
)

// Handler renders a view. args are the words typed after the command.
type Handler func(ctx context.Context, args []string) error

type Route struct {
	Name      string
	Aliases   []string
	Summary   string
	Protected bool
	Handler   Handler
}

// Auth is what the guard needs from the session.
type Auth interface {
	// Ready is closed once the persisted session has been loaded.
	Ready() <-chan struct{}
	IsAuthenticated() bool
}

// Resolution is the outcome of Resolve. Redirected is set when a protected
// route was requested without a session and Route is the login route.
type Resolution struct {
	Route      Route
	Redirected bool
}

type Router struct {
	auth   Auth
	login  string
	routes map[string]int
	order  []Route
}

// New returns a router whose protected routes fall back to the route named
// loginRoute.
func New(auth Auth, loginRoute string) *Router {
	return &Router{
		auth:   auth,
		login:  loginRoute,
		routes: make(map[string]int),
	}
}

// Register adds r under its name and aliases.
func (r *Router) Register(route Route) error {
	names := append([]string{route.Name}, route.Aliases...)
	for _, n := range names {
		if _, ok := r.routes[n]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRoute, n)
		}
	}

	idx := len(r.order)
	r.order = append(r.order, route)
	for _, n := range names {
		r.routes[n] = idx
	}
	return nil
}

// MustRegister is Register that panics on error; for static route tables.
func (r *Router) MustRegister(routes ...Route) {
	for _, route := range routes {
		if err := r.Register(route); err != nil {
			panic(err)
		}
	}
}

// Resolve looks name up. It first waits for the session to finish
// hydrating, so a protected route is never shown on a session that has not
// been loaded yet.
func (r *Router) Resolve(ctx context.Context, name string) (Resolution, error) {
	idx, ok := r.routes[name]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	route := r.order[idx]

	if !route.Protected {
		return Resolution{Route: route}, nil
	}

	select {
	case <-r.auth.Ready():
	case <-ctx.Done():
		return Resolution{}, fmt.Errorf("wait for session: %w", ctx.Err())
	}
	if r.auth.IsAuthenticated() {
		return Resolution{Route: route}, nil
	}

	loginIdx, ok := r.routes[r.login]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s", ErrUnknownRoute, r.login)
	}
	return Resolution{Route: r.order[loginIdx], Redirected: true}, nil
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.order))
	copy(out, r.order)
	return out
}
