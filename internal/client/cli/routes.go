package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/packmate/internal/client/router"
)

const routeLogin = "login"

func (a *App) routes() *router.Router {
	r := router.New(a.session, routeLogin)
	r.MustRegister(
		router.Route{Name: "help", Summary: "show available commands", Handler: a.Help},
		router.Route{Name: routeLogin, Summary: "log in", Handler: a.Login},
		router.Route{Name: "register", Summary: "create an account", Handler: a.Register},
		router.Route{Name: "logout", Summary: "log out", Handler: a.Logout},

		router.Route{Name: "dashboard", Aliases: []string{"trips", "l"}, Summary: "list your trips", Protected: true, Handler: a.Dashboard},
		router.Route{Name: "retry", Summary: "fetch the trip list again", Protected: true, Handler: a.Dashboard},
		router.Route{Name: "addtrip", Summary: "plan a new trip", Protected: true, Handler: a.AddTrip},
		router.Route{Name: "show", Summary: "show <id|#> trip details", Protected: true, Handler: a.Show},
		router.Route{Name: "toggle", Summary: "toggle <n> packed state of an item", Protected: true, Handler: a.Toggle},
		router.Route{Name: "packing", Summary: "generate a packing list for the shown trip", Protected: true, Handler: a.Packing},
		router.Route{Name: "suggest", Summary: "suggest [destination] things to do", Protected: true, Handler: a.Suggest},
		router.Route{Name: "luggage", Summary: "organize the shown trip by compartment", Protected: true, Handler: a.Luggage},
		router.Route{Name: "receipt", Summary: "scan and file a receipt", Protected: true, Handler: a.Receipt},
		router.Route{Name: "profile", Summary: "show your account", Protected: true, Handler: a.Profile},
	)
	return r
}

// Help lists the commands available in the current session state.
func (a *App) Help(ctx context.Context, _ []string) error {
	authed := a.session.IsAuthenticated()

	fmt.Fprintln(a.out, "Available commands:")
	for _, rt := range a.router.Routes() {
		if !helpVisible(rt, authed) {
			continue
		}
		name := rt.Name
		if len(rt.Aliases) > 0 {
			name += " (" + strings.Join(rt.Aliases, ", ") + ")"
		}
		fmt.Fprintf(a.out, "  %-22s %s\n", name, rt.Summary)
	}
	fmt.Fprintf(a.out, "  %-22s %s\n", "exit (quit)", "leave the program")
	return nil
}

func helpVisible(rt router.Route, authed bool) bool {
	switch rt.Name {
	case routeLogin, "register":
		return !authed
	case "logout":
		return authed
	}
	return authed || !rt.Protected
}
