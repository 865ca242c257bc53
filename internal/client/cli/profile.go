package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/packmate/internal/client/ui"
)

// Profile shows the account behind the current session.
func (a *App) Profile(ctx context.Context, _ []string) error {
	rows := [][2]string{{"Username", a.session.Username()}}

	claims, err := a.session.Claims()
	if err != nil {
		a.log.Debug(ctx, "token claims unavailable", "error", err)
	} else if !claims.ExpiresAt.IsZero() {
		rows = append(rows, [2]string{"Session expires", claims.ExpiresAt.Local().Format("Jan 2, 2006 15:04")})
	}

	rows = append(rows,
		[2]string{"Trips", strconv.Itoa(len(a.trips.Snapshot().Trips))},
		[2]string{"Server", a.config.APIBaseURL},
	)

	ui.Header(a.out, a.palette, "Profile")
	ui.KeyValues(a.out, a.palette, rows)
	return nil
}
