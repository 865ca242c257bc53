package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/packmate/internal/client/ui"
)

const (
	msgLoginFailed    = "Login failed. Please check your credentials."
	msgRegisterFailed = "Registration failed. Please try again."
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) credentials() (string, string, error) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

// Login prompts for credentials and opens a session. On success the
// dashboard is shown.
func (a *App) Login(ctx context.Context, _ []string) error {
	username, password, err := a.credentials()
	if err != nil {
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	err = a.session.Login(rctx, username, password)
	cancel()
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "username", username, "error", err)
		ui.ErrorBanner(a.out, a.palette, msgLoginFailed, "type 'register' to create an account")
		return err
	}

	ui.SuccessBanner(a.out, a.palette, fmt.Sprintf("Logged in as %s", username))
	return a.showDashboard(ctx)
}

// Register creates an account, logs into it and shows the dashboard.
func (a *App) Register(ctx context.Context, _ []string) error {
	username, password, err := a.credentials()
	if err != nil {
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	err = a.session.Register(rctx, username, password)
	cancel()
	if err != nil {
		a.log.Warn(ctx, "registration unsuccessful", "username", username, "error", err)
		ui.ErrorBanner(a.out, a.palette, msgRegisterFailed, "")
		return err
	}

	ui.SuccessBanner(a.out, a.palette, fmt.Sprintf("Welcome, %s!", username))
	return a.showDashboard(ctx)
}

// Logout clears the session; the shown trip goes with it.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.current = nil
	err := a.session.Logout(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to clear stored session", "error", err)
		ui.ErrorBanner(a.out, a.palette, "Stored session could not be cleared", "")
	}
	ui.Info(a.out, a.palette, "Logged out.")
	return err
}
