package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/packmate/internal/client/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it; tests
// can provide a lightweight stub.
type execIface interface {
	Dispatch(ctx context.Context, name string, args []string) error
}

// runREPL reads commands line by line and dispatches them by name. The
// first word is the command, the rest are its arguments. The loop exits on
// EOF, on "exit" or "quit", or when ctx is done.
//
// reader is shared with the credential prompts, so a handler that reads
// further lines consumes them before the next command is read.
//
// Handler errors are not fatal; handlers report their own failures, and the
// REPL only explains unknown commands.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("pm%s> ", prefixSpace(statusFn())))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if err := a.Dispatch(ctx, cmd, args); errors.Is(err, router.ErrUnknownRoute) {
			printlnFn("Unknown command: " + cmd)
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}

// Dispatch resolves name through the route guard and runs the handler.
// A protected command issued without a session runs the login view instead.
func (a *App) Dispatch(ctx context.Context, name string, args []string) error {
	res, err := a.router.Resolve(ctx, name)
	if err != nil {
		return err
	}

	if res.Redirected {
		fmt.Fprintln(a.out, "Please log in first.")
		args = nil
	}

	a.enterView(res.Route.Name)
	return res.Route.Handler(ctx, args)
}
