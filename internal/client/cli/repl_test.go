package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/packmate/internal/client/router"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) Dispatch(_ context.Context, name string, args []string) error {
	switch name {
	case "login", "dashboard", "show", "suggest":
		f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
		return nil
	}
	return fmt.Errorf("%w: %s", router.ErrUnknownRoute, name)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	lines := captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"login",
		"",
		"dashboard",
		"show 2",
		"suggest New York",
		"fly away",
		"exit",
		"dashboard",
	}, "\n"))

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "(alice online)" }, bufio.NewReader(input))

	assert.Equal(t, []string{"login", "dashboard", "show 2", "suggest New York"}, f.calls)
	assert.Contains(t, *lines, "pm (alice online)> ")
	assert.Contains(t, *lines, "Unknown command: fly")
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	captureOutput(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader("login")))
	assert.Equal(t, []string{"login"}, f.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f = &fakeExec{}
	runREPL(ctx, f, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")))
	assert.Empty(t, f.calls)
}

func TestRunREPL_QuitAlias(t *testing.T) {
	lines := captureOutput(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader("quit\nlogin\n")))

	assert.Empty(t, f.calls)
	assert.Equal(t, []string{"pm> ", "Bye!"}, *lines)
}
