package ui

import (
	"fmt"
	"io"
)

// ErrorBanner prints a one-line failure message, optionally followed by a
// hint such as the retry command.
func ErrorBanner(w io.Writer, p Palette, msg, hint string) {
	p.Error.Fprintf(w, "✗ %s\n", msg)
	if hint != "" {
		p.Muted.Fprintf(w, "  → %s\n", hint)
	}
}

func SuccessBanner(w io.Writer, p Palette, msg string) {
	p.Success.Fprintf(w, "✓ %s\n", msg)
}

func Info(w io.Writer, p Palette, format string, args ...any) {
	p.Muted.Fprintln(w, fmt.Sprintf(format, args...))
}
