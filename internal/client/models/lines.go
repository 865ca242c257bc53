package models

import "strings"

// SplitLines turns a newline-delimited text blob into display rows: one row
// per non-blank line, trimmed, order preserved.
func SplitLines(blob string) []string {
	rows := make([]string, 0)
	for _, line := range strings.Split(blob, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			rows = append(rows, s)
		}
	}
	return rows
}
