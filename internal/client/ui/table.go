package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table is a simple aligned table with a coloured header.
type Table struct {
	writer  io.Writer
	palette Palette
	headers []string
	rows    [][]string
}

func NewTable(w io.Writer, p Palette, headers ...string) *Table {
	return &Table{
		writer:  w,
		palette: p,
		headers: headers,
		rows:    make([][]string, 0),
	}
}

func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	for i, h := range t.headers {
		t.palette.Primary.Fprint(t.writer, padRight(h, widths[i]))
		if i < len(t.headers)-1 {
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for i, w := range widths {
		t.palette.Muted.Fprint(t.writer, strings.Repeat("─", w))
		if i < len(widths)-1 {
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if i == len(row)-1 || i == len(widths)-1 {
				fmt.Fprint(t.writer, cell)
				break
			}
			fmt.Fprint(t.writer, padRight(cell, widths[i]), "  ")
		}
		fmt.Fprintln(t.writer)
	}
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// KeyValues renders "key: value" lines with aligned values.
func KeyValues(w io.Writer, p Palette, pairs [][2]string) {
	width := 0
	for _, kv := range pairs {
		width = max(width, utf8.RuneCountInString(kv[0])+1)
	}
	for _, kv := range pairs {
		p.Secondary.Fprint(w, padRight(kv[0]+":", width))
		fmt.Fprintf(w, " %s\n", kv[1])
	}
}

// List renders rows as a numbered or bulleted list.
func List(w io.Writer, p Palette, rows []string, numbered bool) {
	for i, row := range rows {
		if numbered {
			p.Secondary.Fprintf(w, "%d. ", i+1)
		} else {
			p.Secondary.Fprint(w, "• ")
		}
		fmt.Fprintln(w, row)
	}
}

// Header renders a title with an underline.
func Header(w io.Writer, p Palette, title string) {
	p.Primary.Fprintln(w, title)
	p.Muted.Fprintln(w, strings.Repeat("─", utf8.RuneCountInString(title)))
}
