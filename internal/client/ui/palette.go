// Package ui renders the REPL's views: tables, lists, spinners and
// banners, coloured with the app palette.
package ui

import "github.com/fatih/color"

// Palette holds the app's terminal colours. Primary is indigo and Secondary
// pink in the graphical clients; the nearest ANSI colours stand in for them.
type Palette struct {
	Primary   *color.Color
	Secondary *color.Color
	Muted     *color.Color
	Success   *color.Color
	Error     *color.Color
	Warning   *color.Color
}

// NewPalette returns the default palette. With noColor every colour prints
// plain text.
func NewPalette(noColor bool) Palette {
	p := Palette{
		Primary:   color.New(color.FgHiBlue, color.Bold),
		Secondary: color.New(color.FgHiMagenta),
		Muted:     color.New(color.FgHiBlack),
		Success:   color.New(color.FgGreen, color.Bold),
		Error:     color.New(color.FgRed, color.Bold),
		Warning:   color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{p.Primary, p.Secondary, p.Muted, p.Success, p.Error, p.Warning} {
			c.DisableColor()
		}
	}
	return p
}
