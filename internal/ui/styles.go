// Package ui holds the terminal styles used for user-facing output.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	Green = lipgloss.Color("2")
	Red   = lipgloss.Color("1")
)

var (
	// Highlight marks names and paths.
	Highlight = lipgloss.NewStyle().Foreground(Green)

	// Error marks diagnostics.
	Error = lipgloss.NewStyle().Foreground(Red)
)

// ColorMode selects when styles emit ANSI sequences.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode maps a config value to a ColorMode, defaulting to auto.
func ParseColorMode(s string) ColorMode {
	switch ColorMode(s) {
	case ColorAlways, ColorNever:
		return ColorMode(s)
	default:
		return ColorAuto
	}
}

// Configure sets the global colour profile. In auto mode colour is enabled
// only when w is a terminal.
func Configure(mode ColorMode, w io.Writer) {
	enabled := false
	switch mode {
	case ColorAlways:
		enabled = true
	case ColorAuto:
		enabled = IsTerminal(w)
	}

	if enabled {
		lipgloss.SetColorProfile(termenv.ANSI)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
