// Package pretty provides Lipgloss-based styled output for the CLI.
package pretty

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	Title    lipgloss.Style
	FilePath lipgloss.Style
	Value    lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Dim      lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return &Styles{}
	}
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		FilePath: lipgloss.NewStyle().Bold(true),
		Value:    lipgloss.NewStyle(),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// ColorEnabled reports whether stdout should receive colored output:
// a terminal, with NO_COLOR unset.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 60

// TerminalWidth returns the stdout width, or a fallback when it cannot
// be determined.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
