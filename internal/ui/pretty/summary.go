package pretty

import (
	"fmt"
	"strings"
)

// Conversion describes one finished conversion for display.
type Conversion struct {
	Input  string
	Output string
	From   string
	To     string
	Bytes  int
	Images int
}

// FormatConversion renders a one-conversion summary.
// Example: "in.md (md) -> out.html (html): 1.2 kB, 2 images".
func (s *Styles) FormatConversion(c Conversion) string {
	var sb strings.Builder

	sb.WriteString(s.FilePath.Render(c.Input))
	sb.WriteString(s.Dim.Render(fmt.Sprintf(" (%s)", c.From)))
	sb.WriteString(" -> ")
	sb.WriteString(s.FilePath.Render(c.Output))
	sb.WriteString(s.Dim.Render(fmt.Sprintf(" (%s)", c.To)))
	sb.WriteString(": ")
	sb.WriteString(s.Value.Render(formatBytes(c.Bytes)))

	if c.Images > 0 {
		word := "images"
		if c.Images == 1 {
			word = "image"
		}
		sb.WriteString(", ")
		sb.WriteString(s.Value.Render(fmt.Sprintf("%d %s", c.Images, word)))
	}

	sb.WriteString(" ")
	sb.WriteString(s.Success.Render("ok"))
	sb.WriteString("\n")
	return sb.String()
}

// Divider renders a dimmed horizontal rule sized to the terminal, capped
// for very wide windows.
func (s *Styles) Divider() string {
	width := TerminalWidth()
	if width > 80 {
		width = 80
	}
	return s.Dim.Render(strings.Repeat("-", width)) + "\n"
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f kB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
