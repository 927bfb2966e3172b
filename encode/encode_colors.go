package encode

import (
	"strings"

	"github.com/fatih/color"
)

// Colors selects the color functions used when rendering a document for a
// terminal. Colorization is a display concern applied to the rendered
// text; the underlying bytes written without colors are identical.
type Colors struct {
	Comment func(format string, a ...any) string
	Field   func(format string, a ...any) string
	Value   func(format string, a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Comment: color.BlueString,
		Field:   color.RGB(196, 96, 16).SprintfFunc(),
		Value:   color.RGB(128, 216, 236).SprintfFunc(),
	}
}

func colorize(text string, c *Colors) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = colorizeLine(ln, c)
	}
	return strings.Join(lines, "\n")
}

func colorizeLine(ln string, c *Colors) string {
	if ln == "" {
		return ""
	}
	trimmed := strings.TrimLeft(ln, " -")
	if strings.HasPrefix(trimmed, "#") {
		return c.Comment("%s", ln)
	}
	// A line comment after the value. Values containing " # " inside
	// quotes will split early; good enough for terminal output.
	if j := strings.Index(ln, " # "); j >= 0 {
		return colorizeValue(ln[:j], c) + c.Comment("%s", ln[j:])
	}
	return colorizeValue(ln, c)
}

func colorizeValue(ln string, c *Colors) string {
	if j := strings.Index(ln, ":"); j >= 0 {
		return c.Field("%s", ln[:j]) + ":" + c.Value("%s", ln[j+1:])
	}
	return c.Value("%s", ln)
}
