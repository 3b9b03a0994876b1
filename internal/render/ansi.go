// Package render formats catalog search results as terminal text.
package render

import "fmt"

// ANSI escape code constants for terminal styling.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"

	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
	BrightWhite  = "\033[97m"
)

// Styler applies ANSI colours when enabled and passes text through otherwise.
type Styler struct {
	Enabled bool
}

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Postcondition: Returns text unchanged when s is disabled.
func (s Styler) Colorize(color, text string) string {
	if !s.Enabled {
		return text
	}
	return color + text + Reset
}

// Colorf wraps a formatted string with the given ANSI color code.
func (s Styler) Colorf(color, format string, args ...any) string {
	return s.Colorize(color, fmt.Sprintf(format, args...))
}
