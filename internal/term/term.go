// File: internal/term/term.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Platform-neutral terminal detection and ANSI coloring for the CLI
// printers. Platform-specific checks are located in separate files
// (term_linux.go, term_windows.go, etc.) guarded by build tags.

package term

import "os"

// ANSI escape sequences used by the CLI printers.
const (
	Reset  = "\033[0m"
	Red    = "\033[91m"
	Green  = "\033[92m"
	Yellow = "\033[33m"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isTerminalPlatform(f.Fd())
}

// Painter wraps strings in ANSI colors when the destination is a
// terminal and passes them through unchanged otherwise.
type Painter struct {
	enabled bool
}

// NewPainter returns a Painter enabled only when f is a terminal.
func NewPainter(f *os.File) *Painter {
	return &Painter{enabled: IsTerminal(f)}
}

// Paint returns s wrapped in the given color code.
func (p *Painter) Paint(color, s string) string {
	if !p.enabled {
		return s
	}
	return color + s + Reset
}
