//go:build windows
// +build windows

// File: internal/term/term_windows.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Windows-specific terminal detection.

package term

import "golang.org/x/sys/windows"

// isTerminalPlatform checks for a terminal by querying the console mode.
func isTerminalPlatform(fd uintptr) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd), &mode) == nil
}
