//go:build linux
// +build linux

// File: internal/term/term_linux.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Linux-specific terminal detection.

package term

import "golang.org/x/sys/unix"

// isTerminalPlatform checks for a terminal by querying termios state.
func isTerminalPlatform(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
