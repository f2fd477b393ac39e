//go:build !linux && !windows
// +build !linux,!windows

// File: internal/term/term_stub.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Stub for platforms without a terminal check; colors stay disabled.

package term

func isTerminalPlatform(fd uintptr) bool {
	return false
}
