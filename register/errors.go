// File: register/errors.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package register

import "fmt"

// Errors returned by register operations.
var (
	ErrEmptyName        = fmt.Errorf("register: employee name must not be empty")
	ErrDuplicateName    = fmt.Errorf("register: employee name already registered")
	ErrNameNotFound     = fmt.Errorf("register: name not found")
	ErrDeptNotFound     = fmt.Errorf("register: department not found")
	ErrPositionNotFound = fmt.Errorf("register: position not found")
	ErrNoSubordinates   = fmt.Errorf("register: employee has no subordinates")
)
