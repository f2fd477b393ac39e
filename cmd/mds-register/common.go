// File: cmd/mds-register/common.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Utility functions shared by the mds-register subcommands.

package main

import (
	"fmt"
	"os"

	"github.com/andrewha/mds2022/internal/term"
	"github.com/andrewha/mds2022/register"
)

// loadRegister reads the register named by the persistent --file flag.
func loadRegister() (*register.Register, error) {
	reg, err := register.LoadFile(registerFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", registerFile, err)
	}
	return reg, nil
}

// paint colors output when stdout is a terminal.
var paint = term.NewPainter(os.Stdout)

// rootEmployee returns the first employee who reports to nobody.
func rootEmployee(reg *register.Register) (string, error) {
	for _, rec := range reg.All() {
		if rec.Boss == register.RootBoss {
			return rec.Name, nil
		}
	}
	return "", fmt.Errorf("%s holds no employee without a boss", registerFile)
}
