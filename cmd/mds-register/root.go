// File: cmd/mds-register/root.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// The root.go file configures the base mds-register command. Every
// subcommand lives in its own file and attaches itself in init().

package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:     "mds-register",
		Version: registerVersion,
		Short:   "Employee register kept in a tab-separated file.",
		Long: `
Employee register kept in a tab-separated file.

Each line of the file holds one employee: name, age, department,
position, boss name and the working days, separated by tabs. An empty
boss column marks an employee who reports to nobody.

The register is loaded fresh for every command, so concurrent edits of
the file are picked up on the next invocation (or immediately with the
"watch" command).
`,
	}

	// Persistent CLI Flags.
	registerFile string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&registerFile, "file", "f", "register.tsv", "Path to the tab-separated register file")
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
