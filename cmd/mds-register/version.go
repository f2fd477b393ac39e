// File: cmd/mds-register/version.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const registerVersion = "1.0.0"

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Displays the version of mds-register.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mds-register version: %s\n", registerVersion)
		},
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
}
