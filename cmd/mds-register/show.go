// File: cmd/mds-register/show.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print all records of the register.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegister()
			if err != nil {
				return err
			}
			printRecords(os.Stdout, reg.All())
			printCount(os.Stdout, reg.Len())
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(showCmd)
}
