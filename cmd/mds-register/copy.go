// File: cmd/mds-register/copy.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	copyCmd = &cobra.Command{
		Use:   "copy",
		Short: "Create a copy of the register and save it to disk.",
		Long: `
Create a copy of the register and save it to disk. The copy is deep:
every record is duplicated, so later edits of either file leave the
other untouched.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegister()
			if err != nil {
				return err
			}

			if err := reg.Clone().SaveFile(copyOut); err != nil {
				return fmt.Errorf("cannot save %s: %w", copyOut, err)
			}
			fmt.Printf("Copied %d records to %s\n", reg.Len(), copyOut)
			return nil
		},
	}

	copyOut string
)

func init() {
	copyCmd.Flags().StringVarP(&copyOut, "out", "o", "register_copy.tsv", "Destination file for the copy")
	rootCmd.AddCommand(copyCmd)
}
