// File: cmd/mds-register/orgchart.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	orgchartCmd = &cobra.Command{
		Use:   "orgchart [employee]",
		Short: "Show all subordinates of an employee recursively.",
		Long: `
Show all subordinates of an employee recursively, one per line,
indented with one dot per reporting level. Without an argument the
chart starts from the first employee who reports to nobody.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegister()
			if err != nil {
				return err
			}

			root := ""
			if len(args) == 1 {
				root = args[0]
			} else if root, err = rootEmployee(reg); err != nil {
				return err
			}

			return reg.WalkOrgChart(root, func(name string, depth int) {
				if depth == 0 {
					fmt.Printf("%s:\n", name)
					return
				}
				fmt.Printf("%s %s\n", strings.Repeat(".", depth), name)
			})
		},
	}
)

func init() {
	rootCmd.AddCommand(orgchartCmd)
}
