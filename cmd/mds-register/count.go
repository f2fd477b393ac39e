// File: cmd/mds-register/count.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewha/mds2022/internal/term"
)

var (
	countCmd = &cobra.Command{
		Use:   "count",
		Short: "Print the number of employees, per department and position.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegister()
			if err != nil {
				return err
			}

			printCount(os.Stdout, reg.Len())

			fmt.Println(paint.Paint(term.Yellow, "\nBy department"))
			for _, dept := range reg.Depts() {
				recs, err := reg.ByDept(dept)
				if err != nil {
					return err
				}
				fmt.Printf("%-20s%d\n", dept, len(recs))
			}

			fmt.Println(paint.Paint(term.Yellow, "\nBy position"))
			for _, pos := range reg.Positions() {
				recs, err := reg.ByPosition(pos)
				if err != nil {
					return err
				}
				fmt.Printf("%-20s%d\n", pos, len(recs))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(countCmd)
}
