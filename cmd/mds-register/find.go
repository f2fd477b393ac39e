// File: cmd/mds-register/find.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var (
	findCmd = &cobra.Command{
		Use:   "find",
		Short: "Find employees by name, department, position, age range or working days.",
		Long: `
Find employees by exactly one criterion:

  --name       a single employee, printed in the vertical layout
  --dept       everyone in a department
  --position   everyone holding a position
  --min-age and/or --max-age
               everyone whose age falls in the inclusive range
  --days       everyone working on at least one of the given days
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegister()
			if err != nil {
				return err
			}

			criteria := 0
			if findName != "" {
				criteria++
			}
			if findDept != "" {
				criteria++
			}
			if findPosition != "" {
				criteria++
			}
			if cmd.Flags().Changed("min-age") || cmd.Flags().Changed("max-age") {
				criteria++
			}
			if len(findDays) > 0 {
				criteria++
			}
			if criteria != 1 {
				return errors.New("set exactly one of --name, --dept, --position, --min-age/--max-age, --days")
			}

			switch {
			case findName != "":
				rec, err := reg.ByName(findName)
				if err != nil {
					return err
				}
				printOneRecord(os.Stdout, rec)
				return nil
			case findDept != "":
				recs, err := reg.ByDept(findDept)
				if err != nil {
					return err
				}
				printRecords(os.Stdout, recs)
			case findPosition != "":
				recs, err := reg.ByPosition(findPosition)
				if err != nil {
					return err
				}
				printRecords(os.Stdout, recs)
			case len(findDays) > 0:
				printRecords(os.Stdout, reg.ByWorkdays(findDays...))
			default:
				printRecords(os.Stdout, reg.ByAgeRange(findMinAge, findMaxAge))
			}
			return nil
		},
	}

	findName     string
	findDept     string
	findPosition string
	findMinAge   int
	findMaxAge   int
	findDays     []string
)

func init() {
	findCmd.Flags().StringVar(&findName, "name", "", "Employee name to look up")
	findCmd.Flags().StringVar(&findDept, "dept", "", "Department to list")
	findCmd.Flags().StringVar(&findPosition, "position", "", "Position to list")
	findCmd.Flags().IntVar(&findMinAge, "min-age", 0, "Lower bound of the age range (inclusive)")
	findCmd.Flags().IntVar(&findMaxAge, "max-age", 200, "Upper bound of the age range (inclusive)")
	findCmd.Flags().StringSliceVar(&findDays, "days", nil, "Working days, e.g. Mon,Wed")
	rootCmd.AddCommand(findCmd)
}
