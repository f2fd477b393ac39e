// File: cmd/mds-register/print.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Fixed-width table printers for employee records.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrewha/mds2022/internal/term"
	"github.com/andrewha/mds2022/register"
)

// Column widths of the employee table.
const (
	wName = 20
	wAge  = 5
	wDept = 10
	wPos  = 10
	wBoss = 20
	wDays = 35
)

func printHeader(w io.Writer) {
	fmt.Fprintf(w, "\n%-*s%-*s%-*s%-*s%-*s%-*s\n",
		wName, "Name",
		wAge, "Age",
		wDept, "Dept.",
		wPos, "Position",
		wBoss, "Boss name",
		wDays, "Working days")
	fmt.Fprintf(w, "%s%s%s%s%s%s\n",
		underline(wName), underline(wAge), underline(wDept),
		underline(wPos), underline(wBoss), underline(wDays))
}

// underline draws the dashed rule under one column, keeping the single
// trailing space that separates it from the next column.
func underline(width int) string {
	return strings.Repeat("-", width-1) + " "
}

func printRecord(w io.Writer, rec *register.Record) {
	fmt.Fprintf(w, "%-*s%-*d%-*s%-*s%-*s%s\n",
		wName, rec.Name,
		wAge, rec.Age,
		wDept, rec.Dept,
		wPos, rec.Position,
		wBoss, rec.Boss,
		strings.Join(rec.Days, ", "))
}

func printRecords(w io.Writer, recs []*register.Record) {
	printHeader(w)
	for _, rec := range recs {
		printRecord(w, rec)
	}
}

// printOneRecord shows a single employee in the vertical layout.
func printOneRecord(w io.Writer, rec *register.Record) {
	fmt.Fprintf(w, "\nName         : %s\nAge          : %d\nDepartment   : %s\nPosition     : %s\nBoss name    : %s\nWorking days : %s\n",
		rec.Name, rec.Age, rec.Dept, rec.Position, rec.Boss,
		strings.Join(rec.Days, ", "))
}

func printCount(w io.Writer, n int) {
	fmt.Fprintln(w, paint.Paint(term.Green, fmt.Sprintf("Registered: %d employees", n)))
}
