// File: register/record.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package register

import "slices"

// RootBoss marks an employee with no boss, the root of the org chart.
const RootBoss = "n/a"

// Record is one employee. Name is the primary key of the register.
type Record struct {
	Name     string
	Age      int
	Dept     string
	Position string
	Boss     string   // RootBoss when the employee reports to nobody
	Days     []string // working days, e.g. "Mon", "Wed", "Fri"
}

// Clone returns a deep copy of the record, including its working days.
func (r *Record) Clone() *Record {
	c := *r
	c.Days = slices.Clone(r.Days)
	return &c
}

// WorksOn reports whether day is one of the record's working days.
func (r *Record) WorksOn(day string) bool {
	return slices.Contains(r.Days, day)
}
