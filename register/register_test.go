// File: register/register_test.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package register_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/andrewha/mds2022/register"
)

// staff builds the register used across the tests:
//
//	Ada (root) -> Alan, Grace, John; John -> Edsger
func staff(t *testing.T) *register.Register {
	t.Helper()

	reg := register.New()
	records := []*register.Record{
		{Name: "Ada Lovelace", Age: 36, Dept: "R&D", Position: "Head", Boss: "", Days: []string{"Mon", "Tue", "Wed", "Thu", "Fri"}},
		{Name: "Alan Turing", Age: 41, Dept: "R&D", Position: "Dev", Boss: "Ada Lovelace", Days: []string{"Mon", "Wed", "Fri"}},
		{Name: "Grace Hopper", Age: 45, Dept: "R&D", Position: "Dev", Boss: "Ada Lovelace", Days: []string{"Tue", "Thu"}},
		{Name: "John von Neumann", Age: 53, Dept: "Ops", Position: "Admin", Boss: "Ada Lovelace", Days: []string{"Mon", "Tue"}},
		{Name: "Edsger Dijkstra", Age: 42, Dept: "Ops", Position: "Admin", Boss: "John von Neumann", Days: []string{"Sat"}},
	}
	for _, rec := range records {
		if err := reg.Add(rec); err != nil {
			t.Fatalf("Add(%s) = %v", rec.Name, err)
		}
	}
	return reg
}

func names(recs []*register.Record) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Name
	}
	return out
}

func TestAddValidation(t *testing.T) {
	reg := staff(t)
	c := qt.New(t)

	c.Assert(reg.Len(), qt.Equals, 5)

	err := reg.Add(&register.Record{Name: "Alan Turing", Age: 30})
	c.Assert(errors.Is(err, register.ErrDuplicateName), qt.Equals, true)
	c.Assert(reg.Len(), qt.Equals, 5)

	err = reg.Add(&register.Record{Name: "", Age: 30})
	c.Assert(errors.Is(err, register.ErrEmptyName), qt.Equals, true)
}

func TestAddNormalizesEmptyBoss(t *testing.T) {
	reg := register.New()
	if err := reg.Add(&register.Record{Name: "Solo", Age: 30}); err != nil {
		t.Fatal(err)
	}
	rec, err := reg.ByName("Solo")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Boss != register.RootBoss {
		t.Errorf("Boss = %q; want %q", rec.Boss, register.RootBoss)
	}
}

func TestByName(t *testing.T) {
	reg := staff(t)
	c := qt.New(t)

	rec, err := reg.ByName("Grace Hopper")
	c.Assert(err, qt.IsNil)
	c.Assert(rec.Age, qt.Equals, 45)
	c.Assert(rec.Dept, qt.Equals, "R&D")

	_, err = reg.ByName("Nobody")
	c.Assert(errors.Is(err, register.ErrNameNotFound), qt.Equals, true)
}

func TestByDeptAndPosition(t *testing.T) {
	reg := staff(t)
	c := qt.New(t)

	rd, err := reg.ByDept("R&D")
	c.Assert(err, qt.IsNil)
	c.Assert(names(rd), qt.DeepEquals, []string{"Ada Lovelace", "Alan Turing", "Grace Hopper"})

	_, err = reg.ByDept("Sales")
	c.Assert(errors.Is(err, register.ErrDeptNotFound), qt.Equals, true)

	admins, err := reg.ByPosition("Admin")
	c.Assert(err, qt.IsNil)
	c.Assert(names(admins), qt.DeepEquals, []string{"John von Neumann", "Edsger Dijkstra"})

	_, err = reg.ByPosition("Intern")
	c.Assert(errors.Is(err, register.ErrPositionNotFound), qt.Equals, true)

	c.Assert(reg.Depts(), qt.DeepEquals, []string{"Ops", "R&D"})
	c.Assert(reg.Positions(), qt.DeepEquals, []string{"Admin", "Dev", "Head"})
}

func TestByAgeRangeInclusive(t *testing.T) {
	reg := staff(t)
	c := qt.New(t)

	c.Assert(names(reg.ByAgeRange(41, 45)), qt.DeepEquals,
		[]string{"Alan Turing", "Grace Hopper", "Edsger Dijkstra"})
	// Bounds are inclusive on both ends.
	c.Assert(names(reg.ByAgeRange(36, 36)), qt.DeepEquals, []string{"Ada Lovelace"})
	c.Assert(reg.ByAgeRange(60, 70), qt.HasLen, 0)
}

func TestByWorkdays(t *testing.T) {
	reg := staff(t)
	c := qt.New(t)

	// An employee matching several requested days appears exactly once.
	mondayTuesday := reg.ByWorkdays("Mon", "Tue")
	c.Assert(names(mondayTuesday), qt.DeepEquals,
		[]string{"Ada Lovelace", "Alan Turing", "Grace Hopper", "John von Neumann"})

	c.Assert(names(reg.ByWorkdays("Sat")), qt.DeepEquals, []string{"Edsger Dijkstra"})
	c.Assert(reg.ByWorkdays("Sun"), qt.HasLen, 0)
	c.Assert(reg.ByWorkdays(), qt.HasLen, 0)
}

func TestSubordinates(t *testing.T) {
	reg := staff(t)
	c := qt.New(t)

	direct, err := reg.Subordinates("Ada Lovelace")
	c.Assert(err, qt.IsNil)
	c.Assert(direct, qt.DeepEquals, []string{"Alan Turing", "Grace Hopper", "John von Neumann"})

	top, err := reg.Subordinates(register.RootBoss)
	c.Assert(err, qt.IsNil)
	c.Assert(top, qt.DeepEquals, []string{"Ada Lovelace"})

	_, err = reg.Subordinates("Grace Hopper")
	c.Assert(errors.Is(err, register.ErrNoSubordinates), qt.Equals, true)
}

func TestWalkOrgChart(t *testing.T) {
	reg := staff(t)
	c := qt.New(t)

	type visit struct {
		Name  string
		Depth int
	}
	var visits []visit
	err := reg.WalkOrgChart(register.RootBoss, func(name string, depth int) {
		visits = append(visits, visit{name, depth})
	})
	c.Assert(err, qt.IsNil)
	c.Assert(visits, qt.DeepEquals, []visit{
		{register.RootBoss, 0},
		{"Ada Lovelace", 1},
		{"Alan Turing", 2},
		{"Grace Hopper", 2},
		{"John von Neumann", 2},
		{"Edsger Dijkstra", 3},
	})

	// Walking from a mid-level boss covers only their subtree.
	visits = nil
	err = reg.WalkOrgChart("John von Neumann", func(name string, depth int) {
		visits = append(visits, visit{name, depth})
	})
	c.Assert(err, qt.IsNil)
	c.Assert(visits, qt.DeepEquals, []visit{
		{"John von Neumann", 0},
		{"Edsger Dijkstra", 1},
	})

	err = reg.WalkOrgChart("Nobody", func(string, int) {})
	c.Assert(errors.Is(err, register.ErrNameNotFound), qt.Equals, true)
}

func TestWalkOrgChartSurvivesCycles(t *testing.T) {
	reg := register.New()
	reg.Add(&register.Record{Name: "A", Age: 1, Boss: "B"})
	reg.Add(&register.Record{Name: "B", Age: 2, Boss: "A"})

	count := 0
	if err := reg.WalkOrgChart("A", func(string, int) { count++ }); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("visited %d employees in a 2-cycle; want 2", count)
	}
}

func TestCloneIndependence(t *testing.T) {
	reg := staff(t)
	cp := reg.Clone()
	c := qt.New(t)

	c.Assert(cp.Len(), qt.Equals, reg.Len())

	// New records in the source never appear in the clone.
	reg.Add(&register.Record{Name: "Donald Knuth", Age: 40, Dept: "R&D", Position: "Dev", Boss: "Ada Lovelace"})
	c.Assert(cp.Len(), qt.Equals, 5)
	_, err := cp.ByName("Donald Knuth")
	c.Assert(errors.Is(err, register.ErrNameNotFound), qt.Equals, true)

	// Mutating a source record never shows through the clone's copy.
	rec, err := reg.ByName("Alan Turing")
	c.Assert(err, qt.IsNil)
	rec.Days[0] = "Sun"
	cloned, err := cp.ByName("Alan Turing")
	c.Assert(err, qt.IsNil)
	c.Assert(cloned.Days[0], qt.Equals, "Mon")

	// And clearing the clone leaves the source intact.
	cp.Clear()
	c.Assert(cp.Len(), qt.Equals, 0)
	c.Assert(reg.Len(), qt.Equals, 6)
}

func TestClear(t *testing.T) {
	reg := staff(t)
	reg.Clear()
	c := qt.New(t)

	c.Assert(reg.Len(), qt.Equals, 0)
	c.Assert(reg.All(), qt.HasLen, 0)
	_, err := reg.ByName("Ada Lovelace")
	c.Assert(errors.Is(err, register.ErrNameNotFound), qt.Equals, true)
	_, err = reg.Subordinates(register.RootBoss)
	c.Assert(errors.Is(err, register.ErrNoSubordinates), qt.Equals, true)

	// Names freed by Clear can be registered again.
	c.Assert(reg.Add(&register.Record{Name: "Ada Lovelace", Age: 37}), qt.IsNil)
}
