// File: register/register.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Register storage and the four secondary indices. Records live in one
// insertion-ordered slice; every index points back into it, so Clone
// rebuilds the indices simply by re-adding cloned records.

package register

import (
	"fmt"
	"slices"
)

// Register holds employee records and their lookup indices.
type Register struct {
	records []*Record
	byName  map[string]*Record
	byDept  map[string][]*Record
	byPos   map[string][]*Record
	subords map[string][]string // boss name -> direct subordinate names
}

// New returns an empty register.
func New() *Register {
	return &Register{
		byName:  make(map[string]*Record),
		byDept:  make(map[string][]*Record),
		byPos:   make(map[string][]*Record),
		subords: make(map[string][]string),
	}
}

// Len returns the number of registered employees.
func (g *Register) Len() int { return len(g.records) }

// Add registers rec and indexes it by name, department, position and boss.
// An empty Boss field is normalized to RootBoss. The register owns rec
// afterwards; callers must not modify it.
func (g *Register) Add(rec *Record) error {
	if rec.Name == "" {
		return ErrEmptyName
	}
	if _, ok := g.byName[rec.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, rec.Name)
	}
	if rec.Boss == "" {
		rec.Boss = RootBoss
	}

	g.records = append(g.records, rec)
	g.byName[rec.Name] = rec
	g.byDept[rec.Dept] = append(g.byDept[rec.Dept], rec)
	g.byPos[rec.Position] = append(g.byPos[rec.Position], rec)
	g.subords[rec.Boss] = append(g.subords[rec.Boss], rec.Name)
	return nil
}

// All returns the records in insertion order. The slice is the caller's;
// the records are still the register's.
func (g *Register) All() []*Record {
	return slices.Clone(g.records)
}

// ByName returns the record registered under name.
func (g *Register) ByName(name string) (*Record, error) {
	rec, ok := g.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return rec, nil
}

// ByDept returns every employee of the given department, in insertion order.
func (g *Register) ByDept(dept string) ([]*Record, error) {
	recs, ok := g.byDept[dept]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDeptNotFound, dept)
	}
	return slices.Clone(recs), nil
}

// ByPosition returns every employee with the given position, in insertion
// order.
func (g *Register) ByPosition(pos string) ([]*Record, error) {
	recs, ok := g.byPos[pos]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPositionNotFound, pos)
	}
	return slices.Clone(recs), nil
}

// ByAgeRange returns every employee aged between lo and hi inclusive,
// in insertion order.
func (g *Register) ByAgeRange(lo, hi int) []*Record {
	var recs []*Record
	for _, rec := range g.records {
		if lo <= rec.Age && rec.Age <= hi {
			recs = append(recs, rec)
		}
	}
	return recs
}

// ByWorkdays returns every employee working on at least one of the given
// days. Each employee appears once, in insertion order.
func (g *Register) ByWorkdays(days ...string) []*Record {
	var recs []*Record
	for _, rec := range g.records {
		for _, day := range days {
			if rec.WorksOn(day) {
				recs = append(recs, rec)
				break
			}
		}
	}
	return recs
}

// Subordinates returns the names of the employees reporting directly to
// boss, in registration order. Pass RootBoss for the top of the chart.
func (g *Register) Subordinates(boss string) ([]string, error) {
	names, ok := g.subords[boss]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSubordinates, boss)
	}
	return slices.Clone(names), nil
}

// Depts returns the department index keys, sorted.
func (g *Register) Depts() []string { return sortedKeys(g.byDept) }

// Positions returns the position index keys, sorted.
func (g *Register) Positions() []string { return sortedKeys(g.byPos) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// WalkOrgChart traverses the reporting tree below root in depth-first
// order, calling fn with each employee name and its depth; root itself is
// reported at depth 0. Root must be a registered name or a boss with
// direct subordinates (RootBoss walks the whole chart). A visited set
// guards against reporting cycles in corrupt data.
func (g *Register) WalkOrgChart(root string, fn func(name string, depth int)) error {
	_, known := g.byName[root]
	if _, isBoss := g.subords[root]; !known && !isBoss {
		return fmt.Errorf("%w: %q", ErrNameNotFound, root)
	}
	fn(root, 0)
	visited := map[string]bool{root: true}
	g.walk(root, 1, visited, fn)
	return nil
}

func (g *Register) walk(boss string, depth int, visited map[string]bool, fn func(string, int)) {
	for _, name := range g.subords[boss] {
		if visited[name] {
			continue
		}
		visited[name] = true
		fn(name, depth)
		g.walk(name, depth+1, visited, fn)
	}
}

// Clone returns a deep copy: records are cloned and the indices rebuilt,
// so later changes to either register never show through the other.
func (g *Register) Clone() *Register {
	c := New()
	for _, rec := range g.records {
		// Re-adding cannot fail: names were unique in the source.
		c.Add(rec.Clone())
	}
	return c
}

// Clear removes every record and index entry, returning the register to
// its freshly constructed state.
func (g *Register) Clear() {
	g.records = nil
	clear(g.byName)
	clear(g.byDept)
	clear(g.byPos)
	clear(g.subords)
}
