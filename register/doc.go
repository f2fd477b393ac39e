// Package register
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// In-memory employee register with secondary indices by name, department,
// position and direct subordinates. Records are kept in insertion order;
// the indices are maintained incrementally by Add and rebuilt naturally by
// Clone. Lookup misses are reported with sentinel errors, never by growing
// the indices.
//
// The register persists as plain tab-separated lines (one employee per
// line): name, age, department, position, boss, then one column per
// working day. A root employee stores the boss marker "n/a", written to
// disk as an empty column.
package register
