// File: register/tsv.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Tab-separated persistence. Line layout: name, age, department, position,
// boss, then one column per working day. The RootBoss marker round-trips
// as an empty boss column. Day columns are split on any whitespace when
// reading, so space-separated day lists load as well.

package register

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read parses tab-separated employee lines into a fresh register.
// Blank lines are skipped; malformed lines fail with their line number.
func Read(r io.Reader) (*Register, error) {
	reg := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 5 {
			return nil, fmt.Errorf("register: line %d: want at least 5 tab-separated fields, got %d", lineNo, len(fields))
		}
		age, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("register: line %d: invalid age %q", lineNo, fields[1])
		}

		rec := &Record{
			Name:     fields[0],
			Age:      age,
			Dept:     fields[2],
			Position: fields[3],
			Boss:     fields[4],
			Days:     strings.Fields(strings.Join(fields[5:], "\t")),
		}
		if err := reg.Add(rec); err != nil {
			return nil, fmt.Errorf("register: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("register: read: %w", err)
	}
	return reg, nil
}

// WriteTSV writes the records in insertion order, one line per employee.
func (g *Register) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, rec := range g.records {
		boss := rec.Boss
		if boss == RootBoss {
			boss = ""
		}
		fields := append([]string{
			rec.Name,
			strconv.Itoa(rec.Age),
			rec.Dept,
			rec.Position,
			boss,
		}, rec.Days...)
		if _, err := bw.WriteString(strings.Join(fields, "\t")); err != nil {
			return fmt.Errorf("register: write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("register: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("register: write: %w", err)
	}
	return nil
}

// LoadFile reads a register from the file at path.
func LoadFile(path string) (*Register, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// SaveFile writes the register to the file at path, replacing it.
func (g *Register) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err := g.WriteTSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
