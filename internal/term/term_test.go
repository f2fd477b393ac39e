// File: internal/term/term_test.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package term

import (
	"os"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestPipeIsNotATerminal(t *testing.T) {
	c := qt.New(t)

	r, w, err := os.Pipe()
	c.Assert(err, qt.IsNil)
	defer r.Close()
	defer w.Close()

	c.Assert(IsTerminal(w), qt.IsFalse)
}

func TestPainterDisabledPassesThrough(t *testing.T) {
	c := qt.New(t)

	p := &Painter{enabled: false}
	c.Assert(p.Paint(Red, "fail"), qt.Equals, "fail")
}

func TestPainterEnabledWrapsWithReset(t *testing.T) {
	c := qt.New(t)

	p := &Painter{enabled: true}
	got := p.Paint(Green, "pass")

	c.Assert(strings.HasPrefix(got, Green), qt.IsTrue)
	c.Assert(strings.HasSuffix(got, Reset), qt.IsTrue)
	c.Assert(strings.Contains(got, "pass"), qt.IsTrue)
}

func TestNewPainterOnPipeDisablesColor(t *testing.T) {
	c := qt.New(t)

	r, w, err := os.Pipe()
	c.Assert(err, qt.IsNil)
	defer r.Close()
	defer w.Close()

	p := NewPainter(w)
	c.Assert(p.Paint(Yellow, "warn"), qt.Equals, "warn")
}
