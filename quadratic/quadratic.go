// File: quadratic/quadratic.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Real-root solver for ax^2 + bx + c = 0 with integer coefficients,
// covering the degenerate linear and constant cases.

// Package quadratic solves quadratic equations over the reals and
// pretty-prints the polynomial for display.
package quadratic

import (
	"fmt"
	"math"
	"strconv"
)

// Solve returns the real roots of ax^2 + bx + c = 0, sorted ascending and
// rounded to 6 decimal places. The case ladder:
//
//	a = 0, b = 0, c = 0: every x solves the equation; infinite is true
//	a = 0, b = 0, c != 0: no roots
//	a = 0, b != 0:        one root -c/b
//	D = b^2 - 4ac > 0:    two roots
//	D = 0:                one root -b/(2a)
//	D < 0:                no real roots
func Solve(a, b, c int) (roots []float64, infinite bool) {
	if a == 0 {
		if b == 0 {
			return nil, c == 0
		}
		return []float64{round6(float64(-c) / float64(b))}, false
	}

	d := b*b - 4*a*c
	switch {
	case d == 0:
		return []float64{round6(float64(-b) / float64(2*a))}, false
	case d > 0:
		sqrtD := math.Sqrt(float64(d))
		x1 := round6((float64(-b) + sqrtD) / float64(2*a))
		x2 := round6((float64(-b) - sqrtD) / float64(2*a))
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		return []float64{x1, x2}, false
	default:
		return nil, false
	}
}

// round6 rounds to 6 decimal places and drops the sign of negative zero.
func round6(x float64) float64 {
	r := math.Round(x*1e6) / 1e6
	if r == 0 {
		return 0
	}
	return r
}

// FormatTitle renders the polynomial as a TeX-style plot title, eliding
// zero terms and unit coefficients:
//
//	FormatTitle(5, 10, -1) = "$f(x)=5x^2+10x-1$"
//	FormatTitle(0, -1, 5)  = "$f(x)=-x+5$"
//	FormatTitle(0, 0, 0)   = "$f(x)=0$"
func FormatTitle(a, b, c int) string {
	var aStr, bStr, cStr string
	switch {
	case a == 0:
	case a == 1:
		aStr = "x^2"
	case a == -1:
		aStr = "-x^2"
	default:
		aStr = fmt.Sprintf("%dx^2", a)
	}

	switch {
	case b == 0:
	case b == 1 && aStr != "":
		bStr = "+x"
	case b == 1:
		bStr = "x"
	case b == -1:
		bStr = "-x"
	case aStr != "":
		bStr = fmt.Sprintf("%+dx", b)
	default:
		bStr = fmt.Sprintf("%dx", b)
	}

	switch {
	case aStr == "" && bStr == "":
		cStr = strconv.Itoa(c)
	case c != 0:
		cStr = fmt.Sprintf("%+d", c)
	}
	return "$f(x)=" + aStr + bStr + cStr + "$"
}
