package fxp

import (
	"fmt"
	"strconv"
)

// ByteDiff records one differing offset between two buffers.
type ByteDiff struct {
	Offset int
	A, B   byte
	Delta  int // A - B
}

// DiffReport is the result of a bounded byte comparison.
type DiffReport struct {
	Diffs    []ByteDiff
	Compared int // bytes actually compared: min(window, len(a), len(b))
	LenA     int
	LenB     int
}

// Identical reports whether the compared window held no differences.
func (r *DiffReport) Identical() bool {
	return len(r.Diffs) == 0
}

// Compare diffs the first window bytes of a and b, in ascending offset
// order. The window silently shrinks to the shorter buffer; a window of
// zero or less compares nothing.
func Compare(a, b []byte, window int) *DiffReport {
	r := &DiffReport{LenA: len(a), LenB: len(b)}
	if window <= 0 {
		return r
	}

	n := window
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	r.Compared = n

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			r.Diffs = append(r.Diffs, ByteDiff{
				Offset: i,
				A:      a[i],
				B:      b[i],
				Delta:  int(a[i]) - int(b[i]),
			})
		}
	}
	return r
}

// ParseWindow parses a caller-supplied comparison window. Anything that is
// not a well-formed non-negative integer is rejected before any comparison
// work begins.
func ParseWindow(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: comparison window %q", ErrInvalidArgument, s)
	}
	return n, nil
}
