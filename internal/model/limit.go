package model

import "strconv"

// Limit caps the number of suggestions. The zero value is unbounded.
type Limit struct {
	bounded bool
	n       int
}

// Unbounded returns a limit that keeps every suggestion.
func Unbounded() Limit {
	return Limit{}
}

// Bounded returns a limit of n suggestions. Negative values are clamped to 0.
func Bounded(n int) Limit {
	if n < 0 {
		n = 0
	}

	return Limit{bounded: true, n: n}
}

// IsBounded reports whether the limit caps the output.
func (l Limit) IsBounded() bool {
	return l.bounded
}

// Value returns the cap and whether it is set.
func (l Limit) Value() (int, bool) {
	return l.n, l.bounded
}

// Apply returns how many of total items to keep.
func (l Limit) Apply(total int) int {
	if !l.bounded || l.n > total {
		return total
	}

	return l.n
}

func (l Limit) String() string {
	if !l.bounded {
		return "unbounded"
	}

	return strconv.Itoa(l.n)
}
