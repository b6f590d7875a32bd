package indicator

import (
	"github.com/moznion/go-optional"
)

// Series is a derived indicator column aligned 1:1 by position with the
// price series it was computed from. Positions without enough history to
// compute a value are None, never a zero default.
type Series []optional.Option[float64]

// NewSeries returns a series of length n with every position undefined.
func NewSeries(n int) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = optional.None[float64]()
	}

	return s
}

// FromValues returns a series where every position is defined.
func FromValues(values []float64) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = optional.Some(v)
	}

	return s
}

// Len returns the number of positions in the series.
func (s Series) Len() int {
	return len(s)
}

// Defined reports whether position i holds a value.
func (s Series) Defined(i int) bool {
	return i >= 0 && i < len(s) && s[i].IsSome()
}

// Value returns the value at position i and whether it is defined.
func (s Series) Value(i int) (float64, bool) {
	if !s.Defined(i) {
		return 0, false
	}

	return s[i].Unwrap(), true
}

// LastDefined returns the most recent defined value, scanning backwards.
func (s Series) LastDefined() (float64, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].IsSome() {
			return s[i].Unwrap(), true
		}
	}

	return 0, false
}

// DefinedCount returns the number of defined positions.
func (s Series) DefinedCount() int {
	count := 0

	for _, v := range s {
		if v.IsSome() {
			count++
		}
	}

	return count
}
