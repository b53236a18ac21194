// SPDX-License-Identifier: MIT

// Package distance defines Distance, the numeric type every shortest-path
// solver in this module reports: either a finite int64 or infinity.
//
// Infinity is a first-class value rather than a sentinel such as
// math.MaxInt64:
//
//   - Infinite() compares greater than every finite value.
//   - Infinite() + anything == Infinite(), whatever the sign of the other operand.
//   - Reading the integer behind Infinite() is an error (Value) or a panic (MustValue).
//
// The zero value of Distance is Infinite(), so freshly allocated tables start
// out "unreached" without explicit initialization.
//
// Finite sums use plain int64 arithmetic; overflow is not checked.
package distance

import (
	"errors"
	"strconv"
)

// ErrInfiniteValueAccess is returned (or panicked with) when the integer value
// of an infinite Distance is requested.
var ErrInfiniteValueAccess = errors.New("distance: value of infinite distance requested")

// Distance is either Finite(v) or Infinite(). It is an immutable value type.
type Distance struct {
	v      int64
	finite bool // false means infinite; keeps the zero value infinite
}

// Finite returns the finite Distance v.
func Finite(v int64) Distance {
	return Distance{v: v, finite: true}
}

// Infinite returns the infinite Distance.
func Infinite() Distance {
	return Distance{}
}

// IsInfinite reports whether d is infinite.
func (d Distance) IsInfinite() bool {
	return !d.finite
}

// Value returns the finite value of d, or ErrInfiniteValueAccess.
func (d Distance) Value() (int64, error) {
	if !d.finite {
		return 0, ErrInfiniteValueAccess
	}

	return d.v, nil
}

// MustValue returns the finite value of d and panics on infinity.
// Use it where finiteness is an invariant of the caller.
func (d Distance) MustValue() int64 {
	if !d.finite {
		panic(ErrInfiniteValueAccess)
	}

	return d.v
}

// Compare returns -1, 0 or +1 depending on whether d is less than, equal to,
// or greater than o. Infinity is the unique maximum.
func (d Distance) Compare(o Distance) int {
	switch {
	case !d.finite && !o.finite:
		return 0
	case !d.finite:
		return 1
	case !o.finite:
		return -1
	case d.v < o.v:
		return -1
	case d.v > o.v:
		return 1
	default:
		return 0
	}
}

// Less reports whether d < o.
func (d Distance) Less(o Distance) bool {
	return d.Compare(o) < 0
}

// Equal reports whether d and o carry the same tag and, if finite, the same value.
func (d Distance) Equal(o Distance) bool {
	return d.Compare(o) == 0
}

// Add returns d + o. Infinity absorbs.
func (d Distance) Add(o Distance) Distance {
	if !d.finite || !o.finite {
		return Infinite()
	}

	return Finite(d.v + o.v)
}

// AddWeight returns d + w. Infinity absorbs, so a negative w never turns an
// infinite distance finite.
func (d Distance) AddWeight(w int64) Distance {
	if !d.finite {
		return d
	}

	return Finite(d.v + w)
}

// String renders d as its integer value or "inf".
func (d Distance) String() string {
	if !d.finite {
		return "inf"
	}

	return strconv.FormatInt(d.v, 10)
}

// Min returns the smaller of a and b.
func Min(a, b Distance) Distance {
	if b.Less(a) {
		return b
	}

	return a
}
