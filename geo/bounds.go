// Package geo provides geographic value types: ordered numeric bounds,
// points on the globe, rectangular globe areas and planar world positions.
// All types are immutable values; operations are pure functions.
package geo

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number covers the numeric types a Bounds can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bounds is an ordered numeric interval with Min <= Max. The constructor
// swaps reversed arguments, so an invalid Bounds cannot be built.
type Bounds[T Number] struct {
	Min T
	Max T
}

// NewBounds builds the interval between a and b, in either order.
func NewBounds[T Number](a, b T) Bounds[T] {
	if b < a {
		a, b = b, a
	}
	return Bounds[T]{Min: a, Max: b}
}

// Size returns the length of the interval.
func (b Bounds[T]) Size() T {
	return b.Max - b.Min
}

// Contains reports whether v lies inside the interval, endpoints included.
func (b Bounds[T]) Contains(v T) bool {
	return v >= b.Min && v <= b.Max
}

// ContainsBounds reports whether other is a subset of b. Equal bounds are
// contained.
func (b Bounds[T]) ContainsBounds(other Bounds[T]) bool {
	return other.Min >= b.Min && other.Max <= b.Max
}

// Overlaps reports whether the open intervals intersect. Bounds that only
// touch at an endpoint do not overlap.
func (b Bounds[T]) Overlaps(other Bounds[T]) bool {
	return other.Min < b.Max && b.Min < other.Max
}

// Clamp returns the nearest in-range value, v itself if already inside.
func (b Bounds[T]) Clamp(v T) T {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

func (b Bounds[T]) String() string {
	return fmt.Sprintf("(%v, %v)", b.Min, b.Max)
}

const numberPattern = `[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`

var boundsRe = regexp.MustCompile(`^\(\s*(` + numberPattern + `)\s*,\s*(` + numberPattern + `)\s*\)$`)

// ParseBounds parses the "(min, max)" form. Reversed values are reordered
// the same way NewBounds does.
func ParseBounds[T Number](s string) (Bounds[T], error) {
	m := boundsRe.FindStringSubmatch(s)
	if m == nil {
		return Bounds[T]{}, errors.Wrapf(ErrFormat, "bounds %q", s)
	}
	lo, err := parseNumber[T](m[1])
	if err != nil {
		return Bounds[T]{}, err
	}
	hi, err := parseNumber[T](m[2])
	if err != nil {
		return Bounds[T]{}, err
	}
	return NewBounds(lo, hi), nil
}

// parseNumber parses s as T. Integer instantiations go through ParseInt so
// fractional input and values beyond the exact float64 range are rejected
// instead of silently truncated.
func parseNumber[T Number](s string) (T, error) {
	if isIntegral[T]() {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrFormat, "number %q", s)
		}
		return T(v), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrFormat, "number %q", s)
	}
	return T(v), nil
}

// isIntegral reports whether T is an integer type: converting 0.5 to an
// integer truncates to zero, while a float keeps it.
func isIntegral[T Number]() bool {
	half := 0.5
	return T(half) == 0
}
