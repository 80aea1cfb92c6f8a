// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package ivtree

// Ordered is the capability an endpoint domain must provide: a total
// order over its own values.
//
// Given c = a.Compare(b):
//
//	c < 0 if a < b;
//	c == 0 if a == b; and
//	c > 0 if a > b.
type Ordered[T any] interface {
	Compare(other T) int
}

// Interval is the capability a value stored in an index must provide.
// An interval is valid when Low() < High(), or Low() == High() with
// both LowIncluded() and HighIncluded() true (a degenerate point
// interval). Indexes never mutate a stored Interval; Remove matches a
// stored interval by value (IntervalEquals), not by reference.
//
// The algebra below (CompareLow, Overlaps, Contains, ...) takes Interval
// values directly, rather than being parameterized on a single concrete
// implementation, so a stored interval of one concrete type can be
// compared against a query or derived Span of another.
type Interval[T Ordered[T]] interface {
	Low() T
	High() T
	LowIncluded() bool
	HighIncluded() bool
}

// Span is a concrete, immutable Interval implementation. It is used
// internally by every index for derived intervals (the collection's
// overall span, a subtree span, a gap), and is a convenient type for
// callers who do not want to define their own Interval.
type Span[T Ordered[T]] struct {
	low, high                 T
	lowIncluded, highIncluded bool
}

// NewSpan constructs a Span, validating it per the Interval contract.
// It returns ErrInvalidInterval if low > high, or low == high with
// either endpoint excluded.
func NewSpan[T Ordered[T]](low, high T, lowIncluded, highIncluded bool) (Span[T], error) {
	s := Span[T]{low, high, lowIncluded, highIncluded}
	if err := Validate[T](s); err != nil {
		return Span[T]{}, err
	}
	return s, nil
}

// Validate reports ErrInvalidInterval if i does not conform to the
// interval contract: low < high, or low == high with both ends
// included.
func Validate[T Ordered[T]](i Interval[T]) error {
	c := i.Low().Compare(i.High())
	switch {
	case c > 0:
		return ErrInvalidInterval
	case c == 0 && !(i.LowIncluded() && i.HighIncluded()):
		return ErrInvalidInterval
	}
	return nil
}

func (s Span[T]) Low() T             { return s.low }
func (s Span[T]) High() T            { return s.high }
func (s Span[T]) LowIncluded() bool  { return s.lowIncluded }
func (s Span[T]) HighIncluded() bool { return s.highIncluded }

// CompareLow compares a.Low() to b.Low(). On equal endpoint values, an
// included low sorts before an excluded low.
func CompareLow[T Ordered[T]](a, b Interval[T]) int {
	if c := a.Low().Compare(b.Low()); c != 0 {
		return c
	}
	switch {
	case a.LowIncluded() == b.LowIncluded():
		return 0
	case a.LowIncluded():
		return -1
	default:
		return 1
	}
}

// CompareHigh compares a.High() to b.High(). On equal endpoint values,
// an excluded high sorts before an included high.
func CompareHigh[T Ordered[T]](a, b Interval[T]) int {
	if c := a.High().Compare(b.High()); c != 0 {
		return c
	}
	switch {
	case a.HighIncluded() == b.HighIncluded():
		return 0
	case !a.HighIncluded():
		return -1
	default:
		return 1
	}
}

// CompareLowHigh compares a.Low() to b.High(). Equal values are
// "touching": they compare equal iff both sides are included,
// otherwise a.Low() is considered after b.High().
func CompareLowHigh[T Ordered[T]](a, b Interval[T]) int {
	if c := a.Low().Compare(b.High()); c != 0 {
		return c
	}
	if a.LowIncluded() && b.HighIncluded() {
		return 0
	}
	return 1
}

// CompareHighLow compares a.High() to b.Low(), the mirror image of
// CompareLowHigh: equal values compare equal iff both sides are
// included, otherwise a.High() is considered before b.Low().
func CompareHighLow[T Ordered[T]](a, b Interval[T]) int {
	if c := a.High().Compare(b.Low()); c != 0 {
		return c
	}
	if a.HighIncluded() && b.LowIncluded() {
		return 0
	}
	return -1
}

// CompareTo is the canonical sort order for intervals: by low
// ascending, breaking ties by high ascending (shortest interval
// first).
func CompareTo[T Ordered[T]](a, b Interval[T]) int {
	if c := CompareLow[T](a, b); c != 0 {
		return c
	}
	return CompareHigh[T](a, b)
}

// Overlaps reports whether a and b share at least one point, including
// touching at a shared included endpoint.
func Overlaps[T Ordered[T]](a, b Interval[T]) bool {
	return CompareLowHigh[T](a, b) <= 0 && CompareLowHigh[T](b, a) <= 0
}

// Contains reports whether a covers every point of b, possibly sharing
// endpoints.
func Contains[T Ordered[T]](a, b Interval[T]) bool {
	return CompareLow[T](a, b) <= 0 && CompareHigh[T](b, a) <= 0
}

// StrictlyContains reports whether a covers every point of b without
// sharing either endpoint.
func StrictlyContains[T Ordered[T]](a, b Interval[T]) bool {
	return CompareLow[T](a, b) < 0 && CompareHigh[T](b, a) < 0
}

// IntervalEquals reports whether a and b describe the same set of
// points: equal low, equal high, and matching inclusion flags. It does
// not compare reference identity.
func IntervalEquals[T Ordered[T]](a, b Interval[T]) bool {
	return a.Low().Compare(b.Low()) == 0 && a.High().Compare(b.High()) == 0 &&
		a.LowIncluded() == b.LowIncluded() && a.HighIncluded() == b.HighIncluded()
}

// Join returns the smallest Span containing both a and b.
func Join[T Ordered[T]](a, b Interval[T]) Span[T] {
	low, lowIncl := a.Low(), a.LowIncluded()
	if c := b.Low().Compare(a.Low()); c < 0 || (c == 0 && b.LowIncluded()) {
		low, lowIncl = b.Low(), b.LowIncluded()
	}
	high, highIncl := a.High(), a.HighIncluded()
	if c := b.High().Compare(a.High()); c > 0 || (c == 0 && b.HighIncluded()) {
		high, highIncl = b.High(), b.HighIncluded()
	}
	return Span[T]{low, high, lowIncl, highIncl}
}

// ComparePoint compares point p to i's position: -1 if p < i.Low()
// (accounting for inclusion), 0 if p lies within [i.Low(), i.High()]
// per i's inclusion flags, 1 if p > i.High().
func ComparePoint[T Ordered[T]](p T, i Interval[T]) int {
	if c := p.Compare(i.Low()); c < 0 || (c == 0 && !i.LowIncluded()) {
		return -1
	}
	if c := p.Compare(i.High()); c > 0 || (c == 0 && !i.HighIncluded()) {
		return 1
	}
	return 0
}
