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

// Package sortedlist implements the static sorted list: a plain sorted
// array over a pairwise non-overlapping interval set, built once and
// searched read-only by binary search. It is the simplest of this
// module's index structures, grounded on the sorted-slice and
// partition conventions of a k-d tree's median-finding helpers
// generalized to one dimension.
package sortedlist

import (
	"sort"

	"github.com/dkortschak/ivtree"
	"github.com/dkortschak/ivtree/sweep"
)

// List is a static sorted array over a non-overlapping interval set.
type List[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	items []I
}

// New returns an empty List.
func New[T ivtree.Ordered[T], I ivtree.Interval[T]]() *List[T, I] {
	return &List[T, I]{}
}

// Build constructs a List from an unsorted sequence of intervals. It
// fails with ErrInvalidInterval on the first malformed interval, or
// ErrOverlap if any two distinct intervals, once sorted, overlap.
func Build[T ivtree.Ordered[T], I ivtree.Interval[T]](items []I) (*List[T, I], error) {
	sorted := append([]I(nil), items...)
	sort.Slice(sorted, func(a, b int) bool { return ivtree.CompareTo[T](sorted[a], sorted[b]) < 0 })
	for _, it := range sorted {
		if err := ivtree.Validate[T](it); err != nil {
			return nil, err
		}
	}
	for i := 1; i < len(sorted); i++ {
		if ivtree.Overlaps[T](sorted[i-1], sorted[i]) {
			return nil, ivtree.ErrOverlap
		}
	}
	return &List[T, I]{items: sorted}, nil
}

func (t *List[T, I]) Size() int   { return len(t.items) }
func (t *List[T, I]) Empty() bool { return len(t.items) == 0 }

// Span returns the smallest interval containing every stored interval.
func (t *List[T, I]) Span() (ivtree.Span[T], error) {
	if len(t.items) == 0 {
		return ivtree.Span[T]{}, ivtree.ErrNoSuchItem
	}
	return ivtree.Join[T](t.items[0], t.items[len(t.items)-1]), nil
}

// Lowest returns the interval with the lowest CompareLow order.
func (t *List[T, I]) Lowest() (I, error) {
	var zero I
	if len(t.items) == 0 {
		return zero, ivtree.ErrNoSuchItem
	}
	return t.items[0], nil
}

// Highest returns the interval(s) tied for the highest CompareHigh
// order; the non-overlapping invariant means this is always exactly
// one interval.
func (t *List[T, I]) Highest() ([]I, error) {
	if len(t.items) == 0 {
		return nil, ivtree.ErrNoSuchItem
	}
	return []I{t.items[len(t.items)-1]}, nil
}

// Sorted yields every stored interval in CompareTo ascending order.
func (t *List[T, I]) Sorted() ivtree.Seq[I] {
	return func(yield func(I) bool) {
		for _, iv := range t.items {
			if !yield(iv) {
				return
			}
		}
	}
}

// firstOverlapIndex returns the index of the first stored interval
// that can overlap query: since the set is non-overlapping and sorted
// by low ascending, high is also non-decreasing, so the smallest
// index whose high reaches query's low bounds the search from the
// left.
func (t *List[T, I]) firstOverlapIndex(query ivtree.Interval[T]) int {
	return sort.Search(len(t.items), func(i int) bool {
		return ivtree.CompareHighLow[T](t.items[i], query) >= 0
	})
}

// FindOverlapsInterval yields every stored interval overlapping query
// in CompareTo ascending order.
func (t *List[T, I]) FindOverlapsInterval(query I) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		for i := t.firstOverlapIndex(query); i < len(t.items); i++ {
			if ivtree.CompareLowHigh[T](t.items[i], query) > 0 {
				return
			}
			if !yield(t.items[i]) {
				return
			}
		}
	}
}

// FindOverlaps yields the single interval containing point, if any;
// the non-overlapping invariant means there is never more than one.
func (t *List[T, I]) FindOverlaps(point T) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		lo, hi := 0, len(t.items)
		for lo < hi {
			mid := (lo + hi) / 2
			switch c := ivtree.ComparePoint[T](point, t.items[mid]); {
			case c < 0:
				hi = mid
			case c > 0:
				lo = mid + 1
			default:
				yield(t.items[mid])
				return
			}
		}
	}
}

// FindOverlap returns the first (only) interval containing point.
func (t *List[T, I]) FindOverlap(point T) (I, bool) {
	var found I
	ok := false
	for iv := range t.FindOverlaps(point) {
		found, ok = iv, true
		break
	}
	return found, ok
}

// FindOverlapInterval returns the first interval overlapping query.
func (t *List[T, I]) FindOverlapInterval(query I) (I, bool) {
	for iv := range t.FindOverlapsInterval(query) {
		return iv, true
	}
	var zero I
	return zero, false
}

// CountOverlaps returns 1 if an interval contains point, else 0.
func (t *List[T, I]) CountOverlaps(point T) int {
	if _, ok := t.FindOverlap(point); ok {
		return 1
	}
	return 0
}

// CountOverlapsInterval counts the stored intervals overlapping query.
func (t *List[T, I]) CountOverlapsInterval(query I) int {
	n := 0
	for range t.FindOverlapsInterval(query) {
		n++
	}
	return n
}

func (t *List[T, I]) asIntervals() []ivtree.Interval[T] {
	out := make([]ivtree.Interval[T], len(t.items))
	for i, iv := range t.items {
		out[i] = iv
	}
	return out
}

// Gaps yields the complement of the stored intervals within Span().
func (t *List[T, I]) Gaps() ivtree.Seq[ivtree.Span[T]] {
	return func(yield func(ivtree.Span[T]) bool) {
		bound, err := t.Span()
		if err != nil {
			return
		}
		for g := range sweep.Gaps[T](bound, t.asIntervals()) {
			if !yield(g) {
				return
			}
		}
	}
}

// FindGaps yields the complement of the stored intervals within query.
func (t *List[T, I]) FindGaps(query I) ivtree.Seq[ivtree.Span[T]] {
	return func(yield func(ivtree.Span[T]) bool) {
		for g := range sweep.Gaps[T](query, t.asIntervals()) {
			if !yield(g) {
				return
			}
		}
	}
}

// MaxDepth is always 1 for a non-empty List and 0 when empty, since
// the pairwise non-overlapping invariant forbids any deeper stacking.
func (t *List[T, I]) MaxDepth() int {
	if len(t.items) == 0 {
		return 0
	}
	return 1
}

// Stab returns the interval containing point as a single-element (or
// empty) slice, for callers that don't need FindOverlaps's laziness.
func (t *List[T, I]) Stab(point T) []I { return ivtree.Collect(t.FindOverlaps(point)) }

// FindOverlapsSorted returns the intervals overlapping query as a
// slice, for callers that don't need FindOverlapsInterval's laziness.
func (t *List[T, I]) FindOverlapsSorted(query I) []I { return ivtree.Collect(t.FindOverlapsInterval(query)) }

// Add always fails: List is built once and is read-only.
func (t *List[T, I]) Add(i I) (bool, error) { return false, ivtree.ErrReadOnly }

// Remove always fails: List is built once and is read-only.
func (t *List[T, I]) Remove(i I) (bool, error) { return false, ivtree.ErrReadOnly }

// Clear always fails: List is built once and is read-only.
func (t *List[T, I]) Clear() error { return ivtree.ErrReadOnly }
