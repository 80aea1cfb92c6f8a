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

import "iter"

// Seq is a lazy, pull-based sequence of intervals. Every producer in
// this module is re-startable from a fresh call but must not be
// resumed mid-flight; mutating the source collection while a Seq is in
// flight is undefined.
type Seq[I any] iter.Seq[I]

// Collect drains s into a slice, for callers that want an eager result
// rather than a pull iterator. Every index type in this module exposes
// Stab and FindOverlapsSorted, built on Collect over FindOverlaps and
// FindOverlapsInterval respectively.
func Collect[I any](s Seq[I]) []I {
	var out []I
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Collection is the surface every index structure in this module
// exposes. Point and interval queries, gap enumeration, and span are
// pure reads; Add/Remove/Clear are rejected with ErrReadOnly by
// structures that do not support mutation (the static layered and
// sorted-list structures).
type Collection[T Ordered[T], I Interval[T]] interface {
	// Size returns the number of stored intervals.
	Size() int
	// Empty reports whether the collection holds no intervals.
	Empty() bool

	// Span returns the smallest interval containing every stored
	// interval. It fails with ErrNoSuchItem when empty.
	Span() (Span[T], error)
	// Lowest returns one interval with the lowest CompareLow order
	// (the first in CompareTo order). It fails with ErrNoSuchItem when
	// empty.
	Lowest() (I, error)
	// Highest returns the interval(s) tied for the highest
	// CompareHigh order. It fails with ErrNoSuchItem when empty.
	Highest() ([]I, error)

	// Sorted yields every stored interval in CompareTo ascending
	// order.
	Sorted() Seq[I]

	// FindOverlaps yields every stored interval containing point.
	FindOverlaps(point T) Seq[I]
	// FindOverlapsInterval yields every stored interval overlapping
	// query.
	FindOverlapsInterval(query I) Seq[I]
	// FindOverlap returns the first interval containing point, if
	// any.
	FindOverlap(point T) (I, bool)
	// FindOverlapInterval returns the first interval overlapping
	// query, if any.
	FindOverlapInterval(query I) (I, bool)
	// CountOverlaps returns the number of stored intervals containing
	// point.
	CountOverlaps(point T) int
	// CountOverlapsInterval returns the number of stored intervals
	// overlapping query.
	CountOverlapsInterval(query I) int

	// Gaps yields the complement of the stored intervals within
	// Span().
	Gaps() Seq[Span[T]]
	// FindGaps yields the complement of the stored intervals within
	// query.
	FindGaps(query I) Seq[Span[T]]

	// MaxDepth returns the maximum number of stored intervals
	// simultaneously overlapping at any single point.
	MaxDepth() int

	// Add inserts i. It returns false without error if i was already
	// present (by the structure's duplicate policy); it fails with
	// ErrReadOnly on a read-only structure.
	Add(i I) (bool, error)
	// Remove deletes one stored interval equal to i under
	// IntervalEquals; matching is by value, not by reference identity.
	// It returns false if no such interval is present; it fails with
	// ErrReadOnly on a read-only structure.
	Remove(i I) (bool, error)
	// Clear empties the collection. It fails with ErrReadOnly on a
	// read-only structure.
	Clear() error
}
