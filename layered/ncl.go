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

package layered

import (
	"sort"

	"github.com/dkortschak/ivtree"
	"github.com/dkortschak/ivtree/sweep"
)

// node is one occupant of the Nested Containment List's parent/child
// tree: the stored interval plus every interval strictly contained in
// it, themselves nested the same way.
type node[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	item     I
	children []node[T, I]
}

// materialize converts the flat, index-linked layer arrays built by
// buildLayers into the explicit node tree NCL exposes, recursing the
// same layer/child-range bookkeeping List uses internally.
func materialize[T ivtree.Ordered[T], I ivtree.Interval[T]](layers [][]entry[T, I], layer, start, end int) []node[T, I] {
	if layer >= len(layers) || start >= end {
		return nil
	}
	out := make([]node[T, I], 0, end-start)
	for idx := start; idx < end; idx++ {
		e := layers[layer][idx]
		cs, ce := childRange[T, I](layers, layer, idx, end)
		out = append(out, node[T, I]{item: e.item, children: materialize[T, I](layers, layer+1, cs, ce)})
	}
	return out
}

func overlapBoundsNodes[T ivtree.Ordered[T], I ivtree.Interval[T]](nodes []node[T, I], query ivtree.Interval[T]) (first, last int) {
	first = sort.Search(len(nodes), func(i int) bool {
		return ivtree.CompareHighLow[T](nodes[i].item, query) >= 0
	})
	last = sort.Search(len(nodes), func(i int) bool {
		return ivtree.CompareLowHigh[T](nodes[i].item, query) > 0
	})
	if last < first {
		last = first
	}
	return first, last
}

func walkNodes[T ivtree.Ordered[T], I ivtree.Interval[T]](nodes []node[T, I], query ivtree.Interval[T], yield func(I) bool) bool {
	first, last := overlapBoundsNodes[T, I](nodes, query)
	for i := first; i < last; i++ {
		n := nodes[i]
		if ivtree.Overlaps[T](n.item, query) {
			if !yield(n.item) {
				return false
			}
		}
		if !walkNodes[T, I](n.children, query, yield) {
			return false
		}
	}
	return true
}

// Tree is a Nested Containment List: the same layering as List, but
// materialized as an explicit parent/child node tree rather than flat
// arrays linked by index.
type Tree[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	items []I
	roots []node[T, I]
}

// NewTree returns an empty Tree.
func NewTree[T ivtree.Ordered[T], I ivtree.Interval[T]]() *Tree[T, I] {
	return &Tree[T, I]{}
}

// BuildTree constructs a Tree from an unsorted sequence of intervals.
func BuildTree[T ivtree.Ordered[T], I ivtree.Interval[T]](items []I) (*Tree[T, I], error) {
	sorted, layers, err := buildLayers[T, I](items)
	if err != nil {
		return nil, err
	}
	var roots []node[T, I]
	if len(layers) > 0 {
		roots = materialize[T, I](layers, 0, 0, len(layers[0]))
	}
	return &Tree[T, I]{items: sorted, roots: roots}, nil
}

func (t *Tree[T, I]) Size() int   { return len(t.items) }
func (t *Tree[T, I]) Empty() bool { return len(t.items) == 0 }

// Span returns the smallest interval containing every stored interval.
func (t *Tree[T, I]) Span() (ivtree.Span[T], error) {
	if len(t.items) == 0 {
		return ivtree.Span[T]{}, ivtree.ErrNoSuchItem
	}
	span := ivtree.Join[T](t.items[0], t.items[0])
	for _, iv := range t.items[1:] {
		span = ivtree.Join[T](span, iv)
	}
	return span, nil
}

// Lowest returns the interval with the lowest CompareLow order.
func (t *Tree[T, I]) Lowest() (I, error) {
	var zero I
	if len(t.items) == 0 {
		return zero, ivtree.ErrNoSuchItem
	}
	return t.items[0], nil
}

// Highest returns every interval tied for the highest CompareHigh
// order.
func (t *Tree[T, I]) Highest() ([]I, error) {
	if len(t.items) == 0 {
		return nil, ivtree.ErrNoSuchItem
	}
	sorted := append([]I(nil), t.items...)
	sort.Slice(sorted, func(a, b int) bool { return ivtree.CompareHigh[T](sorted[a], sorted[b]) < 0 })
	best := sorted[len(sorted)-1]
	var out []I
	for _, iv := range sorted {
		if ivtree.CompareHigh[T](iv, best) == 0 {
			out = append(out, iv)
		}
	}
	return out, nil
}

// Sorted yields every stored interval in CompareTo ascending order.
func (t *Tree[T, I]) Sorted() ivtree.Seq[I] {
	return func(yield func(I) bool) {
		for _, iv := range t.items {
			if !yield(iv) {
				return
			}
		}
	}
}

// FindOverlapsInterval yields every stored interval overlapping query,
// in CompareTo ascending order, by descending the parent/child tree.
func (t *Tree[T, I]) FindOverlapsInterval(query I) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		walkNodes[T, I](t.roots, query, yield)
	}
}

// FindOverlaps yields every stored interval containing point.
func (t *Tree[T, I]) FindOverlaps(point T) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		walkNodes[T, I](t.roots, probe[T]{at: point}, yield)
	}
}

// FindOverlap returns the first interval containing point, if any.
func (t *Tree[T, I]) FindOverlap(point T) (I, bool) {
	var found I
	ok := false
	for iv := range t.FindOverlaps(point) {
		found, ok = iv, true
		break
	}
	return found, ok
}

// FindOverlapInterval returns the first interval overlapping query.
func (t *Tree[T, I]) FindOverlapInterval(query I) (I, bool) {
	for iv := range t.FindOverlapsInterval(query) {
		return iv, true
	}
	var zero I
	return zero, false
}

// CountOverlaps returns the number of stored intervals containing
// point.
func (t *Tree[T, I]) CountOverlaps(point T) int {
	n := 0
	for range t.FindOverlaps(point) {
		n++
	}
	return n
}

// CountOverlapsInterval counts the stored intervals overlapping query.
func (t *Tree[T, I]) CountOverlapsInterval(query I) int {
	n := 0
	for range t.FindOverlapsInterval(query) {
		n++
	}
	return n
}

func (t *Tree[T, I]) asIntervals() []ivtree.Interval[T] {
	out := make([]ivtree.Interval[T], len(t.items))
	for i, iv := range t.items {
		out[i] = iv
	}
	return out
}

// Gaps yields the complement of the stored intervals within Span().
func (t *Tree[T, I]) Gaps() ivtree.Seq[ivtree.Span[T]] {
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
func (t *Tree[T, I]) FindGaps(query I) ivtree.Seq[ivtree.Span[T]] {
	return func(yield func(ivtree.Span[T]) bool) {
		for g := range sweep.Gaps[T](query, t.asIntervals()) {
			if !yield(g) {
				return
			}
		}
	}
}

// MaxDepth returns the maximum number of stored intervals
// simultaneously overlapping at any single point. Tree carries no
// depth augmentation, so this falls back to the sweep-line reference.
func (t *Tree[T, I]) MaxDepth() int {
	return sweep.MaxDepth[T](t.asIntervals())
}

// Stab returns the intervals containing point as a slice, for callers
// that don't need FindOverlaps's laziness.
func (t *Tree[T, I]) Stab(point T) []I { return ivtree.Collect(t.FindOverlaps(point)) }

// FindOverlapsSorted returns the intervals overlapping query as a
// slice, for callers that don't need FindOverlapsInterval's laziness.
func (t *Tree[T, I]) FindOverlapsSorted(query I) []I { return ivtree.Collect(t.FindOverlapsInterval(query)) }

// Add always fails: Tree is built once and is read-only.
func (t *Tree[T, I]) Add(i I) (bool, error) { return false, ivtree.ErrReadOnly }

// Remove always fails: Tree is built once and is read-only.
func (t *Tree[T, I]) Remove(i I) (bool, error) { return false, ivtree.ErrReadOnly }

// Clear always fails: Tree is built once and is read-only.
func (t *Tree[T, I]) Clear() error { return ivtree.ErrReadOnly }
