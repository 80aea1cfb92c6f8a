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

// Package layered implements the static Layered Containment List and
// Nested Containment List: built once from an unsorted interval set,
// then searched read-only. Both variants sort by CompareTo and place
// each interval into the shallowest layer whose prior occupant does
// not strictly contain it; List (LCL) keeps the layers as flat arrays
// linked by an index pointer into the next layer, while Tree (NCL)
// materializes the same layering as an explicit parent/child node
// tree. The two produce identical query results.
package layered

import (
	"sort"

	"github.com/dkortschak/ivtree"
	"github.com/dkortschak/ivtree/sweep"
)

// entry is one occupant of a layer: the stored interval plus the index
// into the next layer where its strictly-contained children begin.
// The children's end is derived from the following entry's next (or
// the next layer's length, for the last entry in a layer).
type entry[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	item I
	next int
}

// probe is a degenerate Interval used to drive a point query through
// the same comparison machinery as an interval query.
type probe[T ivtree.Ordered[T]] struct{ at T }

func (p probe[T]) Low() T             { return p.at }
func (p probe[T]) High() T            { return p.at }
func (p probe[T]) LowIncluded() bool  { return true }
func (p probe[T]) HighIncluded() bool { return true }

// placeLayer returns the shallowest layer index whose frontier
// occupant does not strictly contain item, via a binary search over
// the frontier: frontier highs decrease monotonically with layer
// depth, so "StrictlyContains(frontier[mid], item)" is a monotone
// predicate across the search range and the `>>2` step (a tuning
// parameter, not `>>1`) still terminates and progresses.
func placeLayer[T ivtree.Ordered[T], I ivtree.Interval[T]](frontier []I, item I) int {
	lo, hi := 0, len(frontier)
	for lo < hi {
		mid := lo + ((hi - lo) >> 2)
		if ivtree.StrictlyContains[T](frontier[mid], item) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// buildLayers sorts items by CompareTo and distributes them across
// layers, returning the flat per-layer entry arrays shared by both
// List and Tree.
func buildLayers[T ivtree.Ordered[T], I ivtree.Interval[T]](items []I) ([]I, [][]entry[T, I], error) {
	sorted := append([]I(nil), items...)
	sort.Slice(sorted, func(a, b int) bool { return ivtree.CompareTo[T](sorted[a], sorted[b]) < 0 })
	for _, it := range sorted {
		if err := ivtree.Validate[T](it); err != nil {
			return nil, nil, err
		}
	}

	var layers [][]entry[T, I]
	var frontier []I
	for _, item := range sorted {
		layer := placeLayer[T, I](frontier, item)
		for layer >= len(layers) {
			layers = append(layers, nil)
			frontier = append(frontier, item)
		}
		next := 0
		if layer+1 < len(layers) {
			next = len(layers[layer+1])
		}
		layers[layer] = append(layers[layer], entry[T, I]{item: item, next: next})
		frontier[layer] = item
	}
	return sorted, layers, nil
}

// childRange returns the [start,end) slice of the next layer holding
// the children strictly contained in layers[layer][idx], given that
// idx lies within the bounded range [_, rangeEnd) of its own layer.
func childRange[T ivtree.Ordered[T], I ivtree.Interval[T]](layers [][]entry[T, I], layer, idx, rangeEnd int) (start, end int) {
	start = layers[layer][idx].next
	switch {
	case idx+1 < rangeEnd:
		end = layers[layer][idx+1].next
	case rangeEnd < len(layers[layer]):
		end = layers[layer][rangeEnd].next
	case layer+1 < len(layers):
		end = len(layers[layer+1])
	default:
		end = 0
	}
	return start, end
}

// overlapBounds returns the [first,last) index range within
// layers[layer][start:end) whose intervals can possibly overlap
// query: within one layer no entry strictly contains a later one (it
// would have been placed one layer deeper instead), so CompareHighLow
// is monotone over the range. An exponential "galloping" probe ahead
// of the binary search would be a constant-factor optimization only
// (it cannot change which entries are returned), so it is left out
// here in favor of sort.Search's plain binary search.
func overlapBounds[T ivtree.Ordered[T], I ivtree.Interval[T]](lay []entry[T, I], query ivtree.Interval[T]) (first, last int) {
	first = sort.Search(len(lay), func(i int) bool {
		return ivtree.CompareHighLow[T](lay[i].item, query) >= 0
	})
	last = sort.Search(len(lay), func(i int) bool {
		return ivtree.CompareLowHigh[T](lay[i].item, query) > 0
	})
	if last < first {
		last = first
	}
	return first, last
}

// walk performs the layered pre-order descent over
// layers[layer][start:end), yielding every contained interval that
// overlaps query in CompareTo ascending order, pruning any entry (and
// therefore its entire, strictly-contained subtree) that cannot
// overlap query.
func walk[T ivtree.Ordered[T], I ivtree.Interval[T]](layers [][]entry[T, I], layer, start, end int, query ivtree.Interval[T], yield func(I) bool) bool {
	if layer >= len(layers) || start >= end {
		return true
	}
	lay := layers[layer][start:end]
	first, last := overlapBounds[T, I](lay, query)
	for rel := first; rel < last; rel++ {
		idx := start + rel
		e := layers[layer][idx]
		if ivtree.Overlaps[T](e.item, query) {
			if !yield(e.item) {
				return false
			}
		}
		cs, ce := childRange[T, I](layers, layer, idx, end)
		if !walk[T, I](layers, layer+1, cs, ce, query, yield) {
			return false
		}
	}
	return true
}

// List is a Layered Containment List: a static, read-only collection
// backed by flat per-layer arrays.
type List[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	items  []I
	layers [][]entry[T, I]
}

// New returns an empty List.
func New[T ivtree.Ordered[T], I ivtree.Interval[T]]() *List[T, I] {
	return &List[T, I]{}
}

// Build constructs a List from an unsorted sequence of intervals.
func Build[T ivtree.Ordered[T], I ivtree.Interval[T]](items []I) (*List[T, I], error) {
	sorted, layers, err := buildLayers[T, I](items)
	if err != nil {
		return nil, err
	}
	return &List[T, I]{items: sorted, layers: layers}, nil
}

func (t *List[T, I]) Size() int   { return len(t.items) }
func (t *List[T, I]) Empty() bool { return len(t.items) == 0 }

// Span returns the smallest interval containing every stored interval.
func (t *List[T, I]) Span() (ivtree.Span[T], error) {
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
func (t *List[T, I]) Lowest() (I, error) {
	var zero I
	if len(t.items) == 0 {
		return zero, ivtree.ErrNoSuchItem
	}
	return t.items[0], nil
}

// Highest returns every interval tied for the highest CompareHigh
// order.
func (t *List[T, I]) Highest() ([]I, error) {
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
func (t *List[T, I]) Sorted() ivtree.Seq[I] {
	return func(yield func(I) bool) {
		for _, iv := range t.items {
			if !yield(iv) {
				return
			}
		}
	}
}

func (t *List[T, I]) rootRange() (int, int) {
	if len(t.layers) == 0 {
		return 0, 0
	}
	return 0, len(t.layers[0])
}

// FindOverlapsInterval yields every stored interval overlapping query,
// in CompareTo ascending order, by the layered pre-order descent.
func (t *List[T, I]) FindOverlapsInterval(query I) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		start, end := t.rootRange()
		walk[T, I](t.layers, 0, start, end, query, yield)
	}
}

// FindOverlaps yields every stored interval containing point.
func (t *List[T, I]) FindOverlaps(point T) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		start, end := t.rootRange()
		walk[T, I](t.layers, 0, start, end, probe[T]{at: point}, yield)
	}
}

// FindOverlap returns the first interval containing point, if any.
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

// CountOverlaps returns the number of stored intervals containing
// point.
func (t *List[T, I]) CountOverlaps(point T) int {
	n := 0
	for range t.FindOverlaps(point) {
		n++
	}
	return n
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

// MaxDepth returns the maximum number of stored intervals
// simultaneously overlapping at any single point. List carries no
// depth augmentation, so this falls back to the sweep-line reference.
func (t *List[T, I]) MaxDepth() int {
	return sweep.MaxDepth[T](t.asIntervals())
}

// Stab returns the intervals containing point as a slice, for callers
// that don't need FindOverlaps's laziness.
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
