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

// Package sweep holds the cross-cutting utilities every index
// implementation (finite, ibs, dit, layered, sortedlist) needs but none
// of them owns exclusively: maximum-depth computation via a sweep line
// keyed on highs, gap enumeration within a bound, collapse of an
// interval set into maximal covered runs, and a sorted unique-endpoint
// vector.
package sweep

import (
	"container/heap"
	"iter"
	"sort"

	"github.com/dkortschak/ivtree"
)

// MaxDepth returns the largest number of intervals in set that overlap
// at any single point, computed by a sweep over ascending low
// endpoints with a min-heap (keyed on high) of the currently active
// intervals. This is the reference used to cross-check the O(1)
// node-augmentation maximum kept by ibs and dit.
func MaxDepth[T ivtree.Ordered[T]](set []ivtree.Interval[T]) int {
	if len(set) == 0 {
		return 0
	}
	sorted := append([]ivtree.Interval[T](nil), set...)
	sort.Slice(sorted, func(i, j int) bool { return ivtree.CompareLow[T](sorted[i], sorted[j]) < 0 })

	active := &endHeap[T]{}
	depth, max := 0, 0
	for _, iv := range sorted {
		for active.Len() > 0 && !ivtree.Overlaps[T]((*active)[0], iv) {
			heap.Pop(active)
			depth--
		}
		heap.Push(active, iv)
		depth++
		if depth > max {
			max = depth
		}
	}
	return max
}

// endHeap is a container/heap min-heap of active intervals ordered by
// CompareHigh, letting MaxDepth evict expired intervals in O(log n).
type endHeap[T ivtree.Ordered[T]] []ivtree.Interval[T]

func (h endHeap[T]) Len() int { return len(h) }
func (h endHeap[T]) Less(i, j int) bool {
	return ivtree.CompareHigh[T](h[i], h[j]) < 0
}
func (h endHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *endHeap[T]) Push(x any)   { *h = append(*h, x.(ivtree.Interval[T])) }
func (h *endHeap[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// UniqueEndpoints returns the sorted, deduplicated vector of every low
// and high endpoint value appearing in set.
func UniqueEndpoints[T ivtree.Ordered[T]](set []ivtree.Interval[T]) []T {
	pts := make([]T, 0, 2*len(set))
	for _, iv := range set {
		pts = append(pts, iv.Low(), iv.High())
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Compare(pts[j]) < 0 })
	out := pts[:0]
	for i, p := range pts {
		if i == 0 || p.Compare(out[len(out)-1]) != 0 {
			out = append(out, p)
		}
	}
	return out
}

// Collapse merges sorted (ascending by CompareLow) intervals that share
// at least one point into covered runs. Neighbors that meet without a
// shared point, such as [1,2) and [2,3], stay separate runs. It is what
// Gaps complements against.
func Collapse[T ivtree.Ordered[T]](sorted []ivtree.Interval[T]) []ivtree.Span[T] {
	if len(sorted) == 0 {
		return nil
	}
	runs := make([]ivtree.Span[T], 0, len(sorted))
	cur := ivtree.Join[T](sorted[0], sorted[0])
	for _, iv := range sorted[1:] {
		if ivtree.CompareLowHigh[T](iv, cur) <= 0 {
			cur = ivtree.Join[T](cur, iv)
			continue
		}
		runs = append(runs, cur)
		cur = ivtree.Join[T](iv, iv)
	}
	runs = append(runs, cur)
	return runs
}

// Gaps yields the complement of sorted (which need not be
// non-overlapping; it is collapsed first) within bound, in ascending
// order. cursor tracks the first point within bound not yet known to
// be covered; each run either opens a gap between cursor and the
// run's low, or (if it starts before cursor) is skipped, and then
// advances cursor past the run's high.
func Gaps[T ivtree.Ordered[T]](bound ivtree.Interval[T], sorted []ivtree.Interval[T]) iter.Seq[ivtree.Span[T]] {
	return func(yield func(ivtree.Span[T]) bool) {
		runs := Collapse[T](sorted)
		cursor := bound.Low()
		cursorIncluded := bound.LowIncluded()
		for _, run := range runs {
			if ivtree.CompareLowHigh[T](run, bound) > 0 {
				break
			}
			if pc := ivtree.ComparePoint[T](cursor, run); pc < 0 {
				gap, err := ivtree.NewSpan[T](cursor, run.Low(), cursorIncluded, !run.LowIncluded())
				if err == nil {
					if !yield(gap) {
						return
					}
				}
			}
			if hc := run.High().Compare(cursor); hc > 0 || (hc == 0 && run.HighIncluded() && !cursorIncluded) {
				cursor, cursorIncluded = run.High(), !run.HighIncluded()
			}
		}
		if c := cursor.Compare(bound.High()); c < 0 || (c == 0 && cursorIncluded && bound.HighIncluded()) {
			gap, err := ivtree.NewSpan[T](cursor, bound.High(), cursorIncluded, bound.HighIncluded())
			if err == nil {
				yield(gap)
			}
		}
	}
}
