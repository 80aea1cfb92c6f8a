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

// Package dit implements the Dynamic Interval Tree: an AVL tree keyed
// on endpoint values where each node that is some interval's low
// endpoint carries a LocalSpan and ordered IncludedList/ExcludedList
// buckets of the intervals starting there, and every node (low or
// high) contributes to the same DeltaAt/DeltaAfter/Sum/Max depth
// augmentation used by the ibs package. A subtree Span, recomputed
// bottom-up on every structural edit, prunes range queries.
package dit

import (
	"sort"

	"github.com/dkortschak/ivtree"
	"github.com/dkortschak/ivtree/internal/avl"
	"github.com/dkortschak/ivtree/sweep"
)

// bucket groups the stored intervals of one list that share the same
// high endpoint value, interval-equal duplicates included.
type bucket[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	high  T
	items []I
}

type self[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	key         T
	left, right *self[T, I]
	height      int

	hasLocal  bool
	localSpan ivtree.Span[T]
	hasSpan   bool
	span      ivtree.Span[T]

	included []bucket[T, I]
	excluded []bucket[T, I]

	deltaAt, deltaAfter int
	sum, max            int

	// refs counts the interval endpoints (Low or High) anchored
	// exactly at key: the node's IntervalsEndingInNode lifetime
	// count. Unlike package ibs, a dit node's own fields are never
	// touched by an interval anchored elsewhere, so refs reaching
	// zero is exactly the condition under which included, excluded,
	// deltaAt and deltaAfter are also all back to zero.
	refs int
}

func (n *self[T, I]) dead() bool {
	return n.refs == 0
}

func (n *self[T, I]) heightOf() int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *self[T, I]) sumOf() int {
	if n == nil {
		return 0
	}
	return n.sum
}

func (n *self[T, I]) maxOf() int {
	if n == nil {
		return 0
	}
	return n.max
}

func (n *self[T, I]) updateHeight() {
	n.height = avl.Height(n.left.heightOf(), n.right.heightOf())
}

// spanOf reports n's subtree span and whether it holds any interval
// at all (an empty subtree, or one built entirely of delta-only
// nodes, has none).
func (n *self[T, I]) spanOf() (ivtree.Span[T], bool) {
	if n == nil {
		return ivtree.Span[T]{}, false
	}
	return n.span, n.hasSpan
}

// recomputeSpan derives n's subtree Span from its own LocalSpan (if
// any) and both children's spans.
func (n *self[T, I]) recomputeSpan() {
	n.hasSpan = false
	if n.hasLocal {
		n.span = n.localSpan
		n.hasSpan = true
	}
	if ls, ok := n.left.spanOf(); ok {
		if n.hasSpan {
			n.span = ivtree.Join[T](n.span, ls)
		} else {
			n.span, n.hasSpan = ls, true
		}
	}
	if rs, ok := n.right.spanOf(); ok {
		if n.hasSpan {
			n.span = ivtree.Join[T](n.span, rs)
		} else {
			n.span, n.hasSpan = rs, true
		}
	}
}

// recomputeAugmentation derives Sum and Max exactly as in package ibs:
// a depth-prefix decomposition of DeltaAt/DeltaAfter across the
// in-order position of this node.
func (n *self[T, I]) recomputeAugmentation() {
	ls := n.left.sumOf()
	n.sum = ls + n.deltaAt + n.deltaAfter + n.right.sumOf()
	m := n.left.maxOf()
	if v := ls + n.deltaAt; v > m {
		m = v
	}
	if v := ls + n.deltaAt + n.deltaAfter; v > m {
		m = v
	}
	if v := ls + n.deltaAt + n.deltaAfter + n.right.maxOf(); v > m {
		m = v
	}
	n.max = m
	n.recomputeSpan()
}

func (oldRoot *self[T, I]) rotateRight() (newRoot *self[T, I]) {
	node := oldRoot.left
	oldRoot.left = node.right
	node.right = oldRoot
	oldRoot.updateHeight()
	node.updateHeight()
	oldRoot.recomputeAugmentation()
	node.recomputeAugmentation()
	return node
}

func (oldRoot *self[T, I]) rotateLeft() (newRoot *self[T, I]) {
	node := oldRoot.right
	oldRoot.right = node.left
	node.left = oldRoot
	oldRoot.updateHeight()
	node.updateHeight()
	oldRoot.recomputeAugmentation()
	node.recomputeAugmentation()
	return node
}

// deleteDead physically excises n, a node already confirmed dead, by
// rotating it down to a leaf and splicing it out, the same
// height-driven technique package ibs uses, adapted here without any
// set migration since a dit node's buckets stay keyed to its own
// fixed node regardless of rotation.
func deleteDead[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I]) *self[T, I] {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	case n.left.heightOf() >= n.right.heightOf():
		root := n.rotateRight()
		root.right = deleteDead[T, I](root.right)
		return rebalance[T, I](root)
	default:
		root := n.rotateLeft()
		root.left = deleteDead[T, I](root.left)
		return rebalance[T, I](root)
	}
}

func rebalance[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I]) *self[T, I] {
	n.updateHeight()
	bal := avl.Balance(n.left.heightOf(), n.right.heightOf())
	if avl.Heavy(bal) {
		var childBal int
		if bal < 0 {
			childBal = avl.Balance(n.left.left.heightOf(), n.left.right.heightOf())
		} else {
			childBal = avl.Balance(n.right.left.heightOf(), n.right.right.heightOf())
		}
		switch avl.Decide(bal, childBal) {
		case avl.Right:
			n = n.rotateRight()
		case avl.Left:
			n = n.rotateLeft()
		case avl.LeftRight:
			n.left = n.left.rotateLeft()
			n = n.rotateRight()
		case avl.RightLeft:
			n.right = n.right.rotateRight()
			n = n.rotateLeft()
		}
	}
	n.recomputeAugmentation()
	return n
}

// insertBucket places i into list, keyed by high descending, grouping
// every interval that shares i's high value into one bucket.
func insertBucket[T ivtree.Ordered[T], I ivtree.Interval[T]](list []bucket[T, I], i I) []bucket[T, I] {
	for idx := range list {
		c := list[idx].high.Compare(i.High())
		if c == 0 {
			list[idx].items = append(list[idx].items, i)
			return list
		}
		if c < 0 {
			b := bucket[T, I]{high: i.High(), items: []I{i}}
			list = append(list, bucket[T, I]{})
			copy(list[idx+1:], list[idx:])
			list[idx] = b
			return list
		}
	}
	return append(list, bucket[T, I]{high: i.High(), items: []I{i}})
}

func removeFromBucket[T ivtree.Ordered[T], I ivtree.Interval[T]](list []bucket[T, I], i I) []bucket[T, I] {
	for idx := range list {
		if list[idx].high.Compare(i.High()) != 0 {
			continue
		}
		items := list[idx].items
		for j, e := range items {
			if ivtree.IntervalEquals[T](e, i) {
				items = append(items[:j], items[j+1:]...)
				break
			}
		}
		if len(items) == 0 {
			list = append(list[:idx], list[idx+1:]...)
		} else {
			list[idx].items = items
		}
		return list
	}
	return list
}

func localSpanOf[T ivtree.Ordered[T], I ivtree.Interval[T]](included, excluded []bucket[T, I]) (ivtree.Span[T], bool) {
	var span ivtree.Span[T]
	has := false
	for _, list := range [2][]bucket[T, I]{included, excluded} {
		for _, b := range list {
			for _, iv := range b.items {
				if !has {
					span, has = ivtree.Join[T](iv, iv), true
				} else {
					span = ivtree.Join[T](span, iv)
				}
			}
		}
	}
	return span, has
}

// addLow descends to (creating if necessary) the node keyed at i.Low,
// appending i to the appropriate ordered bucket list and expanding
// LocalSpan, plus the low-side DeltaAt/DeltaAfter contribution.
func addLow[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I) *self[T, I] {
	if n == nil {
		nn := &self[T, I]{key: i.Low()}
		placeLow[T, I](nn, i)
		nn.recomputeAugmentation()
		return nn
	}
	switch c := i.Low().Compare(n.key); {
	case c < 0:
		n.left = addLow[T, I](n.left, i)
	case c > 0:
		n.right = addLow[T, I](n.right, i)
	default:
		placeLow[T, I](n, i)
	}
	return rebalance[T, I](n)
}

func placeLow[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I) {
	if i.LowIncluded() {
		n.included = insertBucket[T, I](n.included, i)
		n.deltaAt++
	} else {
		n.excluded = insertBucket[T, I](n.excluded, i)
		n.deltaAfter++
	}
	n.localSpan, n.hasLocal = localSpanOf[T, I](n.included, n.excluded)
	n.refs++
}

// addHigh visits (creating if necessary) the node keyed at i.High,
// recording only the high-side delta contribution; it never touches
// LocalSpan or the bucket lists, which belong to the low-keyed node.
func addHigh[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I) *self[T, I] {
	if n == nil {
		nn := &self[T, I]{key: i.High()}
		placeHigh[T, I](nn, i)
		nn.recomputeAugmentation()
		return nn
	}
	switch c := i.High().Compare(n.key); {
	case c < 0:
		n.left = addHigh[T, I](n.left, i)
	case c > 0:
		n.right = addHigh[T, I](n.right, i)
	default:
		placeHigh[T, I](n, i)
	}
	return rebalance[T, I](n)
}

func placeHigh[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I) {
	if i.HighIncluded() {
		n.deltaAfter--
	} else {
		n.deltaAt--
	}
	n.refs++
}

// removeLow is addLow's inverse. It retracts the bucket placement and
// LocalSpan/delta contribution a prior Add made at the low-keyed
// node, then, once the node's refs count (see self.dead) reaches
// zero, physically deletes it via deleteDead (rotating it down and
// splicing it out) and rebalances on the way back up.
func removeLow[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I) *self[T, I] {
	if n == nil {
		return nil
	}
	switch c := i.Low().Compare(n.key); {
	case c < 0:
		n.left = removeLow[T, I](n.left, i)
	case c > 0:
		n.right = removeLow[T, I](n.right, i)
	default:
		if i.LowIncluded() {
			n.included = removeFromBucket[T, I](n.included, i)
			n.deltaAt--
		} else {
			n.excluded = removeFromBucket[T, I](n.excluded, i)
			n.deltaAfter--
		}
		n.localSpan, n.hasLocal = localSpanOf[T, I](n.included, n.excluded)
		n.refs--
	}
	if n.dead() {
		return deleteDead[T, I](n)
	}
	return rebalance[T, I](n)
}

// removeHigh is the mirror image of removeLow for the high endpoint.
func removeHigh[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I) *self[T, I] {
	if n == nil {
		return nil
	}
	switch c := i.High().Compare(n.key); {
	case c < 0:
		n.left = removeHigh[T, I](n.left, i)
	case c > 0:
		n.right = removeHigh[T, I](n.right, i)
	default:
		if i.HighIncluded() {
			n.deltaAfter++
		} else {
			n.deltaAt++
		}
		n.refs--
	}
	if n.dead() {
		return deleteDead[T, I](n)
	}
	return rebalance[T, I](n)
}

// findOverlaps walks the tree, pruning any subtree whose Span does
// not overlap query, and at a node whose LocalSpan overlaps query
// scans its bucket lists from the highest high downward, stopping as
// soon as a bucket's high can no longer reach query's low.
func findOverlaps[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], query ivtree.Interval[T], yield func(I) bool) bool {
	if n == nil {
		return true
	}
	if span, ok := n.spanOf(); !ok || !ivtree.Overlaps[T](span, query) {
		return true
	}
	if !findOverlaps[T, I](n.left, query, yield) {
		return false
	}
	if n.hasLocal && ivtree.Overlaps[T](n.localSpan, query) {
		for _, list := range [2][]bucket[T, I]{n.included, n.excluded} {
			for _, b := range list {
				if ivtree.CompareHighLow[T](bucketHigh[T, I](b), query) < 0 {
					break
				}
				for _, iv := range b.items {
					if ivtree.Overlaps[T](iv, query) {
						if !yield(iv) {
							return false
						}
					}
				}
			}
		}
	}
	return findOverlaps[T, I](n.right, query, yield)
}

// bucketHigh builds a degenerate probe interval at the bucket's high
// value so CompareHighLow can be reused for the early-stop test; its
// low endpoint and inclusion flags are irrelevant to that comparison.
func bucketHigh[T ivtree.Ordered[T], I ivtree.Interval[T]](b bucket[T, I]) ivtree.Interval[T] {
	return bucketProbe[T]{high: b.high}
}

type bucketProbe[T ivtree.Ordered[T]] struct{ high T }

func (p bucketProbe[T]) Low() T             { return p.high }
func (p bucketProbe[T]) High() T            { return p.high }
func (p bucketProbe[T]) LowIncluded() bool  { return true }
func (p bucketProbe[T]) HighIncluded() bool { return true }

// Tree is a Dynamic Interval Tree. Alongside the augmented endpoint
// tree it keeps a flat list of stored references so that
// whole-collection operations have a simple, obviously-correct
// implementation independent of the endpoint tree's shape.
type Tree[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	root  *self[T, I]
	items []I
}

// New returns an empty Tree.
func New[T ivtree.Ordered[T], I ivtree.Interval[T]]() *Tree[T, I] {
	return &Tree[T, I]{}
}

// Build constructs a Tree from an unsorted sequence of intervals.
func Build[T ivtree.Ordered[T], I ivtree.Interval[T]](items []I) (*Tree[T, I], error) {
	t := New[T, I]()
	for _, it := range items {
		if _, err := t.Add(it); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tree[T, I]) Size() int   { return len(t.items) }
func (t *Tree[T, I]) Empty() bool { return len(t.items) == 0 }

// Add inserts i. DIT is a multiset: interval-equal duplicates are
// each tracked as a distinct bucket entry and counted separately by
// the endpoint nodes' refs, so Remove on a duplicate retracts exactly
// one occurrence and leaves the rest intact. Callers that want to
// disallow duplicates should check FindOverlapsInterval/Sorted before
// calling Add.
func (t *Tree[T, I]) Add(i I) (bool, error) {
	if err := ivtree.Validate[T](i); err != nil {
		return false, err
	}
	t.root = addLow[T, I](t.root, i)
	t.root = addHigh[T, I](t.root, i)
	t.items = append(t.items, i)
	return true, nil
}

// contains reports whether an interval-equal copy of i is stored,
// read from the bucket lists of i's low-keyed node.
func (t *Tree[T, I]) contains(i I) bool {
	n := t.root
	for n != nil {
		switch c := i.Low().Compare(n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			list := n.excluded
			if i.LowIncluded() {
				list = n.included
			}
			for _, b := range list {
				if b.high.Compare(i.High()) != 0 {
					continue
				}
				for _, e := range b.items {
					if ivtree.IntervalEquals[T](e, i) {
						return true
					}
				}
			}
			return false
		}
	}
	return false
}

// Remove deletes one stored occurrence equal to i (matched by
// IntervalEquals: a generic, non-pointer I carries no reference
// identity), reversing the bucket placement and delta
// contribution Add made for it, physically deleting and rebalancing
// away either endpoint's node once nothing anchors it any longer. It
// returns false when no such interval is stored.
func (t *Tree[T, I]) Remove(i I) (bool, error) {
	if !t.contains(i) {
		return false, nil
	}
	t.root = removeLow[T, I](t.root, i)
	t.root = removeHigh[T, I](t.root, i)
	for idx, e := range t.items {
		if ivtree.IntervalEquals[T](e, i) {
			t.items = append(t.items[:idx], t.items[idx+1:]...)
			break
		}
	}
	return true, nil
}

// Clear empties the collection.
func (t *Tree[T, I]) Clear() error {
	t.root = nil
	t.items = nil
	return nil
}

func (t *Tree[T, I]) sortedItems() []I {
	out := append([]I(nil), t.items...)
	sort.Slice(out, func(a, b int) bool { return ivtree.CompareTo[T](out[a], out[b]) < 0 })
	return out
}

// Sorted yields every stored interval in CompareTo ascending order.
func (t *Tree[T, I]) Sorted() ivtree.Seq[I] {
	return func(yield func(I) bool) {
		for _, iv := range t.sortedItems() {
			if !yield(iv) {
				return
			}
		}
	}
}

// Span returns the smallest interval containing every stored
// interval.
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
	return t.sortedItems()[0], nil
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

// HighestIntervals returns every stored interval whose CompareHigh
// against the collection's highest interval is zero, specified from
// first principles rather than from a flagged-broken reference
// implementation (see the package design notes).
func (t *Tree[T, I]) HighestIntervals() ([]I, error) {
	return t.Highest()
}

// FindOverlaps yields every stored interval containing point, via a
// pruned descent of the endpoint tree with a degenerate single-point
// query.
func (t *Tree[T, I]) FindOverlaps(point T) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		findOverlaps[T, I](t.root, bucketProbe[T]{high: point}, yield)
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

// CountOverlaps returns the number of stored intervals containing
// point.
func (t *Tree[T, I]) CountOverlaps(point T) int {
	n := 0
	for range t.FindOverlaps(point) {
		n++
	}
	return n
}

// FindOverlapsInterval yields every stored interval overlapping
// query by a pruned descent of the endpoint tree.
func (t *Tree[T, I]) FindOverlapsInterval(query I) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		findOverlaps[T, I](t.root, query, yield)
	}
}

// FindOverlapInterval returns the first interval overlapping query.
func (t *Tree[T, I]) FindOverlapInterval(query I) (I, bool) {
	for iv := range t.FindOverlapsInterval(query) {
		return iv, true
	}
	var zero I
	return zero, false
}

// CountOverlapsInterval counts the stored intervals overlapping
// query.
func (t *Tree[T, I]) CountOverlapsInterval(query I) int {
	n := 0
	for range t.FindOverlapsInterval(query) {
		n++
	}
	return n
}

func (t *Tree[T, I]) asIntervals() []ivtree.Interval[T] {
	sorted := t.sortedItems()
	out := make([]ivtree.Interval[T], len(sorted))
	for i, iv := range sorted {
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

// FindGaps yields the complement of the stored intervals within
// query.
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
// simultaneously overlapping at any single point, read in O(1) from
// the root's Max augmentation.
func (t *Tree[T, I]) MaxDepth() int {
	return t.root.maxOf()
}

// Stab returns the intervals containing point as a slice, for callers
// that don't need FindOverlaps's laziness.
func (t *Tree[T, I]) Stab(point T) []I { return ivtree.Collect(t.FindOverlaps(point)) }

// FindOverlapsSorted returns the intervals overlapping query as a
// slice, for callers that don't need FindOverlapsInterval's laziness.
// The slice keeps FindOverlapsInterval's order, which is not CompareTo
// order.
func (t *Tree[T, I]) FindOverlapsSorted(query I) []I { return ivtree.Collect(t.FindOverlapsInterval(query)) }
