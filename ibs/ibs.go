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

// Package ibs implements the Interval Binary Search Tree: an AVL tree
// keyed on the distinct endpoint values of stored intervals, where
// every node carries Less/Equal/Greater sets of the intervals covering
// the gap before, the point at, and the gap after its key, plus a
// depth augmentation (DeltaAt/DeltaAfter/Sum/Max) that yields the
// collection's maximum overlap depth in O(1) at the root.
//
// The set decomposition follows the endpoint tiling: for a node v with
// nearest left-spine ancestor leftUp(v) and right-spine ancestor
// rightUp(v), v's Less holds the intervals covering the open gap
// (leftUp(v).key, v.key), v's Greater the intervals covering
// (v.key, rightUp(v).key), and v's Equal the intervals containing the
// point v.key. A point query then reads exactly one set per visited
// node and each stored interval is reported exactly once.
package ibs

import (
	"sort"

	"github.com/dkortschak/ivtree"
	"github.com/dkortschak/ivtree/internal/avl"
	"github.com/dkortschak/ivtree/sweep"
)

type self[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	key                  T
	left, right          *self[T, I]
	height               int
	less, equal, greater []I
	deltaAt, deltaAfter  int
	sum, max             int

	// lows records the stored intervals whose Low is exactly key, in
	// no particular order. Interval-range queries use it to pick up
	// the intervals anchored inside the query range.
	lows []I

	// refs counts the interval endpoints (Low or High) anchored
	// exactly at key; it is the node's lifetime count. Less, Equal
	// and Greater also hold entries contributed by intervals merely
	// passing over key, so refs, not an empty set, is what decides
	// whether the node may be physically removed.
	refs int
}

// dead reports whether n carries no interval data at all: no endpoint
// anchored here and nothing passing through, so it may be physically
// removed without affecting any query.
func (n *self[T, I]) dead() bool {
	return n.refs == 0 && len(n.less) == 0 && len(n.equal) == 0 && len(n.greater) == 0
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

// recomputeAugmentation derives Sum and Max from this node's own delta
// and its children's augmentation, per the depth-prefix decomposition:
// left.Sum is the depth just before this key, +DeltaAt is the depth at
// the key, +DeltaAfter is the depth just after it.
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
}

func containsInterval[T ivtree.Ordered[T], I ivtree.Interval[T]](set []I, i I) bool {
	for _, e := range set {
		if ivtree.IntervalEquals[T](e, i) {
			return true
		}
	}
	return false
}

// insertSet adds i to the set unless an interval-equal entry is already
// present. The low and high insertion passes can both reach the same
// node (the split node, or the shared prefix above it), so placements
// must be idempotent.
func insertSet[T ivtree.Ordered[T], I ivtree.Interval[T]](dst *[]I, i I) {
	if !containsInterval[T, I](*dst, i) {
		*dst = append(*dst, i)
	}
}

func unionInto[T ivtree.Ordered[T], I ivtree.Interval[T]](dst *[]I, src []I) {
	for _, e := range src {
		insertSet[T, I](dst, e)
	}
}

func setDiff[T ivtree.Ordered[T], I ivtree.Interval[T]](a, b []I) []I {
	out := make([]I, 0, len(a))
	for _, e := range a {
		if !containsInterval[T, I](b, e) {
			out = append(out, e)
		}
	}
	return out
}

func setIntersect[T ivtree.Ordered[T], I ivtree.Interval[T]](a, b []I) []I {
	out := make([]I, 0, len(a))
	for _, e := range a {
		if containsInterval[T, I](b, e) {
			out = append(out, e)
		}
	}
	return out
}

func removeFirst[T ivtree.Ordered[T], I ivtree.Interval[T]](dst *[]I, i I) {
	for idx, e := range *dst {
		if ivtree.IntervalEquals[T](e, i) {
			s := *dst
			*dst = append(s[:idx], s[idx+1:]...)
			return
		}
	}
}

// migrateRight applies the node/root set migration that keeps Less,
// Equal, Greater consistent across a right rotation where node was
// root's left child and becomes the new subtree root.
func migrateRight[T ivtree.Ordered[T], I ivtree.Interval[T]](node, root *self[T, I]) {
	unionInto[T, I](&node.less, root.less)
	unionInto[T, I](&node.equal, root.less)
	diff := setDiff[T, I](node.greater, root.greater)
	unionInto[T, I](&root.less, diff)
	node.greater = setIntersect[T, I](node.greater, root.greater)
	root.greater = setDiff[T, I](root.greater, node.greater)
	root.equal = setDiff[T, I](root.equal, node.greater)
}

// migrateLeft is the mirror image of migrateRight for a left rotation
// where node was root's right child.
func migrateLeft[T ivtree.Ordered[T], I ivtree.Interval[T]](node, root *self[T, I]) {
	unionInto[T, I](&node.greater, root.greater)
	unionInto[T, I](&node.equal, root.greater)
	diff := setDiff[T, I](node.less, root.less)
	unionInto[T, I](&root.greater, diff)
	node.less = setIntersect[T, I](node.less, root.less)
	root.less = setDiff[T, I](root.less, node.less)
	root.equal = setDiff[T, I](root.equal, node.less)
}

func (oldRoot *self[T, I]) rotateRight() (newRoot *self[T, I]) {
	node := oldRoot.left
	migrateRight[T, I](node, oldRoot)
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
	migrateLeft[T, I](node, oldRoot)
	oldRoot.right = node.left
	node.left = oldRoot
	oldRoot.updateHeight()
	node.updateHeight()
	oldRoot.recomputeAugmentation()
	node.recomputeAugmentation()
	return node
}

// deleteDead physically excises n, a node already confirmed dead, by
// rotating it down towards a leaf via the same migration-aware
// rotations used on insert, then splicing it out. A rotation's set
// migration can hand entries back to n (they then describe the gap n
// now bounds from its rotated position), in which case n is no longer
// dead and must stay in the tree as a passthrough node rather than be
// spliced out, or those entries would be lost.
func deleteDead[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I]) *self[T, I] {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	case n.left.heightOf() >= n.right.heightOf():
		root := n.rotateRight()
		if root.right.dead() {
			root.right = deleteDead[T, I](root.right)
		}
		return rebalance[T, I](root)
	default:
		root := n.rotateLeft()
		if root.left.dead() {
			root.left = deleteDead[T, I](root.left)
		}
		return rebalance[T, I](root)
	}
}

// pruneDead descends to the node keyed at key, if present, and splices
// it out of the tree when it no longer carries any interval data,
// rebalancing on the way back up. It must only run when no other
// interval's set placements can still reach exactly to key, which is
// the case once both the low and high retraction passes of a removal
// have completed.
func pruneDead[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], key T) *self[T, I] {
	if n == nil {
		return nil
	}
	switch c := key.Compare(n.key); {
	case c < 0:
		n.left = pruneDead[T, I](n.left, key)
	case c > 0:
		n.right = pruneDead[T, I](n.right, key)
	default:
		if n.dead() {
			n = deleteDead[T, I](n)
			if n == nil {
				return nil
			}
		}
	}
	return rebalance[T, I](n)
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

// reachesRightUp reports whether i covers the open gap between a node
// and its nearest right-spine ancestor, the condition under which that
// node's Greater set holds i. With no right-spine ancestor the gap is
// unbounded above and no finite interval covers it.
func reachesRightUp[T ivtree.Ordered[T], I ivtree.Interval[T]](rightUp *self[T, I], i I) bool {
	return rightUp != nil && rightUp.key.Compare(i.High()) <= 0
}

// reachesLeftUp is the mirror image of reachesRightUp for a node's
// Less set and its nearest left-spine ancestor.
func reachesLeftUp[T ivtree.Ordered[T], I ivtree.Interval[T]](leftUp *self[T, I], i I) bool {
	return leftUp != nil && leftUp.key.Compare(i.Low()) >= 0
}

// placeLow records i's low-endpoint contribution at its low-keyed
// node: the point membership (Equal and DeltaAt when the low is
// included, DeltaAfter when not), the gap above the key when i reaches
// its right-spine ancestor, and the anchoring bookkeeping.
func (n *self[T, I]) placeLow(i I, rightUp *self[T, I]) {
	if i.LowIncluded() {
		insertSet[T, I](&n.equal, i)
		n.deltaAt++
	} else {
		n.deltaAfter++
	}
	if reachesRightUp[T, I](rightUp, i) {
		insertSet[T, I](&n.greater, i)
	}
	n.lows = append(n.lows, i)
	n.refs++
}

// placeHigh is placeLow's mirror image for the high endpoint.
func (n *self[T, I]) placeHigh(i I, leftUp *self[T, I]) {
	if i.HighIncluded() {
		insertSet[T, I](&n.equal, i)
		n.deltaAfter--
	} else {
		n.deltaAt--
	}
	if reachesLeftUp[T, I](leftUp, i) {
		insertSet[T, I](&n.less, i)
	}
	n.refs++
}

// addLow descends to (creating if necessary) the node keyed at i.Low.
// A node passed on a leftward turn has its key above i.Low, so i is
// recorded in its Equal when the key lies strictly inside i and in its
// Greater when i covers the whole open gap up to the node's
// right-spine ancestor; rightward turns pass nodes below i entirely
// and record nothing.
func addLow[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I, rightUp *self[T, I]) *self[T, I] {
	if n == nil {
		nn := &self[T, I]{key: i.Low()}
		nn.placeLow(i, rightUp)
		nn.recomputeAugmentation()
		return nn
	}
	switch c := i.Low().Compare(n.key); {
	case c < 0:
		if n.key.Compare(i.High()) < 0 {
			insertSet[T, I](&n.equal, i)
		}
		if reachesRightUp[T, I](rightUp, i) {
			insertSet[T, I](&n.greater, i)
		}
		n.left = addLow[T, I](n.left, i, n)
	case c > 0:
		n.right = addLow[T, I](n.right, i, rightUp)
	default:
		n.placeLow(i, rightUp)
	}
	return rebalance[T, I](n)
}

// addHigh is the mirror image of addLow for the high endpoint.
func addHigh[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I, leftUp *self[T, I]) *self[T, I] {
	if n == nil {
		nn := &self[T, I]{key: i.High()}
		nn.placeHigh(i, leftUp)
		nn.recomputeAugmentation()
		return nn
	}
	switch c := i.High().Compare(n.key); {
	case c > 0:
		if n.key.Compare(i.Low()) > 0 {
			insertSet[T, I](&n.equal, i)
		}
		if reachesLeftUp[T, I](leftUp, i) {
			insertSet[T, I](&n.less, i)
		}
		n.right = addHigh[T, I](n.right, i, n)
	case c < 0:
		n.left = addHigh[T, I](n.left, i, leftUp)
	default:
		n.placeHigh(i, leftUp)
	}
	return rebalance[T, I](n)
}

// removeLow is addLow's inverse. It retracts the set placements and
// delta contribution a prior Add made along the current search path
// for i.Low. It never deletes nodes: physical deletion is deferred to
// pruneDead so that the high retraction pass still sees a consistent
// tree.
func removeLow[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I, rightUp *self[T, I]) *self[T, I] {
	if n == nil {
		return nil
	}
	switch c := i.Low().Compare(n.key); {
	case c < 0:
		if n.key.Compare(i.High()) < 0 {
			removeFirst[T, I](&n.equal, i)
		}
		if reachesRightUp[T, I](rightUp, i) {
			removeFirst[T, I](&n.greater, i)
		}
		n.left = removeLow[T, I](n.left, i, n)
	case c > 0:
		n.right = removeLow[T, I](n.right, i, rightUp)
	default:
		if i.LowIncluded() {
			removeFirst[T, I](&n.equal, i)
			n.deltaAt--
		} else {
			n.deltaAfter--
		}
		if reachesRightUp[T, I](rightUp, i) {
			removeFirst[T, I](&n.greater, i)
		}
		removeFirst[T, I](&n.lows, i)
		n.refs--
	}
	return rebalance[T, I](n)
}

// removeHigh is the mirror image of removeLow for the high endpoint.
func removeHigh[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I, leftUp *self[T, I]) *self[T, I] {
	if n == nil {
		return nil
	}
	switch c := i.High().Compare(n.key); {
	case c > 0:
		if n.key.Compare(i.Low()) > 0 {
			removeFirst[T, I](&n.equal, i)
		}
		if reachesLeftUp[T, I](leftUp, i) {
			removeFirst[T, I](&n.less, i)
		}
		n.right = removeHigh[T, I](n.right, i, n)
	case c < 0:
		n.left = removeHigh[T, I](n.left, i, leftUp)
	default:
		if i.HighIncluded() {
			removeFirst[T, I](&n.equal, i)
			n.deltaAfter++
		} else {
			n.deltaAt++
		}
		if reachesLeftUp[T, I](leftUp, i) {
			removeFirst[T, I](&n.less, i)
		}
		n.refs--
	}
	return rebalance[T, I](n)
}

// Tree is an Interval Binary Search Tree. Alongside the augmented
// endpoint tree it keeps a flat list of stored references so that
// whole-collection operations (Sorted, Span, Highest, gap enumeration)
// have a simple, obviously-correct implementation independent of the
// endpoint tree's shape.
type Tree[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	root  *self[T, I]
	items []I
}

// New returns an empty Tree.
func New[T ivtree.Ordered[T], I ivtree.Interval[T]]() *Tree[T, I] {
	return &Tree[T, I]{}
}

// Build constructs a Tree from an unsorted sequence of intervals.
// Interval-equal duplicates in the input are kept once.
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

// contains reports whether an interval-equal copy of i is stored, read
// from the low-endpoint records of i's low-keyed node.
func (t *Tree[T, I]) contains(i I) bool {
	n := t.root
	for n != nil {
		switch c := i.Low().Compare(n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return containsInterval[T, I](n.lows, i)
		}
	}
	return false
}

// Add inserts i, which may overlap any existing interval. The tree
// holds a set under interval equality: adding a second copy of an
// already stored interval returns false and leaves the tree unchanged.
func (t *Tree[T, I]) Add(i I) (bool, error) {
	if err := ivtree.Validate[T](i); err != nil {
		return false, err
	}
	if t.contains(i) {
		return false, nil
	}
	t.root = addLow[T, I](t.root, i, nil)
	t.root = addHigh[T, I](t.root, i, nil)
	t.items = append(t.items, i)
	return true, nil
}

// Remove deletes the stored interval equal to i, reversing the set
// placements and delta contributions Add made for it, then physically
// deleting either endpoint's node once nothing anchors or passes
// through it any longer. It returns false when no such interval is
// stored.
func (t *Tree[T, I]) Remove(i I) (bool, error) {
	if !t.contains(i) {
		return false, nil
	}
	t.root = removeLow[T, I](t.root, i, nil)
	t.root = removeHigh[T, I](t.root, i, nil)
	t.root = pruneDead[T, I](t.root, i.Low())
	t.root = pruneDead[T, I](t.root, i.High())
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
	sorted := t.sortedItems()
	return sorted[0], nil
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

// FindOverlaps yields every stored interval containing point by
// descending the endpoint tree, collecting Less/Greater at each
// comparison and Equal at an exact match, in O(log n + k).
func (t *Tree[T, I]) FindOverlaps(point T) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		n := t.root
		for n != nil {
			switch c := point.Compare(n.key); {
			case c < 0:
				for _, iv := range n.less {
					if !yield(iv) {
						return
					}
				}
				n = n.left
			case c > 0:
				for _, iv := range n.greater {
					if !yield(iv) {
						return
					}
				}
				n = n.right
			default:
				for _, iv := range n.equal {
					if !yield(iv) {
						return
					}
				}
				return
			}
		}
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

// walkLows visits, in key order, every node whose key lies within
// query's endpoint range and yields the intervals anchored there by
// their low endpoint, filtered by overlap with query. Intervals that
// contain query's low point are skipped: the point descent over
// query.Low already reported them.
func walkLows[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], query ivtree.Interval[T], yield func(I) bool) bool {
	if n == nil {
		return true
	}
	cLow := n.key.Compare(query.Low())
	cHigh := n.key.Compare(query.High())
	if cLow > 0 {
		if !walkLows[T, I](n.left, query, yield) {
			return false
		}
	}
	if cLow >= 0 && cHigh <= 0 {
		for _, iv := range n.lows {
			if ivtree.ComparePoint[T](query.Low(), iv) == 0 {
				continue
			}
			if ivtree.Overlaps[T](iv, query) && !yield(iv) {
				return false
			}
		}
	}
	if cHigh < 0 {
		return walkLows[T, I](n.right, query, yield)
	}
	return true
}

// FindOverlapsInterval yields every stored interval overlapping query,
// each exactly once, in O(log n + m + k) for m endpoint keys within
// the query range. An overlapping interval either contains query's low
// point, in which case the point descent for that value finds it, or
// starts inside the query range, in which case the low-anchor walk
// over the range's keys finds it; the two cases are disjoint.
func (t *Tree[T, I]) FindOverlapsInterval(query I) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		n := t.root
		p := query.Low()
	stab:
		for n != nil {
			switch c := p.Compare(n.key); {
			case c < 0:
				for _, iv := range n.less {
					if ivtree.Overlaps[T](iv, query) && !yield(iv) {
						return
					}
				}
				n = n.left
			case c > 0:
				for _, iv := range n.greater {
					if ivtree.Overlaps[T](iv, query) && !yield(iv) {
						return
					}
				}
				n = n.right
			default:
				for _, iv := range n.equal {
					if ivtree.Overlaps[T](iv, query) && !yield(iv) {
						return
					}
				}
				break stab
			}
		}
		walkLows[T, I](t.root, query, yield)
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

// CountOverlapsInterval counts the stored intervals overlapping query.
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
