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

// Package finite implements a doubly-linked finite interval tree: an
// AVL tree keyed on interval CompareTo order, holding a pairwise
// non-overlapping set of intervals, with an in-order doubly-linked
// list threaded through sentinel head/tail nodes for O(1) neighbor
// access once a position has been found.
package finite

import (
	"github.com/dkortschak/ivtree"
	"github.com/dkortschak/ivtree/internal/avl"
	"github.com/dkortschak/ivtree/sweep"
)

// Resolver is called by ForceAdd for each adjacent pair of intervals
// that still overlap. If it returns true, the successor is removed
// from the tree and the walk continues; if it returns false, the
// caller is expected to have mutated the intervals in place so they no
// longer overlap, and the walk advances past the pair.
type Resolver[T ivtree.Ordered[T], I ivtree.Interval[T]] func(current, next I) bool

// self is one tree node: it carries the stored interval, AVL tree
// linkage, and the prev/next pointers threading the in-order linked
// list through the sentinel head/tail.
type self[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	interval    I
	left, right *self[T, I]
	height      int
	prev, next  *self[T, I]
}

func (n *self[T, I]) heightOf() int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *self[T, I]) updateHeight() {
	n.height = avl.Height(n.left.heightOf(), n.right.heightOf())
}

// (a,c)b -rotL-> ((a,)b,)c
func (n *self[T, I]) rotateLeft() (root *self[T, I]) {
	root = n.right
	n.right = root.left
	root.left = n
	n.updateHeight()
	root.updateHeight()
	return
}

// (a,c)b -rotR-> (,(,c)b)a
func (n *self[T, I]) rotateRight() (root *self[T, I]) {
	root = n.left
	n.left = root.right
	root.right = n
	n.updateHeight()
	root.updateHeight()
	return
}

// rebalance restores the AVL invariant at n after a structural edit to
// one of its children, returning the (possibly new) subtree root.
func rebalance[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I]) *self[T, I] {
	n.updateHeight()
	bal := avl.Balance(n.left.heightOf(), n.right.heightOf())
	if !avl.Heavy(bal) {
		return n
	}
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
	return n
}

func insert[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I) (root, inserted *self[T, I]) {
	if n == nil {
		nn := &self[T, I]{interval: i}
		return nn, nn
	}
	if ivtree.CompareTo[T](i, n.interval) < 0 {
		n.left, inserted = insert[T, I](n.left, i)
	} else {
		n.right, inserted = insert[T, I](n.right, i)
	}
	return rebalance[T, I](n), inserted
}

func deleteMin[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I]) (root, min *self[T, I]) {
	if n.left == nil {
		return n.right, n
	}
	n.left, min = deleteMin[T, I](n.left)
	return rebalance[T, I](n), min
}

func deleteKey[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I], i I) (root *self[T, I], removed bool) {
	if n == nil {
		return nil, false
	}
	switch c := ivtree.CompareTo[T](i, n.interval); {
	case c < 0:
		n.left, removed = deleteKey[T, I](n.left, i)
	case c > 0:
		n.right, removed = deleteKey[T, I](n.right, i)
	default:
		removed = true
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			var succ *self[T, I]
			n.right, succ = deleteMin[T, I](n.right)
			succ.left, succ.right = n.left, n.right
			n = succ
		}
	}
	if removed {
		n = rebalance[T, I](n)
	}
	return n, removed
}

// Tree manages the root node of a doubly-linked finite interval tree.
type Tree[T ivtree.Ordered[T], I ivtree.Interval[T]] struct {
	root       *self[T, I]
	head, tail *self[T, I]
	size       int
}

// New returns an empty Tree with its sentinel list linked head-to-tail.
func New[T ivtree.Ordered[T], I ivtree.Interval[T]]() *Tree[T, I] {
	head := &self[T, I]{}
	tail := &self[T, I]{}
	head.next = tail
	tail.prev = head
	return &Tree[T, I]{head: head, tail: tail}
}

// Build constructs a Tree from an unsorted sequence of intervals. It
// fails with ErrInvalidInterval on the first malformed interval, or
// ErrOverlap on the first pair of distinct intervals that overlap.
func Build[T ivtree.Ordered[T], I ivtree.Interval[T]](items []I) (*Tree[T, I], error) {
	t := New[T, I]()
	for _, it := range items {
		ok, err := t.Add(it)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ivtree.ErrOverlap
		}
	}
	return t, nil
}

// Size returns the number of stored intervals.
func (t *Tree[T, I]) Size() int { return t.size }

// Empty reports whether the collection holds no intervals.
func (t *Tree[T, I]) Empty() bool { return t.size == 0 }

func (t *Tree[T, I]) locate(i I) (pred, succ *self[T, I]) {
	pred, succ = t.head, t.tail
	n := t.root
	for n != nil {
		if ivtree.CompareTo[T](i, n.interval) < 0 {
			succ = n
			n = n.left
		} else {
			pred = n
			n = n.right
		}
	}
	return
}

func (t *Tree[T, I]) find(i I) *self[T, I] {
	n := t.root
	for n != nil {
		switch c := ivtree.CompareTo[T](i, n.interval); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

func linkBetween[T ivtree.Ordered[T], I ivtree.Interval[T]](pred, succ, n *self[T, I]) {
	n.prev, n.next = pred, succ
	pred.next, succ.prev = n, n
}

func unlink[T ivtree.Ordered[T], I ivtree.Interval[T]](n *self[T, I]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// Add inserts i if and only if i does not overlap its list predecessor
// or successor. It returns false, nil without modifying the tree when
// it would overlap either neighbor.
func (t *Tree[T, I]) Add(i I) (bool, error) {
	if err := ivtree.Validate[T](i); err != nil {
		return false, err
	}
	pred, succ := t.locate(i)
	if pred != t.head && ivtree.Overlaps[T](pred.interval, i) {
		return false, nil
	}
	if succ != t.tail && ivtree.Overlaps[T](succ.interval, i) {
		return false, nil
	}
	var nn *self[T, I]
	t.root, nn = insert[T, I](t.root, i)
	linkBetween[T, I](pred, succ, nn)
	t.size++
	return true, nil
}

// Remove deletes i, located by CompareTo position (the pairwise
// non-overlapping invariant means no two distinct stored intervals can
// share a position, so position identifies the stored reference).
func (t *Tree[T, I]) Remove(i I) (bool, error) {
	n := t.find(i)
	if n == nil {
		return false, nil
	}
	unlink[T, I](n)
	var removed bool
	t.root, removed = deleteKey[T, I](t.root, i)
	if removed {
		t.size--
	}
	return removed, nil
}

func (t *Tree[T, I]) removeNode(n *self[T, I]) {
	unlink[T, I](n)
	t.root, _ = deleteKey[T, I](t.root, n.interval)
	t.size--
}

// ForceAdd inserts i unconditionally, then walks forward from it
// resolving every adjacent overlapping pair via resolve. If resolve
// returns true the successor is removed and the walk continues,
// checking continueWhenNoConflict (if non-nil) to decide whether to
// keep scanning past the just-resolved conflict; if resolve returns
// false the caller must have mutated the intervals in place so they no
// longer overlap, and the walk advances past the pair without removing
// anything, panicking if the overlap is still there. The walk stops as
// soon as it reaches a pair that does not overlap. If forcePosition is
// true, a symmetric backward pass is run first against the
// predecessors of the inserted node.
func (t *Tree[T, I]) ForceAdd(i I, resolve Resolver[T, I], continueWhenNoConflict func() bool, forcePosition bool) (bool, error) {
	if err := ivtree.Validate[T](i); err != nil {
		return false, err
	}
	pred, succ := t.locate(i)
	var nn *self[T, I]
	t.root, nn = insert[T, I](t.root, i)
	linkBetween[T, I](pred, succ, nn)
	t.size++

	if forcePosition {
		t.resolveBackward(nn, resolve, continueWhenNoConflict)
	}
	t.resolveForward(nn, resolve, continueWhenNoConflict)
	return true, nil
}

func (t *Tree[T, I]) resolveForward(start *self[T, I], resolve Resolver[T, I], continueWhenNoConflict func() bool) {
	current := start
	for {
		next := current.next
		if next == t.tail {
			return
		}
		if !ivtree.Overlaps[T](current.interval, next.interval) {
			return
		}
		if resolve(current.interval, next.interval) {
			t.removeNode(next)
			if continueWhenNoConflict != nil && !continueWhenNoConflict() {
				return
			}
			continue
		}
		if ivtree.Overlaps[T](current.interval, next.interval) {
			panic("finite: resolver left adjacent intervals overlapping")
		}
		current = next
	}
}

func (t *Tree[T, I]) resolveBackward(start *self[T, I], resolve Resolver[T, I], continueWhenNoConflict func() bool) {
	current := start
	for {
		prev := current.prev
		if prev == t.head {
			return
		}
		if !ivtree.Overlaps[T](prev.interval, current.interval) {
			return
		}
		if resolve(prev.interval, current.interval) {
			t.removeNode(prev)
			if continueWhenNoConflict != nil && !continueWhenNoConflict() {
				return
			}
			continue
		}
		if ivtree.Overlaps[T](prev.interval, current.interval) {
			panic("finite: resolver left adjacent intervals overlapping")
		}
		current = prev
	}
}

// Span returns the smallest interval containing every stored
// interval.
func (t *Tree[T, I]) Span() (ivtree.Span[T], error) {
	if t.size == 0 {
		return ivtree.Span[T]{}, ivtree.ErrNoSuchItem
	}
	return ivtree.Join[T](t.head.next.interval, t.tail.prev.interval), nil
}

// Lowest returns the interval with the lowest CompareLow order.
func (t *Tree[T, I]) Lowest() (I, error) {
	var zero I
	if t.size == 0 {
		return zero, ivtree.ErrNoSuchItem
	}
	return t.head.next.interval, nil
}

// Highest returns the interval(s) tied for the highest CompareHigh
// order; the non-overlapping invariant means this is always exactly
// one interval.
func (t *Tree[T, I]) Highest() ([]I, error) {
	if t.size == 0 {
		return nil, ivtree.ErrNoSuchItem
	}
	return []I{t.tail.prev.interval}, nil
}

// Sorted yields every stored interval in CompareTo ascending order via
// the in-order linked list.
func (t *Tree[T, I]) Sorted() ivtree.Seq[I] {
	return func(yield func(I) bool) {
		for n := t.head.next; n != t.tail; n = n.next {
			if !yield(n.interval) {
				return
			}
		}
	}
}

func (t *Tree[T, I]) firstOverlap(query I) *self[T, I] {
	var result *self[T, I]
	n := t.root
	for n != nil {
		switch {
		case ivtree.Overlaps[T](n.interval, query):
			result = n
			n = n.left
		case ivtree.CompareLowHigh[T](n.interval, query) > 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return result
}

// FindOverlapsInterval descends to the first in-order node overlapping
// query, then walks the linked list while the overlap holds.
func (t *Tree[T, I]) FindOverlapsInterval(query I) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		n := t.firstOverlap(query)
		for n != nil {
			if !ivtree.Overlaps[T](n.interval, query) {
				return
			}
			if !yield(n.interval) {
				return
			}
			n = n.next
			if n == t.tail {
				return
			}
		}
	}
}

// FindOverlaps yields the single interval containing point, if any;
// the non-overlapping invariant means there is never more than one.
func (t *Tree[T, I]) FindOverlaps(point T) ivtree.Seq[I] {
	return func(yield func(I) bool) {
		n := t.root
		for n != nil {
			switch c := ivtree.ComparePoint[T](point, n.interval); {
			case c < 0:
				n = n.left
			case c > 0:
				n = n.right
			default:
				yield(n.interval)
				return
			}
		}
	}
}

// FindOverlap returns the first (only) interval containing point.
func (t *Tree[T, I]) FindOverlap(point T) (I, bool) {
	var found I
	ok := false
	for i := range t.FindOverlaps(point) {
		found, ok = i, true
		break
	}
	return found, ok
}

// FindOverlapInterval returns the first interval overlapping query.
func (t *Tree[T, I]) FindOverlapInterval(query I) (I, bool) {
	n := t.firstOverlap(query)
	if n == nil || !ivtree.Overlaps[T](n.interval, query) {
		var zero I
		return zero, false
	}
	return n.interval, true
}

// CountOverlaps returns 1 if an interval contains point, else 0.
func (t *Tree[T, I]) CountOverlaps(point T) int {
	if _, ok := t.FindOverlap(point); ok {
		return 1
	}
	return 0
}

// CountOverlapsInterval counts the stored intervals overlapping query.
func (t *Tree[T, I]) CountOverlapsInterval(query I) int {
	n := 0
	for range t.FindOverlapsInterval(query) {
		n++
	}
	return n
}

func (t *Tree[T, I]) sortedIntervals() []ivtree.Interval[T] {
	out := make([]ivtree.Interval[T], 0, t.size)
	for n := t.head.next; n != t.tail; n = n.next {
		out = append(out, n.interval)
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
		for g := range sweep.Gaps[T](bound, t.sortedIntervals()) {
			if !yield(g) {
				return
			}
		}
	}
}

// FindGaps yields the complement of the stored intervals within query.
func (t *Tree[T, I]) FindGaps(query I) ivtree.Seq[ivtree.Span[T]] {
	return func(yield func(ivtree.Span[T]) bool) {
		for g := range sweep.Gaps[T](query, t.sortedIntervals()) {
			if !yield(g) {
				return
			}
		}
	}
}

// MaxDepth is always 1 for a non-empty Tree and 0 when empty, since
// the pairwise non-overlapping invariant forbids any deeper stacking.
func (t *Tree[T, I]) MaxDepth() int {
	if t.size == 0 {
		return 0
	}
	return 1
}

// Clear empties the tree.
func (t *Tree[T, I]) Clear() error {
	t.root = nil
	t.head.next = t.tail
	t.tail.prev = t.head
	t.size = 0
	return nil
}

// Stab returns the intervals containing point as a slice, for callers
// that don't need FindOverlaps's laziness.
func (t *Tree[T, I]) Stab(point T) []I { return ivtree.Collect(t.FindOverlaps(point)) }

// FindOverlapsSorted returns the intervals overlapping query as a
// slice, for callers that don't need FindOverlapsInterval's laziness.
func (t *Tree[T, I]) FindOverlapsSorted(query I) []I { return ivtree.Collect(t.FindOverlapsInterval(query)) }
