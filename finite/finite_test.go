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

package finite_test

import (
	"testing"

	check "gopkg.in/check.v1"

	"github.com/dkortschak/ivtree"
	"github.com/dkortschak/ivtree/finite"
	"github.com/dkortschak/ivtree/numeric"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

var _ ivtree.Collection[numeric.Int, ivtree.Span[numeric.Int]] = finite.New[numeric.Int, ivtree.Span[numeric.Int]]()

func mustSpan(lo, hi int, loIncl, hiIncl bool) ivtree.Span[numeric.Int] {
	s, err := ivtree.NewSpan[numeric.Int](numeric.Int(lo), numeric.Int(hi), loIncl, hiIncl)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *S) TestAddRejectsOverlapWithNeighbor(c *check.C) {
	t := finite.New[numeric.Int, ivtree.Span[numeric.Int]]()
	ok, err := t.Add(mustSpan(0, 1, true, false))
	c.Assert(err, check.IsNil)
	c.Assert(ok, check.Equals, true)
	ok, err = t.Add(mustSpan(1, 2, true, false))
	c.Assert(err, check.IsNil)
	c.Assert(ok, check.Equals, true)
	ok, err = t.Add(mustSpan(3, 4, true, true))
	c.Assert(err, check.IsNil)
	c.Assert(ok, check.Equals, true)
	c.Check(t.Size(), check.Equals, 3)

	// add([2,3)) succeeds: it falls strictly between [1,2) and [3,4].
	ok, err = t.Add(mustSpan(2, 3, true, false))
	c.Assert(err, check.IsNil)
	c.Check(ok, check.Equals, true)
	c.Check(t.Size(), check.Equals, 4)

	// add([1,3)) fails: it overlaps both its predecessor [1,2) and its
	// successor [2,3).
	ok, err = t.Add(mustSpan(1, 3, true, false))
	c.Assert(err, check.IsNil)
	c.Check(ok, check.Equals, false)
	c.Check(t.Size(), check.Equals, 4)

	var got []ivtree.Span[numeric.Int]
	for iv := range t.Sorted() {
		got = append(got, iv)
	}
	c.Assert(len(got), check.Equals, 4)
	c.Check(got[0].Low(), check.Equals, numeric.Int(0))
	c.Check(got[3].Low(), check.Equals, numeric.Int(3))
}

func (s *S) TestForceAddRemovesConflictingNeighbors(c *check.C) {
	t := finite.New[numeric.Int, ivtree.Span[numeric.Int]]()
	for _, iv := range []ivtree.Span[numeric.Int]{
		mustSpan(0, 1, true, false),
		mustSpan(1, 2, true, false),
		mustSpan(3, 4, true, true),
	} {
		ok, err := t.Add(iv)
		c.Assert(err, check.IsNil)
		c.Assert(ok, check.Equals, true)
	}

	alwaysRemove := func(current, next ivtree.Span[numeric.Int]) bool { return true }
	ok, err := t.ForceAdd(mustSpan(1, 3, true, true), alwaysRemove, nil, true)
	c.Assert(err, check.IsNil)
	c.Check(ok, check.Equals, true)

	var got []ivtree.Span[numeric.Int]
	for iv := range t.Sorted() {
		got = append(got, iv)
	}
	c.Assert(len(got), check.Equals, 2)
	c.Check(got[0].Low(), check.Equals, numeric.Int(0))
	c.Check(got[0].High(), check.Equals, numeric.Int(1))
	c.Check(got[1].Low(), check.Equals, numeric.Int(1))
	c.Check(got[1].High(), check.Equals, numeric.Int(3))
}

func (s *S) TestFindOverlapInterval(c *check.C) {
	t := finite.New[numeric.Int, ivtree.Span[numeric.Int]]()
	for _, iv := range []ivtree.Span[numeric.Int]{
		mustSpan(0, 1, true, false),
		mustSpan(2, 5, true, false),
		mustSpan(7, 9, true, true),
	} {
		_, err := t.Add(iv)
		c.Assert(err, check.IsNil)
	}

	found, ok := t.FindOverlap(numeric.Int(3))
	c.Assert(ok, check.Equals, true)
	c.Check(found.Low(), check.Equals, numeric.Int(2))

	_, ok = t.FindOverlap(numeric.Int(6))
	c.Check(ok, check.Equals, false)

	var got []ivtree.Span[numeric.Int]
	for iv := range t.FindOverlapsInterval(mustSpan(1, 8, true, true)) {
		got = append(got, iv)
	}
	c.Assert(len(got), check.Equals, 2)
	c.Check(got[0].Low(), check.Equals, numeric.Int(2))
	c.Check(got[1].Low(), check.Equals, numeric.Int(7))

	c.Check(t.MaxDepth(), check.Equals, 1)
}

func (s *S) TestGaps(c *check.C) {
	t := finite.New[numeric.Int, ivtree.Span[numeric.Int]]()
	for _, iv := range []ivtree.Span[numeric.Int]{
		mustSpan(1, 2, true, true),
		mustSpan(3, 4, true, true),
		mustSpan(7, 9, true, true),
	} {
		_, err := t.Add(iv)
		c.Assert(err, check.IsNil)
	}

	var got []ivtree.Span[numeric.Int]
	for g := range t.Gaps() {
		got = append(got, g)
	}
	c.Assert(len(got), check.Equals, 2)
	c.Check(got[0].Low(), check.Equals, numeric.Int(2))
	c.Check(got[0].High(), check.Equals, numeric.Int(3))
	c.Check(got[1].Low(), check.Equals, numeric.Int(4))
	c.Check(got[1].High(), check.Equals, numeric.Int(7))
}

func (s *S) TestRemoveAndClear(c *check.C) {
	t := finite.New[numeric.Int, ivtree.Span[numeric.Int]]()
	a := mustSpan(0, 1, true, false)
	b := mustSpan(1, 2, true, false)
	_, _ = t.Add(a)
	_, _ = t.Add(b)

	ok, err := t.Remove(a)
	c.Assert(err, check.IsNil)
	c.Check(ok, check.Equals, true)
	c.Check(t.Size(), check.Equals, 1)

	ok, err = t.Remove(a)
	c.Assert(err, check.IsNil)
	c.Check(ok, check.Equals, false)

	c.Assert(t.Clear(), check.IsNil)
	c.Check(t.Size(), check.Equals, 0)
	c.Check(t.Empty(), check.Equals, true)
}

func (s *S) TestBuildRejectsOverlap(c *check.C) {
	_, err := finite.Build[numeric.Int, ivtree.Span[numeric.Int]]([]ivtree.Span[numeric.Int]{
		mustSpan(0, 5, true, true),
		mustSpan(3, 8, true, true),
	})
	c.Check(err, check.Equals, ivtree.ErrOverlap)
}
