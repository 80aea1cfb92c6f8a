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

package dit_test

import (
	"testing"
	"testing/quick"

	check "gopkg.in/check.v1"

	"github.com/dkortschak/ivtree"
	"github.com/dkortschak/ivtree/dit"
	"github.com/dkortschak/ivtree/numeric"
	"github.com/dkortschak/ivtree/sweep"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

var _ ivtree.Collection[numeric.Int, ivtree.Span[numeric.Int]] = dit.New[numeric.Int, ivtree.Span[numeric.Int]]()

func mustSpan(lo, hi int, loIncl, hiIncl bool) ivtree.Span[numeric.Int] {
	s, err := ivtree.NewSpan[numeric.Int](numeric.Int(lo), numeric.Int(hi), loIncl, hiIncl)
	if err != nil {
		panic(err)
	}
	return s
}

func containsLow(got []ivtree.Span[numeric.Int], lo int) bool {
	for _, iv := range got {
		if iv.Low() == numeric.Int(lo) {
			return true
		}
	}
	return false
}

func collect(seq ivtree.Seq[ivtree.Span[numeric.Int]]) []ivtree.Span[numeric.Int] {
	var out []ivtree.Span[numeric.Int]
	for iv := range seq {
		out = append(out, iv)
	}
	return out
}

func (s *S) TestRangeScenario(c *check.C) {
	t := dit.New[numeric.Int, ivtree.Span[numeric.Int]]()
	for _, iv := range []ivtree.Span[numeric.Int]{
		mustSpan(0, 10, true, false),
		mustSpan(1, 2, true, true),
		mustSpan(5, 6, true, false),
		mustSpan(8, 9, true, true),
	} {
		ok, err := t.Add(iv)
		c.Assert(err, check.IsNil)
		c.Assert(ok, check.Equals, true)
	}

	got := collect(t.FindOverlapsInterval(mustSpan(3, 7, true, false)))
	c.Assert(len(got), check.Equals, 2)
	c.Check(containsLow(got, 0), check.Equals, true)
	c.Check(containsLow(got, 5), check.Equals, true)

	c.Check(len(collect(t.FindOverlapsInterval(mustSpan(10, 11, true, true)))), check.Equals, 0)

	got = collect(t.FindOverlapsInterval(mustSpan(9, 10, true, true)))
	c.Assert(len(got), check.Equals, 2)
	c.Check(containsLow(got, 0), check.Equals, true)
	c.Check(containsLow(got, 8), check.Equals, true)
}

func (s *S) TestMaxDepthAndRemove(c *check.C) {
	t := dit.New[numeric.Int, ivtree.Span[numeric.Int]]()
	a := mustSpan(1, 5, true, true)
	b := mustSpan(3, 8, true, true)
	_, _ = t.Add(a)
	_, _ = t.Add(b)
	c.Check(t.MaxDepth(), check.Equals, 2)

	ok, err := t.Remove(b)
	c.Assert(err, check.IsNil)
	c.Check(ok, check.Equals, true)
	c.Check(t.Size(), check.Equals, 1)
	c.Check(t.MaxDepth(), check.Equals, 1)

	ok, err = t.Remove(b)
	c.Assert(err, check.IsNil)
	c.Check(ok, check.Equals, false)
}

func (s *S) TestHighestIntervals(c *check.C) {
	t := dit.New[numeric.Int, ivtree.Span[numeric.Int]]()
	_, _ = t.Add(mustSpan(0, 5, true, true))
	_, _ = t.Add(mustSpan(1, 9, true, true))
	_, _ = t.Add(mustSpan(2, 9, true, false))

	got, err := t.HighestIntervals()
	c.Assert(err, check.IsNil)
	c.Assert(len(got), check.Equals, 1)
	c.Check(got[0].Low(), check.Equals, numeric.Int(1))
}

func (s *S) TestGaps(c *check.C) {
	t := dit.New[numeric.Int, ivtree.Span[numeric.Int]]()
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
	c.Check(got[1].Low(), check.Equals, numeric.Int(4))
}

func (s *S) TestRemoveCyclesReturnToEmpty(c *check.C) {
	t := dit.New[numeric.Int, ivtree.Span[numeric.Int]]()
	spans := []ivtree.Span[numeric.Int]{
		mustSpan(0, 10, true, false),
		mustSpan(1, 2, true, true),
		mustSpan(5, 6, true, false),
		mustSpan(8, 9, true, true),
	}
	for round := 0; round < 50; round++ {
		for _, iv := range spans {
			ok, err := t.Add(iv)
			c.Assert(err, check.IsNil)
			c.Assert(ok, check.Equals, true)
		}
		for _, iv := range spans {
			ok, err := t.Remove(iv)
			c.Assert(err, check.IsNil)
			c.Assert(ok, check.Equals, true)
		}
	}
	c.Check(t.Size(), check.Equals, 0)
	c.Check(t.Empty(), check.Equals, true)
	c.Check(t.MaxDepth(), check.Equals, 0)
	c.Check(len(collect(t.FindOverlaps(numeric.Int(3)))), check.Equals, 0)
	c.Check(len(collect(t.FindOverlapsInterval(mustSpan(0, 10, true, true)))), check.Equals, 0)
}

func (s *S) TestRemoveOneDuplicateLeavesOtherIntact(c *check.C) {
	t := dit.New[numeric.Int, ivtree.Span[numeric.Int]]()
	a := mustSpan(1, 5, true, true)
	b := mustSpan(1, 5, true, true)
	_, _ = t.Add(a)
	_, _ = t.Add(b)
	c.Check(t.Size(), check.Equals, 2)

	ok, err := t.Remove(a)
	c.Assert(err, check.IsNil)
	c.Check(ok, check.Equals, true)
	c.Check(t.Size(), check.Equals, 1)
	c.Check(t.CountOverlaps(numeric.Int(3)), check.Equals, 1)

	ok, err = t.Remove(b)
	c.Assert(err, check.IsNil)
	c.Check(ok, check.Equals, true)
	c.Check(t.Size(), check.Equals, 0)
	c.Check(t.CountOverlaps(numeric.Int(3)), check.Equals, 0)
}

func (s *S) TestMaxDepthMatchesSweepBruteForce(c *check.C) {
	f := func(raw []int16) bool {
		if len(raw)%2 != 0 || len(raw) == 0 || len(raw) > 40 {
			return true
		}
		t := dit.New[numeric.Int, ivtree.Span[numeric.Int]]()
		var plain []ivtree.Interval[numeric.Int]
		for i := 0; i+1 < len(raw); i += 2 {
			lo, hi := int(raw[i]), int(raw[i+1])
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo == hi {
				hi = lo + 1
			}
			iv := mustSpan(lo, hi, true, true)
			_, _ = t.Add(iv)
			plain = append(plain, iv)
		}
		want := sweep.MaxDepth[numeric.Int](plain)
		return t.MaxDepth() == want
	}
	c.Assert(quick.Check(f, &quick.Config{MaxCount: 200}), check.IsNil)
}
