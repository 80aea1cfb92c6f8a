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

package sweep_test

import (
	"testing"

	check "gopkg.in/check.v1"

	"github.com/dkortschak/ivtree"
	"github.com/dkortschak/ivtree/numeric"
	"github.com/dkortschak/ivtree/sweep"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func mustSpan(lo, hi int, loIncl, hiIncl bool) ivtree.Span[numeric.Int] {
	s, err := ivtree.NewSpan[numeric.Int](numeric.Int(lo), numeric.Int(hi), loIncl, hiIncl)
	if err != nil {
		panic(err)
	}
	return s
}

func asIntervals(spans ...ivtree.Span[numeric.Int]) []ivtree.Interval[numeric.Int] {
	out := make([]ivtree.Interval[numeric.Int], len(spans))
	for i, s := range spans {
		out[i] = s
	}
	return out
}

func (s *S) TestMaxDepthStabbingScenario(c *check.C) {
	// {[1,5], [2,6), (3,4], [5,7]}
	set := asIntervals(
		mustSpan(1, 5, true, true),
		mustSpan(2, 6, true, false),
		mustSpan(3, 4, false, true),
		mustSpan(5, 7, true, true),
	)
	c.Check(sweep.MaxDepth[numeric.Int](set), check.Equals, 3)
}

func (s *S) TestUniqueEndpoints(c *check.C) {
	set := asIntervals(
		mustSpan(1, 5, true, true),
		mustSpan(5, 7, true, true),
		mustSpan(2, 6, true, false),
	)
	got := sweep.UniqueEndpoints[numeric.Int](set)
	want := []numeric.Int{1, 2, 5, 6, 7}
	c.Assert(len(got), check.Equals, len(want))
	for i := range want {
		c.Check(got[i], check.Equals, want[i])
	}
}

func (s *S) TestGapsOnSortedNonOverlapping(c *check.C) {
	set := asIntervals(
		mustSpan(1, 2, true, true),
		mustSpan(3, 4, true, true),
		mustSpan(7, 9, true, true),
	)
	bound := mustSpan(1, 9, true, true)
	var got []ivtree.Span[numeric.Int]
	for g := range sweep.Gaps[numeric.Int](bound, set) {
		got = append(got, g)
	}
	c.Assert(len(got), check.Equals, 2)
	c.Check(got[0].Low(), check.Equals, numeric.Int(2))
	c.Check(got[0].High(), check.Equals, numeric.Int(3))
	c.Check(got[0].LowIncluded(), check.Equals, false)
	c.Check(got[0].HighIncluded(), check.Equals, false)
	c.Check(got[1].Low(), check.Equals, numeric.Int(4))
	c.Check(got[1].High(), check.Equals, numeric.Int(7))
}

func (s *S) TestCollapseMergesOverlapping(c *check.C) {
	set := asIntervals(
		mustSpan(1, 5, true, true),
		mustSpan(3, 8, true, true),
		mustSpan(10, 12, true, true),
	)
	runs := sweep.Collapse[numeric.Int](set)
	c.Assert(len(runs), check.Equals, 2)
	c.Check(runs[0].Low(), check.Equals, numeric.Int(1))
	c.Check(runs[0].High(), check.Equals, numeric.Int(8))
	c.Check(runs[1].Low(), check.Equals, numeric.Int(10))
}
