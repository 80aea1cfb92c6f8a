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

package ivtree_test

import (
	"testing"
	"testing/quick"

	check "gopkg.in/check.v1"

	"github.com/dkortschak/ivtree"
	"github.com/dkortschak/ivtree/numeric"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func span(lo, hi int, loIncl, hiIncl bool) ivtree.Span[numeric.Int] {
	s, err := ivtree.NewSpan[numeric.Int](numeric.Int(lo), numeric.Int(hi), loIncl, hiIncl)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *S) TestValidate(c *check.C) {
	_, err := ivtree.NewSpan[numeric.Int](numeric.Int(5), numeric.Int(1), true, true)
	c.Check(err, check.Equals, ivtree.ErrInvalidInterval)

	_, err = ivtree.NewSpan[numeric.Int](numeric.Int(5), numeric.Int(5), true, false)
	c.Check(err, check.Equals, ivtree.ErrInvalidInterval)

	_, err = ivtree.NewSpan[numeric.Int](numeric.Int(5), numeric.Int(5), true, true)
	c.Check(err, check.Equals, nil)
}

func (s *S) TestOverlapsSymmetric(c *check.C) {
	a := span(1, 5, true, false)
	b := span(3, 7, true, true)
	c.Check(ivtree.Overlaps[numeric.Int](a, b), check.Equals, ivtree.Overlaps[numeric.Int](b, a))
	c.Check(ivtree.Overlaps[numeric.Int](a, b), check.Equals, true)

	d := span(5, 7, true, true)
	c.Check(ivtree.Overlaps[numeric.Int](a, d), check.Equals, false, check.Commentf("half-open [1,5) does not touch [5,7]"))
}

func (s *S) TestContainsReflexive(c *check.C) {
	a := span(2, 6, true, true)
	c.Check(ivtree.Contains[numeric.Int](a, a), check.Equals, true)
	c.Check(ivtree.StrictlyContains[numeric.Int](a, a), check.Equals, false)
}

func (s *S) TestCompareToAntisymmetric(c *check.C) {
	f := func(lo1, hi1, lo2, hi2 int16) bool {
		lo1, hi1 = order(lo1, hi1)
		lo2, hi2 = order(lo2, hi2)
		a := span(int(lo1), int(hi1), true, true)
		b := span(int(lo2), int(hi2), true, true)
		if ivtree.IntervalEquals[numeric.Int](a, b) {
			return true
		}
		return ivtree.CompareTo[numeric.Int](a, b) == -ivtree.CompareTo[numeric.Int](b, a)
	}
	if err := quick.Check(f, nil); err != nil {
		c.Error(err)
	}
}

func order(a, b int16) (int16, int16) {
	if a > b {
		return b, a
	}
	if a == b {
		return a, a
	}
	return a, b
}
