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

package avl

import (
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestHeight(c *check.C) {
	c.Check(Height(-1, -1), check.Equals, 0)
	c.Check(Height(0, -1), check.Equals, 1)
	c.Check(Height(2, 1), check.Equals, 3)
}

func (s *S) TestDecideLeftLeft(c *check.C) {
	// Left-heavy node whose left child is itself left- or
	// balanced-heavy: single right rotation.
	c.Check(Decide(-2, -1), check.Equals, Right)
	c.Check(Decide(-2, 0), check.Equals, Right)
}

func (s *S) TestDecideLeftRight(c *check.C) {
	c.Check(Decide(-2, 1), check.Equals, LeftRight)
}

func (s *S) TestDecideRightRight(c *check.C) {
	c.Check(Decide(2, 1), check.Equals, Left)
	c.Check(Decide(2, 0), check.Equals, Left)
}

func (s *S) TestDecideRightLeft(c *check.C) {
	c.Check(Decide(2, -1), check.Equals, RightLeft)
}

func (s *S) TestHeavy(c *check.C) {
	c.Check(Heavy(-1), check.Equals, false)
	c.Check(Heavy(0), check.Equals, false)
	c.Check(Heavy(1), check.Equals, false)
	c.Check(Heavy(2), check.Equals, true)
	c.Check(Heavy(-2), check.Equals, true)
}
