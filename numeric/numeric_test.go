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

package numeric_test

import (
	"testing"
	"time"

	check "gopkg.in/check.v1"

	"github.com/dkortschak/ivtree/numeric"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestIntCompare(c *check.C) {
	c.Check(numeric.Int(1).Compare(numeric.Int(2)), check.Equals, -1)
	c.Check(numeric.Int(2).Compare(numeric.Int(1)), check.Equals, 1)
	c.Check(numeric.Int(2).Compare(numeric.Int(2)), check.Equals, 0)
}

func (s *S) TestFloat64Compare(c *check.C) {
	c.Check(numeric.Float64(1.5).Compare(numeric.Float64(1.25)), check.Equals, 1)
}

func (s *S) TestTimeCompare(c *check.C) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	early := numeric.Time{Time: base}
	late := numeric.Time{Time: base.Add(time.Hour)}
	c.Check(early.Compare(late), check.Equals, -1)
	c.Check(late.Compare(early), check.Equals, 1)
	c.Check(early.Compare(early), check.Equals, 0)
}
