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

// Package numeric adapts the ordered primitive types of the standard
// library and golang.org/x/exp/constraints to ivtree.Ordered, so callers
// indexing plain numbers or wall-clock times do not need to write their
// own Compare method.
package numeric

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Compare returns -1, 0 or 1 ordering a against b. The concrete wrapper
// types in this package all defer to it.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Int wraps int and implements ivtree.Ordered.
type Int int

// Compare implements ivtree.Ordered.
func (a Int) Compare(b Int) int { return Compare(int(a), int(b)) }

// Int64 wraps int64 and implements ivtree.Ordered.
type Int64 int64

// Compare implements ivtree.Ordered.
func (a Int64) Compare(b Int64) int { return Compare(int64(a), int64(b)) }

// Float64 wraps float64 and implements ivtree.Ordered.
type Float64 float64

// Compare implements ivtree.Ordered.
func (a Float64) Compare(b Float64) int { return Compare(float64(a), float64(b)) }

// Uint64 wraps uint64 and implements ivtree.Ordered.
type Uint64 uint64

// Compare implements ivtree.Ordered.
func (a Uint64) Compare(b Uint64) int { return Compare(uint64(a), uint64(b)) }

// Time wraps time.Time and gives it an ivtree.Ordered-conforming
// Compare method, so wall-clock intervals can be indexed directly.
type Time struct {
	time.Time
}

// Compare implements ivtree.Ordered.
func (a Time) Compare(b Time) int {
	switch {
	case a.Before(b.Time):
		return -1
	case a.After(b.Time):
		return 1
	default:
		return 0
	}
}
