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

package ivtree

import "errors"

// ErrInvalidInterval is returned when an interval would be constructed
// with low greater than high, or with low equal to high but either
// endpoint excluded.
var ErrInvalidInterval = errors.New("ivtree: invalid interval")

// ErrReadOnly is returned by a mutator called on a structure that does
// not support mutation.
var ErrReadOnly = errors.New("ivtree: read-only")

// ErrNoSuchItem is returned by operations that require at least one
// stored interval (Span, Lowest, Highest) when the collection is empty.
var ErrNoSuchItem = errors.New("ivtree: no such item")

// ErrOverlap is returned by structures that hold a pairwise
// non-overlapping set (package finite) when an insertion would overlap
// an existing interval.
var ErrOverlap = errors.New("ivtree: overlap")
