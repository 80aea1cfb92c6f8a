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

// Package ivtree defines the endpoint algebra and collection contract
// shared by every interval-indexing structure in this module: the
// doubly-linked finite interval tree (package finite), the interval
// binary search tree (package ibs), the dynamic interval tree (package
// dit), the layered and nested containment lists (package layered) and
// the static sorted list (package sortedlist).
//
// An endpoint domain T must supply a total order through Ordered; a
// stored interval I must supply Low, High and their inclusion flags
// through Interval. The algebra functions in this package (CompareLow,
// CompareHigh, Overlaps, Contains, ...) are pure and side-effect free
// and are the semantic core every index structure is built on.
package ivtree
