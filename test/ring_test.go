// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestRingWriter(t *testing.T) {
	_, err := test.NewRingWriter(0)
	test.ExpectFailure(t, err)

	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)

	fmt.Fprint(r, "abc")
	test.ExpectEquality(t, r.String(), "abc")

	fmt.Fprint(r, "defghij")
	test.ExpectEquality(t, r.String(), "abcdefghij")

	fmt.Fprint(r, "kl")
	test.ExpectEquality(t, r.String(), "cdefghijkl")

	// larger than the ring
	fmt.Fprint(r, "0123456789ABCDEF")
	test.ExpectEquality(t, r.String(), "6789ABCDEF")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	fmt.Fprint(r, "xyz")
	test.ExpectEquality(t, r.String(), "xyz")
}

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, fmt.Errorf("test"))
	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, "a", "b")
	test.ExpectApproximate(t, 59.9, 60.0, 0.01)
	test.ExpectDiff(t, []int{1, 2, 3}, []int{1, 2, 3})
}
