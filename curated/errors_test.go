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

package curated_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	// Has() should fail because we haven't included testErrorB anywhere
	f := curated.Errorf(testError, e)
	test.ExpectFailure(t, curated.Has(f, testErrorB))

	// wrap e inside a testErrorB. Is() will fail but Has() will succeed
	g := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(g, testError))
	test.ExpectSuccess(t, curated.Has(g, testError))
	test.ExpectSuccess(t, curated.Has(g, testErrorB))
}

func TestPlainErrors(t *testing.T) {
	e := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Has(e, testError))
	test.ExpectFailure(t, curated.IsAny(nil))

	f := curated.Errorf(testError, io.EOF)
	test.ExpectSuccess(t, curated.IsAny(f))
	test.ExpectSuccess(t, errors.Is(f, io.EOF))
	test.ExpectEquality(t, f.Error(), "test error: EOF")
}

func TestHasThroughPlainWrap(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := fmt.Errorf("context: %w", e)
	test.ExpectFailure(t, curated.IsAny(f))
	test.ExpectSuccess(t, curated.Has(f, testError))

	g := curated.Errorf("outer: %v", e)
	test.ExpectSuccess(t, curated.Has(g, testError))
	test.ExpectEquality(t, g.Error(), "outer: test error: foo")
}
