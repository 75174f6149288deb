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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/test"
)

func TestPeriod(t *testing.T) {
	p := limiter.NewPacer(500)
	test.ExpectEquality(t, p.Period(), 2*time.Millisecond)

	p.SetFrequency(60)
	test.ExpectEquality(t, p.Period(), time.Second/60)

	p.SetFrequency(0)
	test.ExpectEquality(t, p.Period(), time.Duration(0))
}

func TestPace(t *testing.T) {
	p := limiter.NewPacer(100)

	// pacing ten iterations at 100Hz should take at least 100ms
	begin := time.Now()
	for i := 0; i < 10; i++ {
		p.Pace(time.Now())
	}
	test.ExpectSuccess(t, time.Since(begin) >= 100*time.Millisecond)
}

func TestNoCatchUp(t *testing.T) {
	p := limiter.NewPacer(100)

	// an iteration that started long ago should not stall
	begin := time.Now()
	p.Pace(begin.Add(-time.Second))
	test.ExpectSuccess(t, time.Since(begin) < 10*time.Millisecond)
}
