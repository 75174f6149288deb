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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// CycleCounter implementations report how many cycles the VM has executed.
type CycleCounter interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// VM. The same cycle count always produces the same number for a given seed.
type Random struct {
	counter CycleCounter

	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(counter CycleCounter) *Random {
	return &Random{
		counter: counter,
	}
}

func (rnd *Random) rand() *rand.Rand {
	var cycles uint64
	if rnd.counter != nil {
		cycles = rnd.counter.Cycles()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewPCG(0, cycles))
	}
	return rand.New(rand.NewPCG(baseSeed, cycles))
}

// Byte returns a random number in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rand().UintN(256))
}
