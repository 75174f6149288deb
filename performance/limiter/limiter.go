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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Pacer can be created with:
//
//	pace := limiter.NewPacer(500)
//
// Each iteration of a loop is then stalled with the Pace() function, which
// should be given the time the iteration started. For example:
//
//	for {
//		start := time.Now()
//		step()
//		pace.Pace(start)
//	}
//
// An iteration that has already taken longer than the period is not stalled
// and no attempt is made to catch up on the lost time.
package limiter

import (
	"math"
	"sync/atomic"
	"time"
)

// Pacer stalls the caller so that iterations happen at no more than the
// configured rate.
type Pacer struct {
	period atomic.Int64 // time.Duration

	// measurement of the actual rate
	measureStart time.Time
	measureCount int
	measured     atomic.Uint64 // math.Float64bits
}

// how often the actual rate is measured
const measurementPeriod = time.Second

// NewPacer is the preferred method of initialisation for the Pacer type.
func NewPacer(frequency int) *Pacer {
	p := &Pacer{}
	p.SetFrequency(frequency)
	return p
}

// SetFrequency changes the rate at which the Pacer allows iterations. A
// frequency of zero or less disables pacing. Safe to call from any
// goroutine.
func (p *Pacer) SetFrequency(frequency int) {
	if frequency <= 0 {
		p.period.Store(0)
		return
	}
	p.period.Store(int64(time.Second) / int64(frequency))
}

// Period returns the duration of one iteration at the current frequency.
func (p *Pacer) Period() time.Duration {
	return time.Duration(p.period.Load())
}

// Pace blocks until one period has passed since start.
func (p *Pacer) Pace(start time.Time) {
	p.measure(start)

	period := p.Period()
	if period == 0 {
		return
	}

	if remaining := period - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}
}

func (p *Pacer) measure(start time.Time) {
	if p.measureStart.IsZero() {
		p.measureStart = start
	}
	p.measureCount++

	if d := start.Sub(p.measureStart); d >= measurementPeriod {
		p.measured.Store(math.Float64bits(float64(p.measureCount) / d.Seconds()))
		p.measureStart = start
		p.measureCount = 0
	}
}

// Measured returns the number of iterations per second most recently
// measured. Returns zero until enough time has passed for a measurement to
// have been taken. Safe to call from any goroutine.
func (p *Pacer) Measured() float64 {
	return math.Float64frombits(p.measured.Load())
}
