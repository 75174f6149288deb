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

package input

import (
	"context"
	"math/bits"
	"sync"
	"sync/atomic"
)

// NumKeys is the number of keys on the keypad. Keys are numbered 0x0 to 0xf.
const NumKeys = 16

// Keypad is the state of the sixteen key keypad. The GUI goroutine publishes
// the keys that are currently down and the VM goroutine queries them.
//
// Queries never block. The bitmap is stored atomically and no lock is held
// while the VM reads it.
type Keypad struct {
	state atomic.Uint32

	// crit protects the changed channel and the read-modify-write of state
	// in Press() and Release()
	crit sync.Mutex

	// closed and replaced whenever the state is published. any number of
	// waiters can select on the channel
	changed chan struct{}
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{
		changed: make(chan struct{}),
	}
}

// IsPressed returns true if the key is currently down. Keys outside the range
// 0x0 to 0xf are never pressed.
func (kp *Keypad) IsPressed(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	return kp.state.Load()&(1<<key) != 0
}

// Snapshot returns the bitmap of keys that are currently down. Bit n is set
// if key n is down.
func (kp *Keypad) Snapshot() uint16 {
	return uint16(kp.state.Load())
}

// Publish replaces the state of the keypad with the bitmap. Bit n is set if
// key n is down.
func (kp *Keypad) Publish(bitmap uint16) {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.publish(bitmap)
}

// publish must be called with the critical section held.
func (kp *Keypad) publish(bitmap uint16) {
	kp.state.Store(uint32(bitmap))
	close(kp.changed)
	kp.changed = make(chan struct{})
}

// Press sets the key as being down. Keys outside the range 0x0 to 0xf are
// ignored.
func (kp *Keypad) Press(key uint8) {
	if key >= NumKeys {
		return
	}
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.publish(uint16(kp.state.Load()) | 1<<key)
}

// Release sets the key as being up. Keys outside the range 0x0 to 0xf are
// ignored.
func (kp *Keypad) Release(key uint8) {
	if key >= NumKeys {
		return
	}
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.publish(uint16(kp.state.Load()) &^ (1 << key))
}

// WaitForKey blocks until a key that was up when the function was called, or
// that has been released since, is pressed. Returns the lowest numbered key
// if more than one key is pressed at the same time.
//
// Returns the context's error if the context is cancelled first.
func (kp *Keypad) WaitForKey(ctx context.Context) (uint8, error) {
	kp.crit.Lock()
	prev := uint16(kp.state.Load())
	changed := kp.changed
	kp.crit.Unlock()

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-changed:
		}

		kp.crit.Lock()
		curr := uint16(kp.state.Load())
		changed = kp.changed
		kp.crit.Unlock()

		if pressed := curr &^ prev; pressed != 0 {
			return uint8(bits.TrailingZeros16(pressed)), nil
		}
		prev = curr
	}
}
