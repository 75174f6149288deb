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

package input_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/test"
)

func TestPublish(t *testing.T) {
	kp := input.NewKeypad()
	test.ExpectEquality(t, kp.IsPressed(0x0), false)

	kp.Publish(0b1000_0000_0010_0001)
	test.ExpectEquality(t, kp.IsPressed(0x0), true)
	test.ExpectEquality(t, kp.IsPressed(0x5), true)
	test.ExpectEquality(t, kp.IsPressed(0xf), true)
	test.ExpectEquality(t, kp.IsPressed(0x1), false)

	// keys out of range are never pressed
	kp.Publish(0xffff)
	test.ExpectEquality(t, kp.IsPressed(0x10), false)
	test.ExpectEquality(t, kp.IsPressed(0xff), false)
}

func TestPressRelease(t *testing.T) {
	kp := input.NewKeypad()

	kp.Press(0xa)
	kp.Press(0x3)
	test.ExpectEquality(t, kp.Snapshot(), uint16(0b0000_0100_0000_1000))

	kp.Release(0xa)
	test.ExpectEquality(t, kp.Snapshot(), uint16(0b0000_0000_0000_1000))

	// ignored
	kp.Press(0x20)
	test.ExpectEquality(t, kp.Snapshot(), uint16(0b0000_0000_0000_1000))
}

func TestWaitForKey(t *testing.T) {
	kp := input.NewKeypad()

	// key 3 is already down when the wait begins so it doesn't count
	kp.Press(0x3)

	done := make(chan uint8)
	go func() {
		k, err := kp.WaitForKey(context.Background())
		test.ExpectSuccess(t, err)
		done <- k
	}()

	// the waiter may not have started before the first press so keep
	// pressing and releasing until it sees a press
	timeout := time.After(time.Second)
	for {
		kp.Press(0xc)
		select {
		case k := <-done:
			test.ExpectEquality(t, k, uint8(0xc))
			return
		case <-time.After(10 * time.Millisecond):
			kp.Release(0xc)
		case <-timeout:
			t.Fatalf("WaitForKey() did not return")
		}
	}
}

func TestWaitForKeyCancel(t *testing.T) {
	kp := input.NewKeypad()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := kp.WaitForKey(ctx)
	test.ExpectSuccess(t, errors.Is(err, context.DeadlineExceeded))
}

func TestKeyFromName(t *testing.T) {
	for _, c := range []struct {
		name string
		key  uint8
		ok   bool
	}{
		{"0", 0x0, true},
		{"9", 0x9, true},
		{"a", 0xa, true},
		{"F", 0xf, true},
		{"Keypad 7", 0x7, true},
		{"G", 0, false},
		{"Space", 0, false},
		{"", 0, false},
	} {
		k, ok := input.KeyFromName(c.name)
		test.ExpectEquality(t, ok, c.ok, c.name)
		test.ExpectEquality(t, k, c.key, c.name)
	}
}
