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


// Package assert contains checks that are only useful during development.
//
// The main thread functions help catch code that must run on the main
// thread (SDL window handling for example) being called from another
// goroutine.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GoroutineID returns an identifier for the calling goroutine. The result is
// different for different goroutines and the same every time for a given
// goroutine. It should only be used for debugging and testing.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// zero if RecordMainThread() has not been called
var mainThread atomic.Uint64

// RecordMainThread should be called once, by the main() function.
func RecordMainThread() {
	mainThread.Store(GoroutineID())
}

// IsMainThread returns true if called from the goroutine that called
// RecordMainThread(). Always returns true if RecordMainThread() has not been
// called.
func IsMainThread() bool {
	id := mainThread.Load()
	return id == 0 || id == GoroutineID()
}

// MainThread panics if not called from the main thread.
func MainThread(caller string) {
	if !IsMainThread() {
		panic(fmt.Sprintf("%s: must be called from the main thread", caller))
	}
}
