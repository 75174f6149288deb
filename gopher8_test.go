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


package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/test"
)

// a mainSync that accepts state requests without a main thread. no gui can
// be created
func newTestSync(t *testing.T) *mainSync {
	t.Helper()

	sync := &mainSync{
		state: make(chan stateRequest),
	}

	done := make(chan bool)
	go func() {
		for {
			select {
			case <-sync.state:
			case <-done:
				return
			}
		}
	}()
	t.Cleanup(func() { close(done) })

	return sync
}

// writes the program to a file in a temporary resource directory and makes
// that the current directory.
func writeROM(t *testing.T, program ...uint8) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	test.DemandSuccess(t, os.Mkdir(".gopher8", 0o700))

	fn := filepath.Join(dir, "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o600))

	return fn
}

func newModes(t *testing.T, mode string, args ...string) (*modalflag.Modes, *test.Writer) {
	t.Helper()

	tw := &test.Writer{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs(append([]string{mode}, args...))
	md.AddSubModes("RUN", "DEBUG", "DISASM")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	return md, tw
}

func TestDisasmMode(t *testing.T) {
	fn := writeROM(t, 0x60, 0x05, 0x12, 0x00)

	md, tw := newModes(t, "disasm", "-bytes", fn)
	test.DemandSuccess(t, disasm(md))

	test.ExpectEquality(t, tw.String(), "* 200  60 05  LD V0, $05\n* 202  12 00  JP $200\n")
}

func TestDisasmModeNoROM(t *testing.T) {
	md, _ := newModes(t, "disasm")
	test.ExpectFailure(t, disasm(md))
}

func TestRunModeDigest(t *testing.T) {
	fn := writeROM(t,
		0x60, 0x00, // LD V0, 0
		0xf0, 0x29, // LD F, V0
		0xd0, 0x05, // DRW V0, V0, 5
		0x12, 0x04, // JP $204
	)

	md, tw := newModes(t, "run", "-gui", "none", "-cycles", "10", "-digest", fn)
	test.DemandSuccess(t, run(md, newTestSync(t)))

	// the DRW instruction is executed every other cycle after the first two
	out := tw.String()
	test.ExpectSuccess(t, strings.HasSuffix(out, " (4 frames)\n"), out)

	// the same program produces the same digest
	md, tw = newModes(t, "run", "-gui", "none", "-cycles", "10", "-digest", fn)
	test.DemandSuccess(t, run(md, newTestSync(t)))
	test.ExpectEquality(t, tw.String(), out)

	// preferences were saved to the local resource directory
	_, err := os.Stat(filepath.Join(".gopher8", "preferences"))
	test.ExpectSuccess(t, err)
}

func TestRunModeFault(t *testing.T) {
	fn := writeROM(t, 0x00, 0xee)

	md, _ := newModes(t, "run", "-gui", "none", fn)
	test.ExpectFailure(t, run(md, newTestSync(t)))
}
