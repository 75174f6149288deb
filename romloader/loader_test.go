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


package romloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

var program = []byte{0x60, 0x05, 0x61, 0x03, 0x80, 0x14}

func writeROM(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestFile(t *testing.T) {
	fn := writeROM(t, program)

	ld := romloader.NewLoader(fn)
	test.ExpectFailure(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.ShortName(), "test")

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectDiff(t, ld.Data, program)
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(program)))

	// loading again does nothing
	test.ExpectSuccess(t, ld.Load())
}

func TestHash(t *testing.T) {
	fn := writeROM(t, program)

	ld := romloader.NewLoader(fn)
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(program))
	test.ExpectSuccess(t, ld.Load())

	ld = romloader.NewLoader(fn)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoadError))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestMissingAndEmpty(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoadError))

	ld = romloader.NewLoader(writeROM(t, []byte{}))
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoadError))
}

func TestUnsupportedScheme(t *testing.T) {
	ld := romloader.NewLoader("ftp://example.com/test.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoadError))
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.ch8" {
			http.NotFound(w, r)
			return
		}
		w.Write(program)
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/test.ch8")
	test.DemandSuccess(t, ld.Load())
	test.ExpectDiff(t, ld.Data, program)

	ld = romloader.NewLoader(srv.URL + "/missing.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoadError))
}
