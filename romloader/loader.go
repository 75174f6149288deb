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


package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// LoadError is the pattern for all errors returned by the romloader package.
const LoadError = "romloader: %v"

// FileExtensions is the list of file extensions commonly used for CHIP-8
// programs. The loader does not require any particular extension.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader specifies the ROM to load.
type Loader struct {
	// local filename or URL of the ROM
	Filename string

	// expected SHA1 of the ROM. an empty string indicates that the hash is
	// unknown. after a successful load it is the hash of the loaded data
	Hash string

	// the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without any path or extension.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the ROM data. Does nothing if the data has already been loaded.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = strings.ToLower(u.Scheme)
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = fetch(ld.Filename)
	case "file":
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
	default:
		// a single letter scheme is most likely a windows drive letter
		if len(scheme) == 1 {
			data, err = os.ReadFile(ld.Filename)
		} else {
			err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
		}
	}
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	if len(data) == 0 {
		return curated.Errorf(LoadError, fmt.Sprintf("empty ROM (%s)", ld.Filename))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	ld.Hash = hash
	ld.Data = data

	logger.Logf(logger.Allow, "romloader", "%s: %d bytes (%s)", ld.ShortName(), len(data), hash)

	return nil
}

func fetch(address string) ([]byte, error) {
	resp, err := http.Get(address)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
