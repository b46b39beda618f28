// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package imageloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/logger"
)

// Sentinel error patterns.
const (
	LoaderError  = "imageloader: %v"
	EmptyImage   = "imageloader: empty image (%s)"
	ImageTooBig  = "imageloader: image is larger than memory (%d bytes)"
	HashMismatch = "imageloader: unexpected hash value"
)

// Loader is used to specify the program image to load into memory.
type Loader struct {
	// filename of image to load
	Filename string

	// the address of the first byte of the image
	Origin uint16

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Read() will not reload the
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, origin uint16) Loader {
	return Loader{
		Filename: filename,
		Origin:   origin,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	shortName := path.Base(ld.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(ld.Filename))
	return shortName
}

// HasLoaded returns true if Read() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Read the image data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Read() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	filename := ld.Filename

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
		if scheme == "file" {
			filename = u.Path
		}
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		fallthrough

	case "":
		ld.Data, err = os.ReadFile(filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(ld.Data) == 0 {
		return curated.Errorf(EmptyImage, ld.Filename)
	}
	if len(ld.Data) > memorymap.Size {
		n := len(ld.Data)
		ld.Data = nil
		return curated.Errorf(ImageTooBig, n)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(HashMismatch)
	}

	ld.Hash = hash

	return nil
}

// Load the image into memory at the origin address. Returns the number of
// bytes written.
func (ld *Loader) Load(mem cpubus.Memory) (int, error) {
	err := ld.Read()
	if err != nil {
		return 0, err
	}

	address := ld.Origin
	for _, b := range ld.Data {
		mem.Write(address, b)
		address++
	}

	logger.Logf(logger.Allow, "imageloader", "%s: %d bytes at %#04x", ld.ShortName(), len(ld.Data), ld.Origin)

	return len(ld.Data), nil
}

// InstallResetVector writes the address as a little-endian word at the reset
// vector.
func InstallResetVector(mem cpubus.Memory, address uint16) {
	memory.WriteWord(mem, nil, address, cpubus.Reset)
}
