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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/prefs"
	"github.com/jetsetilly/gopher6502/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.Get().(bool), false)

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, b.String(), "true")

	test.ExpectSuccess(t, b.Set("FALSE"))
	test.ExpectEquality(t, b.Get().(bool), false)

	test.ExpectFailure(t, b.Set(10))
}

func TestInt(t *testing.T) {
	var i prefs.Int
	test.ExpectEquality(t, i.Get().(int), 0)

	test.ExpectSuccess(t, i.Set("0xfffc"))
	test.ExpectEquality(t, i.Get().(int), 0xfffc)

	test.ExpectSuccess(t, i.Set(42))
	test.ExpectEquality(t, i.String(), "42")

	test.ExpectFailure(t, i.Set("forty two"))
	test.ExpectEquality(t, i.Get().(int), 42)
}

func TestHookPost(t *testing.T) {
	var s prefs.String
	var seen string
	s.SetHookPost(func(v prefs.Value) error {
		seen = v.(string)
		return nil
	})
	test.ExpectSuccess(t, s.Set("hello"))
	test.ExpectEquality(t, seen, "hello")
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var stack prefs.Bool
	var vector prefs.Int
	var name prefs.String

	test.ExpectSuccess(t, dsk.Add("cpu.hardwareStack", &stack))
	test.ExpectSuccess(t, dsk.Add("cpu.resetVector", &vector))
	test.ExpectSuccess(t, dsk.Add("name", &name))

	err = dsk.Add("name", &name)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	// loading a file that doesn't exist is not an error
	test.ExpectSuccess(t, dsk.Load())

	_ = stack.Set(true)
	_ = vector.Set(0xfffc)
	_ = name.Set("gopher")
	test.ExpectSuccess(t, dsk.Save())

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(d), prefs.WarningBoilerPlate))
	test.ExpectSuccess(t, strings.Contains(string(d), "cpu.resetVector :: 65532"))

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, stack.Get().(bool), false)
	test.ExpectEquality(t, vector.Get().(int), 0)

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, stack.Get().(bool), true)
	test.ExpectEquality(t, vector.Get().(int), 0xfffc)
	test.ExpectEquality(t, name.String(), "gopher")
}

func TestDiskPreservesUnknownKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.prefs")
	err := os.WriteFile(fn, []byte(prefs.WarningBoilerPlate+"\nother.key :: 10\n"), 0o600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("cpu.clock", &v))
	_ = v.Set(2)
	test.ExpectSuccess(t, dsk.Save())

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "other.key :: 10"))
	test.ExpectSuccess(t, strings.Contains(string(d), "cpu.clock :: 2"))
}

func TestDiskMalformed(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.prefs")
	err := os.WriteFile(fn, []byte(prefs.WarningBoilerPlate+"\nno separator here\n"), 0o600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.MalformedLine))
}

func TestFloat(t *testing.T) {
	var f prefs.Float
	test.ExpectEquality(t, f.Get().(float64), 0.0)

	test.ExpectSuccess(t, f.Set("1.193182"))
	test.ExpectEquality(t, f.Get().(float64), 1.193182)
	test.ExpectEquality(t, f.String(), "1.193182")

	test.ExpectSuccess(t, f.Set(2))
	test.ExpectEquality(t, f.Get().(float64), 2.0)
}
