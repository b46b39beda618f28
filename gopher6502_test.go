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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestRunMode(t *testing.T) {
	// LDA #$84 loaded at the default origin of 0xfffc
	fn := writeFile(t, "lda.bin", []byte{0xa9, 0x84})

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"run", fn}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "2 cycles"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "PC=0xfffe A=0x84"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "SR=Nv-bdizc"))
}

func TestRunModeVector(t *testing.T) {
	// LDX #$01 ; LDY #$02 loaded at 0x0200 and started from the reset vector
	fn := writeFile(t, "ld.bin", []byte{0xa2, 0x01, 0xa0, 0x02})
	dot := filepath.Join(t.TempDir(), "cpu.dot")

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"-origin", "0x0200", "-vector", "-cycles", "4", "-memviz", dot, fn}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "4 cycles"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "PC=0x0204 A=0x00 X=0x01 Y=0x02"))

	d, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}

func TestRunModePrefs(t *testing.T) {
	// the image includes its own reset vector pointing to 0xfff0
	img := make([]byte, 16)
	img[0] = 0xa0
	img[1] = 0x03
	img[12] = 0xf0
	img[13] = 0xff
	fn := writeFile(t, "vector.bin", img)
	prefs := writeFile(t, "test.prefs", []byte("cpu.resetVector :: true\ncpu.clock :: 1.0\n"))

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"run", "-prefs", prefs, "-origin", "0xfff0", fn}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "2 cycles (2µs at 1.000MHz)"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "PC=0xfff2 A=0x00 X=0x00 Y=0x03"))
}

func TestRunModeErrors(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"run"}, out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "image file required"))

	// memory is zero filled so the reset address holds an unimplemented
	// opcode
	fn := writeFile(t, "nop.bin", []byte{0x00})
	out.Reset()
	test.ExpectEquality(t, launch([]string{"run", fn}, out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "unimplemented opcode"))
}

func TestScriptMode(t *testing.T) {
	fn := writeFile(t, "test.lua", []byte(`
		poke(0x0200, 0xa0)
		poke(0x0201, 0x7f)
		setreg("PC", 0x0200)
		assert(execute(2) == 2)
	`))

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"script", fn}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "Y=0x7f"))
}

func TestDisasmMode(t *testing.T) {
	fn := writeFile(t, "prog.bin", []byte{0xa9, 0x84, 0x20, 0x42, 0x43})

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"disasm", "-origin", "0x0200", "-count", "2", fn}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "LDA #$84"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "JSR $4342"))
}

func TestHelp(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"-help"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "RUN, STEP, SCRIPT, DISASM, VERSION"))
}

func TestVersionMode(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"version"}, out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Gopher6502 "))
}

func BenchmarkExecute(b *testing.B) {
	mc := cpu.NewCPU(nil)
	mem := memory.NewMemory()
	mc.Reset(mem)

	// a page of LDA ($20),Y instructions
	for a := uint16(0x0200); a < 0x0300; a += 2 {
		mem.Poke(a, 0xb1)
		mem.Poke(a+1, 0x20)
	}
	mem.Poke(0x0020, 0xff)
	mem.Poke(0x0021, 0x44)
	mc.Y.Load(0x01)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mc.LoadPC(0x0200)
		_, err := mc.Execute(128*6, mem)
		if err != nil {
			b.Fatal(err)
		}
	}
}
