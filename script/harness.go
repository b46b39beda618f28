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

package script

import (
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern for all errors returned by the Harness.
const ScriptError = "script: %v"

// Harness connects a Lua state to a CPU and Memory pair.
type Harness struct {
	mc  *cpu.CPU
	mem *memory.Memory
	L   *lua.LState
}

// NewHarness is the preferred method of initialisation for the Harness type.
// The Close() function should be called when the Harness is no longer needed.
func NewHarness(mc *cpu.CPU, mem *memory.Memory) *Harness {
	h := &Harness{
		mc:  mc,
		mem: mem,
		L:   lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"reset":   h.reset,
		"vector":  h.vector,
		"poke":    h.poke,
		"peek":    h.peek,
		"pokew":   h.pokew,
		"peekw":   h.peekw,
		"execute": h.execute,
		"step":    h.step,
		"reg":     h.reg,
		"setreg":  h.setreg,
		"flag":    h.flag,
		"setflag": h.setflag,
		"disasm":  h.disasm,
		"log":     h.log,
	} {
		h.L.SetGlobal(name, h.L.NewFunction(fn))
	}

	return h
}

// Close the Lua state.
func (h *Harness) Close() {
	h.L.Close()
}

// Run the Lua source code.
func (h *Harness) Run(src string) error {
	if err := h.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua source code in the named file.
func (h *Harness) RunFile(filename string) error {
	if err := h.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func checkAddress(L *lua.LState, n int) uint16 {
	return uint16(L.CheckInt(n))
}

func (h *Harness) reset(L *lua.LState) int {
	h.mc.Reset(h.mem)
	return 0
}

func (h *Harness) vector(L *lua.LState) int {
	if err := h.mc.LoadPCIndirect(h.mem, cpubus.Reset); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (h *Harness) poke(L *lua.LState) int {
	h.mem.Poke(checkAddress(L, 1), uint8(L.CheckInt(2)))
	return 0
}

func (h *Harness) peek(L *lua.LState) int {
	L.Push(lua.LNumber(h.mem.Peek(checkAddress(L, 1))))
	return 1
}

func (h *Harness) pokew(L *lua.LState) int {
	h.mem.WriteWord(nil, uint16(L.CheckInt(2)), checkAddress(L, 1))
	return 0
}

func (h *Harness) peekw(L *lua.LState) int {
	L.Push(lua.LNumber(h.mem.ReadWord(nil, checkAddress(L, 1))))
	return 1
}

func (h *Harness) execute(L *lua.LState) int {
	used, err := h.mc.Execute(L.CheckInt(1), h.mem)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(used))
	return 1
}

func (h *Harness) step(L *lua.LState) int {
	err := h.mc.ExecuteInstruction(h.mem, cpu.NilCycleCallback)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(h.mc.LastResult.Cycles))
	return 1
}

func (h *Harness) register(name string) *registers.Register {
	switch strings.ToUpper(name) {
	case "A":
		return &h.mc.A
	case "X":
		return &h.mc.X
	case "Y":
		return &h.mc.Y
	}
	return nil
}

func (h *Harness) reg(L *lua.LState) int {
	name := L.CheckString(1)
	switch strings.ToUpper(name) {
	case "PC":
		L.Push(lua.LNumber(h.mc.PC.Address()))
	case "SP":
		L.Push(lua.LNumber(h.mc.SP.Address()))
	default:
		r := h.register(name)
		if r == nil {
			L.ArgError(1, "unknown register")
			return 0
		}
		L.Push(lua.LNumber(r.Value()))
	}
	return 1
}

func (h *Harness) setreg(L *lua.LState) int {
	name := L.CheckString(1)
	v := L.CheckInt(2)
	switch strings.ToUpper(name) {
	case "PC":
		if err := h.mc.LoadPC(uint16(v)); err != nil {
			L.RaiseError("%v", err)
		}
	case "SP":
		h.mc.SP.Load(uint16(v))
	default:
		r := h.register(name)
		if r == nil {
			L.ArgError(1, "unknown register")
			return 0
		}
		r.Load(uint8(v))
	}
	return 0
}

func (h *Harness) status(L *lua.LState) *bool {
	sr := &h.mc.Status
	switch strings.ToUpper(L.CheckString(1)) {
	case "C":
		return &sr.Carry
	case "Z":
		return &sr.Zero
	case "I":
		return &sr.InterruptDisable
	case "D":
		return &sr.DecimalMode
	case "B":
		return &sr.Break
	case "V":
		return &sr.Overflow
	case "N":
		return &sr.Negative
	}
	L.ArgError(1, "unknown flag")
	return nil
}

func (h *Harness) flag(L *lua.LState) int {
	f := h.status(L)
	L.Push(lua.LBool(*f))
	return 1
}

func (h *Harness) setflag(L *lua.LState) int {
	f := h.status(L)
	*f = L.ToBool(2)
	return 0
}

func (h *Harness) disasm(L *lua.LState) int {
	e := disassembly.Disassemble(h.mem, checkAddress(L, 1))
	L.Push(lua.LString(e.String()))
	return 1
}

func (h *Harness) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
