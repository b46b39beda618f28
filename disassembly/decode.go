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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// the definitions table is never modified so it can be shared by every call
// to Disassemble()
var definitions = instructions.GetDefinitions()

// Disassemble the instruction at address.
func Disassemble(mem cpubus.Reader, address uint16) Entry {
	opcode := mem.Read(address)

	e := Entry{
		Bytes:   []uint8{opcode},
		Address: fmt.Sprintf("%#04x", address),
	}
	e.Result.Address = address
	e.Result.Defn = definitions[opcode]

	defn := e.Result.Defn
	if defn == nil {
		e.Result.ByteCount = 1
		e.Bytecode = bytecode(e.Bytes)
		e.Operator = "???"
		e.Operand = fmt.Sprintf("($%02x)", opcode)
		return e
	}

	// operand bytes wrap at the top of memory in the same way as the program
	// counter
	for i := 1; i < defn.Bytes; i++ {
		e.Bytes = append(e.Bytes, mem.Read(address+uint16(i)))
	}
	e.Result.ByteCount = defn.Bytes

	switch len(e.Bytes) {
	case 2:
		e.Result.InstructionData = uint16(e.Bytes[1])
	case 3:
		e.Result.InstructionData = uint16(e.Bytes[1]) | uint16(e.Bytes[2])<<8
	}

	e.Bytecode = bytecode(e.Bytes)
	e.Operator = defn.Operator.String()
	e.Operand = operand(defn.AddressingMode, e.Result.InstructionData)

	return e
}

func operand(mode instructions.AddressingMode, data uint16) string {
	switch mode {
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", data)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", data)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", data)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", data)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", data)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", data)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", data)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", data)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", data)
	}
	return ""
}

// Linear disassembles count instructions starting from address. Each
// instruction starts at the address following the end of the previous
// instruction.
func Linear(mem cpubus.Reader, address uint16, count int) []Entry {
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		e := Disassemble(mem, address)
		entries = append(entries, e)
		address += uint16(e.Result.ByteCount)
	}
	return entries
}
