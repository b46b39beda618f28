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

// Package dump writes a graphviz representation of the CPU state. The output
// can be rendered with the dot tool. For example:
//
//	dot -Tpng cpu.dot > cpu.png
package dump

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
)

// Registers is a snapshot of the CPU registers.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint16
	Status string
}

// Instruction is a snapshot of the most recently executed instruction.
type Instruction struct {
	Address   uint16
	Operator  string
	Mode      string
	Bytes     int
	Cycles    int
	PageFault bool
	Final     bool
}

// Snapshot of the CPU suitable for visualisation.
type Snapshot struct {
	Registers   *Registers
	Instruction *Instruction
}

// NewSnapshot creates a Snapshot of the CPU.
func NewSnapshot(mc *cpu.CPU) *Snapshot {
	s := &Snapshot{
		Registers: &Registers{
			PC:     mc.PC.Address(),
			A:      mc.A.Value(),
			X:      mc.X.Value(),
			Y:      mc.Y.Value(),
			SP:     mc.SP.Address(),
			Status: mc.Status.String(),
		},
	}

	// no instruction information if the CPU hasn't executed anything yet
	if mc.LastResult.Defn != nil {
		s.Instruction = &Instruction{
			Address:   mc.LastResult.Address,
			Operator:  mc.LastResult.Defn.Operator.String(),
			Mode:      mc.LastResult.Defn.AddressingMode.String(),
			Bytes:     mc.LastResult.ByteCount,
			Cycles:    mc.LastResult.Cycles,
			PageFault: mc.LastResult.PageFault,
			Final:     mc.LastResult.Final,
		}
	}

	return s
}

// State writes the graphviz representation of the CPU state to w.
func State(w io.Writer, mc *cpu.CPU) {
	memviz.Map(w, NewSnapshot(mc))
}
