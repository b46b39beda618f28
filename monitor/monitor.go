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

package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/logger"
)

// DefaultQuantum is the number of cycles run by the KeyRun command.
const DefaultQuantum = 1000

const help = `space/return : step one instruction
r            : run for %d cycles
d            : dump zero page and stack
x            : reset CPU and clear memory
q            : quit
`

// Monitor reads key presses and drives the CPU accordingly.
type Monitor struct {
	mc     *cpu.CPU
	mem    *memory.Memory
	output io.Writer

	// number of cycles to run with the KeyRun command
	Quantum int
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mc *cpu.CPU, mem *memory.Memory, output io.Writer) *Monitor {
	return &Monitor{
		mc:      mc,
		mem:     mem,
		output:  output,
		Quantum: DefaultQuantum,
	}
}

func (m *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(m.output, format, args...)
}

// prints the CPU state and the instruction that is due to be executed next.
func (m *Monitor) prompt() {
	e := disassembly.Disassemble(m.mem, m.mc.PC.Address())
	m.printf("%s\n", m.mc.String())
	m.printf("%s\n> ", e.Line())
}

// Run the monitor until the input is exhausted or the quit key is pressed.
// Errors from the CPU are printed to the output and do not stop the monitor.
func (m *Monitor) Run(input io.Reader) error {
	r := bufio.NewReader(input)

	m.prompt()

	for {
		key, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.printf("\n")
				return nil
			}
			return err
		}

		switch key {
		case KeyQuit, KeyInterrupt, KeyEsc:
			m.printf("\n")
			return nil

		case KeyStep, KeyCarriageReturn, KeyLineFeed:
			m.printf("\n")
			err = m.mc.ExecuteInstruction(m.mem, cpu.NilCycleCallback)
			if err != nil {
				logger.Log(logger.Allow, "monitor", err)
				m.printf("* %v\n", err)
			} else {
				m.printf("%d cycles\n", m.mc.LastResult.Cycles)
			}

		case KeyRun:
			m.printf("\n")
			used, err := m.mc.Execute(m.Quantum, m.mem)
			if err != nil {
				m.printf("* %v\n", err)
			}
			m.printf("%d cycles\n", used)

		case KeyDump:
			m.printf("\n%s", m.mem.String())

		case KeyReset:
			m.printf("\n")
			m.mc.Reset(m.mem)

		case KeyHelp:
			m.printf("\n"+help, m.Quantum)

		default:
			// ignore unrecognised keys without reprinting the prompt
			continue
		}

		m.prompt()
	}
}
