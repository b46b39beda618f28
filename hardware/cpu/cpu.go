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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/clocks"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/logger"
)

// Sentinel error patterns.
const (
	UnimplementedOpcode = "cpu: unimplemented opcode (%#02x) at (%#04x)"
	MidInstruction      = "cpu: %s invalid mid-instruction"
)

// Initial values of the program counter and the stack pointer after a Reset().
const (
	ResetPC         = uint16(0xfffc)
	ResetSP         = memorymap.OriginStack
	ResetSPHardware = memorymap.MemtopStack
)

// CPU implements the 6502 instruction execution core. Register logic is
// implemented by the Register type in the registers sub-package.
type CPU struct {
	prefs *preferences.Preferences

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// memory is only valid for the duration of a call to ExecuteInstruction()
	mem cpubus.Memory

	instructions []*instructions.Definition
	operators    map[instructions.Operator]operator

	// cycleCallback is called at the end of every cycle
	cycleCallback func() error

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset
	LastResult execution.Result

	// Interrupted indicates that the CPU has been put into a state outside of
	// its normal operation, such as a Reset(). When true the program counter
	// can be changed even though LastResult is not final. Resets to false on
	// every call to ExecuteInstruction()
	Interrupted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. A
// nil preferences argument means that the default preferences will be used.
//
// The CPU is not reset by NewCPU(). Call Reset() before executing any
// instructions.
func NewCPU(prefs *preferences.Preferences) *CPU {
	if prefs == nil {
		// preferences without a disk can not fail
		prefs, _ = preferences.NewPreferences("")
	}

	return &CPU{
		prefs:        prefs,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
		operators:    newOperators(),
		Interrupted:  true,
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Preferences returns the preferences in use by the CPU.
func (mc *CPU) Preferences() *preferences.Preferences {
	return mc.prefs
}

func (mc *CPU) hardwareStack() bool {
	return mc.prefs.HardwareStack.Get().(bool)
}

// Reset reinitialises all registers and fills memory with zero. Does not load
// PC with RESET vector. Use cpu.LoadPCIndirect(mem, cpubus.Reset) when
// appropriate.
func (mc *CPU) Reset(mem cpubus.Memory) {
	mc.LastResult.Reset()
	mc.Interrupted = true

	mc.PC.Load(ResetPC)
	if mc.hardwareStack() {
		mc.SP.Load(ResetSPHardware)
	} else {
		mc.SP.Load(ResetSP)
	}
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.Status.Reset()

	mem.Initialise()
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(mem cpubus.Reader, indirectAddress uint16) error {
	if !mc.LastResult.Final && !mc.Interrupted {
		return curated.Errorf(MidInstruction, "load PC indirect")
	}

	mc.PC.Load(memory.ReadWord(mem, nil, indirectAddress))
	logger.Logf(logger.Allow, "cpu", "PC loaded from vector at %#04x: %s", indirectAddress, mc.PC)

	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) error {
	if !mc.LastResult.Final && !mc.Interrupted {
		return curated.Errorf(MidInstruction, "load PC")
	}

	mc.PC.Load(directAddress)

	return nil
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// Execute runs whole instructions until the number of cycles has been used.
// Returns the number of cycles actually used. An instruction is never stopped
// part way through so the number of cycles used may be more than the number
// requested.
//
// The only error condition is an unimplemented opcode, at which point
// execution stops. The number of cycles returned in that case includes the
// cycle used to fetch the opcode.
func (mc *CPU) Execute(cycles int, mem cpubus.Memory) (int, error) {
	budget := clocks.NewBudget(cycles)

	for !budget.Exhausted() {
		err := mc.ExecuteInstruction(mem, NilCycleCallback)
		budget.Charge(mc.LastResult.Cycles)
		if err != nil {
			logger.Log(logger.Allow, "cpu", err)
			return cycles - budget.Remaining(), err
		}
	}

	return cycles - budget.Remaining(), nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run. An error returned by cycleCallback()
// aborts the instruction and is returned unchanged.
//
// The cycleCallback argument should *never* be nil. Use the
// NilCycleCallback() function in this package if you want a nil effect.
func (mc *CPU) ExecuteInstruction(mem cpubus.Memory, cycleCallback func() error) error {
	// a previous call to ExecuteInstruction() has not yet completed. it is
	// impossible to begin a new instruction
	if !mc.LastResult.Final && !mc.Interrupted {
		return curated.Errorf(MidInstruction, "starting a new instruction")
	}

	mc.Interrupted = false
	mc.mem = mem
	mc.cycleCallback = cycleCallback

	err := mc.executeInstruction()

	mc.mem = nil
	mc.cycleCallback = nil

	return err
}

func (mc *CPU) executeInstruction() error {
	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// read next instruction
	// +1 cycle
	err := mc.read8BitPC(newOpcode)
	if err != nil {
		// the calling function might still want to make use of LastResult even
		// when an error has occurred. the number of bytes read is by
		// definition one and no more bytes will be read for this instruction
		mc.LastResult.ByteCount = 1
		mc.LastResult.Final = true
		return err
	}

	defn := mc.LastResult.Defn

	// address is the effective address of the instruction. for immediate mode
	// instructions it is not used
	address, err := mc.resolveAddress(defn)
	if err != nil {
		return err
	}

	// value is read from the program for immediate mode and from the
	// effective address for all other read instructions
	var value uint8

	if defn.Effect == instructions.Read {
		if defn.AddressingMode == instructions.Immediate {
			value = uint8(mc.LastResult.InstructionData)
		} else {
			// +1 cycle
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		}
	}

	op, ok := mc.operators[defn.Operator]
	if !ok {
		return curated.Errorf(UnimplementedOpcode, uint8(defn.OpCode), mc.LastResult.Address)
	}

	err = op(mc, address, value)
	if err != nil {
		return err
	}

	// finalise result
	mc.LastResult.Final = true

	return nil
}
