// This file is part of Relok64.
//
// Relok64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Relok64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Relok64.  If not, see <https://www.gnu.org/licenses/>.

// Package execution tracks the result of instruction execution on the CPU.
// The Result type is updated by the CPU as the instruction is executed,
// which means that a Result is valid only once the Final field is true.
package execution

import (
	"fmt"

	"github.com/relok64/relok64/hardware/cpu/instructions"
)

// Result records the state of the last instruction executed by the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the data that follows the opcode. for two byte instructions the value
	// is stored in the low byte
	InstructionData uint16

	// the number of bytes read during instruction decode
	ByteCount int

	// the actual number of cycles taken by the instruction. this can differ
	// from Defn.Cycles because of page faults and branches
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction test succeeded
	BranchSuccess bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug string

	// error string. the CPU can continue after some memory access errors and
	// the detail is noted here rather than terminating the instruction
	Error string

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (result *Result) Reset() {
	result.Address = 0
	result.Defn = nil
	result.InstructionData = 0
	result.ByteCount = 0
	result.Cycles = 0
	result.PageFault = false
	result.BranchSuccess = false
	result.CPUBug = ""
	result.Error = ""
	result.Final = false
}

func (result Result) String() string {
	if result.Defn == nil {
		return "undecoded instruction"
	}

	var operand string

	switch result.Defn.Bytes {
	case 2:
		operand = fmt.Sprintf("$%02x", result.InstructionData)
	case 3:
		operand = fmt.Sprintf("$%04x", result.InstructionData)
	}

	switch result.Defn.AddressingMode {
	case instructions.Immediate:
		operand = fmt.Sprintf("#%s", operand)
	case instructions.Indirect:
		operand = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("%s,Y", operand)
	}

	return fmt.Sprintf("$%04x %s %s [%d]", result.Address, result.Defn.Operator, operand, result.Cycles)
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (result Result) IsValid() error {
	if !result.Final {
		return fmt.Errorf("execution: not checking an unfinalised result")
	}

	if result.Defn == nil {
		return fmt.Errorf("execution: no instruction definition")
	}

	// byte count
	if result.ByteCount != result.Defn.Bytes {
		return fmt.Errorf("execution: unexpected number of bytes read during decode (%d instead of %d)",
			result.ByteCount, result.Defn.Bytes)
	}

	// page fault is valid only for instructions marked page sensitive
	if !result.Defn.PageSensitive && result.PageFault {
		return fmt.Errorf("execution: unexpected page fault")
	}

	// kil instructions don't complete so there's nothing more to check
	if result.Defn.Operator == instructions.KIL {
		return nil
	}

	// cycle count
	if result.Defn.IsBranch() {
		if result.Cycles != result.Defn.Cycles &&
			result.Cycles != result.Defn.Cycles+1 &&
			result.Cycles != result.Defn.Cycles+2 {
			return fmt.Errorf("execution: number of cycles wrong for %s (%d instead of %d, %d or %d)",
				result.Defn.Operator, result.Cycles,
				result.Defn.Cycles, result.Defn.Cycles+1, result.Defn.Cycles+2)
		}
	} else if result.Defn.PageSensitive {
		if result.Cycles != result.Defn.Cycles && result.Cycles != result.Defn.Cycles+1 {
			return fmt.Errorf("execution: number of cycles wrong for %s (%d instead of %d or %d)",
				result.Defn.Operator, result.Cycles, result.Defn.Cycles, result.Defn.Cycles+1)
		}
	} else {
		if result.Cycles != result.Defn.Cycles {
			return fmt.Errorf("execution: number of cycles wrong for %s (%d instead of %d)",
				result.Defn.Operator, result.Cycles, result.Defn.Cycles)
		}
	}

	return nil
}
