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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/relok64/relok64/curated"
	"github.com/relok64/relok64/hardware/cpu/instructions"
	"github.com/relok64/relok64/memimage"
)

// Error patterns raised by the disassembly package.
const (
	// DecodeError is raised when a byte inside a declared code region does
	// not correspond to a usable opcode. The detail includes the address and
	// the surrounding bytes so that a human can correct the declared region
	// boundaries.
	DecodeError = "decoding error: %v"
)

// Instr is a single decoded instruction.
type Instr struct {
	Address uint16
	Defn    *instructions.Definition

	// Operand is valid for the number of operand bytes the instruction
	// carries. For one-byte operands only the LSB is set.
	Operand uint16
}

// Length returns the number of bytes in the instruction, opcode included.
func (ins Instr) Length() int {
	return ins.Defn.Bytes
}

// Next returns the address of the instruction that follows in memory.
func (ins Instr) Next() uint16 {
	return ins.Address + uint16(ins.Defn.Bytes)
}

func (ins Instr) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x  %s", ins.Address, ins.Defn.Operator))

	switch ins.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Immediate:
		s.WriteString(fmt.Sprintf(" #$%02x", ins.Operand))
	case instructions.Relative:
		s.WriteString(fmt.Sprintf(" $%04x", ins.BranchTarget()))
	case instructions.Absolute:
		s.WriteString(fmt.Sprintf(" $%04x", ins.Operand))
	case instructions.ZeroPage:
		s.WriteString(fmt.Sprintf(" $%02x", ins.Operand))
	case instructions.Indirect:
		s.WriteString(fmt.Sprintf(" ($%04x)", ins.Operand))
	case instructions.IndexedIndirect:
		s.WriteString(fmt.Sprintf(" ($%02x,X)", ins.Operand))
	case instructions.IndirectIndexed:
		s.WriteString(fmt.Sprintf(" ($%02x),Y", ins.Operand))
	case instructions.AbsoluteIndexedX:
		s.WriteString(fmt.Sprintf(" $%04x,X", ins.Operand))
	case instructions.AbsoluteIndexedY:
		s.WriteString(fmt.Sprintf(" $%04x,Y", ins.Operand))
	case instructions.ZeroPageIndexedX:
		s.WriteString(fmt.Sprintf(" $%02x,X", ins.Operand))
	case instructions.ZeroPageIndexedY:
		s.WriteString(fmt.Sprintf(" $%02x,Y", ins.Operand))
	}

	return s.String()
}

// BranchTarget returns the address a relative-mode instruction branches to
// when the branch is taken. Valid only for branch instructions.
func (ins Instr) BranchTarget() uint16 {
	offset := ins.Operand
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}
	return ins.Next() + offset
}

// instruction definitions are stateless so one copy serves all decoders
var defns []*instructions.Definition

func init() {
	defns = instructions.GetDefinitions()
}

// Decode the instruction at the specified address of the image. Decoding
// never touches CPU state and never follows control flow.
func Decode(img *memimage.Image, address uint16) (Instr, error) {
	opcode := img.Read8(address)
	defn := defns[opcode]

	if defn.Operator == instructions.KIL {
		return Instr{}, curated.Errorf(DecodeError,
			fmt.Sprintf("unusable opcode %#02x at %#04x (context %s)", opcode, address, context(img, address)))
	}

	ins := Instr{
		Address: address,
		Defn:    defn,
	}

	switch defn.Bytes {
	case 2:
		ins.Operand = uint16(img.Read8(address + 1))
	case 3:
		ins.Operand = img.Read16(address + 1)
	}

	return ins, nil
}

// DecodeRegion decodes a declared code region instruction-by-instruction. An
// instruction that extends past the end of the region indicates that the
// declared boundary is wrong and is reported as a decoding error.
func DecodeRegion(img *memimage.Image, reg memimage.Region) ([]Instr, error) {
	var instrs []Instr

	// iterate with an int address. a uint16 would wrap to zero when a region
	// ends at the top of the address space and the loop would never terminate
	address := int(reg.Origin)
	for address <= int(reg.Memtop) {
		ins, err := Decode(img, uint16(address))
		if err != nil {
			return nil, err
		}

		if address+ins.Length()-1 > int(reg.Memtop) {
			return nil, curated.Errorf(DecodeError,
				fmt.Sprintf("instruction at %#04x extends past end of code region (%s)", address, reg.Range))
		}

		instrs = append(instrs, ins)
		address += ins.Length()
	}

	return instrs, nil
}

// context returns a formatted string of the bytes surrounding the specified
// address, clamped to the load range of the image.
func context(img *memimage.Image, address uint16) string {
	lo := int(address) - 2
	if lo < int(img.Load.Origin) {
		lo = int(img.Load.Origin)
	}
	hi := int(address) + 2
	if hi > int(img.Load.Memtop) {
		hi = int(img.Load.Memtop)
	}

	s := strings.Builder{}
	for a := lo; a <= hi; a++ {
		if a > lo {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%02x", img.Read8(uint16(a))))
	}
	return s.String()
}
