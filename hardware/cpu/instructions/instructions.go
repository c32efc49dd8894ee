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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory

	// Undocumented is true for instructions that are not part of the
	// official instruction set but which real programs use anyway
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%d pagesens=%t effect=%d]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// AddressingOperand describes how the operand bytes of an instruction are to
// be treated when classifying an address reference. Only instructions with an
// absolute or zero-page flavoured addressing mode carry an address in their
// operand; immediate, implied and relative operands are not addresses and
// indirect operands point at addresses held in memory rather than encoding
// one themselves.
type AddressingOperand int

// List of valid AddressingOperand values.
const (
	NonAddress AddressingOperand = iota
	AbsoluteAddress
	ZeroPageAddress
)

// AddressOperand returns how the operand of the instruction should be
// treated for relocation purposes.
//
// Note that the operand of an indirect JMP is itself an absolute address (the
// location of the jump vector) and so is classified as AbsoluteAddress. The
// address *inside* the vector cannot be classified statically.
func (defn Definition) AddressOperand() AddressingOperand {
	switch defn.AddressingMode {
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect:
		return AbsoluteAddress
	case ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY, IndexedIndirect, IndirectIndexed:
		return ZeroPageAddress
	}
	return NonAddress
}
