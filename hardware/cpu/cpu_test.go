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

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/relok64/relok64/hardware/cpu"
	"github.com/relok64/relok64/hardware/cpu/registers/rtest"
	"github.com/relok64/relok64/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)

	// leave some room at the top of memory allocation to allow testing of
	// invalid memory access
	mem.internal = make([]uint8, 0x10000)

	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
}

func (mem mockMem) Read(address uint16) (uint8, error) {
	if address&0xff00 == 0xff00 {
		return 0, fmt.Errorf("unreadable address (%#04x)", address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if address&0xff00 == 0xff00 {
		return fmt.Errorf("unwritable address (%#04x)", address)
	}
	mem.internal[address] = data
	return nil
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin = mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	rtest.EquateStatus(t, mc.Status, "sv-bdiZC")
	step(t, mc) // CLC
	rtest.EquateStatus(t, mc.Status, "sv-bdiZc")
	step(t, mc) // CLI
	rtest.EquateStatus(t, mc.Status, "sv-bdiZc")
	step(t, mc) // SEI
	rtest.EquateStatus(t, mc.Status, "sv-bdIZc")
	step(t, mc) // SED
	rtest.EquateStatus(t, mc.Status, "sv-bDIZc")
	step(t, mc) // CLD
	rtest.EquateStatus(t, mc.Status, "sv-bdIZc")
	step(t, mc) // CLV
	rtest.EquateStatus(t, mc.Status, "sv-bdIZc")

	// PHP; PLP
	origin = mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	rtest.EquateStatus(t, mc.Status, "sv-bdIZc")
	rtest.EquateRegisters(t, mc.SP, 254)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true
	mc.Status.Zero = false

	// restore status register
	step(t, mc) // PLP
	rtest.EquateRegisters(t, mc.SP, 255)
	rtest.EquateStatus(t, mc.Status, "sv-bdIZc")
}

func testRegisterArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDA immediate; ADC immediate
	origin = mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	rtest.EquateRegisters(t, mc.A, 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	rtest.EquateRegisters(t, mc.A, 3)
}

func testRegisterBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// ORA immediate; EOR immediate; AND immediate
	origin = mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	rtest.EquateRegisters(t, mc.A, 0)
	step(t, mc) // ORA #$FF
	rtest.EquateRegisters(t, mc.A, 255)
	step(t, mc) // EOR #$F0
	rtest.EquateRegisters(t, mc.A, 15)
	step(t, mc) // AND #$01
	rtest.EquateRegisters(t, mc.A, 1)

	// ASL implied; LSR implied; LSR implied
	origin = mem.putInstructions(origin, 0x0a, 0x4a, 0x4a)
	step(t, mc) // ASL
	rtest.EquateRegisters(t, mc.A, 2)
	rtest.EquateStatus(t, mc.Status, "sv-bdizc")
	step(t, mc) // LSR
	rtest.EquateRegisters(t, mc.A, 1)
	rtest.EquateStatus(t, mc.Status, "sv-bdizc")
	step(t, mc) // LSR
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateStatus(t, mc.Status, "sv-bdiZC")

	// ROL implied; ROR implied; ROR implied; ROR implied
	origin = mem.putInstructions(origin, 0x2a, 0x6a, 0x6a, 0x6a)
	step(t, mc) // ROL
	rtest.EquateRegisters(t, mc.A, 1)
	rtest.EquateStatus(t, mc.Status, "sv-bdizc")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateStatus(t, mc.Status, "sv-bdiZC")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 128)
	rtest.EquateStatus(t, mc.Status, "Sv-bdizc")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 64)
	rtest.EquateStatus(t, mc.Status, "sv-bdizc")
}

func testImmediateImplied(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDX immediate; INX; DEX
	origin = mem.putInstructions(origin, 0xa2, 5, 0xe8, 0xca)
	step(t, mc) // LDX #5
	rtest.EquateRegisters(t, mc.X, 5)
	step(t, mc) // INX
	rtest.EquateRegisters(t, mc.X, 6)
	step(t, mc) // DEX
	rtest.EquateRegisters(t, mc.X, 5)
	rtest.EquateStatus(t, mc.Status, "sv-bdizc")

	// PHA; LDA immediate; PLA
	origin = mem.putInstructions(origin, 0xa9, 5, 0x48, 0xa9, 0, 0x68)
	step(t, mc) // LDA #5
	step(t, mc) // PHA
	rtest.EquateRegisters(t, mc.SP, 254)
	step(t, mc) // LDA #0
	rtest.EquateRegisters(t, mc.A, 0)
	test.Equate(t, mc.Status.Zero, true)
	step(t, mc) // PLA
	rtest.EquateRegisters(t, mc.A, 5)

	// TAX; TAY; LDX immediate; TXA; LDY immediate; TYA; INY; DEY
	origin = mem.putInstructions(origin, 0xaa, 0xa8, 0xa2, 1, 0x8a, 0xa0, 2, 0x98, 0xc8, 0x88)
	step(t, mc) // TAX
	rtest.EquateRegisters(t, mc.X, 5)
	step(t, mc) // TAY
	rtest.EquateRegisters(t, mc.Y, 5)
	step(t, mc) // LDX #1
	step(t, mc) // TXA
	rtest.EquateRegisters(t, mc.A, 1)
	step(t, mc) // LDY #2
	step(t, mc) // TYA
	rtest.EquateRegisters(t, mc.A, 2)
	step(t, mc) // INY
	rtest.EquateRegisters(t, mc.Y, 3)
	step(t, mc) // DEY
	rtest.EquateRegisters(t, mc.Y, 2)

	// TSX; LDX immediate; TXS
	origin = mem.putInstructions(origin, 0xba, 0xa2, 100, 0x9a)
	step(t, mc) // TSX
	rtest.EquateRegisters(t, mc.X, 255)
	step(t, mc) // LDX #100
	step(t, mc) // TXS
	rtest.EquateRegisters(t, mc.SP, 100)
}

func testOtherAddressingModes(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0100, 123, 43)
	mem.putInstructions(0x01a2, 47)

	// LDA zero page
	origin = mem.putInstructions(origin, 0xa5, 0x00)
	step(t, mc) // LDA $00
	rtest.EquateRegisters(t, mc.A, 0xa5)

	// LDX immediate; LDA zero page,X
	origin = mem.putInstructions(origin, 0xa2, 1, 0xb5, 0x01)
	step(t, mc) // LDX #1
	step(t, mc) // LDA $01,X
	rtest.EquateRegisters(t, mc.A, 0xa2)

	// LDY immediate; LDX zero page,Y
	origin = mem.putInstructions(origin, 0xa0, 3, 0xb6, 0x01)
	step(t, mc) // LDY #3
	step(t, mc) // LDX $01,Y
	rtest.EquateRegisters(t, mc.X, 0xb5)

	// LDA absolute
	origin = mem.putInstructions(origin, 0xad, 0x00, 0x01)
	step(t, mc) // LDA $0100
	rtest.EquateRegisters(t, mc.A, 123)

	// LDX immediate; LDA absolute,X
	origin = mem.putInstructions(origin, 0xa2, 1, 0xbd, 0x01, 0x00)
	step(t, mc) // LDX #1
	rtest.EquateRegisters(t, mc.X, 1)
	step(t, mc) // LDA $0001,X
	rtest.EquateRegisters(t, mc.A, 0xa2)

	// LDY immediate; LDA absolute,Y
	origin = mem.putInstructions(origin, 0xa0, 1, 0xb9, 0x01, 0x00)
	step(t, mc) // LDY #1
	step(t, mc) // LDA $0001,Y
	rtest.EquateRegisters(t, mc.A, 0xa2)

	// pre-indexed indirect
	// X = 1
	// INX; LDA (Indirect,X)
	origin = mem.putInstructions(origin, 0xe8, 0xa1, 0x0b)
	step(t, mc) // INX (x equals 2)
	step(t, mc) // LDA ($0b,X)
	test.Equate(t, mc.LastResult.CPUBug, "")
	rtest.EquateRegisters(t, mc.A, 47)

	// pre-indexed indirect (with wraparound)
	// X = 2
	// INX; LDA (Indirect,X)
	origin = mem.putInstructions(origin, 0xe8, 0xa1, 0xff)
	step(t, mc) // INX (x equals 3)
	step(t, mc) // LDA ($ff,X)
	test.Equate(t, mc.LastResult.CPUBug, "indirect addressing bug")
	rtest.EquateRegisters(t, mc.A, 47)

	// post-indexed indirect (with page-fault)
	// Y = 1
	// INY; INY; LDA (Indirect),Y
	mem.putInstructions(0xc0, 0xfd, 0x00)
	origin = mem.putInstructions(origin, 0xc8, 0xc8, 0xb1, 0xc0)
	step(t, mc) // INY (y equals 2)
	step(t, mc) // INY (y equals 3)
	step(t, mc) // LDA ($c0),Y
	rtest.EquateRegisters(t, mc.A, 123)
	test.Equate(t, mc.LastResult.PageFault, true)
}

func testStorageInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDA immediate; STA absolute
	origin = mem.putInstructions(origin, 0xa9, 0x54, 0x8d, 0x00, 0x01)
	step(t, mc) // LDA #$54
	step(t, mc) // STA $0100
	mem.assert(t, 0x0100, 0x54)

	// LDX immediate; STX absolute
	origin = mem.putInstructions(origin, 0xa2, 0x63, 0x8e, 0x01, 0x01)
	step(t, mc) // LDX #$63
	step(t, mc) // STX $0101
	mem.assert(t, 0x0101, 0x63)

	// LDY immediate; STY absolute
	origin = mem.putInstructions(origin, 0xa0, 0x72, 0x8c, 0x02, 0x01)
	step(t, mc) // LDY #$72
	step(t, mc) // STY $0102
	mem.assert(t, 0x0102, 0x72)

	// INC zero page
	origin = mem.putInstructions(origin, 0xe6, 0x01)
	step(t, mc) // INC $01
	mem.assert(t, 0x01, 0x55)

	// DEC absolute
	origin = mem.putInstructions(origin, 0xce, 0x00, 0x01)
	step(t, mc) // DEC $0100
	mem.assert(t, 0x0100, 0x53)
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16

	mem.Clear()
	mc.Reset()
	origin = mem.putInstructions(origin, 0x10, 0x10)
	step(t, mc) // BPL $10
	rtest.EquateRegisters(t, mc.PC, 0x12)
	test.Equate(t, mc.LastResult.Cycles, 3)

	origin = 0
	mem.Clear()
	mc.Reset()
	origin = mem.putInstructions(origin, 0x50, 0x10)
	step(t, mc) // BVC $10
	rtest.EquateRegisters(t, mc.PC, 0x12)

	origin = 0
	mem.Clear()
	mc.Reset()
	origin = mem.putInstructions(origin, 0x90, 0x10)
	step(t, mc) // BCC $10
	rtest.EquateRegisters(t, mc.PC, 0x12)

	origin = 0
	mem.Clear()
	mc.Reset()
	origin = mem.putInstructions(origin, 0x38, 0xb0, 0x10)
	step(t, mc) // SEC
	step(t, mc) // BCS $10
	rtest.EquateRegisters(t, mc.PC, 0x13)

	origin = 0
	mem.Clear()
	mc.Reset()
	origin = mem.putInstructions(origin, 0xe8, 0xd0, 0x10)
	step(t, mc) // INX
	step(t, mc) // BNE $10
	rtest.EquateRegisters(t, mc.PC, 0x13)

	origin = 0
	mem.Clear()
	mc.Reset()
	origin = mem.putInstructions(origin, 0xca, 0x30, 0x10)
	step(t, mc) // DEX
	step(t, mc) // BMI $10
	rtest.EquateRegisters(t, mc.PC, 0x13)

	// branch not taken costs two cycles
	origin = 0
	mem.Clear()
	mc.Reset()
	origin = mem.putInstructions(origin, 0xe8, 0xf0, 0x10)
	step(t, mc) // INX
	step(t, mc) // BEQ $10 (not taken)
	rtest.EquateRegisters(t, mc.PC, 0x03)
	test.Equate(t, mc.LastResult.Cycles, 2)

	// branching across a page boundary costs an extra cycle
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x00f0, 0xd0, 0x20)
	err := mc.LoadPC(0x00f0)
	if err != nil {
		t.Fatal(err)
	}
	mc.Status.Zero = false
	step(t, mc) // BNE $20
	rtest.EquateRegisters(t, mc.PC, 0x0112)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// backwards branch
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0010, 0xd0, 0xfc)
	err = mc.LoadPC(0x0010)
	if err != nil {
		t.Fatal(err)
	}
	mc.Status.Zero = false
	step(t, mc) // BNE $-4
	rtest.EquateRegisters(t, mc.PC, 0x000e)
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// JMP absolute
	origin = mem.putInstructions(origin, 0x4c, 0x00, 0x01)
	step(t, mc) // JMP $0100
	rtest.EquateRegisters(t, mc.PC, 0x0100)

	// JMP indirect
	origin = 0
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0050, 0x49, 0x01)
	origin = mem.putInstructions(origin, 0x6c, 0x50, 0x00)
	step(t, mc) // JMP ($0050)
	rtest.EquateRegisters(t, mc.PC, 0x0149)

	// JMP indirect with the pointer on the last byte of a page. the high
	// byte of the target is read from the first byte of the same page
	origin = 0
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x01ff, 0x03)
	mem.putInstructions(0x0100, 0x00)
	origin = mem.putInstructions(origin, 0x6c, 0xff, 0x01)
	step(t, mc) // JMP ($01ff)
	rtest.EquateRegisters(t, mc.PC, 0x0003)
	test.Equate(t, mc.LastResult.CPUBug, "indirect addressing JMP bug")
}

func testComparisonInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDA immediate; CMP immediate (equality)
	origin = mem.putInstructions(origin, 0xa9, 5, 0xc9, 5)
	step(t, mc) // LDA #5
	step(t, mc) // CMP #5
	rtest.EquateStatus(t, mc.Status, "sv-bdiZC")

	// CMP immediate (less than)
	origin = mem.putInstructions(origin, 0xc9, 10)
	step(t, mc) // CMP #10
	rtest.EquateStatus(t, mc.Status, "Sv-bdizc")

	// CPX immediate; CPY immediate
	origin = mem.putInstructions(origin, 0xa2, 5, 0xe0, 5, 0xa0, 1, 0xc0, 2)
	step(t, mc) // LDX #5
	step(t, mc) // CPX #5
	rtest.EquateStatus(t, mc.Status, "sv-bdiZC")
	step(t, mc) // LDY #1
	step(t, mc) // CPY #2
	rtest.EquateStatus(t, mc.Status, "Sv-bdizc")

	// BIT zero page
	mem.putInstructions(0x0001, 0xc0)
	origin = mem.putInstructions(origin, 0xa9, 0x3f, 0x24, 0x01)
	step(t, mc) // LDA #$3F
	step(t, mc) // BIT $01
	rtest.EquateStatus(t, mc.Status, "SV-bdiZc")
}

func testSubroutineInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// JSR absolute
	origin = mem.putInstructions(origin, 0x20, 0x00, 0x01)
	step(t, mc) // JSR $0100
	rtest.EquateRegisters(t, mc.PC, 0x0100)
	rtest.EquateRegisters(t, mc.SP, 253)
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x02)
	test.Equate(t, mc.LastResult.Cycles, 6)

	// RTS implied. execution resumes at the instruction following the JSR
	mem.putInstructions(0x0100, 0x60)
	step(t, mc) // RTS
	rtest.EquateRegisters(t, mc.PC, 0x0003)
	rtest.EquateRegisters(t, mc.SP, 255)
	test.Equate(t, mc.LastResult.Cycles, 6)
}

func testCycleCounts(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDA immediate
	origin = mem.putInstructions(origin, 0xa9, 5)
	step(t, mc) // LDA #5
	test.Equate(t, mc.LastResult.Cycles, 2)

	// LDA absolute
	origin = mem.putInstructions(origin, 0xad, 0x00, 0x01)
	step(t, mc) // LDA $0100
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDX immediate; LDA absolute,X without page cross
	origin = mem.putInstructions(origin, 0xa2, 1, 0xbd, 0x00, 0x01)
	step(t, mc) // LDX #1
	step(t, mc) // LDA $0100,X
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.PageFault, false)

	// LDA absolute,X with page cross costs an extra cycle
	origin = mem.putInstructions(origin, 0xbd, 0xff, 0x00)
	step(t, mc) // LDA $00ff,X
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.PageFault, true)

	// STA absolute,X never pays the page cross cycle but always pays the
	// phantom read cycle
	origin = mem.putInstructions(origin, 0x9d, 0x00, 0x01)
	step(t, mc) // STA $0100,X
	test.Equate(t, mc.LastResult.Cycles, 5)

	// INC absolute (read-modify-write)
	origin = mem.putInstructions(origin, 0xee, 0x00, 0x01)
	step(t, mc) // INC $0100
	test.Equate(t, mc.LastResult.Cycles, 6)
}

func testDecimalMode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// SED; LDA immediate; CLC; ADC immediate
	origin = mem.putInstructions(origin, 0xf8, 0xa9, 0x09, 0x18, 0x69, 0x01)
	step(t, mc) // SED
	step(t, mc) // LDA #$09
	step(t, mc) // CLC
	step(t, mc) // ADC #$01
	rtest.EquateRegisters(t, mc.A, 0x10)
	test.Equate(t, mc.Status.Carry, false)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 0x01)
	step(t, mc) // SEC
	step(t, mc) // SBC #$01
	rtest.EquateRegisters(t, mc.A, 0x09)
}

func testUndocumentedInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LAX absolute
	mem.putInstructions(0x0100, 0x47)
	origin = mem.putInstructions(origin, 0xaf, 0x00, 0x01)
	step(t, mc) // LAX $0100
	rtest.EquateRegisters(t, mc.A, 0x47)
	rtest.EquateRegisters(t, mc.X, 0x47)

	// SAX absolute
	origin = mem.putInstructions(origin, 0xa9, 0x0f, 0xa2, 0x55, 0x8f, 0x01, 0x01)
	step(t, mc) // LDA #$0F
	step(t, mc) // LDX #$55
	step(t, mc) // SAX $0101
	mem.assert(t, 0x0101, 0x05)

	// DCP absolute
	mem.putInstructions(0x0102, 0x06)
	origin = mem.putInstructions(origin, 0xa9, 0x05, 0xcf, 0x02, 0x01)
	step(t, mc) // LDA #$05
	step(t, mc) // DCP $0102
	mem.assert(t, 0x0102, 0x05)
	rtest.EquateStatus(t, mc.Status, "sv-bdiZC")

	// undocumented SBC immediate behaves like the documented SBC
	origin = mem.putInstructions(origin, 0x38, 0xeb, 0x01)
	step(t, mc) // SEC
	step(t, mc) // SBC #$01 (undocumented)
	rtest.EquateRegisters(t, mc.A, 0x04)
}

func testMemoryErrors(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// STA absolute targetting an unwritable address
	origin = mem.putInstructions(origin, 0x8d, 0x00, 0xff)
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err == nil {
		t.Fatalf("expected an error when writing to an unwritable address")
	}

	// the failed instruction leaves the CPU mid-instruction. Reset before
	// continuing
	mem.Clear()
	mc.Reset()
	origin = 0

	// LDA absolute targetting an unreadable address
	origin = mem.putInstructions(origin, 0xad, 0x00, 0xff)
	err = mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err == nil {
		t.Fatalf("expected an error when reading from an unreadable address")
	}
}

func testKIL(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	origin = mem.putInstructions(origin, 0x02, 0xa9, 0x01)

	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mc.Killed, true)

	// a jammed CPU makes no further progress
	pc := mc.PC.Address()
	err = mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mc.PC.Address(), pc)

	// Reset unjams
	mc.Reset()
	test.Equate(t, mc.Killed, false)
}

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	testStatusInstructions(t, mc, mem)
	testRegisterArithmetic(t, mc, mem)
	testRegisterBitwiseInstructions(t, mc, mem)
	testImmediateImplied(t, mc, mem)
	testOtherAddressingModes(t, mc, mem)
	testStorageInstructions(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testComparisonInstructions(t, mc, mem)
	testSubroutineInstructions(t, mc, mem)
	testCycleCounts(t, mc, mem)
	testDecimalMode(t, mc, mem)
	testUndocumentedInstructions(t, mc, mem)
	testMemoryErrors(t, mc, mem)
	testKIL(t, mc, mem)
}
