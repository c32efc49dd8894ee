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

// the table is hand maintained. cycle counts and page sensitivity have been
// checked against the NMOS 6502 datasheet and the usual undocumented-opcode
// references. byte counts follow from the addressing mode and are filled in
// by GetDefinitions().

var table = [256]*Definition{
	0x00: {Operator: Brk, Cycles: 7, AddressingMode: Implied, Effect: Interrupt},
	0x01: {Operator: Ora, Cycles: 6, AddressingMode: IndexedIndirect},
	0x02: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x03: {Operator: SLO, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW, Undocumented: true},
	0x04: {Operator: NOP, Cycles: 3, AddressingMode: ZeroPage, Undocumented: true},
	0x05: {Operator: Ora, Cycles: 3, AddressingMode: ZeroPage},
	0x06: {Operator: Asl, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x07: {Operator: SLO, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW, Undocumented: true},
	0x08: {Operator: Php, Cycles: 3, AddressingMode: Implied},
	0x09: {Operator: Ora, Cycles: 2, AddressingMode: Immediate},
	0x0a: {Operator: Asl, Cycles: 2, AddressingMode: Implied},
	0x0b: {Operator: ANC, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0x0c: {Operator: NOP, Cycles: 4, AddressingMode: Absolute, Undocumented: true},
	0x0d: {Operator: Ora, Cycles: 4, AddressingMode: Absolute},
	0x0e: {Operator: Asl, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x0f: {Operator: SLO, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Undocumented: true},
	0x10: {Operator: Bpl, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x11: {Operator: Ora, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true},
	0x12: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x13: {Operator: SLO, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW, Undocumented: true},
	0x14: {Operator: NOP, Cycles: 4, AddressingMode: ZeroPageIndexedX, Undocumented: true},
	0x15: {Operator: Ora, Cycles: 4, AddressingMode: ZeroPageIndexedX},
	0x16: {Operator: Asl, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x17: {Operator: SLO, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW, Undocumented: true},
	0x18: {Operator: Clc, Cycles: 2, AddressingMode: Implied},
	0x19: {Operator: Ora, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true},
	0x1a: {Operator: NOP, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x1b: {Operator: SLO, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW, Undocumented: true},
	0x1c: {Operator: NOP, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Undocumented: true},
	0x1d: {Operator: Ora, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true},
	0x1e: {Operator: Asl, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x1f: {Operator: SLO, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW, Undocumented: true},
	0x20: {Operator: Jsr, Cycles: 6, AddressingMode: Absolute, Effect: Subroutine},
	0x21: {Operator: And, Cycles: 6, AddressingMode: IndexedIndirect},
	0x22: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x23: {Operator: RLA, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW, Undocumented: true},
	0x24: {Operator: Bit, Cycles: 3, AddressingMode: ZeroPage},
	0x25: {Operator: And, Cycles: 3, AddressingMode: ZeroPage},
	0x26: {Operator: Rol, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x27: {Operator: RLA, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW, Undocumented: true},
	0x28: {Operator: Plp, Cycles: 4, AddressingMode: Implied},
	0x29: {Operator: And, Cycles: 2, AddressingMode: Immediate},
	0x2a: {Operator: Rol, Cycles: 2, AddressingMode: Implied},
	0x2b: {Operator: ANC, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0x2c: {Operator: Bit, Cycles: 4, AddressingMode: Absolute},
	0x2d: {Operator: And, Cycles: 4, AddressingMode: Absolute},
	0x2e: {Operator: Rol, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x2f: {Operator: RLA, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Undocumented: true},
	0x30: {Operator: Bmi, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x31: {Operator: And, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true},
	0x32: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x33: {Operator: RLA, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW, Undocumented: true},
	0x34: {Operator: NOP, Cycles: 4, AddressingMode: ZeroPageIndexedX, Undocumented: true},
	0x35: {Operator: And, Cycles: 4, AddressingMode: ZeroPageIndexedX},
	0x36: {Operator: Rol, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x37: {Operator: RLA, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW, Undocumented: true},
	0x38: {Operator: Sec, Cycles: 2, AddressingMode: Implied},
	0x39: {Operator: And, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true},
	0x3a: {Operator: NOP, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x3b: {Operator: RLA, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW, Undocumented: true},
	0x3c: {Operator: NOP, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Undocumented: true},
	0x3d: {Operator: And, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true},
	0x3e: {Operator: Rol, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x3f: {Operator: RLA, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW, Undocumented: true},
	0x40: {Operator: Rti, Cycles: 6, AddressingMode: Implied, Effect: Interrupt},
	0x41: {Operator: Eor, Cycles: 6, AddressingMode: IndexedIndirect},
	0x42: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x43: {Operator: SRE, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW, Undocumented: true},
	0x44: {Operator: NOP, Cycles: 3, AddressingMode: ZeroPage, Undocumented: true},
	0x45: {Operator: Eor, Cycles: 3, AddressingMode: ZeroPage},
	0x46: {Operator: Lsr, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x47: {Operator: SRE, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW, Undocumented: true},
	0x48: {Operator: Pha, Cycles: 3, AddressingMode: Implied},
	0x49: {Operator: Eor, Cycles: 2, AddressingMode: Immediate},
	0x4a: {Operator: Lsr, Cycles: 2, AddressingMode: Implied},
	0x4b: {Operator: ASR, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0x4c: {Operator: Jmp, Cycles: 3, AddressingMode: Absolute, Effect: Flow},
	0x4d: {Operator: Eor, Cycles: 4, AddressingMode: Absolute},
	0x4e: {Operator: Lsr, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x4f: {Operator: SRE, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Undocumented: true},
	0x50: {Operator: Bvc, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x51: {Operator: Eor, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true},
	0x52: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x53: {Operator: SRE, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW, Undocumented: true},
	0x54: {Operator: NOP, Cycles: 4, AddressingMode: ZeroPageIndexedX, Undocumented: true},
	0x55: {Operator: Eor, Cycles: 4, AddressingMode: ZeroPageIndexedX},
	0x56: {Operator: Lsr, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x57: {Operator: SRE, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW, Undocumented: true},
	0x58: {Operator: Cli, Cycles: 2, AddressingMode: Implied},
	0x59: {Operator: Eor, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true},
	0x5a: {Operator: NOP, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x5b: {Operator: SRE, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW, Undocumented: true},
	0x5c: {Operator: NOP, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Undocumented: true},
	0x5d: {Operator: Eor, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true},
	0x5e: {Operator: Lsr, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x5f: {Operator: SRE, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW, Undocumented: true},
	0x60: {Operator: Rts, Cycles: 6, AddressingMode: Implied, Effect: Subroutine},
	0x61: {Operator: Adc, Cycles: 6, AddressingMode: IndexedIndirect},
	0x62: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x63: {Operator: RRA, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW, Undocumented: true},
	0x64: {Operator: NOP, Cycles: 3, AddressingMode: ZeroPage, Undocumented: true},
	0x65: {Operator: Adc, Cycles: 3, AddressingMode: ZeroPage},
	0x66: {Operator: Ror, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x67: {Operator: RRA, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW, Undocumented: true},
	0x68: {Operator: Pla, Cycles: 4, AddressingMode: Implied},
	0x69: {Operator: Adc, Cycles: 2, AddressingMode: Immediate},
	0x6a: {Operator: Ror, Cycles: 2, AddressingMode: Implied},
	0x6b: {Operator: ARR, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0x6c: {Operator: Jmp, Cycles: 5, AddressingMode: Indirect, Effect: Flow},
	0x6d: {Operator: Adc, Cycles: 4, AddressingMode: Absolute},
	0x6e: {Operator: Ror, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x6f: {Operator: RRA, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Undocumented: true},
	0x70: {Operator: Bvs, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x71: {Operator: Adc, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true},
	0x72: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x73: {Operator: RRA, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW, Undocumented: true},
	0x74: {Operator: NOP, Cycles: 4, AddressingMode: ZeroPageIndexedX, Undocumented: true},
	0x75: {Operator: Adc, Cycles: 4, AddressingMode: ZeroPageIndexedX},
	0x76: {Operator: Ror, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x77: {Operator: RRA, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW, Undocumented: true},
	0x78: {Operator: Sei, Cycles: 2, AddressingMode: Implied},
	0x79: {Operator: Adc, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true},
	0x7a: {Operator: NOP, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x7b: {Operator: RRA, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW, Undocumented: true},
	0x7c: {Operator: NOP, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Undocumented: true},
	0x7d: {Operator: Adc, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true},
	0x7e: {Operator: Ror, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x7f: {Operator: RRA, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW, Undocumented: true},
	0x80: {Operator: NOP, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0x81: {Operator: Sta, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write},
	0x82: {Operator: NOP, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0x83: {Operator: SAX, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write, Undocumented: true},
	0x84: {Operator: Sty, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	0x85: {Operator: Sta, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	0x86: {Operator: Stx, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	0x87: {Operator: SAX, Cycles: 3, AddressingMode: ZeroPage, Effect: Write, Undocumented: true},
	0x88: {Operator: Dey, Cycles: 2, AddressingMode: Implied},
	0x89: {Operator: NOP, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0x8a: {Operator: Txa, Cycles: 2, AddressingMode: Implied},
	0x8b: {Operator: XAA, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0x8c: {Operator: Sty, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	0x8d: {Operator: Sta, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	0x8e: {Operator: Stx, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	0x8f: {Operator: SAX, Cycles: 4, AddressingMode: Absolute, Effect: Write, Undocumented: true},
	0x90: {Operator: Bcc, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x91: {Operator: Sta, Cycles: 6, AddressingMode: IndirectIndexed, Effect: Write},
	0x92: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0x93: {Operator: AHX, Cycles: 6, AddressingMode: IndirectIndexed, Effect: Write, Undocumented: true},
	0x94: {Operator: Sty, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	0x95: {Operator: Sta, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	0x96: {Operator: Stx, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write},
	0x97: {Operator: SAX, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write, Undocumented: true},
	0x98: {Operator: Tya, Cycles: 2, AddressingMode: Implied},
	0x99: {Operator: Sta, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write},
	0x9a: {Operator: Txs, Cycles: 2, AddressingMode: Implied},
	0x9b: {Operator: TAS, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write, Undocumented: true},
	0x9c: {Operator: SHY, Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write, Undocumented: true},
	0x9d: {Operator: Sta, Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write},
	0x9e: {Operator: SHX, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write, Undocumented: true},
	0x9f: {Operator: AHX, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write, Undocumented: true},
	0xa0: {Operator: Ldy, Cycles: 2, AddressingMode: Immediate},
	0xa1: {Operator: Lda, Cycles: 6, AddressingMode: IndexedIndirect},
	0xa2: {Operator: Ldx, Cycles: 2, AddressingMode: Immediate},
	0xa3: {Operator: LAX, Cycles: 6, AddressingMode: IndexedIndirect, Undocumented: true},
	0xa4: {Operator: Ldy, Cycles: 3, AddressingMode: ZeroPage},
	0xa5: {Operator: Lda, Cycles: 3, AddressingMode: ZeroPage},
	0xa6: {Operator: Ldx, Cycles: 3, AddressingMode: ZeroPage},
	0xa7: {Operator: LAX, Cycles: 3, AddressingMode: ZeroPage, Undocumented: true},
	0xa8: {Operator: Tay, Cycles: 2, AddressingMode: Implied},
	0xa9: {Operator: Lda, Cycles: 2, AddressingMode: Immediate},
	0xaa: {Operator: Tax, Cycles: 2, AddressingMode: Implied},
	0xab: {Operator: LAX, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0xac: {Operator: Ldy, Cycles: 4, AddressingMode: Absolute},
	0xad: {Operator: Lda, Cycles: 4, AddressingMode: Absolute},
	0xae: {Operator: Ldx, Cycles: 4, AddressingMode: Absolute},
	0xaf: {Operator: LAX, Cycles: 4, AddressingMode: Absolute, Undocumented: true},
	0xb0: {Operator: Bcs, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0xb1: {Operator: Lda, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true},
	0xb2: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0xb3: {Operator: LAX, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Undocumented: true},
	0xb4: {Operator: Ldy, Cycles: 4, AddressingMode: ZeroPageIndexedX},
	0xb5: {Operator: Lda, Cycles: 4, AddressingMode: ZeroPageIndexedX},
	0xb6: {Operator: Ldx, Cycles: 4, AddressingMode: ZeroPageIndexedY},
	0xb7: {Operator: LAX, Cycles: 4, AddressingMode: ZeroPageIndexedY, Undocumented: true},
	0xb8: {Operator: Clv, Cycles: 2, AddressingMode: Implied},
	0xb9: {Operator: Lda, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true},
	0xba: {Operator: Tsx, Cycles: 2, AddressingMode: Implied},
	0xbb: {Operator: LAS, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Undocumented: true},
	0xbc: {Operator: Ldy, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true},
	0xbd: {Operator: Lda, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true},
	0xbe: {Operator: Ldx, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true},
	0xbf: {Operator: LAX, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Undocumented: true},
	0xc0: {Operator: Cpy, Cycles: 2, AddressingMode: Immediate},
	0xc1: {Operator: Cmp, Cycles: 6, AddressingMode: IndexedIndirect},
	0xc2: {Operator: NOP, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0xc3: {Operator: DCP, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW, Undocumented: true},
	0xc4: {Operator: Cpy, Cycles: 3, AddressingMode: ZeroPage},
	0xc5: {Operator: Cmp, Cycles: 3, AddressingMode: ZeroPage},
	0xc6: {Operator: Dec, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0xc7: {Operator: DCP, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW, Undocumented: true},
	0xc8: {Operator: Iny, Cycles: 2, AddressingMode: Implied},
	0xc9: {Operator: Cmp, Cycles: 2, AddressingMode: Immediate},
	0xca: {Operator: Dex, Cycles: 2, AddressingMode: Implied},
	0xcb: {Operator: AXS, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0xcc: {Operator: Cpy, Cycles: 4, AddressingMode: Absolute},
	0xcd: {Operator: Cmp, Cycles: 4, AddressingMode: Absolute},
	0xce: {Operator: Dec, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0xcf: {Operator: DCP, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Undocumented: true},
	0xd0: {Operator: Bne, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0xd1: {Operator: Cmp, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true},
	0xd2: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0xd3: {Operator: DCP, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW, Undocumented: true},
	0xd4: {Operator: NOP, Cycles: 4, AddressingMode: ZeroPageIndexedX, Undocumented: true},
	0xd5: {Operator: Cmp, Cycles: 4, AddressingMode: ZeroPageIndexedX},
	0xd6: {Operator: Dec, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0xd7: {Operator: DCP, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW, Undocumented: true},
	0xd8: {Operator: Cld, Cycles: 2, AddressingMode: Implied},
	0xd9: {Operator: Cmp, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true},
	0xda: {Operator: NOP, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0xdb: {Operator: DCP, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW, Undocumented: true},
	0xdc: {Operator: NOP, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Undocumented: true},
	0xdd: {Operator: Cmp, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true},
	0xde: {Operator: Dec, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0xdf: {Operator: DCP, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW, Undocumented: true},
	0xe0: {Operator: Cpx, Cycles: 2, AddressingMode: Immediate},
	0xe1: {Operator: Sbc, Cycles: 6, AddressingMode: IndexedIndirect},
	0xe2: {Operator: NOP, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0xe3: {Operator: ISC, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW, Undocumented: true},
	0xe4: {Operator: Cpx, Cycles: 3, AddressingMode: ZeroPage},
	0xe5: {Operator: Sbc, Cycles: 3, AddressingMode: ZeroPage},
	0xe6: {Operator: Inc, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0xe7: {Operator: ISC, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW, Undocumented: true},
	0xe8: {Operator: Inx, Cycles: 2, AddressingMode: Implied},
	0xe9: {Operator: Sbc, Cycles: 2, AddressingMode: Immediate},
	0xea: {Operator: Nop, Cycles: 2, AddressingMode: Implied},
	0xeb: {Operator: SBC, Cycles: 2, AddressingMode: Immediate, Undocumented: true},
	0xec: {Operator: Cpx, Cycles: 4, AddressingMode: Absolute},
	0xed: {Operator: Sbc, Cycles: 4, AddressingMode: Absolute},
	0xee: {Operator: Inc, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0xef: {Operator: ISC, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Undocumented: true},
	0xf0: {Operator: Beq, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0xf1: {Operator: Sbc, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true},
	0xf2: {Operator: KIL, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0xf3: {Operator: ISC, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW, Undocumented: true},
	0xf4: {Operator: NOP, Cycles: 4, AddressingMode: ZeroPageIndexedX, Undocumented: true},
	0xf5: {Operator: Sbc, Cycles: 4, AddressingMode: ZeroPageIndexedX},
	0xf6: {Operator: Inc, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0xf7: {Operator: ISC, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW, Undocumented: true},
	0xf8: {Operator: Sed, Cycles: 2, AddressingMode: Implied},
	0xf9: {Operator: Sbc, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true},
	0xfa: {Operator: NOP, Cycles: 2, AddressingMode: Implied, Undocumented: true},
	0xfb: {Operator: ISC, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW, Undocumented: true},
	0xfc: {Operator: NOP, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Undocumented: true},
	0xfd: {Operator: Sbc, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true},
	0xfe: {Operator: Inc, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0xff: {Operator: ISC, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW, Undocumented: true},
}

// number of bytes consumed by each addressing mode, including the opcode
// byte itself.
func bytesForMode(mode AddressingMode) int {
	switch mode {
	case Implied:
		return 1
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	}
	return 2
}

// GetDefinitions returns the table of instruction definitions for the 6502.
// Every opcode value has a definition. The returned slice is shared; callers
// must treat it as read-only.
func GetDefinitions() []*Definition {
	return definitions
}

var definitions []*Definition

func init() {
	definitions = make([]*Definition, 256)
	for op := 0; op < 256; op++ {
		defn := table[op]
		defn.OpCode = uint8(op)
		defn.Bytes = bytesForMode(defn.AddressingMode)
		definitions[op] = defn
	}
}
