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

// Package disassembly decodes instructions from a memory image without
// executing them. Decoding is a pure function of the bytes at an address.
//
// The same instruction definitions drive both this package and the CPU
// executor, so a program decoded here behaves the same way when run. This
// shared understanding is what makes the relocation package trustworthy: the
// operands it rewrites are exactly the operands the CPU would use.
//
// Note that decoding an address succeeds for almost every byte value because
// almost every byte value is an opcode, documented or otherwise. The KIL
// group is the exception. A KIL opcode jams the processor and no working
// program contains one in a code path, so finding one in a declared code
// region means the declared boundaries are wrong. It is reported as a
// decoding error rather than glossed over.
package disassembly
