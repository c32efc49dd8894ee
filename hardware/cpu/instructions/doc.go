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

// Package instructions defines the table of instruction definitions for the
// 6502. The table is the single source of truth for the whole project: the
// CPU execution loop, the pure decoder and the relocation scanner all index
// into the same 256 entry array, meaning that a byte can never be interpreted
// as one instruction during emulation and a different instruction during
// relocation.
//
// Undocumented instructions are included. Compiled music players, which is
// what this project exists to move around, are not shy about using them.
package instructions
