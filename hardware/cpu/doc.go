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

// Package cpu emulates the 6502 found in the Commodore 64. There is no
// attempt to emulate the processor at the level of silicon gates but timing
// is accurate to the cycle: page faults, phantom reads and the extra cycles
// taken by successful branches all behave as they do on the real chip. The
// historical quirks that compiled programs sometimes rely on (the indirect
// JMP page-wrap defect, decimal mode flag timing) are replicated, not fixed.
//
// Each CPU value owns its register state outright. Nothing is shared between
// instances, so independent emulation jobs can run concurrently with a CPU
// each.
//
// The CPU calls the cycle callback at the end of every cycle, which is how
// callers impose a cycle budget on a run: returning an error from the
// callback stops execution.
package cpu
