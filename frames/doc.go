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

// Package frames drives the CPU through repeated calls to a program's
// periodic entry point, one call per frame, and records the hardware
// register writes each frame produces.
//
// On the original hardware the play routine of a music player is called from
// a raster or timer interrupt at a fixed rate, typically 50Hz. The stepper
// reproduces that arrangement without emulating the interrupt source: the
// init vector is called once, with the accumulator holding the song number,
// and the play vector is then called once per frame. The routine is
// considered finished when it returns to the call point, detected by
// tracking the stack depth back to a sentinel return address.
//
// A trace is deterministic. The same image and frame count always produce
// the same trace, which is what makes traces comparable across runs and
// across relocations of the same program.
package frames
