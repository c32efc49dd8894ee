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

// Package relocate rewrites the address operands of previously assembled
// machine code so that the program behaves identically after being moved to
// a different base address and zero page working set.
//
// Relocation runs as a pipeline of five stages, any of which can fail the
// job: scan, classify, allocate, patch and verify. The scan stage is a full
// instruction-by-instruction decode of the declared code regions. At no
// point does the package scan raw bytes for values that look like
// addresses. A data table that happens to contain address-like bytes is
// never touched unless the collaborator has tagged it as a pointer table.
//
// Every operand that carries an address is given a disposition: moved by
// the relocation delta, left alone because it refers to hardware or other
// external addresses, or rewritten through the zero page map. An operand
// that fits no disposition is an unresolved reference and is reported
// rather than guessed at.
//
// The verify stage decodes the patched image from scratch and checks every
// operand again. If anything fails to resolve the job is aborted. A corrupt
// image is never returned: a relocated player that writes one wrong
// register every frame is far harder to diagnose than a job that refuses to
// finish.
package relocate
