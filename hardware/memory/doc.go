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

// Package memory implements the flat 64KB memory seen by the CPU. The bus
// has no knowledge of the C64 memory map; a collaborator that cares about a
// particular address range (the SID registers, say) registers a hook over
// that range and receives every write as it happens.
//
// Hooks are synchronous and are called after the written byte has been
// stored. They can never alter the course of execution.
package memory
