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

package memory

// Well known addresses in the C64 memory map. The bus itself doesn't use
// these; they are the values collaborators will most often want when
// registering hooks or declaring protected ranges.
const (
	ZeroPageOrigin uint16 = 0x0000
	ZeroPageMemtop uint16 = 0x00ff

	StackOrigin uint16 = 0x0100
	StackMemtop uint16 = 0x01ff

	VICOrigin uint16 = 0xd000
	VICMemtop uint16 = 0xd3ff

	SIDOrigin uint16 = 0xd400
	SIDMemtop uint16 = 0xd41c

	CIA1Origin uint16 = 0xdc00
	CIA1Memtop uint16 = 0xdcff

	CIA2Origin uint16 = 0xdd00
	CIA2Memtop uint16 = 0xddff

	BasicROMOrigin uint16 = 0xa000
	BasicROMMemtop uint16 = 0xbfff

	KernalROMOrigin uint16 = 0xe000
	KernalROMMemtop uint16 = 0xffff
)
