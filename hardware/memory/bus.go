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

// CPUBus defines the operations for memory when accessed from the CPU. All
// CPU access to memory is via this interface, meaning that test packages can
// substitute their own implementations.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// HookFunc is called for every write inside the range the hook was
// registered over. The byte has already been stored by the time the hook
// runs.
type HookFunc func(address uint16, data uint8)

// HookID identifies a registered hook for later removal.
type HookID int

type hook struct {
	id     HookID
	origin uint16
	memtop uint16
	f      HookFunc
}

// Bus is the flat 64KB memory used for SID player emulation. It implements
// the CPUBus interface.
type Bus struct {
	ram [0x10000]uint8

	hooks  []hook
	nextID HookID
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{}
}

// Read implements the CPUBus interface. Read never fails on the flat bus.
func (b *Bus) Read(address uint16) (uint8, error) {
	return b.ram[address], nil
}

// Write implements the CPUBus interface. The byte is stored before any hook
// runs.
func (b *Bus) Write(address uint16, data uint8) error {
	b.ram[address] = data
	for _, h := range b.hooks {
		if address >= h.origin && address <= h.memtop {
			h.f(address, data)
		}
	}
	return nil
}

// Peek returns the byte at address without going through the CPU read path.
func (b *Bus) Peek(address uint16) uint8 {
	return b.ram[address]
}

// Poke stores a byte without triggering hooks.
func (b *Bus) Poke(address uint16, data uint8) {
	b.ram[address] = data
}

// Copy a block of bytes into memory starting at origin, without triggering
// hooks. Used when installing a program image.
func (b *Bus) Copy(origin uint16, data []uint8) {
	copy(b.ram[origin:], data)
}

// RegisterHook arranges for f to be called for every write to an address in
// the inclusive range [origin, memtop].
func (b *Bus) RegisterHook(origin uint16, memtop uint16, f HookFunc) HookID {
	b.nextID++
	b.hooks = append(b.hooks, hook{
		id:     b.nextID,
		origin: origin,
		memtop: memtop,
		f:      f,
	})
	return b.nextID
}

// UnregisterHook removes a previously registered hook. Unknown IDs are
// ignored.
func (b *Bus) UnregisterHook(id HookID) {
	for i := range b.hooks {
		if b.hooks[i].id == id {
			b.hooks = append(b.hooks[:i], b.hooks[i+1:]...)
			return
		}
	}
}
