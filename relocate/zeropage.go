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

package relocate

import (
	"fmt"

	"github.com/relok64/relok64/curated"
)

// ZeroPageMap records how zero page addresses move during relocation. The
// map is injective: no two old addresses ever map to the same new address.
type ZeroPageMap map[uint8]uint8

// Remap returns the new address for the specified zero page address. An
// address with no entry maps to itself.
func (zp ZeroPageMap) Remap(address uint8) uint8 {
	if n, ok := zp[address]; ok {
		return n
	}
	return address
}

// ResolveZeroPage computes a remapping for the zero page addresses used by
// the moved code that collide with the reservations of the hosting
// environment. Only colliding addresses receive an entry. Replacement slots
// are chosen from the addresses in neither set, lowest first, so resolution
// is deterministic.
func ResolveZeroPage(used []uint8, reserved []uint8) (ZeroPageMap, error) {
	inUse := make(map[uint8]bool)
	for _, a := range used {
		inUse[a] = true
	}
	unavailable := make(map[uint8]bool)
	for _, a := range reserved {
		unavailable[a] = true
	}

	zp := make(ZeroPageMap)

	// iterate over the used list rather than the inUse map so that
	// allocation order is deterministic
	seen := make(map[uint8]bool)
	free := 0

	for _, a := range used {
		if seen[a] {
			continue
		}
		seen[a] = true

		if !unavailable[a] {
			continue
		}

		// find the lowest free slot. a slot is free if the moved code does
		// not already use it, the host has not reserved it, and no previous
		// collision has claimed it
		for free < 0x100 && (inUse[uint8(free)] || unavailable[uint8(free)]) {
			free++
		}
		if free >= 0x100 {
			return nil, curated.Errorf(ZeroPageExhausted,
				fmt.Sprintf("no free slot for %#02x", a))
		}

		zp[a] = uint8(free)
		unavailable[uint8(free)] = true
	}

	return zp, nil
}
