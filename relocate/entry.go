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

	"github.com/relok64/relok64/hardware/cpu/instructions"
)

// Disposition records what happened to a considered operand.
type Disposition int

// List of valid Disposition values.
const (
	// the operand pointed into the moved range and the relocation delta has
	// been applied
	Relocated Disposition = iota

	// the operand points at hardware or another external address and has
	// been left unchanged
	External

	// the operand is a zero page address rewritten through the zero page map
	RemappedZeroPage
)

func (d Disposition) String() string {
	switch d {
	case Relocated:
		return "relocated"
	case External:
		return "external"
	case RemappedZeroPage:
		return "remapped zero page"
	}
	return "unknown"
}

// Entry describes one operand considered during relocation. One entry is
// emitted per operand whether or not its bytes changed. The entries form an
// audit log of the job; they are never consulted again by the relocation
// itself.
type Entry struct {
	// address of the operand bytes in the patched image
	Location uint16

	// whether the operand is a 16bit absolute address or an 8bit zero page
	// address
	Kind instructions.AddressingOperand

	Original    uint16
	Target      uint16
	Disposition Disposition
}

func (e Entry) String() string {
	if e.Original == e.Target {
		return fmt.Sprintf("%#04x: %#04x unchanged (%s)", e.Location, e.Original, e.Disposition)
	}
	return fmt.Sprintf("%#04x: %#04x -> %#04x (%s)", e.Location, e.Original, e.Target, e.Disposition)
}
