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

// Package comparison diffs two execution traces and reports the first
// point at which they diverge. The usual arrangement is a trace of a
// program at its original location against a trace of the same program
// after relocation. Identical traces mean the relocation preserved
// behavior as far as the monitored hardware registers can tell.
//
// Cycle timestamps are deliberately excluded from the comparison. Moving
// code can change which indexed accesses cross a page boundary, shifting
// writes by a cycle or two without changing what the hardware ultimately
// receives in that frame.
package comparison

import (
	"fmt"

	"github.com/relok64/relok64/frames"
)

// Divergence describes the first difference found between two traces.
type Divergence struct {
	// the frame in which the traces diverge
	Frame int

	// the register at which the diverging write was found. not meaningful
	// if the divergence is a frame count mismatch
	Address uint16

	// the diverging writes. either may be nil, meaning the write is absent
	// from that trace
	A *frames.Write
	B *frames.Write

	// the traces have a different number of frames and match up to the
	// shorter one
	FrameCountMismatch bool
}

func (div Divergence) String() string {
	if div.FrameCountMismatch {
		return fmt.Sprintf("traces diverge at frame %d: frame count mismatch", div.Frame)
	}

	w := func(v *frames.Write) string {
		if v == nil {
			return "no write"
		}
		return fmt.Sprintf("%#02x", v.Value)
	}

	return fmt.Sprintf("traces diverge at frame %d: register %#04x (%s against %s)",
		div.Frame, div.Address, w(div.A), w(div.B))
}

// Compare two traces. A nil return means the traces agree on every write of
// every frame.
func Compare(a *frames.Trace, b *frames.Trace) *Divergence {
	n := len(a.Frames)
	if len(b.Frames) < n {
		n = len(b.Frames)
	}

	for i := 0; i < n; i++ {
		if div := compareFrame(a.Frames[i], b.Frames[i]); div != nil {
			div.Frame = i
			return div
		}
	}

	if len(a.Frames) != len(b.Frames) {
		return &Divergence{Frame: n, FrameCountMismatch: true}
	}

	return nil
}

// compareFrame walks the writes of two frame records in unison. Writes are
// in ascending address order so a missing address on either side is found
// the moment it is stepped over.
func compareFrame(a frames.Frame, b frames.Frame) *Divergence {
	i := 0
	j := 0

	for i < len(a.Writes) && j < len(b.Writes) {
		wa := a.Writes[i]
		wb := b.Writes[j]

		switch {
		case wa.Address < wb.Address:
			return &Divergence{Address: wa.Address, A: &wa}
		case wa.Address > wb.Address:
			return &Divergence{Address: wb.Address, B: &wb}
		case wa.Value != wb.Value:
			return &Divergence{Address: wa.Address, A: &wa, B: &wb}
		}

		i++
		j++
	}

	if i < len(a.Writes) {
		wa := a.Writes[i]
		return &Divergence{Address: wa.Address, A: &wa}
	}
	if j < len(b.Writes) {
		wb := b.Writes[j]
		return &Divergence{Address: wb.Address, B: &wb}
	}

	return nil
}
