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

// Package digest produces a cryptographic hash of an execution trace. The
// hash can be used to compare output from subsequent runs. If a new hash
// differs from a previously recorded value then something has changed. We
// use this as the basis for regression testing of relocated programs.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/relok64/relok64/frames"
)

// Digest implementations return a cryptographic hash in response to a
// Hash() request.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Trace is an implementation of the Digest interface for execution traces.
// Each folded frame produces a SHA-1 value chained with the value of the
// previous frame, so the hash captures frame order as well as frame
// content.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Trace struct {
	digest [sha1.Size]byte
	frames int
}

// Fold one frame record into the digest.
func (dig *Trace) Fold(frame frames.Frame) {
	// chain fingerprints by copying the value of the previous fingerprint
	// to the head of the buffer
	b := make([]byte, sha1.Size, sha1.Size+len(frame.Writes)*3)
	copy(b, dig.digest[:])

	for _, w := range frame.Writes {
		b = append(b, uint8(w.Address>>8), uint8(w.Address), w.Value)
	}

	dig.digest = sha1.Sum(b)
	dig.frames++
}

// Hash implements the Digest interface.
func (dig Trace) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// NumFrames returns the number of frames folded into the digest so far.
func (dig Trace) NumFrames() int {
	return dig.frames
}

// ResetDigest implements the Digest interface.
func (dig *Trace) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frames = 0
}

// Fingerprint is a convenience function returning the hash of a whole
// trace.
func Fingerprint(tr *frames.Trace) string {
	dig := &Trace{}
	for _, frame := range tr.Frames {
		dig.Fold(frame)
	}
	return dig.Hash()
}
