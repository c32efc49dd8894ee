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

package frames_test

import (
	"testing"

	"github.com/relok64/relok64/frames"
	"github.com/relok64/relok64/memimage"
	"github.com/stretchr/testify/require"
)

func newImage(t *testing.T, origin uint16, data ...uint8) *memimage.Image {
	t.Helper()
	img, err := memimage.NewImage(origin, data)
	require.NoError(t, err)
	return img
}

// a player whose play routine writes an incrementing value to a SID register
// every frame. the init routine sets the volume register, which the play
// routine then writes with the same value every frame.
func counterPlayer(t *testing.T) (*memimage.Image, memimage.Vectors) {
	t.Helper()
	img := newImage(t, 0x1000,
		// init
		0xa9, 0x0f, // LDA #$0f
		0x8d, 0x18, 0xd4, // STA $d418
		0x60, // RTS
		// play
		0xe6, 0x10, // INC $10
		0xa5, 0x10, // LDA $10
		0x8d, 0x01, 0xd4, // STA $d401
		0xa9, 0x0f, // LDA #$0f
		0x8d, 0x18, 0xd4, // STA $d418
		0x60, // RTS
	)
	return img, memimage.Vectors{Init: 0x1000, Play: 0x1006}
}

func TestStepperChangedRegisters(t *testing.T) {
	img, vectors := counterPlayer(t)

	trace, err := frames.RunFrames(img, vectors, 3, 0)
	require.NoError(t, err)
	require.False(t, trace.Truncated)
	require.Len(t, trace.Frames, 3)

	for i, frame := range trace.Frames {
		require.Equal(t, i, frame.Num)

		// $d418 is written every frame but with an unchanged value so only
		// the $d401 write appears
		require.Len(t, frame.Writes, 1)
		require.Equal(t, uint16(0xd401), frame.Writes[0].Address)
		require.Equal(t, uint8(i+1), frame.Writes[0].Value)
	}
}

func TestStepperDeterminism(t *testing.T) {
	img, vectors := counterPlayer(t)

	a, err := frames.RunFrames(img, vectors, 5, 0)
	require.NoError(t, err)
	b, err := frames.RunFrames(img, vectors, 5, 0)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestStepperSongSelection(t *testing.T) {
	img := newImage(t, 0x1000,
		// init. no writes
		0x60, // RTS
		// play. the accumulator still holds the song number
		0x8d, 0x00, 0xd4, // STA $d400
		0x60, // RTS
	)
	vectors := memimage.Vectors{Init: 0x1000, Play: 0x1001}

	st := frames.NewStepper()
	st.Song = 5

	trace, err := st.Run(img, vectors, 3, 0)
	require.NoError(t, err)
	require.Len(t, trace.Frames, 3)

	// the first frame reports the write. later frames repeat the same value
	// and report nothing
	require.Len(t, trace.Frames[0].Writes, 1)
	require.Equal(t, uint8(5), trace.Frames[0].Writes[0].Value)
	require.Empty(t, trace.Frames[1].Writes)
	require.Empty(t, trace.Frames[2].Writes)
}

func TestStepperCycleBudget(t *testing.T) {
	img := newImage(t, 0x1000,
		// play. never returns
		0x4c, 0x00, 0x10, // JMP $1000
		// init
		0x60, // RTS
	)
	vectors := memimage.Vectors{Init: 0x1003, Play: 0x1000}

	trace, err := frames.RunFrames(img, vectors, 3, 500)
	require.NoError(t, err)
	require.True(t, trace.Truncated)
	require.Empty(t, trace.Frames)
}

func TestStepperInitTruncation(t *testing.T) {
	img := newImage(t, 0x1000,
		// init. never returns
		0x4c, 0x00, 0x10, // JMP $1000
	)
	vectors := memimage.Vectors{Init: 0x1000, Play: 0x1000}

	trace, err := frames.RunFrames(img, vectors, 3, 500)
	require.NoError(t, err)
	require.True(t, trace.Truncated)
	require.Empty(t, trace.Frames)
}

func TestStepperJammedCPU(t *testing.T) {
	img := newImage(t, 0x1000,
		// init
		0x60, // RTS
		// play. jams the CPU
		0x02, // KIL
	)
	vectors := memimage.Vectors{Init: 0x1000, Play: 0x1001}

	trace, err := frames.RunFrames(img, vectors, 3, 0)
	require.NoError(t, err)
	require.True(t, trace.Truncated)
}

func TestStepperFrameCount(t *testing.T) {
	img, vectors := counterPlayer(t)

	_, err := frames.RunFrames(img, vectors, 0, 0)
	require.Error(t, err)
}

func TestStepperReuse(t *testing.T) {
	// the play routine takes more cycles every frame (same shape as the
	// partial trace test). no single frame exceeds the per-frame budget
	img := newImage(t, 0x1000,
		// init
		0xa9, 0x00, // LDA #$00
		0x85, 0x10, // STA $10
		0x60, // RTS
		// play. the delay loop runs $10 times 256 iterations
		0xe6, 0x10, // INC $10
		0xa6, 0x10, // LDX $10
		// outer:
		0xa0, 0x00, // LDY #$00
		// inner:
		0xc8,       // INY
		0xd0, 0xfd, // BNE inner
		0xca,       // DEX
		0xd0, 0xf8, // BNE outer
		0x8d, 0x01, 0xd4, // STA $d401
		0x60, // RTS
	)
	vectors := memimage.Vectors{Init: 0x1000, Play: 0x1005}

	st := frames.NewStepper()

	trace, err := st.Run(img, vectors, 1, 5000)
	require.NoError(t, err)
	require.False(t, trace.Truncated)
	require.Len(t, trace.Frames, 1)

	// a longer run on the same stepper. the total cycle budget derived for
	// the first run must not carry over and cut this run short
	trace, err = st.Run(img, vectors, 3, 5000)
	require.NoError(t, err)
	require.False(t, trace.Truncated)
	require.Len(t, trace.Frames, 3)
}

func TestStepperPartialTrace(t *testing.T) {
	// the play routine takes more cycles every frame. with a budget between
	// the early and late frame costs the trace is cut short part way
	img := newImage(t, 0x1000,
		// init
		0xa9, 0x00, // LDA #$00
		0x85, 0x10, // STA $10
		0x60, // RTS
		// play. the delay loop runs $10 times 256 iterations
		0xe6, 0x10, // INC $10
		0xa6, 0x10, // LDX $10
		// outer:
		0xa0, 0x00, // LDY #$00
		// inner:
		0xc8,       // INY
		0xd0, 0xfd, // BNE inner
		0xca,       // DEX
		0xd0, 0xf8, // BNE outer
		0x8d, 0x01, 0xd4, // STA $d401
		0x60, // RTS
	)
	vectors := memimage.Vectors{Init: 0x1000, Play: 0x1005}

	trace, err := frames.RunFrames(img, vectors, 10, 5000)
	require.NoError(t, err)
	require.True(t, trace.Truncated)
	require.NotEmpty(t, trace.Frames)
	require.Less(t, len(trace.Frames), 10)
}
