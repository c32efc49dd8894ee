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

package relocate_test

import (
	"testing"

	"github.com/relok64/relok64/curated"
	"github.com/relok64/relok64/hardware/memory"
	"github.com/relok64/relok64/memimage"
	"github.com/relok64/relok64/relocate"
	"github.com/stretchr/testify/require"
)

var sidRange = memimage.Range{Origin: memory.SIDOrigin, Memtop: memory.SIDMemtop}

func newImage(t *testing.T, origin uint16, data ...uint8) *memimage.Image {
	t.Helper()
	img, err := memimage.NewImage(origin, data)
	require.NoError(t, err)
	return img
}

func codeRegion(origin uint16, memtop uint16) memimage.Region {
	return memimage.Region{
		Range: memimage.Range{Origin: origin, Memtop: memtop},
		Kind:  memimage.Code,
	}
}

// a small player at $1200. the JSR targets the moved range, the STA targets
// the SID and the branch carries a relative operand
func player(t *testing.T) *memimage.Image {
	t.Helper()
	img := newImage(t, 0x1200,
		0x20, 0x06, 0x12, // JSR $1206
		0x8d, 0x00, 0xd4, // STA $d400
		0xd0, 0xfe, // BNE $1206
		0x60, // RTS
	)
	img.Regions = append(img.Regions, codeRegion(0x1200, 0x1208))
	return img
}

func TestRelocate(t *testing.T) {
	img := player(t)

	to, entries, err := relocate.Relocate(img, img.Load, 0x1000,
		[]memimage.Range{sidRange}, nil, nil)
	require.NoError(t, err)

	require.Equal(t, uint16(0x1000), to.Load.Origin)
	require.Equal(t, []uint8{
		0x20, 0x06, 0x10, // JSR $1006
		0x8d, 0x00, 0xd4, // STA $d400 (unchanged, points at hardware)
		0xd0, 0xfe, // BNE (unchanged, relative operands are never patched)
		0x60, // RTS
	}, to.Bytes())

	// the branch and the RTS carry no address operand so only the JSR and
	// the STA are considered
	require.Len(t, entries, 2)

	require.Equal(t, relocate.Relocated, entries[0].Disposition)
	require.Equal(t, uint16(0x1001), entries[0].Location)
	require.Equal(t, uint16(0x1206), entries[0].Original)
	require.Equal(t, uint16(0x1006), entries[0].Target)

	require.Equal(t, relocate.External, entries[1].Disposition)
	require.Equal(t, uint16(0xd400), entries[1].Original)
	require.Equal(t, uint16(0xd400), entries[1].Target)

	// regions move with the image
	require.Equal(t, uint16(0x1000), to.Regions[0].Origin)
	require.Equal(t, uint16(0x1008), to.Regions[0].Memtop)
}

func TestRelocateZeroDelta(t *testing.T) {
	img := player(t)

	to, _, err := relocate.Relocate(img, img.Load, img.Load.Origin,
		[]memimage.Range{sidRange}, nil, nil)
	require.NoError(t, err)

	// a relocation with no displacement is byte identical
	require.Equal(t, img.Bytes(), to.Bytes())
	require.Equal(t, img.Load, to.Load)
}

func TestRelocateRoundTrip(t *testing.T) {
	img := player(t)

	up, _, err := relocate.Relocate(img, img.Load, 0x1500,
		[]memimage.Range{sidRange}, nil, nil)
	require.NoError(t, err)
	require.NotEqual(t, img.Bytes(), up.Bytes())

	back, _, err := relocate.Relocate(up, up.Load, 0x1200,
		[]memimage.Range{sidRange}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, img.Bytes(), back.Bytes())
}

func TestRelocateZeroPage(t *testing.T) {
	img := newImage(t, 0x1000,
		0xa5, 0xfb, // LDA $fb (collides with the reservation)
		0x85, 0xfb, // STA $fb
		0xa5, 0x10, // LDA $10 (no collision)
		0x60, // RTS
	)
	img.Regions = append(img.Regions, codeRegion(0x1000, 0x1006))

	to, entries, err := relocate.Relocate(img, img.Load, 0x1000,
		nil, []uint8{0xfb}, nil)
	require.NoError(t, err)

	// $fb is remapped to the lowest free slot. $10 stays where it is
	require.Equal(t, []uint8{
		0xa5, 0x00,
		0x85, 0x00,
		0xa5, 0x10,
		0x60,
	}, to.Bytes())

	require.Len(t, entries, 3)
	require.Equal(t, relocate.RemappedZeroPage, entries[0].Disposition)
	require.Equal(t, relocate.RemappedZeroPage, entries[1].Disposition)
	require.Equal(t, relocate.External, entries[2].Disposition)

	// both uses of $fb follow the same mapping
	require.Equal(t, entries[0].Target, entries[1].Target)
}

func TestRelocateAbsoluteZeroPageReference(t *testing.T) {
	img := newImage(t, 0x1000,
		0xa5, 0xfb, // LDA $fb (collides with the reservation)
		0xad, 0xfb, 0x00, // LDA $00fb (same address, 16bit form)
		0x60, // RTS
	)
	img.Regions = append(img.Regions, codeRegion(0x1000, 0x1005))

	to, entries, err := relocate.Relocate(img, img.Load, 0x1000,
		nil, []uint8{0xfb}, nil)
	require.NoError(t, err)

	// both forms of $fb follow the same mapping
	require.Equal(t, []uint8{
		0xa5, 0x00,
		0xad, 0x00, 0x00,
		0x60,
	}, to.Bytes())

	require.Len(t, entries, 2)
	require.Equal(t, relocate.RemappedZeroPage, entries[0].Disposition)
	require.Equal(t, relocate.RemappedZeroPage, entries[1].Disposition)
	require.Equal(t, entries[0].Target, entries[1].Target)
}

func TestRelocateAbsoluteZeroPageReferenceOnly(t *testing.T) {
	// the colliding address appears in its 16bit form alone. it must still
	// claim a slot in the map
	img := newImage(t, 0x1000,
		0xad, 0xfb, 0x00, // LDA $00fb
		0x60, // RTS
	)
	img.Regions = append(img.Regions, codeRegion(0x1000, 0x1003))

	to, entries, err := relocate.Relocate(img, img.Load, 0x1000,
		nil, []uint8{0xfb}, nil)
	require.NoError(t, err)

	require.Equal(t, []uint8{0xad, 0x00, 0x00, 0x60}, to.Bytes())
	require.Len(t, entries, 1)
	require.Equal(t, relocate.RemappedZeroPage, entries[0].Disposition)
	require.Equal(t, uint16(0x00fb), entries[0].Original)
	require.Equal(t, uint16(0x0000), entries[0].Target)
}

func TestRelocateCallerZeroPageMap(t *testing.T) {
	img := newImage(t, 0x1000,
		0xa5, 0x10, // LDA $10
		0x60, // RTS
	)
	img.Regions = append(img.Regions, codeRegion(0x1000, 0x1002))

	// the caller decides where $10 goes
	to, entries, err := relocate.Relocate(img, img.Load, 0x1000,
		nil, nil, relocate.ZeroPageMap{0x10: 0x42})
	require.NoError(t, err)
	require.Equal(t, uint8(0x42), to.Bytes()[1])
	require.Equal(t, relocate.RemappedZeroPage, entries[0].Disposition)
}

func TestRelocateNonInjectiveMap(t *testing.T) {
	img := newImage(t, 0x1000, 0x60)
	img.Regions = append(img.Regions, codeRegion(0x1000, 0x1000))

	_, _, err := relocate.Relocate(img, img.Load, 0x1000,
		nil, nil, relocate.ZeroPageMap{0x10: 0x20, 0x11: 0x20})
	require.Error(t, err)
	require.True(t, curated.Is(err, relocate.RelocationError))
}

func TestRelocatePointerTable(t *testing.T) {
	img := newImage(t, 0x1000,
		// code
		0x4c, 0x00, 0x10, // JMP $1000
		0x60, // RTS
		// pointer table. one word into the moved range, one at the SID
		0x00, 0x10,
		0x00, 0xd4,
	)
	img.Regions = append(img.Regions, codeRegion(0x1000, 0x1003))
	img.Regions = append(img.Regions, memimage.Region{
		Range: memimage.Range{Origin: 0x1004, Memtop: 0x1007},
		Kind:  memimage.PointerTable,
	})

	to, entries, err := relocate.Relocate(img, img.Load, 0x2000,
		[]memimage.Range{sidRange}, nil, nil)
	require.NoError(t, err)

	// table words are rewritten as 16bit words, not as instruction operands
	require.Equal(t, uint16(0x2000), to.Read16(0x2004))
	require.Equal(t, uint16(0xd400), to.Read16(0x2006))

	// one entry for the JMP, one per table word
	require.Len(t, entries, 3)
	require.Equal(t, relocate.Relocated, entries[1].Disposition)
	require.Equal(t, relocate.External, entries[2].Disposition)
}

func TestRelocateOddPointerTable(t *testing.T) {
	img := newImage(t, 0x1000, 0x60, 0x00, 0x10, 0x00)
	img.Regions = append(img.Regions, codeRegion(0x1000, 0x1000))
	img.Regions = append(img.Regions, memimage.Region{
		Range: memimage.Range{Origin: 0x1001, Memtop: 0x1003},
		Kind:  memimage.PointerTable,
	})

	_, _, err := relocate.Relocate(img, img.Load, 0x2000, nil, nil, nil)
	require.Error(t, err)
	require.True(t, curated.Is(err, relocate.RelocationError))
}

func TestRelocateUnresolvedReference(t *testing.T) {
	img := newImage(t, 0x1000,
		0x4c, 0x00, 0x30, // JMP $3000 (outside the image, not protected)
		0x60, // RTS
	)
	img.Regions = append(img.Regions, codeRegion(0x1000, 0x1003))

	to, _, err := relocate.Relocate(img, img.Load, 0x2000, nil, nil, nil)
	require.Error(t, err)
	require.True(t, curated.Is(err, relocate.UnresolvedReference))

	// no partial output
	require.Nil(t, to)

	// extending the protected ranges resolves the reference
	to, entries, err := relocate.Relocate(img, img.Load, 0x2000,
		[]memimage.Range{{Origin: 0x3000, Memtop: 0x30ff}}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, uint16(0x3000), to.Read16(0x2001))
	require.Equal(t, relocate.External, entries[0].Disposition)
}

func TestRelocateOutOfAddressSpace(t *testing.T) {
	img := newImage(t, 0x1000, 0xa9, 0x00, 0x60)
	img.Regions = append(img.Regions, codeRegion(0x1000, 0x1002))

	_, _, err := relocate.Relocate(img, img.Load, 0xffff, nil, nil, nil)
	require.Error(t, err)
	require.True(t, curated.Is(err, relocate.RelocationError))
}

func TestVerifyCorruptedOperand(t *testing.T) {
	img := player(t)

	to, _, err := relocate.Relocate(img, img.Load, 0x1000,
		[]memimage.Range{sidRange}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, relocate.Verify(to, []memimage.Range{sidRange}))

	// point the JSR outside the image and every protected range
	to.Write16(0x1001, 0x8000)
	err = relocate.Verify(to, []memimage.Range{sidRange})
	require.Error(t, err)
	require.True(t, curated.Is(err, relocate.ConsistencyViolation))
}

func TestVerifyCorruptedInstructionStream(t *testing.T) {
	img := player(t)

	to, _, err := relocate.Relocate(img, img.Load, 0x1000,
		[]memimage.Range{sidRange}, nil, nil)
	require.NoError(t, err)

	// overwrite an opcode with a byte that does not decode
	to.Write8(0x1000, 0x02)
	err = relocate.Verify(to, []memimage.Range{sidRange})
	require.Error(t, err)
	require.True(t, curated.Is(err, relocate.ConsistencyViolation))
}
