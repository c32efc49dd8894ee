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

package memimage

import (
	"fmt"

	"github.com/relok64/relok64/curated"
)

// Error patterns raised by the memimage package.
const (
	InvalidImage = "memimage: %v"
)

// Range describes an inclusive range of addresses.
type Range struct {
	Origin uint16
	Memtop uint16
}

func (r Range) String() string {
	return fmt.Sprintf("%#04x to %#04x", r.Origin, r.Memtop)
}

// Contains returns true if the address falls inside the range.
func (r Range) Contains(address uint16) bool {
	return address >= r.Origin && address <= r.Memtop
}

// Len returns the number of addresses in the range.
func (r Range) Len() int {
	return int(r.Memtop) - int(r.Origin) + 1
}

// RegionKind classifies a declared region of an image.
type RegionKind int

// List of valid RegionKind values.
const (
	Code RegionKind = iota
	Data
	PointerTable
)

func (k RegionKind) String() string {
	switch k {
	case Code:
		return "code"
	case Data:
		return "data"
	case PointerTable:
		return "pointer table"
	}
	return "unknown"
}

// Region is a declared range of an image with a kind. Region boundaries are
// always supplied by a collaborator, never inferred.
type Region struct {
	Range
	Kind RegionKind
}

func (reg Region) String() string {
	return fmt.Sprintf("%s (%s)", reg.Range, reg.Kind)
}

// Vectors gives the entry addresses of the program in the image. Init is
// called once at the start of a run and Play is called once per frame.
type Vectors struct {
	Init uint16
	Play uint16
}

// Image is a byte-addressable program image. The full 64kb address space is
// represented but only the load range contains program bytes.
type Image struct {
	Load    Range
	Regions []Region

	mem [0x10000]uint8
}

// NewImage creates an Image from program bytes loading at origin. The data
// must not be empty and must not extend past the top of the address space.
func NewImage(origin uint16, data []uint8) (*Image, error) {
	if len(data) == 0 {
		return nil, curated.Errorf(InvalidImage, "no program data")
	}
	if int(origin)+len(data) > 0x10000 {
		return nil, curated.Errorf(InvalidImage,
			fmt.Sprintf("program data extends past end of address space (origin %#04x, length %d)", origin, len(data)))
	}

	img := &Image{
		Load: Range{
			Origin: origin,
			Memtop: origin + uint16(len(data)) - 1,
		},
	}
	copy(img.mem[origin:], data)

	return img, nil
}

// Snapshot makes a deep copy of the image.
func (img *Image) Snapshot() *Image {
	n := *img
	n.Regions = make([]Region, len(img.Regions))
	copy(n.Regions, img.Regions)
	return &n
}

// Read8 returns the byte at the specified address.
func (img *Image) Read8(address uint16) uint8 {
	return img.mem[address]
}

// Read16 returns the 16bit value at the specified address. The 6502 stores
// 16bit values with the least significant byte first.
func (img *Image) Read16(address uint16) uint16 {
	lo := uint16(img.mem[address])
	hi := uint16(img.mem[address+1])
	return (hi << 8) | lo
}

// Write8 writes a byte to the specified address.
func (img *Image) Write8(address uint16, data uint8) {
	img.mem[address] = data
}

// Write16 writes a 16bit value to the specified address, least significant
// byte first.
func (img *Image) Write16(address uint16, data uint16) {
	img.mem[address] = uint8(data)
	img.mem[address+1] = uint8(data >> 8)
}

// Bytes returns a copy of the bytes in the load range.
func (img *Image) Bytes() []uint8 {
	b := make([]uint8, img.Load.Len())
	copy(b, img.mem[img.Load.Origin:int(img.Load.Memtop)+1])
	return b
}

// RegionsOfKind returns the declared regions of the specified kind in
// declaration order.
func (img *Image) RegionsOfKind(kind RegionKind) []Region {
	var regions []Region
	for _, reg := range img.Regions {
		if reg.Kind == kind {
			regions = append(regions, reg)
		}
	}
	return regions
}

func (img *Image) String() string {
	return fmt.Sprintf("image: %s (%d regions)", img.Load, len(img.Regions))
}
