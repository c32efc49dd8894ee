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

// Package imagefile loads and saves program images in the PRG convention:
// a two byte little-endian load address followed by the program bytes.
//
// The metadata the core cannot infer for itself, entry vectors and tagged
// regions in particular, travels in a JSON sidecar file next to the
// program file. The sidecar for music.prg is music.prg.json.
//
// All filesystem access goes through an afero filesystem so that tests and
// embedding applications can substitute an in-memory one.
package imagefile

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/relok64/relok64/curated"
	"github.com/relok64/relok64/memimage"
)

// Error patterns raised by the imagefile package.
const (
	LoadError = "image file: loading: %v"
	SaveError = "image file: saving: %v"
)

// SidecarSuffix is appended to the program filename to name the metadata
// sidecar.
const SidecarSuffix = ".json"

// File is a program image together with the sidecar metadata that
// accompanies it on disk.
type File struct {
	Image   *memimage.Image
	Vectors memimage.Vectors

	// relocation metadata. Protected ranges are addresses a relocation must
	// never redirect. ReservedZeroPage lists the zero page addresses owned
	// by the hosting environment
	Protected        []memimage.Range
	ReservedZeroPage []uint8
}

// the JSON form of the sidecar. addresses are plain numbers
type sidecar struct {
	Init             uint16          `json:"init"`
	Play             uint16          `json:"play"`
	Regions          []sidecarRegion `json:"regions"`
	Protected        []sidecarRange  `json:"protected,omitempty"`
	ReservedZeroPage []uint8         `json:"reserved_zero_page,omitempty"`
}

type sidecarRange struct {
	Origin uint16 `json:"origin"`
	Memtop uint16 `json:"memtop"`
}

type sidecarRegion struct {
	Origin uint16 `json:"origin"`
	Memtop uint16 `json:"memtop"`
	Kind   string `json:"kind"`
}

func regionKind(s string) (memimage.RegionKind, error) {
	switch s {
	case "code":
		return memimage.Code, nil
	case "data":
		return memimage.Data, nil
	case "pointer-table":
		return memimage.PointerTable, nil
	}
	return 0, fmt.Errorf("unknown region kind '%s'", s)
}

func kindLabel(k memimage.RegionKind) string {
	switch k {
	case memimage.Code:
		return "code"
	case memimage.Data:
		return "data"
	case memimage.PointerTable:
		return "pointer-table"
	}
	return "unknown"
}

// Load a program file and its sidecar.
func Load(fs afero.Fs, filename string) (*File, error) {
	prg, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	if len(prg) < 3 {
		return nil, curated.Errorf(LoadError,
			fmt.Sprintf("%s: too short to hold a load address and any program", filename))
	}

	origin := uint16(prg[0]) | (uint16(prg[1]) << 8)

	img, err := memimage.NewImage(origin, prg[2:])
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	sc, err := afero.ReadFile(fs, filename+SidecarSuffix)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	var meta sidecar
	if err := json.Unmarshal(sc, &meta); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	f := &File{
		Image: img,
		Vectors: memimage.Vectors{
			Init: meta.Init,
			Play: meta.Play,
		},
		ReservedZeroPage: meta.ReservedZeroPage,
	}

	for _, reg := range meta.Regions {
		kind, err := regionKind(reg.Kind)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		if reg.Memtop < reg.Origin {
			return nil, curated.Errorf(LoadError,
				fmt.Sprintf("region %#04x to %#04x is inverted", reg.Origin, reg.Memtop))
		}
		img.Regions = append(img.Regions, memimage.Region{
			Range: memimage.Range{Origin: reg.Origin, Memtop: reg.Memtop},
			Kind:  kind,
		})
	}

	for _, p := range meta.Protected {
		if p.Memtop < p.Origin {
			return nil, curated.Errorf(LoadError,
				fmt.Sprintf("protected range %#04x to %#04x is inverted", p.Origin, p.Memtop))
		}
		f.Protected = append(f.Protected, memimage.Range{Origin: p.Origin, Memtop: p.Memtop})
	}

	return f, nil
}

// Save a program file and its sidecar. The sidecar is regenerated from the
// File fields so a relocated image is saved with its moved region
// boundaries.
func Save(fs afero.Fs, filename string, f *File) error {
	img := f.Image

	prg := make([]uint8, 2, 2+img.Load.Len())
	prg[0] = uint8(img.Load.Origin)
	prg[1] = uint8(img.Load.Origin >> 8)
	prg = append(prg, img.Bytes()...)

	if err := afero.WriteFile(fs, filename, prg, 0644); err != nil {
		return curated.Errorf(SaveError, err)
	}

	meta := sidecar{
		Init:             f.Vectors.Init,
		Play:             f.Vectors.Play,
		ReservedZeroPage: f.ReservedZeroPage,
	}
	for _, reg := range img.Regions {
		meta.Regions = append(meta.Regions, sidecarRegion{
			Origin: reg.Origin,
			Memtop: reg.Memtop,
			Kind:   kindLabel(reg.Kind),
		})
	}
	for _, p := range f.Protected {
		meta.Protected = append(meta.Protected, sidecarRange{Origin: p.Origin, Memtop: p.Memtop})
	}

	sc, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	if err := afero.WriteFile(fs, filename+SidecarSuffix, sc, 0644); err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}
