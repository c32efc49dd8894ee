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

package imagefile_test

import (
	"testing"

	"github.com/relok64/relok64/curated"
	"github.com/relok64/relok64/imagefile"
	"github.com/relok64/relok64/memimage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()

	// load address $1000 followed by a three byte program
	prg := []byte{0x00, 0x10, 0xa9, 0x00, 0x60}
	require.NoError(t, afero.WriteFile(fs, "music.prg", prg, 0644))

	sc := []byte(`{
		"init": 4096,
		"play": 4098,
		"regions": [
			{"origin": 4096, "memtop": 4098, "kind": "code"}
		],
		"protected": [
			{"origin": 54272, "memtop": 54300}
		],
		"reserved_zero_page": [251, 252]
	}`)
	require.NoError(t, afero.WriteFile(fs, "music.prg"+imagefile.SidecarSuffix, sc, 0644))

	f, err := imagefile.Load(fs, "music.prg")
	require.NoError(t, err)

	require.Equal(t, uint16(0x1000), f.Image.Load.Origin)
	require.Equal(t, uint16(0x1002), f.Image.Load.Memtop)
	require.Equal(t, []uint8{0xa9, 0x00, 0x60}, f.Image.Bytes())

	require.Equal(t, uint16(0x1000), f.Vectors.Init)
	require.Equal(t, uint16(0x1002), f.Vectors.Play)

	require.Len(t, f.Image.Regions, 1)
	require.Equal(t, memimage.Code, f.Image.Regions[0].Kind)
	require.Equal(t, uint16(0x1000), f.Image.Regions[0].Origin)

	require.Equal(t, []memimage.Range{{Origin: 0xd400, Memtop: 0xd41c}}, f.Protected)
	require.Equal(t, []uint8{0xfb, 0xfc}, f.ReservedZeroPage)
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	// missing program file
	_, err := imagefile.Load(fs, "missing.prg")
	require.Error(t, err)
	require.True(t, curated.Is(err, imagefile.LoadError))

	// too short to hold a load address and any program
	require.NoError(t, afero.WriteFile(fs, "short.prg", []byte{0x00, 0x10}, 0644))
	_, err = imagefile.Load(fs, "short.prg")
	require.Error(t, err)
	require.True(t, curated.Is(err, imagefile.LoadError))

	// missing sidecar
	require.NoError(t, afero.WriteFile(fs, "bare.prg", []byte{0x00, 0x10, 0x60}, 0644))
	_, err = imagefile.Load(fs, "bare.prg")
	require.Error(t, err)
	require.True(t, curated.Is(err, imagefile.LoadError))

	// unknown region kind
	require.NoError(t, afero.WriteFile(fs, "bad.prg", []byte{0x00, 0x10, 0x60}, 0644))
	sc := []byte(`{"init": 4096, "play": 4096, "regions": [{"origin": 4096, "memtop": 4096, "kind": "nonsense"}]}`)
	require.NoError(t, afero.WriteFile(fs, "bad.prg"+imagefile.SidecarSuffix, sc, 0644))
	_, err = imagefile.Load(fs, "bad.prg")
	require.Error(t, err)
	require.True(t, curated.Is(err, imagefile.LoadError))

	// inverted region range
	sc = []byte(`{"init": 4096, "play": 4096, "regions": [{"origin": 4096, "memtop": 4095, "kind": "code"}]}`)
	require.NoError(t, afero.WriteFile(fs, "bad.prg"+imagefile.SidecarSuffix, sc, 0644))
	_, err = imagefile.Load(fs, "bad.prg")
	require.Error(t, err)
	require.True(t, curated.Is(err, imagefile.LoadError))
}

func TestSaveRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	img, err := memimage.NewImage(0x1000, []uint8{0xa9, 0x00, 0x8d, 0x18, 0xd4, 0x60})
	require.NoError(t, err)
	img.Regions = append(img.Regions, memimage.Region{
		Range: memimage.Range{Origin: 0x1000, Memtop: 0x1005},
		Kind:  memimage.Code,
	})

	f := &imagefile.File{
		Image:            img,
		Vectors:          memimage.Vectors{Init: 0x1000, Play: 0x1002},
		Protected:        []memimage.Range{{Origin: 0xd400, Memtop: 0xd41c}},
		ReservedZeroPage: []uint8{0xfb},
	}

	require.NoError(t, imagefile.Save(fs, "out.prg", f))

	// the program file carries the load address in its first two bytes
	prg, err := afero.ReadFile(fs, "out.prg")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x10}, prg[:2])

	g, err := imagefile.Load(fs, "out.prg")
	require.NoError(t, err)

	require.Equal(t, f.Image.Load, g.Image.Load)
	require.Equal(t, f.Image.Bytes(), g.Image.Bytes())
	require.Equal(t, f.Image.Regions, g.Image.Regions)
	require.Equal(t, f.Vectors, g.Vectors)
	require.Equal(t, f.Protected, g.Protected)
	require.Equal(t, f.ReservedZeroPage, g.ReservedZeroPage)
}
