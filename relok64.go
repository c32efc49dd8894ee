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

package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/afero"

	"github.com/relok64/relok64/comparison"
	"github.com/relok64/relok64/digest"
	"github.com/relok64/relok64/disassembly"
	"github.com/relok64/relok64/frames"
	"github.com/relok64/relok64/imagefile"
	"github.com/relok64/relok64/logger"
	"github.com/relok64/relok64/memimage"
	"github.com/relok64/relok64/modalflag"
	"github.com/relok64/relok64/relocate"
	"github.com/relok64/relok64/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "RELOCATE", "DISASM")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	fs := afero.NewOsFs()

	switch md.Mode() {
	case "RUN":
		err = run(md, fs)

	case "RELOCATE":
		err = reloc(md, fs)

	case "DISASM":
		err = disasm(md, fs)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes, fs afero.Fs) error {
	md.NewMode()

	frameCount := md.AddInt("frames", 50, "number of frames to emulate")
	cycleBudget := md.AddInt("cycles", 0, "cycle budget per frame (0 for default)")
	song := md.AddInt("song", 0, "song number passed to the init routine")
	fingerprint := md.AddBool("fingerprint", false, "print trace fingerprint instead of the trace")
	compareWith := md.AddString("compare", "", "image to run alongside and compare against")
	prof := md.AddBool("profile", false, "write CPU profile to current directory")
	stats := md.AddBool("stats", false, "launch statistics server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("no statsview in this build (build with the 'statsview' tag)")
		}
		statsview.Launch(md.Output)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("exactly one program image required for %s mode", md)
	}

	tr, err := runTrace(fs, md.GetArg(0), *frameCount, *cycleBudget, uint8(*song))
	if err != nil {
		return err
	}

	if *compareWith != "" {
		other, err := runTrace(fs, *compareWith, *frameCount, *cycleBudget, uint8(*song))
		if err != nil {
			return err
		}

		if div := comparison.Compare(tr, other); div != nil {
			return fmt.Errorf("%s", div)
		}
		fmt.Fprintf(md.Output, "traces agree over %d frames\n", len(tr.Frames))
		return nil
	}

	if *fingerprint {
		fmt.Fprintf(md.Output, "%s\n", digest.Fingerprint(tr))
	} else {
		for _, frame := range tr.Frames {
			for _, w := range frame.Writes {
				fmt.Fprintf(md.Output, "frame %d: %s\n", frame.Num, w)
			}
		}
	}

	if tr.Truncated {
		fmt.Fprintf(md.Output, "trace truncated after %d frames\n", len(tr.Frames))
	}

	return nil
}

func runTrace(fs afero.Fs, filename string, frameCount int, cycleBudget int, song uint8) (*frames.Trace, error) {
	f, err := imagefile.Load(fs, filename)
	if err != nil {
		return nil, err
	}

	st := frames.NewStepper()
	st.Song = song
	return st.Run(f.Image, f.Vectors, frameCount, cycleBudget)
}

func reloc(md *modalflag.Modes, fs afero.Fs) error {
	md.NewMode()

	newBase := md.AddInt("base", -1, "new base address for the program")
	output := md.AddString("o", "", "filename for the relocated program")
	report := md.AddBool("report", false, "print one line per considered operand")
	verify := md.AddInt("verify", 0, "frames to emulate before and after to check fidelity (0 to skip)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("exactly one program image required for %s mode", md)
	}
	if *newBase < 0 || *newBase > 0xffff {
		return fmt.Errorf("new base address required for %s mode (-base)", md)
	}
	if *output == "" {
		return fmt.Errorf("output filename required for %s mode (-o)", md)
	}

	f, err := imagefile.Load(fs, md.GetArg(0))
	if err != nil {
		return err
	}

	newImg, entries, err := relocate.Relocate(f.Image, f.Image.Load, uint16(*newBase),
		f.Protected, f.ReservedZeroPage, nil)
	if err != nil {
		return err
	}

	if *report {
		for _, e := range entries {
			fmt.Fprintf(md.Output, "%s\n", e)
		}
	}

	delta := int(*newBase) - int(f.Image.Load.Origin)

	moved := &imagefile.File{
		Image: newImg,
		Vectors: memimage.Vectors{
			Init: uint16(int(f.Vectors.Init) + delta),
			Play: uint16(int(f.Vectors.Play) + delta),
		},
		Protected:        f.Protected,
		ReservedZeroPage: f.ReservedZeroPage,
	}

	if *verify > 0 {
		before, err := frames.RunFrames(f.Image, f.Vectors, *verify, 0)
		if err != nil {
			return err
		}
		after, err := frames.RunFrames(moved.Image, moved.Vectors, *verify, 0)
		if err != nil {
			return err
		}
		if div := comparison.Compare(before, after); div != nil {
			return fmt.Errorf("relocated program diverges: %s", div)
		}
		fmt.Fprintf(md.Output, "traces agree over %d frames\n", len(before.Frames))
	}

	if err := imagefile.Save(fs, *output, moved); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d operands considered, written to %s\n", len(entries), *output)

	return nil
}

func disasm(md *modalflag.Modes, fs afero.Fs) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("exactly one program image required for %s mode", md)
	}

	f, err := imagefile.Load(fs, md.GetArg(0))
	if err != nil {
		return err
	}

	for _, reg := range f.Image.RegionsOfKind(memimage.Code) {
		instrs, err := disassembly.DecodeRegion(f.Image, reg)
		if err != nil {
			return err
		}
		for _, ins := range instrs {
			fmt.Fprintf(md.Output, "%s\n", ins)
		}
	}

	return nil
}
