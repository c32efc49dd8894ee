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

package frames

import (
	"fmt"
	"sort"

	"github.com/relok64/relok64/curated"
	"github.com/relok64/relok64/hardware/cpu"
	"github.com/relok64/relok64/hardware/memory"
	"github.com/relok64/relok64/logger"
	"github.com/relok64/relok64/memimage"
)

// Error patterns raised by the frames package.
const (
	// CycleBudgetExceeded is not an error in the usual sense. The stepper
	// catches it and returns the partial trace with the Truncated flag set.
	CycleBudgetExceeded = "cycle budget exceeded: %v"

	RunError = "frame run: %v"
)

// DefaultCycleBudget is the per-frame cycle budget used when the caller does
// not specify one. A PAL frame gives the player fewer than 20000 cycles so
// anything near this figure means the routine is not going to return.
const DefaultCycleBudget = 100000

// the address the stepped routine returns to. the corresponding bytes are
// pushed onto the stack before each call
const sentinel = uint16(0xffff)

// Write is one observed write to a monitored hardware register.
type Write struct {
	Address uint16
	Value   uint8

	// cycle within the frame at which the (most recent) write landed
	Cycle int
}

func (w Write) String() string {
	return fmt.Sprintf("%#04x=%#02x (cycle %d)", w.Address, w.Value, w.Cycle)
}

// Frame is the record of a single call to the play vector. Writes holds only
// the monitored registers whose value changed since the previous frame, in
// ascending address order.
type Frame struct {
	Num    int
	Cycles int
	Writes []Write
}

// Trace is an ordered sequence of frame records.
type Trace struct {
	Frames []Frame

	// the run ended before the requested frame count was reached
	Truncated bool
}

// Stepper runs a program image frame-by-frame. The zero value is not
// usable; use NewStepper().
type Stepper struct {
	// the range of hardware addresses to observe. defaults to the SID
	// registers
	Monitor memimage.Range

	// value of the accumulator when the init vector is called
	Song uint8

	// cap on the total number of cycles for the whole run. zero means
	// frameCount multiplied by the per-frame budget
	TotalCycleBudget int

	mc  *cpu.CPU
	bus *memory.Bus

	// cycles consumed this frame and this run
	frameCycles int
	totalCycles int

	// budgets in effect for the current run. recomputed on every Run() call
	// so the public fields are never written to
	frameBudget int
	totalBudget int

	// register values at the end of the previous frame. registers never yet
	// written are absent
	shadow map[uint16]uint8

	// writes observed during the current frame, last value per address
	observed map[uint16]Write
}

// NewStepper is the preferred method of initialisation for the Stepper type.
func NewStepper() *Stepper {
	return &Stepper{
		Monitor: memimage.Range{
			Origin: memory.SIDOrigin,
			Memtop: memory.SIDMemtop,
		},
	}
}

// RunFrames emulates frameCount calls to the play vector of the image,
// preceded by a single call to the init vector, monitoring the SID
// registers. It is a convenience for the common case; use a Stepper directly
// to monitor a different range or to select a song.
func RunFrames(img *memimage.Image, vectors memimage.Vectors, frameCount int, cycleBudget int) (*Trace, error) {
	return NewStepper().Run(img, vectors, frameCount, cycleBudget)
}

// Run the program in the image for the specified number of frames. The
// returned trace is complete unless the Truncated flag is set, in which case
// it holds every frame that completed within budget.
func (st *Stepper) Run(img *memimage.Image, vectors memimage.Vectors, frameCount int, cycleBudget int) (*Trace, error) {
	if frameCount < 1 {
		return nil, curated.Errorf(RunError, "frame count must be at least one")
	}
	if cycleBudget <= 0 {
		cycleBudget = DefaultCycleBudget
	}
	st.frameBudget = cycleBudget
	st.totalBudget = st.TotalCycleBudget
	if st.totalBudget <= 0 {
		st.totalBudget = frameCount * cycleBudget
	}

	st.bus = memory.NewBus()
	st.bus.Copy(img.Load.Origin, img.Bytes())

	st.mc = cpu.NewCPU(st.bus)
	st.mc.Reset()

	st.shadow = make(map[uint16]uint8)
	st.totalCycles = 0

	hook := st.bus.RegisterHook(st.Monitor.Origin, st.Monitor.Memtop, func(address uint16, data uint8) {
		st.observed[address] = Write{
			Address: address,
			Value:   data,
			Cycle:   st.frameCycles,
		}
	})
	defer st.bus.UnregisterHook(hook)

	trace := &Trace{}

	// init call. by convention the accumulator selects the song
	st.mc.A.Load(st.Song)
	st.observed = make(map[uint16]Write)
	if err := st.call(vectors.Init); err != nil {
		if curated.Is(err, CycleBudgetExceeded) {
			logger.Logf("frames", "init routine at %#04x exceeded cycle budget", vectors.Init)
			trace.Truncated = true
			return trace, nil
		}
		return nil, err
	}
	st.latch()

	for i := 0; i < frameCount; i++ {
		st.observed = make(map[uint16]Write)

		err := st.call(vectors.Play)
		if err != nil {
			if curated.Is(err, CycleBudgetExceeded) {
				trace.Truncated = true
				return trace, nil
			}
			return nil, err
		}

		frame := Frame{
			Num:    i,
			Cycles: st.frameCycles,
			Writes: st.changed(),
		}
		st.latch()
		trace.Frames = append(trace.Frames, frame)
	}

	return trace, nil
}

// call executes the routine at the specified address until it returns to the
// call point.
func (st *Stepper) call(address uint16) error {
	st.frameCycles = 0

	// push the sentinel return address onto the stack. RTS adds one to the
	// address it pops so push sentinel-1
	push := sentinel - 1
	st.bus.Poke(memory.StackOrigin|st.mc.SP.Address(), uint8(push>>8))
	st.mc.SP.Add(0xff, false)
	st.bus.Poke(memory.StackOrigin|st.mc.SP.Address(), uint8(push))
	st.mc.SP.Add(0xff, false)

	returnSP := st.mc.SP.Value() + 2

	if err := st.mc.LoadPC(address); err != nil {
		return curated.Errorf(RunError, err)
	}

	for {
		err := st.mc.ExecuteInstruction(st.countCycles)
		if err != nil {
			if curated.Is(err, CycleBudgetExceeded) {
				return err
			}
			return curated.Errorf(RunError, err)
		}

		if st.mc.Killed {
			// a jammed CPU never returns. treat it the same way as code that
			// runs past its budget
			return curated.Errorf(CycleBudgetExceeded,
				fmt.Sprintf("KIL at %#04x", st.mc.LastResult.Address))
		}

		// the routine has returned when the PC is at the sentinel and the
		// stack has unwound to the call point. checking the stack pointer
		// guards against a jump into the sentinel address from a nested
		// subroutine
		if st.mc.PC.Address() == sentinel && st.mc.SP.Value() == returnSP {
			return nil
		}
	}
}

// countCycles is the cycle callback given to the CPU.
func (st *Stepper) countCycles() error {
	st.frameCycles++
	st.totalCycles++

	if st.frameCycles > st.frameBudget {
		return curated.Errorf(CycleBudgetExceeded,
			fmt.Sprintf("%d cycles in one frame", st.frameCycles))
	}
	if st.totalCycles > st.totalBudget {
		return curated.Errorf(CycleBudgetExceeded,
			fmt.Sprintf("%d cycles in one run", st.totalCycles))
	}

	return nil
}

// changed returns the observed writes that differ from the shadow of the
// previous frame, in ascending address order.
func (st *Stepper) changed() []Write {
	var writes []Write
	for address, w := range st.observed {
		prev, ok := st.shadow[address]
		if !ok || prev != w.Value {
			writes = append(writes, w)
		}
	}

	sort.Slice(writes, func(i, j int) bool {
		return writes[i].Address < writes[j].Address
	})

	return writes
}

// latch folds the writes of the completed frame into the register shadow.
func (st *Stepper) latch() {
	for address, w := range st.observed {
		st.shadow[address] = w.Value
	}
}
