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

	"github.com/relok64/relok64/curated"
	"github.com/relok64/relok64/disassembly"
	"github.com/relok64/relok64/hardware/cpu/instructions"
	"github.com/relok64/relok64/logger"
	"github.com/relok64/relok64/memimage"
)

// Error patterns raised by the relocate package.
const (
	RelocationError = "relocation: %v"

	// UnresolvedReference is recoverable. The caller can supply a
	// disposition hint, typically by extending the protected ranges or
	// tagging a pointer table, and run the job again.
	UnresolvedReference = "unresolved reference: %v"

	// ZeroPageExhausted and ConsistencyViolation are fatal for the job. No
	// partial output is ever produced for them.
	ZeroPageExhausted    = "zero page exhausted: %v"
	ConsistencyViolation = "consistency violation: %v"
)

// an operand considered for relocation. gathered by the scan stage
type operand struct {
	ins    disassembly.Instr
	kind   instructions.AddressingOperand
	target uint16
}

// a 16bit word in a declared pointer table
type word struct {
	address uint16
	value   uint16
}

// Relocate moves the program in the image from oldRange to newBase and
// rewrites every address operand so the program behaves identically at its
// new location. Operands targeting a protected range are left unchanged.
// Zero page addresses colliding with the reserved set are remapped, as are
// any addresses the caller has already placed in zpMap. A nil zpMap is
// treated as empty.
//
// The returned image is complete and verified. On error no image is
// returned at all.
func Relocate(img *memimage.Image, oldRange memimage.Range, newBase uint16,
	protected []memimage.Range, reserved []uint8, zpMap ZeroPageMap) (*memimage.Image, []Entry, error) {

	delta := int(newBase) - int(oldRange.Origin)

	if int(img.Load.Origin)+delta < 0 || int(img.Load.Memtop)+delta > 0xffff {
		return nil, nil, curated.Errorf(RelocationError,
			fmt.Sprintf("new base %#04x pushes image outside the address space", newBase))
	}

	// SCAN
	operands, words, err := scan(img)
	if err != nil {
		return nil, nil, err
	}

	// ALLOCATE. the zero page map is completed before classification so
	// that classification is a single pass. remapping decided here is
	// exactly the remapping the classify stage attributes to the map
	zpMap, err = allocate(operands, words, oldRange, reserved, zpMap)
	if err != nil {
		return nil, nil, err
	}

	// CLASSIFY and PATCH. the patched image starts as a copy of the
	// original shifted to its new location
	newImg, err := shift(img, delta)
	if err != nil {
		return nil, nil, err
	}

	var entries []Entry

	for _, op := range operands {
		e, err := classify(op, oldRange, protected, zpMap, delta)
		if err != nil {
			return nil, nil, err
		}
		patch(newImg, e)
		entries = append(entries, e)
	}

	for _, w := range words {
		e, err := classifyWord(w, oldRange, protected, zpMap, delta)
		if err != nil {
			return nil, nil, err
		}
		patch(newImg, e)
		entries = append(entries, e)
	}

	// VERIFY
	if err := Verify(newImg, protected); err != nil {
		return nil, nil, err
	}

	logger.Logf("relocate", "%s -> %#04x: %d operands considered", oldRange, newBase, len(entries))

	return newImg, entries, nil
}

// scan decodes every declared code region and gathers the operands that
// carry an address, along with the words of every declared pointer table.
// Scanning is a full decode, never a byte scan.
func scan(img *memimage.Image) ([]operand, []word, error) {
	var operands []operand

	for _, reg := range img.RegionsOfKind(memimage.Code) {
		instrs, err := disassembly.DecodeRegion(img, reg)
		if err != nil {
			return nil, nil, err
		}

		for _, ins := range instrs {
			kind := ins.Defn.AddressOperand()
			if kind == instructions.NonAddress {
				// includes branch instructions. relative operands are
				// position independent and must never be patched
				continue
			}
			operands = append(operands, operand{
				ins:    ins,
				kind:   kind,
				target: ins.Operand,
			})
		}
	}

	var words []word

	for _, reg := range img.RegionsOfKind(memimage.PointerTable) {
		if reg.Len()%2 != 0 {
			return nil, nil, curated.Errorf(RelocationError,
				fmt.Sprintf("pointer table %s has an odd number of bytes", reg.Range))
		}
		for a := int(reg.Origin); a < int(reg.Memtop); a += 2 {
			words = append(words, word{
				address: uint16(a),
				value:   img.Read16(uint16(a)),
			})
		}
	}

	return operands, words, nil
}

// allocate completes the zero page map. Zero page addresses used by the
// code that collide with the reserved set, and that the caller has not
// already mapped, are remapped to free slots. The footprint covers 16bit
// references into the zero page as well as the 8bit operands, so that both
// forms of the same address follow the same mapping.
func allocate(operands []operand, words []word, oldRange memimage.Range,
	reserved []uint8, zpMap ZeroPageMap) (ZeroPageMap, error) {
	merged := make(ZeroPageMap)

	// caller supplied mappings are kept as they are but must be injective
	claimed := make(map[uint8]bool)
	for old, to := range zpMap {
		if claimed[to] {
			return nil, curated.Errorf(RelocationError,
				fmt.Sprintf("supplied zero page map is not injective (two entries map to %#02x)", to))
		}
		claimed[to] = true
		merged[old] = to
	}

	// the zero page footprint of the scanned code, in scan order for
	// deterministic allocation. addresses already mapped by the caller are
	// excluded
	var used []uint8
	note := func(target uint16) {
		a := uint8(target)
		if _, ok := merged[a]; !ok {
			used = append(used, a)
		}
	}
	for _, op := range operands {
		switch op.kind {
		case instructions.ZeroPageAddress:
			note(op.target)
		case instructions.AbsoluteAddress:
			// a 16bit reference into the zero page is remapped like an 8bit
			// one unless it points into the moved range
			if op.target < 0x100 && !oldRange.Contains(op.target) {
				note(op.target)
			}
		}
	}
	for _, w := range words {
		if w.value < 0x100 && !oldRange.Contains(w.value) {
			note(w.value)
		}
	}

	// slots claimed by the caller's map are not available for allocation
	unavailable := make([]uint8, 0, len(reserved)+len(claimed))
	unavailable = append(unavailable, reserved...)
	for a := range claimed {
		unavailable = append(unavailable, a)
	}

	alloc, err := ResolveZeroPage(used, unavailable)
	if err != nil {
		return nil, err
	}

	for old, to := range alloc {
		merged[old] = to
	}

	return merged, nil
}

// classify decides the disposition of a single code operand and returns the
// corresponding audit entry, with the location already expressed in the
// coordinates of the patched image.
func classify(op operand, oldRange memimage.Range, protected []memimage.Range,
	zpMap ZeroPageMap, delta int) (Entry, error) {

	e := Entry{
		Location: uint16(int(op.ins.Address) + 1 + delta),
		Kind:     op.kind,
		Original: op.target,
	}

	switch op.kind {
	case instructions.ZeroPageAddress:
		old := uint8(op.target)
		if to, ok := zpMap[old]; ok {
			e.Target = uint16(to)
			e.Disposition = RemappedZeroPage
		} else {
			// a zero page address with no collision stays where it is
			e.Target = op.target
			e.Disposition = External
		}
		return e, nil

	case instructions.AbsoluteAddress:
		d, target, ok := dispose(op.target, oldRange, protected, zpMap, delta)
		if !ok {
			return Entry{}, curated.Errorf(UnresolvedReference,
				fmt.Sprintf("%s: operand %#04x is not in the moved range, not protected and not zero page mapped",
					op.ins, op.target))
		}
		e.Target = target
		e.Disposition = d
		return e, nil
	}

	return Entry{}, curated.Errorf(RelocationError,
		fmt.Sprintf("unclassifiable operand at %#04x", op.ins.Address))
}

// classifyWord decides the disposition of a pointer table word.
func classifyWord(w word, oldRange memimage.Range, protected []memimage.Range,
	zpMap ZeroPageMap, delta int) (Entry, error) {

	e := Entry{
		Location: uint16(int(w.address) + delta),
		Kind:     instructions.AbsoluteAddress,
		Original: w.value,
	}

	d, target, ok := dispose(w.value, oldRange, protected, zpMap, delta)
	if !ok {
		return Entry{}, curated.Errorf(UnresolvedReference,
			fmt.Sprintf("pointer table word at %#04x: %#04x is not in the moved range, not protected and not zero page mapped",
				w.address, w.value))
	}
	e.Target = target
	e.Disposition = d
	return e, nil
}

// dispose applies the classification rules shared by absolute operands and
// pointer table words.
func dispose(target uint16, oldRange memimage.Range, protected []memimage.Range,
	zpMap ZeroPageMap, delta int) (Disposition, uint16, bool) {

	if oldRange.Contains(target) {
		return Relocated, uint16(int(target) + delta), true
	}

	for _, p := range protected {
		if p.Contains(target) {
			return External, target, true
		}
	}

	// a 16bit reference into the zero page follows the zero page map
	if target < 0x100 {
		if to, ok := zpMap[uint8(target)]; ok {
			return RemappedZeroPage, uint16(to), true
		}
		return External, target, true
	}

	return 0, 0, false
}

// patch rewrites the operand bytes described by the entry.
func patch(img *memimage.Image, e Entry) {
	switch e.Kind {
	case instructions.AbsoluteAddress:
		img.Write16(e.Location, e.Target)
	case instructions.ZeroPageAddress:
		img.Write8(e.Location, uint8(e.Target))
	}
}

// shift copies the image to its new location, moving the declared regions
// with it.
func shift(img *memimage.Image, delta int) (*memimage.Image, error) {
	origin := uint16(int(img.Load.Origin) + delta)

	n, err := memimage.NewImage(origin, img.Bytes())
	if err != nil {
		return nil, curated.Errorf(RelocationError, err)
	}

	for _, reg := range img.Regions {
		n.Regions = append(n.Regions, memimage.Region{
			Range: memimage.Range{
				Origin: uint16(int(reg.Origin) + delta),
				Memtop: uint16(int(reg.Memtop) + delta),
			},
			Kind: reg.Kind,
		})
	}

	return n, nil
}

// Verify decodes the image from scratch and confirms that every address
// operand resolves to an address inside the image, inside a protected
// range, or inside the zero page. Verification runs as the final stage of
// every relocation but is exported so that an image can be checked on its
// own.
func Verify(img *memimage.Image, protected []memimage.Range) error {
	check := func(at string, target uint16) error {
		if img.Load.Contains(target) || target < 0x100 {
			return nil
		}
		for _, p := range protected {
			if p.Contains(target) {
				return nil
			}
		}
		return curated.Errorf(ConsistencyViolation,
			fmt.Sprintf("%s resolves to %#04x which is outside the image and every protected range", at, target))
	}

	for _, reg := range img.RegionsOfKind(memimage.Code) {
		instrs, err := disassembly.DecodeRegion(img, reg)
		if err != nil {
			// the patched bytes no longer decode. patching has corrupted
			// the instruction stream
			return curated.Errorf(ConsistencyViolation, err)
		}

		for _, ins := range instrs {
			if ins.Defn.AddressOperand() != instructions.AbsoluteAddress {
				continue
			}
			if err := check(ins.String(), ins.Operand); err != nil {
				return err
			}
		}
	}

	for _, reg := range img.RegionsOfKind(memimage.PointerTable) {
		for a := int(reg.Origin); a < int(reg.Memtop); a += 2 {
			at := fmt.Sprintf("pointer table word at %#04x", a)
			if err := check(at, img.Read16(uint16(a))); err != nil {
				return err
			}
		}
	}

	return nil
}
