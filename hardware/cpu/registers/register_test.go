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

package registers_test

import (
	"testing"

	"github.com/relok64/relok64/hardware/cpu/registers"
	"github.com/relok64/relok64/hardware/cpu/registers/rtest"
	"github.com/relok64/relok64/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.Equate(t, r8.IsZero(), true)
	rtest.EquateRegisters(t, r8, 0)

	// loading & addition
	r8.Load(127)
	rtest.EquateRegisters(t, r8, 127)
	r8.Add(2, false)
	rtest.EquateRegisters(t, r8, 129)

	// addition boundary
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)
	rtest.EquateRegisters(t, r8, 0)

	// addition boundary with carry
	r8.Load(254)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)
	rtest.EquateRegisters(t, r8, 0)

	// addition boundary with carry
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), false)
	rtest.EquateRegisters(t, r8, 1)

	// signed overflow
	r8.Load(0x7f)
	carry, overflow = r8.Add(0x01, false)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)
	test.Equate(t, r8.IsNegative(), true)
	rtest.EquateRegisters(t, r8, 0x80)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	rtest.EquateRegisters(t, r8, 10)

	r8.Load(12)
	r8.Subtract(1, false)
	rtest.EquateRegisters(t, r8, 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	rtest.EquateRegisters(t, r8, 0xfa)

	// subtract on boundary
	r8.Load(0)
	r8.Subtract(1, true)
	rtest.EquateRegisters(t, r8, 255)
	r8.Load(1)
	r8.Subtract(1, false)
	rtest.EquateRegisters(t, r8, 255)
	r8.Load(1)
	r8.Subtract(2, true)
	rtest.EquateRegisters(t, r8, 255)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	rtest.EquateRegisters(t, r8, 0x01)
	r8.EOR(0xff)
	rtest.EquateRegisters(t, r8, 0xfe)
	r8.ORA(0x01)
	rtest.EquateRegisters(t, r8, 0xff)

	// shifts
	carry = r8.ASL()
	rtest.EquateRegisters(t, r8, 0xfe)
	test.Equate(t, carry, true)
	carry = r8.LSR()
	rtest.EquateRegisters(t, r8, 0x7f)
	test.Equate(t, carry, false)
	carry = r8.LSR()
	test.Equate(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	rtest.EquateRegisters(t, r8, 0xfe)
	test.Equate(t, carry, true)
	carry = r8.ROR(true)
	rtest.EquateRegisters(t, r8, 0xff)
	test.Equate(t, carry, false)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.Reset()
	rtest.EquateStatus(t, sr, "sv-bdizc")

	sr.Zero = true
	sr.Carry = true
	rtest.EquateStatus(t, sr, "sv-bdiZC")

	// the unused bit is always set in the packed value
	sr.Reset()
	test.Equate(t, int(sr.Value()), 0x20)

	// round trip through the packed value
	sr.Sign = true
	sr.DecimalMode = true
	v := sr.Value()
	sr.Reset()
	sr.Load(v)
	rtest.EquateStatus(t, sr, "Sv-bDizc")
}
