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

// Package rtest contains test helpers for the registers package.
package rtest

import (
	"testing"

	"github.com/relok64/relok64/hardware/cpu/registers"
)

// EquateRegisters tests a register value against an expected value.
func EquateRegisters(t *testing.T, r interface{}, v int) {
	t.Helper()

	switch r := r.(type) {
	case registers.Register:
		if int(r.Value()) != v {
			t.Errorf("register test failed (%#02x - wanted %#02x)", r.Value(), v)
		}

	case registers.ProgramCounter:
		if int(r.Address()) != v {
			t.Errorf("program counter test failed (%#04x - wanted %#04x)", r.Address(), v)
		}

	case registers.StatusRegister:
		if int(r.Value()) != v {
			t.Errorf("status register test failed (%#02x - wanted %#02x)", r.Value(), v)
		}

	default:
		t.Fatalf("unhandled type for EquateRegisters() function (%T)", r)
	}
}

// EquateStatus tests the status register against an eight character flag
// string of the form "sv-bdizc". An upper case letter means the flag is
// expected to be set, a lower case letter means it is expected to be clear.
func EquateStatus(t *testing.T, sr registers.StatusRegister, flags string) {
	t.Helper()

	if sr.String() != flags {
		t.Errorf("status register test failed (%s - wanted %s)", sr.String(), flags)
	}
}
