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

package test_test

import (
	"errors"
	"testing"

	"github.com/relok64/relok64/test"
)

func TestExpectedFailure(t *testing.T) {
	test.ExpectedFailure(t, false)
	test.ExpectedFailure(t, errors.New("test"))
}

func TestExpectedSuccess(t *testing.T) {
	test.ExpectedSuccess(t, true)
	var err error
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, nil)
}

func TestEquate(t *testing.T) {
	test.Equate(t, 10, 5+5)
	test.Equate(t, true, true)
	test.Equate(t, true, !false)
	test.Equate(t, uint16(0x1000), 0x1000)
}
