// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.


package debugger

import (
	"fmt"
	"slices"
	"strings"
)

// breakpoints is the list of addresses at which the VM will halt.
type breakpoints struct {
	addresses []uint16
}

func (bp *breakpoints) add(address uint16) error {
	if slices.Contains(bp.addresses, address) {
		return fmt.Errorf("break already exists (%03x)", address)
	}
	bp.addresses = append(bp.addresses, address)
	return nil
}

func (bp *breakpoints) drop(address uint16) error {
	i := slices.Index(bp.addresses, address)
	if i == -1 {
		return fmt.Errorf("no break at (%03x)", address)
	}
	bp.addresses = slices.Delete(bp.addresses, i, i+1)
	return nil
}

func (bp *breakpoints) clear() {
	bp.addresses = bp.addresses[:0]
}

func (bp *breakpoints) check(address uint16) bool {
	return slices.Contains(bp.addresses, address)
}

func (bp *breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}
	l := slices.Clone(bp.addresses)
	slices.Sort(l)
	s := strings.Builder{}
	for i, a := range l {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("break at %03x", a))
	}
	return s.String()
}
