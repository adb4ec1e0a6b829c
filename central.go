/*
 * central.go, part of golewis.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goLewis is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package lewis

//SelectCentral picks the central atom: the non-hydrogen atom with the lowest
//electronegativity, the first one in formula order winning ties. Atoms with
//undefined electronegativity are only considered if no other non-hydrogen atom
//exists, in which case the first non-hydrogen atom is taken. The chosen atom gets
//the Central role and all the others the Peripheral one. The index of the central
//atom is returned. If all atoms are hydrogens (or there are no atoms), an error of
//kind ErrNoCentralAtom is returned and no roles are changed.
func SelectCentral(atoms []*Atom) (int, error) {
	central := -1
	fallback := -1
	minEN := 0.0
	for i, at := range atoms {
		if at.IsHydrogen() {
			continue
		}
		if fallback < 0 {
			fallback = i
		}
		en, ok := at.EN()
		if !ok {
			continue
		}
		if central < 0 || en < minEN {
			minEN = en
			central = i
		}
	}
	if central < 0 {
		central = fallback
	}
	if central < 0 {
		return -1, newError(ErrNoCentralAtom, "", "no non-hydrogen atom among %d atoms", len(atoms))
	}
	for i, at := range atoms {
		if i == central {
			at.Role = Central
		} else {
			at.Role = Peripheral
		}
	}
	return central, nil
}
