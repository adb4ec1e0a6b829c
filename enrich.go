/*
 * enrich.go, part of golewis.
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

import (
	"errors"

	"github.com/rmera/golewis/ptable"
)

//fixedLonePairs is the cheap lone-pair estimate stored in Atom.LonePairs.
//Symbols not present have 0.
var fixedLonePairs = map[string]int{
	"O": 2,
	"N": 1,
}

//Enrich looks up every atom in the table and fills in its chemical properties.
//If any symbol is missing from the table, an error of kind ErrUnknownElement is
//returned and no atom is modified.
func Enrich(atoms []*Atom, table *ptable.Table) error {
	elements := make([]ptable.Element, len(atoms))
	for i, at := range atoms {
		e, err := table.Lookup(at.Symbol)
		if err != nil {
			if errors.Is(err, ptable.ErrNotFound) {
				return newError(ErrUnknownElement, at.Symbol, "element %s not found", at.Symbol)
			}
			return err
		}
		elements[i] = e
	}
	for i, at := range atoms {
		e := elements[i]
		at.Number = e.Number
		at.Group = e.GroupNumber()
		at.Electronegativity = e.Electronegativity
		at.Valence = valenceCapacity(at.Symbol, e)
		at.Expandable = expandable(e)
		at.LonePairs = fixedLonePairs[at.Symbol]
	}
	return nil
}

//valenceCapacity derives the number of bonds an element normally forms from
//its group: with v = group mod 10, the capacity is v if v <= 4, and 8-v otherwise.
//Hydrogen is always 1. Elements without a group, and the few groups for which
//the rule gives a negative number, get 0.
func valenceCapacity(symbol string, e ptable.Element) int {
	if symbol == "H" {
		return 1
	}
	if !e.HasGroup() {
		return 0
	}
	v := e.GroupNumber() % 10
	if v > 4 {
		v = 8 - v
	}
	if v < 0 {
		return 0
	}
	return v
}

//expandable returns true for elements allowed an expanded octet: those in groups
//15 to 17 from the third period on (P, S, Cl, As, Se, Br, ... but not N, O, F).
func expandable(e ptable.Element) bool {
	g := e.GroupNumber()
	return g >= 15 && g <= 17 && e.Number > 10
}
