/*
 * bonds.go, part of golewis.
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
	"fmt"
	"sort"
	"strings"
)

//Pass identifies the step of AssignBonds in which a bond was formed.
type Pass int

const (
	PassCentralHeavy Pass = iota + 1 //central atom to non-hydrogen atoms
	PassCentralH                     //central atom to hydrogens
	PassRemaining                    //any pair left
)

func (P Pass) String() string {
	switch P {
	case PassCentralHeavy:
		return "central-heavy"
	case PassCentralH:
		return "central-hydrogen"
	case PassRemaining:
		return "remaining"
	}
	return fmt.Sprintf("pass(%d)", int(P))
}

//Formed records a bond created by AssignBonds.
type Formed struct {
	At1, At2 int //IDs, At1 is the atom the pass was iterating from.
	Order    int
	Pass     Pass
}

//DoubleBondPairs is the set of unordered element pairs that are allowed to form
//double bonds.
type DoubleBondPairs map[[2]string]bool

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

//NewDoubleBondPairs returns a set with the given pairs. The order of the
//symbols in each pair is irrelevant.
func NewDoubleBondPairs(pairs ...[2]string) DoubleBondPairs {
	D := make(DoubleBondPairs, len(pairs))
	for _, p := range pairs {
		D[pairKey(p[0], p[1])] = true
	}
	return D
}

//DefaultDoubleBondPairs returns the common double-bond partners C-O, C-N, C-C, S-O and P-O.
func DefaultDoubleBondPairs() DoubleBondPairs {
	return NewDoubleBondPairs(
		[2]string{"C", "O"},
		[2]string{"C", "N"},
		[2]string{"C", "C"},
		[2]string{"S", "O"},
		[2]string{"P", "O"},
	)
}

//ParseDoubleBondPairs builds a set from strings like "C-O" or "S=O".
func ParseDoubleBondPairs(pairs []string) (DoubleBondPairs, error) {
	D := make(DoubleBondPairs, len(pairs))
	for _, v := range pairs {
		fields := strings.FieldsFunc(v, func(r rune) bool { return r == '-' || r == '=' || r == ' ' })
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid double bond pair %q, expected something like C-O", v)
		}
		D[pairKey(fields[0], fields[1])] = true
	}
	return D, nil
}

//Has returns true if the pair a, b (in any order) is in the set.
func (D DoubleBondPairs) Has(a, b string) bool {
	return D[pairKey(a, b)]
}

//Strings returns the pairs as sorted "A-B" strings.
func (D DoubleBondPairs) Strings() []string {
	ret := make([]string, 0, len(D))
	for k := range D {
		ret = append(ret, k[0]+"-"+k[1])
	}
	sort.Strings(ret)
	return ret
}

func canBond(at1, at2 *Atom, order int) bool {
	return at1.Spare() >= order && at2.Spare() >= order
}

//bondOrderFor returns the order of the bond that at1 and at2 would form, or 0
//if they can't bond. Both atoms need 2 spare units before the allowed pairs are
//even considered for a double bond.
func bondOrderFor(at1, at2 *Atom, pairs DoubleBondPairs) int {
	if canBond(at1, at2, 2) && pairs.Has(at1.Symbol, at2.Symbol) {
		return 2
	}
	if canBond(at1, at2, 1) {
		return 1
	}
	return 0
}

//createBond records the bond on both atoms.
func createBond(at1, at2 *Atom, order int) {
	at1.Bonds = append(at1.Bonds, Bond{Partner: at2.ID, Order: order})
	at2.Bonds = append(at2.Bonds, Bond{Partner: at1.ID, Order: order})
}

//AssignBonds connects the atoms with a greedy heuristic, in three passes:
//first the central atom with every non-hydrogen atom, then the central atom with
//every hydrogen, and finally every pair of still unbonded atoms, in increasing
//ID order. In the first and last passes, a double bond is formed if both atoms
//have at least 2 spare units and the pair is in pairs; otherwise a single bond
//is formed if both atoms have room for it. Spare capacity is recomputed before
//each decision, as it changes with every bond formed.
//
//AssignBonds never fails. Atoms that can't be saturated are just left with spare
//capacity, which callers can check with Atom.Spare. The bonds formed are
//returned in the order in which they were created.
//atoms[i].ID must be i for all atoms, as ParseFormula guarantees.
func AssignBonds(atoms []*Atom, central int, pairs DoubleBondPairs) []Formed {
	formed := make([]Formed, 0, len(atoms))
	cen := atoms[central]
	for _, at := range atoms {
		if at.ID == cen.ID || at.IsHydrogen() {
			continue
		}
		if order := bondOrderFor(cen, at, pairs); order > 0 {
			createBond(cen, at, order)
			formed = append(formed, Formed{At1: cen.ID, At2: at.ID, Order: order, Pass: PassCentralHeavy})
		}
	}
	for _, at := range atoms {
		if !at.IsHydrogen() || at.ID == cen.ID {
			continue
		}
		if canBond(cen, at, 1) {
			createBond(cen, at, 1)
			formed = append(formed, Formed{At1: cen.ID, At2: at.ID, Order: 1, Pass: PassCentralH})
		}
	}
	for i, at1 := range atoms {
		for _, at2 := range atoms[i+1:] {
			if at1.BondedTo(at2.ID) {
				continue
			}
			if order := bondOrderFor(at1, at2, pairs); order > 0 {
				createBond(at1, at2, order)
				formed = append(formed, Formed{At1: at1.ID, At2: at2.ID, Order: order, Pass: PassRemaining})
			}
		}
	}
	return formed
}
