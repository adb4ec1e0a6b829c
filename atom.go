/*
 * atom.go, part of golewis.
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

import "fmt"

//Role tells whether an atom anchors the bonding graph or hangs from it.
type Role int

const (
	Peripheral Role = iota
	Central
)

func (R Role) String() string {
	if R == Central {
		return "central"
	}
	return "peripheral"
}

//MarshalText makes roles show up as "central"/"peripheral" in JSON.
func (R Role) MarshalText() ([]byte, error) {
	return []byte(R.String()), nil
}

//UnmarshalText is the inverse of MarshalText.
func (R *Role) UnmarshalText(text []byte) error {
	switch string(text) {
	case "central":
		*R = Central
	case "peripheral":
		*R = Peripheral
	default:
		return fmt.Errorf("unknown role %q", text)
	}
	return nil
}

//expandedCapacity is the valence capacity of a hypervalent atom once it
//already has more than expandedThreshold bonds.
const (
	expandedCapacity  = 12
	expandedThreshold = 4
)

//Bond is one side of a bond: the ID of the partner atom and the bond order.
//Every bond is recorded in both atoms, with the same order.
type Bond struct {
	Partner int `json:"partner"`
	Order   int `json:"order"`
}

//Atom is one atom of a formula. Atoms are created by ParseFormula, which only
//fills ID and Symbol. The rest of the fields are set by Enrich, and the bonds
//by AssignBonds.
type Atom struct {
	ID     int
	Symbol string
	Number int
	Group  int //0 if the element has no group.
	//Valence is the valence capacity derived from the group. Use Capacity
	//to get the capacity that applies given the current bonds.
	Valence int
	//Expandable atoms (heavy elements of groups 15-17) may reach
	//an expanded octet.
	Expandable        bool
	Electronegativity *float64 //nil means undefined.
	//LonePairs is the fixed-table estimate (O:2, N:1, others 0). It is
	//not the number used to predict geometries, see PredictGeometry.
	LonePairs int
	Bonds     []Bond //in formation order
	Role      Role
}

//IsHydrogen returns true if the atom is a hydrogen.
func (A *Atom) IsHydrogen() bool {
	return A.Symbol == "H"
}

//EN returns the electronegativity of the atom and whether it is defined.
func (A *Atom) EN() (float64, bool) {
	if A.Electronegativity == nil {
		return 0, false
	}
	return *A.Electronegativity, true
}

//Capacity returns the maximum total bond order the atom can hold, given
//its current bonds. It has to be recomputed every time, since hypervalent
//atoms get an expanded capacity once they have more than 4 bonds.
func (A *Atom) Capacity() int {
	if A.Expandable && len(A.Bonds) > expandedThreshold {
		return expandedCapacity
	}
	return A.Valence
}

//BondOrderSum returns the sum of the orders of all bonds of the atom.
func (A *Atom) BondOrderSum() int {
	sum := 0
	for _, b := range A.Bonds {
		sum += b.Order
	}
	return sum
}

//Spare returns the bond order the atom can still take.
func (A *Atom) Spare() int {
	return A.Capacity() - A.BondOrderSum()
}

//ValenceElectrons returns the number of valence electrons estimated from
//the group (group mod 10). Hydrogen has 1.
func (A *Atom) ValenceElectrons() int {
	if A.IsHydrogen() {
		return 1
	}
	return A.Group % 10
}

//OrderWith returns the order of the bond between the atom and the atom
//with ID partner, or 0 if they are not bonded.
func (A *Atom) OrderWith(partner int) int {
	for _, b := range A.Bonds {
		if b.Partner == partner {
			return b.Order
		}
	}
	return 0
}

//BondedTo returns true if the atom is bonded to the atom with ID partner.
func (A *Atom) BondedTo(partner int) bool {
	return A.OrderWith(partner) != 0
}

func (A *Atom) String() string {
	return fmt.Sprintf("%s%d", A.Symbol, A.ID)
}
