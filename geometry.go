/*
 * geometry.go, part of golewis.
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

//GeometryUnknown is the label for steric number/lone pair combinations
//absent from the VSEPR table.
const GeometryUnknown = "unknown"

//vseprTable maps {steric number, lone pairs} to a VSEPR geometry.
var vseprTable = map[[2]int]string{
	{2, 0}: "linear",
	{3, 0}: "trigonal planar",
	{3, 1}: "bent",
	{4, 0}: "tetrahedral",
	{4, 1}: "trigonal pyramidal",
	{4, 2}: "bent",
	{5, 0}: "trigonal bipyramidal",
	{5, 1}: "see-saw",
	{5, 2}: "T-shaped",
	{5, 3}: "linear",
	{6, 0}: "octahedral",
	{6, 1}: "square pyramidal",
	{6, 2}: "square planar",
}

//GeometryLabel returns the VSEPR geometry for the given steric number and
//lone pairs, or GeometryUnknown.
func GeometryLabel(steric, lonePairs int) string {
	if g, ok := vseprTable[[2]int{steric, lonePairs}]; ok {
		return g
	}
	return GeometryUnknown
}

//LonePairBasis selects the electron count from which PredictGeometry
//derives the lone pairs of the central atom.
type LonePairBasis int

const (
	//BasisElectrons uses the valence electrons (group mod 10, 1 for H):
	//lone pairs = (valence electrons - bond orders)/2.
	BasisElectrons LonePairBasis = iota
	//BasisCapacity uses the valence capacity instead:
	//lone pairs = (capacity - bond orders)/2.
	BasisCapacity
)

func (L LonePairBasis) String() string {
	switch L {
	case BasisElectrons:
		return "electrons"
	case BasisCapacity:
		return "capacity"
	}
	return fmt.Sprintf("basis(%d)", int(L))
}

//ParseLonePairBasis is the inverse of LonePairBasis.String.
func ParseLonePairBasis(s string) (LonePairBasis, error) {
	switch s {
	case "electrons", "":
		return BasisElectrons, nil
	case "capacity":
		return BasisCapacity, nil
	}
	return 0, fmt.Errorf("unknown lone pair basis %q (want electrons or capacity)", s)
}

//Geometry is the result of the VSEPR prediction for the central atom.
type Geometry struct {
	Label        string
	StericNumber int
	//Neighbors is the number of distinct atoms bonded to the central one.
	Neighbors int
	//LonePairs is computed from the bonding state, and can differ from
	//the central atom's Atom.LonePairs.
	LonePairs int
}

func (G Geometry) String() string {
	return fmt.Sprintf("%s (steric number %d, %d lone pairs)", G.Label, G.StericNumber, G.LonePairs)
}

//StericLonePairs computes the lone pairs of at from its current bonds:
//max(0, floor((n - sum of bond orders)/2)), where n is either the valence
//electrons or the valence capacity, depending on basis.
func StericLonePairs(at *Atom, basis LonePairBasis) int {
	n := at.ValenceElectrons()
	if basis == BasisCapacity {
		n = at.Capacity()
	}
	free := n - at.BondOrderSum()
	if free <= 0 {
		return 0
	}
	return free / 2
}

//PredictGeometry computes the steric number of the central atom (bonded
//neighbors, not bond orders, plus lone pairs) and maps it to a VSEPR geometry.
func PredictGeometry(atoms []*Atom, central int, basis LonePairBasis) Geometry {
	cen := atoms[central]
	lp := StericLonePairs(cen, basis)
	steric := len(cen.Bonds) + lp
	return Geometry{
		Label:        GeometryLabel(steric, lp),
		StericNumber: steric,
		Neighbors:    len(cen.Bonds),
		LonePairs:    lp,
	}
}
