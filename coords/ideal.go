/*
 * ideal.go, part of golewis.
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

//Package coords places the atoms of a molecule in 3D space. The coordinates are
//idealized: the central atom sits at the origin and its neighbors on the VSEPR
//directions for its steric number. They are meant for visualization, not for
//any calculation.
package coords

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	lewis "github.com/rmera/golewis"
	"github.com/rmera/golewis/chemgraph"
)

//covalent radii, in A. Values for the common elements, others get defaultCovrad.
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"He": 0.28,
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Ne": 0.58,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Ar": 1.06,
	"K":  2.03,
	"Ca": 1.76,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.5,  //hs
	"Cu": 1.32,
	"Zn": 1.22,
	"As": 1.19,
	"Se": 1.2,
	"Br": 1.2,
	"Kr": 1.16,
	"I":  1.39,
	"Xe": 1.40,
}

const defaultCovrad = 0.75

//bond lengths shrink with the bond order.
var orderFactor = []float64{1, 1, 0.87, 0.78}

//Covrad returns the covalent radius for symbol, or a default value.
func Covrad(symbol string) float64 {
	if r, ok := symbolCovrad[symbol]; ok {
		return r
	}
	return defaultCovrad
}

//BondLength returns the ideal distance between two bonded atoms.
func BondLength(s1, s2 string, order int) float64 {
	f := 1.0
	if order > 0 && order < len(orderFactor) {
		f = orderFactor[order]
	}
	return (Covrad(s1) + Covrad(s2)) * f
}

//electron domain directions for steric numbers 2 to 6. Lone pairs take
//the positions in lpOrder first, so, for instance, the lone pairs of a
//steric number 5 are equatorial, and those of a steric number 6 trans.
var domains = map[int][][3]float64{
	2: {{0, 0, 1}, {0, 0, -1}},
	3: {{1, 0, 0}, {-0.5, 0.8660254, 0}, {-0.5, -0.8660254, 0}},
	4: {{0, 0, 1}, {0.9428, 0, -0.3333}, {-0.4714, 0.8165, -0.3333}, {-0.4714, -0.8165, -0.3333}},
	5: {{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {-0.5, 0.8660254, 0}, {-0.5, -0.8660254, 0}},
	6: {{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}},
}

var lpOrder = map[int][]int{
	2: {},
	3: {2},
	4: {3, 2},
	5: {4, 3, 2},
	6: {5, 4},
}

//vseprDirections returns the unit vectors for the n bonded neighbors of an atom
//with the given steric number and lone pairs, or nil if the combination has
//no VSEPR geometry.
func vseprDirections(steric, lp, n int) [][]float64 {
	dirs, ok := domains[steric]
	if !ok || lp > len(lpOrder[steric]) || steric-lp != n {
		return nil
	}
	taken := make(map[int]bool)
	for _, i := range lpOrder[steric][:lp] {
		taken[i] = true
	}
	ret := make([][]float64, 0, n)
	for i, d := range dirs {
		if taken[i] {
			continue
		}
		v := []float64{d[0], d[1], d[2]}
		floats.Scale(1/floats.Norm(v, 2), v)
		ret = append(ret, v)
	}
	return ret
}

//goldenAngle is pi*(3-sqrt(5)).
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

//spiral returns n unit vectors spread over a sphere with the golden spiral
//method. The result only depends on n.
func spiral(n int) [][]float64 {
	ret := make([][]float64, n)
	for i := range ret {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		theta := goldenAngle * float64(i)
		ret[i] = []float64{math.Cos(theta) * r, y, math.Sin(theta) * r}
	}
	return ret
}

//fragmentGap is the separation, in A, between disconnected fragments.
const fragmentGap = 3.0

//Ideal returns an N x 3 matrix with idealized cartesian coordinates for the
//atoms of mol, one row per atom ID. The central atom is at the origin, and its
//neighbors follow the VSEPR directions for the predicted geometry, or a golden
//spiral if the geometry is unknown. Atoms further away are placed outwards from
//the atom they are bonded to. Fragments not connected to the central atom are
//laid out along the X axis. The result is deterministic.
func Ideal(mol *lewis.Molecule) (*mat.Dense, error) {
	if mol == nil || mol.Len() == 0 {
		return nil, fmt.Errorf("Ideal: empty molecule")
	}
	T := chemgraph.New(mol)
	N := mol.Len()
	m := mat.NewDense(N, 3, nil)
	placed := make([]bool, N)
	//the direction from which each atom was reached.
	outward := make([][]float64, N)

	cen := mol.Central()
	placed[cen.ID] = true
	outward[cen.ID] = []float64{1, 0, 0}
	dirs := vseprDirections(mol.Geometry.StericNumber, mol.Geometry.LonePairs, len(cen.Bonds))
	if dirs == nil {
		dirs = spiral(len(cen.Bonds))
	}
	queue := make([]int, 0, N)
	for i, b := range cen.Bonds {
		place(m, mol, cen.ID, b, dirs[i])
		placed[b.Partner] = true
		outward[b.Partner] = dirs[i]
		queue = append(queue, b.Partner)
	}
	expand(m, mol, queue, placed, outward)

	//the rest of the fragments, in order of their lowest ID.
	for _, frag := range T.Fragments() {
		root := frag[0]
		if placed[root] {
			continue
		}
		offset := floats.Max(mat.Col(nil, 0, m)) + fragmentGap
		m.SetRow(root, []float64{offset, 0, 0})
		placed[root] = true
		outward[root] = []float64{1, 0, 0}
		expand(m, mol, []int{root}, placed, outward)
	}
	return m, nil
}

//expand places, breadth-first, all the atoms reachable from queue that
//are not placed yet.
func expand(m *mat.Dense, mol *lewis.Molecule, queue []int, placed []bool, outward [][]float64) {
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		var pending []lewis.Bond
		for _, b := range mol.Atom(id).Bonds {
			if !placed[b.Partner] {
				pending = append(pending, b)
			}
		}
		if len(pending) == 0 {
			continue
		}
		dirs := branch(outward[id], len(pending))
		for i, b := range pending {
			place(m, mol, id, b, dirs[i])
			placed[b.Partner] = true
			outward[b.Partner] = dirs[i]
			queue = append(queue, b.Partner)
		}
	}
}

//branch returns n unit vectors pointing roughly along out.
func branch(out []float64, n int) [][]float64 {
	if n == 1 {
		return [][]float64{out}
	}
	ret := make([][]float64, n)
	for i, s := range spiral(n) {
		v := make([]float64, 3)
		floats.AddScaledTo(v, out, 0.9, s)
		norm := floats.Norm(v, 2)
		if norm < 1e-6 {
			copy(v, out)
			norm = 1
		}
		floats.Scale(1/norm, v)
		ret[i] = v
	}
	return ret
}

//place puts the partner of bond b of atom from at the bond length along dir.
func place(m *mat.Dense, mol *lewis.Molecule, from int, b lewis.Bond, dir []float64) {
	l := BondLength(mol.Atom(from).Symbol, mol.Atom(b.Partner).Symbol, b.Order)
	pos := make([]float64, 3)
	floats.AddScaledTo(pos, mat.Row(nil, from, m), l, dir)
	m.SetRow(b.Partner, pos)
}
