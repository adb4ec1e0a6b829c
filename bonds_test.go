/*
 * bonds_test.go, part of golewis.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bonded(t *testing.T, formula string, pairs DoubleBondPairs) ([]*Atom, int, []Formed) {
	t.Helper()
	atoms := enriched(t, formula)
	central, err := SelectCentral(atoms)
	require.NoError(t, err)
	return atoms, central, AssignBonds(atoms, central, pairs)
}

//checkBondInvariants verifies bond symmetry and that no atom goes over its capacity.
func checkBondInvariants(t *testing.T, atoms []*Atom) {
	t.Helper()
	for _, at := range atoms {
		assert.LessOrEqual(t, at.BondOrderSum(), at.Capacity(), "%s over capacity", at)
		seen := make(map[int]bool)
		for _, b := range at.Bonds {
			assert.NotEqual(t, at.ID, b.Partner, "%s bonded to itself", at)
			assert.False(t, seen[b.Partner], "%s bonded twice to %d", at, b.Partner)
			seen[b.Partner] = true
			assert.Equal(t, b.Order, atoms[b.Partner].OrderWith(at.ID), "asymmetric bond %s-%s", at, atoms[b.Partner])
		}
	}
}

func TestAssignBondsWater(Te *testing.T) {
	atoms, central, formed := bonded(Te, "H2O", DefaultDoubleBondPairs())
	assert.Equal(Te, 2, central)
	require.Len(Te, formed, 2)
	assert.Equal(Te, Formed{At1: 2, At2: 0, Order: 1, Pass: PassCentralH}, formed[0])
	assert.Equal(Te, Formed{At1: 2, At2: 1, Order: 1, Pass: PassCentralH}, formed[1])
	assert.Equal(Te, []Bond{{Partner: 0, Order: 1}, {Partner: 1, Order: 1}}, atoms[2].Bonds)
	assert.False(Te, atoms[0].BondedTo(1))
	checkBondInvariants(Te, atoms)
}

func TestAssignBondsCarbonDioxide(Te *testing.T) {
	atoms, _, formed := bonded(Te, "CO2", DefaultDoubleBondPairs())
	require.Len(Te, formed, 2)
	for _, f := range formed {
		assert.Equal(Te, 2, f.Order)
		assert.Equal(Te, PassCentralHeavy, f.Pass)
	}
	assert.Equal(Te, 0, atoms[0].Spare())
	checkBondInvariants(Te, atoms)

	//without the allow-list, only single bonds are possible.
	atoms, _, formed = bonded(Te, "CO2", NewDoubleBondPairs())
	require.Len(Te, formed, 3)
	assert.Equal(Te, 1, atoms[0].OrderWith(1))
	assert.Equal(Te, 1, atoms[0].OrderWith(2))
	//the two oxygens, with one spare unit each, bond in the last pass.
	assert.Equal(Te, Formed{At1: 1, At2: 2, Order: 1, Pass: PassRemaining}, formed[2])
	checkBondInvariants(Te, atoms)
}

func TestAssignBondsDoubleNeedsTwoSpare(Te *testing.T) {
	c := &Atom{ID: 0, Symbol: "C", Valence: 4, Bonds: []Bond{{1, 1}, {2, 1}, {3, 1}}}
	o := &Atom{ID: 4, Symbol: "O", Valence: 2}
	assert.Equal(Te, 1, bondOrderFor(c, o, DefaultDoubleBondPairs()))
	c.Bonds = append(c.Bonds, Bond{5, 1})
	assert.Equal(Te, 0, bondOrderFor(c, o, DefaultDoubleBondPairs()))
	c.Bonds = c.Bonds[:2]
	assert.Equal(Te, 2, bondOrderFor(o, c, DefaultDoubleBondPairs()))
}

func TestAssignBondsPassOrder(Te *testing.T) {
	//heavy atoms go first: both oxygens take the four units of the carbon,
	//and the hydrogens end up bonded to each other.
	atoms, _, formed := bonded(Te, "CH2O2", DefaultDoubleBondPairs())
	//C0 H1 H2 O3 O4
	assert.Equal(Te, 2, atoms[0].OrderWith(3))
	assert.Equal(Te, 2, atoms[0].OrderWith(4))
	assert.False(Te, atoms[0].BondedTo(1))
	assert.Equal(Te, Formed{At1: 1, At2: 2, Order: 1, Pass: PassRemaining}, formed[len(formed)-1])
	checkBondInvariants(Te, atoms)

	atoms, _, _ = bonded(Te, "CH3O", DefaultDoubleBondPairs())
	//C0 H1 H2 H3 O4: O bonds first (double), then only 2 H fit.
	assert.Equal(Te, 2, atoms[0].OrderWith(4))
	assert.True(Te, atoms[0].BondedTo(1))
	assert.True(Te, atoms[0].BondedTo(2))
	assert.False(Te, atoms[0].BondedTo(3))
	assert.Equal(Te, 1, atoms[3].Spare())
	checkBondInvariants(Te, atoms)
}

func TestAssignBondsSulfuricAcid(Te *testing.T) {
	//H0 H1 S2 O3 O4 O5 O6
	atoms, central, _ := bonded(Te, "H2SO4", DefaultDoubleBondPairs())
	assert.Equal(Te, 2, central)
	assert.Equal(Te, 2, atoms[2].OrderWith(3))
	assert.Len(Te, atoms[2].Bonds, 1)
	//leftovers are connected pairwise by the flat last pass.
	assert.Equal(Te, 1, atoms[0].OrderWith(1))
	assert.Equal(Te, 1, atoms[4].OrderWith(5))
	assert.Equal(Te, 1, atoms[4].OrderWith(6))
	assert.Equal(Te, 1, atoms[5].OrderWith(6))
	checkBondInvariants(Te, atoms)
}

func TestAssignBondsInvariants(Te *testing.T) {
	formulas := []string{
		"CH4", "NH3", "H2O", "CO2", "BF3", "SF6", "PCl5", "C2H6", "C2H4", "C6H6",
		"HCN", "H2SO4", "H3PO4", "CH3OH", "C6H12O6", "XeF4", "NaCl", "Fe2O3", "CeO2",
	}
	for _, f := range formulas {
		Te.Run(f, func(t *testing.T) {
			atoms, _, formed := bonded(t, f, DefaultDoubleBondPairs())
			checkBondInvariants(t, atoms)
			total := 0
			for _, at := range atoms {
				total += len(at.Bonds)
			}
			assert.Equal(t, 2*len(formed), total)
		})
	}
}

func TestExpandedOctetCapacity(Te *testing.T) {
	at := &Atom{ID: 0, Symbol: "S", Valence: 2, Expandable: true}
	for i := 1; i <= 4; i++ {
		at.Bonds = append(at.Bonds, Bond{Partner: i, Order: 1})
		assert.Equal(Te, 2, at.Capacity())
	}
	at.Bonds = append(at.Bonds, Bond{Partner: 5, Order: 1})
	assert.Equal(Te, 12, at.Capacity())
	assert.Equal(Te, 7, at.Spare())

	notExp := &Atom{ID: 0, Symbol: "C", Valence: 4, Bonds: at.Bonds}
	assert.Equal(Te, 4, notExp.Capacity())
	assert.Equal(Te, -1, notExp.Spare())
}

func TestDoubleBondPairs(Te *testing.T) {
	D := DefaultDoubleBondPairs()
	assert.True(Te, D.Has("O", "C"))
	assert.True(Te, D.Has("C", "O"))
	assert.True(Te, D.Has("C", "C"))
	assert.False(Te, D.Has("O", "O"))
	assert.False(Te, D.Has("N", "N"))
	assert.Equal(Te, []string{"C-C", "C-N", "C-O", "O-P", "O-S"}, D.Strings())

	P, err := ParseDoubleBondPairs([]string{"N-N", "O=O", "C O"})
	require.NoError(Te, err)
	assert.True(Te, P.Has("N", "N"))
	assert.True(Te, P.Has("O", "O"))
	assert.True(Te, P.Has("O", "C"))

	_, err = ParseDoubleBondPairs([]string{"CNO"})
	assert.Error(Te, err)
	_, err = ParseDoubleBondPairs([]string{"C-N-O"})
	assert.Error(Te, err)
}

func TestPassString(Te *testing.T) {
	assert.Equal(Te, "central-heavy", PassCentralHeavy.String())
	assert.Equal(Te, "central-hydrogen", PassCentralH.String())
	assert.Equal(Te, "remaining", PassRemaining.String())
	assert.Equal(Te, "pass(9)", Pass(9).String())
}
