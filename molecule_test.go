/*
 * molecule_test.go, part of golewis.
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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildScenarios(Te *testing.T) {
	tests := []struct {
		formula  string
		symbols  []string
		central  int
		geometry string
		bonds    [][3]int //id1, id2, order
	}{
		{"H2O", []string{"H", "H", "O"}, 2, "bent", [][3]int{{2, 0, 1}, {2, 1, 1}}},
		{"CO2", []string{"C", "O", "O"}, 0, "linear", [][3]int{{0, 1, 2}, {0, 2, 2}}},
		{"CH4", []string{"C", "H", "H", "H", "H"}, 0, "tetrahedral", [][3]int{{0, 1, 1}, {0, 2, 1}, {0, 3, 1}, {0, 4, 1}}},
	}
	for _, tt := range tests {
		Te.Run(tt.formula, func(t *testing.T) {
			mol, err := Build(tt.formula)
			require.NoError(t, err)
			require.Equal(t, len(tt.symbols), mol.Len())
			for i, s := range tt.symbols {
				assert.Equal(t, s, mol.Atom(i).Symbol)
				assert.Equal(t, i, mol.Atom(i).ID)
			}
			assert.Equal(t, tt.central, mol.CentralIndex)
			assert.Equal(t, Central, mol.Central().Role)
			assert.Equal(t, tt.geometry, mol.Geometry.Label)
			for _, b := range tt.bonds {
				assert.Equal(t, b[2], mol.BondOrder(b[0], b[1]))
				assert.Equal(t, b[2], mol.BondOrder(b[1], b[0]))
			}
			assert.Len(t, mol.Formed, len(tt.bonds))
			assert.Empty(t, mol.Unsaturated())
		})
	}
}

func TestBuildErrors(Te *testing.T) {
	tests := []struct {
		formula string
		kind    error
		symbol  string
	}{
		{"Xx2", ErrUnknownElement, "Xx"},
		{"H2", ErrNoCentralAtom, ""},
		{"H2o", ErrMalformedFormula, ""},
		{"H0O", ErrMalformedFormula, "H"},
	}
	for _, tt := range tests {
		Te.Run(tt.formula, func(t *testing.T) {
			mol, err := Build(tt.formula)
			require.Error(t, err)
			assert.Nil(t, mol)
			assert.ErrorIs(t, err, tt.kind)
			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.symbol, e.Symbol)
			assert.Equal(t, "Build", e.Trace())
		})
	}
}

func TestBuildIdempotent(Te *testing.T) {
	for _, f := range []string{"H2SO4", "C6H12O6", "SF6", "C2H2", "PCl5"} {
		m1, err := Build(f)
		require.NoError(Te, err)
		m2, err := Build(f)
		require.NoError(Te, err)
		assert.Equal(Te, m1, m2, f)
		assert.Equal(Te, m1.Structure(), m2.Structure(), f)
	}
}

func TestBuildProperties(Te *testing.T) {
	for _, f := range []string{"NH3", "HCN", "C2H5OH", "H3PO4", "CCl4", "NaCl", "Fe2O3", "XeF4", "C60"} {
		mol, err := Build(f)
		require.NoError(Te, err, f)
		checkBondInvariants(Te, mol.Atoms)
		central := 0
		for i, at := range mol.Atoms {
			assert.Equal(Te, i, at.ID)
			if at.Role == Central {
				central++
			}
		}
		assert.Equal(Te, 1, central, f)
	}
}

func TestBuildMaxAtoms(Te *testing.T) {
	opts := DefaultOptions()
	opts.MaxAtoms = 4
	E := NewEngine(nil, opts, nil)
	_, err := E.Build("CH4")
	assert.ErrorIs(Te, err, ErrMalformedFormula)
	_, err = E.Build("NH3")
	assert.NoError(Te, err)
}

func TestBuildUnsaturated(Te *testing.T) {
	//C0 H1 H2 H3 O4: the last hydrogen finds no partner.
	mol, err := Build("CH3O")
	require.NoError(Te, err)
	un := mol.Unsaturated()
	require.Len(Te, un, 1)
	assert.Equal(Te, 3, un[0].ID)
	assert.Equal(Te, 1, un[0].Spare())
}

func TestBuildLogging(Te *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	E := NewEngine(nil, DefaultOptions(), zap.New(core))
	_, err := E.Build("CH3O")
	require.NoError(Te, err)
	assert.Equal(Te, 3, logs.FilterMessage("bond formed").Len())
	assert.Equal(Te, 1, logs.FilterMessage("central atom selected").Len())
	un := logs.FilterMessage("atoms left with spare valence").All()
	require.Len(Te, un, 1)
	assert.Equal(Te, zapcore.InfoLevel, un[0].Level)
	assert.Equal(Te, "CH3O", un[0].ContextMap()["formula"])
}

func TestBondOrderOutOfRange(Te *testing.T) {
	mol, err := Build("CO2")
	require.NoError(Te, err)
	assert.Equal(Te, 0, mol.BondOrder(-1, 0))
	assert.Equal(Te, 0, mol.BondOrder(10, 0))
	assert.Equal(Te, 0, mol.BondOrder(0, 10))
	assert.Panics(Te, func() { mol.Atom(3) })
}

func TestStructure(Te *testing.T) {
	mol, err := Build("CO2")
	require.NoError(Te, err)
	want := "Molecule: CO2\n" +
		"Central atom: C\n" +
		"Molecular geometry: linear\n" +
		"\nBonds:\n" +
		"C=O (order: 2)\n" +
		"C=O (order: 2)\n"
	assert.Equal(Te, want, mol.Structure())

	mol, err = Build("H2O")
	require.NoError(Te, err)
	assert.Contains(Te, mol.Structure(), "Molecular geometry: bent\n")
	assert.Contains(Te, mol.Structure(), "\nBonds:\nH-O (order: 1)\nH-O (order: 1)\n")
}

func TestBondSymbol(Te *testing.T) {
	assert.Equal(Te, "-", BondSymbol(1))
	assert.Equal(Te, "=", BondSymbol(2))
	assert.Equal(Te, "≡", BondSymbol(3))
	assert.Equal(Te, "-", BondSymbol(0))
	assert.Equal(Te, "-", BondSymbol(4))
}
