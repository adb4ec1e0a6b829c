package lewis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/golewis/ptable"
)

func enriched(t *testing.T, formula string) []*Atom {
	t.Helper()
	atoms, err := ParseFormula(formula, 0)
	require.NoError(t, err)
	require.NoError(t, Enrich(atoms, ptable.Default()))
	return atoms
}

func TestValenceCapacity(Te *testing.T) {
	tests := map[string]int{
		"H": 1, "C": 4, "N": 3, "O": 2, "F": 1, "Ne": 0,
		"Na": 1, "Mg": 2, "B": 3, "Al": 3, "Si": 4, "P": 3, "S": 2, "Cl": 1,
		"Fe": 0, "Co": 0, "Ni": 0, "Cu": 1, "Zn": 2, "Ce": 0, "Xe": 0,
	}
	for sym, want := range tests {
		atoms := enriched(Te, sym)
		assert.Equal(Te, want, atoms[0].Valence, sym)
		assert.Equal(Te, want, atoms[0].Capacity(), sym)
	}
}

func TestEnrichProperties(Te *testing.T) {
	atoms := enriched(Te, "HNOCPSClBrIF")
	bySym := make(map[string]*Atom)
	for _, at := range atoms {
		bySym[at.Symbol] = at
	}
	assert.Equal(Te, 2, bySym["O"].LonePairs)
	assert.Equal(Te, 1, bySym["N"].LonePairs)
	assert.Equal(Te, 0, bySym["C"].LonePairs)
	assert.Equal(Te, 0, bySym["S"].LonePairs)
	for _, s := range []string{"P", "S", "Cl", "Br", "I"} {
		assert.True(Te, bySym[s].Expandable, s)
	}
	for _, s := range []string{"H", "C", "N", "O", "F"} {
		assert.False(Te, bySym[s].Expandable, s)
	}
	assert.Equal(Te, 16, bySym["S"].Group)
	assert.Equal(Te, 6, bySym["S"].ValenceElectrons())
	assert.Equal(Te, 1, bySym["H"].ValenceElectrons())
	en, ok := bySym["C"].EN()
	assert.True(Te, ok)
	assert.InDelta(Te, 2.55, en, 1e-9)
}

func TestEnrichAbsentElectronegativity(Te *testing.T) {
	atoms := enriched(Te, "He")
	_, ok := atoms[0].EN()
	assert.False(Te, ok)
	assert.Nil(Te, atoms[0].Electronegativity)
}

func TestEnrichUnknownElement(Te *testing.T) {
	atoms, err := ParseFormula("CXx2", 0)
	require.NoError(Te, err)
	err = Enrich(atoms, ptable.Default())
	require.Error(Te, err)
	assert.ErrorIs(Te, err, ErrUnknownElement)
	var e *Error
	require.ErrorAs(Te, err, &e)
	assert.Equal(Te, "Xx", e.Symbol)
	//nothing was enriched, not even the carbon.
	for _, at := range atoms {
		assert.Zero(Te, at.Number)
		assert.Zero(Te, at.Valence)
	}
}

func TestEnrichCustomTable(Te *testing.T) {
	T, err := ptable.Load(strings.NewReader(`{"elements":[{"symbol":"Qq","number":200,"group":15,"electronegativity_pauling":null}]}`))
	require.NoError(Te, err)
	atoms, err := ParseFormula("Qq", 0)
	require.NoError(Te, err)
	require.NoError(Te, Enrich(atoms, T))
	assert.Equal(Te, 3, atoms[0].Valence)
	assert.True(Te, atoms[0].Expandable)
}
