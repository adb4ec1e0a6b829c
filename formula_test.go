package lewis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormula(Te *testing.T) {
	tests := []struct {
		formula string
		symbols []string
	}{
		{"H2O", []string{"H", "H", "O"}},
		{"CO2", []string{"C", "O", "O"}},
		{"NaCl", []string{"Na", "Cl"}},
		{"H2SO4", []string{"H", "H", "S", "O", "O", "O", "O"}},
		{"CH3CH3", []string{"C", "H", "H", "H", "C", "H", "H", "H"}},
		{"Hee", []string{"Hee"}},
		{"O01", []string{"O"}},
	}
	for _, tt := range tests {
		Te.Run(tt.formula, func(t *testing.T) {
			atoms, err := ParseFormula(tt.formula, 0)
			require.NoError(t, err)
			require.Len(t, atoms, len(tt.symbols))
			for i, at := range atoms {
				assert.Equal(t, i, at.ID)
				assert.Equal(t, tt.symbols[i], at.Symbol)
			}
		})
	}
}

func TestParseFormulaCounts(Te *testing.T) {
	atoms, err := ParseFormula("C6H12O6", 0)
	require.NoError(Te, err)
	assert.Len(Te, atoms, 24)
	assert.Equal(Te, "C", atoms[5].Symbol)
	assert.Equal(Te, "H", atoms[6].Symbol)
	assert.Equal(Te, "O", atoms[23].Symbol)
}

func TestParseFormulaMalformed(Te *testing.T) {
	tests := []struct {
		name    string
		formula string
		max     int
	}{
		{"empty", "", 0},
		{"lowercase start", "h2o", 0},
		{"digit start", "2H", 0},
		{"space", "H2 O", 0},
		{"parenthesis", "Ca(OH)2", 0},
		{"charge", "NH4+", 0},
		{"zero count", "H0", 0},
		{"zero count middle", "CH00", 0},
		{"overflow", "H99999999999999999999999", 0},
		{"too many atoms", "C10H22", 20},
		{"non ascii", "H₂O", 0},
	}
	for _, tt := range tests {
		Te.Run(tt.name, func(t *testing.T) {
			atoms, err := ParseFormula(tt.formula, tt.max)
			require.Error(t, err)
			assert.Nil(t, atoms)
			assert.True(t, errors.Is(err, ErrMalformedFormula), err.Error())
			var e *Error
			require.ErrorAs(t, err, &e)
			assert.True(t, e.Critical())
		})
	}
}

func TestParseFormulaMaxAtomsBoundary(Te *testing.T) {
	atoms, err := ParseFormula("C10H22", 32)
	require.NoError(Te, err)
	assert.Len(Te, atoms, 32)
}
