/*
 * formula.go, part of golewis.
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
	"regexp"
	"strconv"
	"unicode"
)

var (
	formulaRe = regexp.MustCompile(`^(?:[A-Z][a-z]*[0-9]*)+$`)
	tokenRe   = regexp.MustCompile(`([A-Z][a-z]*)([0-9]*)`)
)

//ParseFormula turns a formula such as "H2SO4" into atom placeholders, one per
//atom, with IDs assigned left to right after expanding the counts, so "H2O" gives
//H (0), H (1), O (2). Only ID and Symbol are set in the returned atoms.
//A count of zero, any character outside the grammar, or an empty formula give
//an error of kind ErrMalformedFormula. If maxAtoms is larger than 0, formulas
//with more atoms than that are also rejected.
func ParseFormula(formula string, maxAtoms int) ([]*Atom, error) {
	if formula == "" {
		return nil, newError(ErrMalformedFormula, "", "empty formula")
	}
	if !formulaRe.MatchString(formula) {
		return nil, grammarError(formula)
	}
	atoms := make([]*Atom, 0, len(formula))
	id := 0
	for _, m := range tokenRe.FindAllStringSubmatch(formula, -1) {
		symbol := m[1]
		count := 1
		if m[2] != "" {
			var err error
			count, err = strconv.Atoi(m[2])
			if err != nil {
				return nil, newError(ErrMalformedFormula, symbol, "invalid count %q for %s in %q", m[2], symbol, formula)
			}
			if count == 0 {
				return nil, newError(ErrMalformedFormula, symbol, "zero count for %s in %q", symbol, formula)
			}
		}
		if maxAtoms > 0 && count > maxAtoms-id {
			return nil, newError(ErrMalformedFormula, symbol, "%q has more than %d atoms", formula, maxAtoms)
		}
		for i := 0; i < count; i++ {
			atoms = append(atoms, &Atom{ID: id, Symbol: symbol})
			id++
		}
	}
	return atoms, nil
}

//grammarError builds an error message pointing at the first problem in formula.
func grammarError(formula string) *Error {
	for i, r := range formula {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return newError(ErrMalformedFormula, "", "invalid character %q at position %d in %q", r, i, formula)
		}
	}
	return newError(ErrMalformedFormula, "", "%q must start with an element symbol (uppercase letter)", formula)
}
