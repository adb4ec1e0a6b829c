/*
 * ptable.go, part of golewis.
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

//Package ptable provides the read-only periodic table used by goLewis. A Table maps
//element symbols to their atomic number, group and Pauling electronegativity.
//Tables are never modified after they are built, so a single Table can be shared
//by any number of goroutines without locking.
package ptable

import (
	"errors"
	"fmt"
	"sort"
)

//ErrNotFound is returned (wrapped) by Lookup when a symbol is not in the table.
var ErrNotFound = errors.New("ptable: element not found")

//Element is the reference data for one chemical element.
type Element struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Number int    `json:"number"`
	//Group is nil for elements without a group (most of the f-block).
	Group *int `json:"group"`
	//Electronegativity is the Pauling electronegativity, nil when undefined.
	Electronegativity *float64 `json:"electronegativity_pauling"`
}

//HasGroup reports whether the element has a group number.
func (E Element) HasGroup() bool {
	return E.Group != nil
}

//GroupNumber returns the group of the element, or 0 if it has none.
func (E Element) GroupNumber() int {
	if E.Group == nil {
		return 0
	}
	return *E.Group
}

//EN returns the Pauling electronegativity and whether it is defined.
func (E Element) EN() (float64, bool) {
	if E.Electronegativity == nil {
		return 0, false
	}
	return *E.Electronegativity, true
}

func (E Element) String() string {
	en := "n/a"
	if v, ok := E.EN(); ok {
		en = fmt.Sprintf("%.2f", v)
	}
	grp := "n/a"
	if E.HasGroup() {
		grp = fmt.Sprintf("%d", E.GroupNumber())
	}
	return fmt.Sprintf("%-2s %-14s Z=%-3d group=%-3s EN=%s", E.Symbol, E.Name, E.Number, grp, en)
}

//Table is an immutable symbol -> Element map.
type Table struct {
	bySymbol map[string]Element
}

//NewTable builds a table from the given elements. It returns an error
//if a symbol is empty or repeated, or if an atomic number is not positive.
func NewTable(elements []Element) (*Table, error) {
	T := &Table{bySymbol: make(map[string]Element, len(elements))}
	for _, v := range elements {
		if v.Symbol == "" {
			return nil, fmt.Errorf("ptable: element with atomic number %d has no symbol", v.Number)
		}
		if v.Number <= 0 {
			return nil, fmt.Errorf("ptable: element %s has invalid atomic number %d", v.Symbol, v.Number)
		}
		if _, ok := T.bySymbol[v.Symbol]; ok {
			return nil, fmt.Errorf("ptable: repeated symbol %s", v.Symbol)
		}
		T.bySymbol[v.Symbol] = v
	}
	return T, nil
}

//Lookup returns the element with the given symbol. The match is case-sensitive,
//"Co" and "CO" are different things.
func (T *Table) Lookup(symbol string) (Element, error) {
	e, ok := T.bySymbol[symbol]
	if !ok {
		return Element{}, fmt.Errorf("%w: %q", ErrNotFound, symbol)
	}
	return e, nil
}

//Len returns the number of elements in the table.
func (T *Table) Len() int {
	return len(T.bySymbol)
}

//Symbols returns all the symbols in the table, sorted by atomic number.
func (T *Table) Symbols() []string {
	ret := make([]string, 0, len(T.bySymbol))
	for k := range T.bySymbol {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool { return T.bySymbol[ret[i]].Number < T.bySymbol[ret[j]].Number })
	return ret
}
