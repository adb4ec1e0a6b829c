/*
 * molecule.go, part of golewis.
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
	"strings"

	"go.uber.org/zap"

	"github.com/rmera/golewis/ptable"
)

//DefaultMaxAtoms is the largest formula, in atoms, accepted by default.
//The last bonding pass is quadratic in the number of atoms.
const DefaultMaxAtoms = 512

//Options controls the heuristics of an Engine.
type Options struct {
	//MaxAtoms is the maximum number of atoms in a formula, 0 means no limit.
	MaxAtoms int
	//DoubleBondPairs are the element pairs allowed to form double bonds.
	//nil means DefaultDoubleBondPairs.
	DoubleBondPairs DoubleBondPairs
	LonePairBasis   LonePairBasis
}

//DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		MaxAtoms:        DefaultMaxAtoms,
		DoubleBondPairs: DefaultDoubleBondPairs(),
		LonePairBasis:   BasisElectrons,
	}
}

//Engine builds molecules from formulas. An Engine only reads its table and
//options, so it can be used from several goroutines at the same time.
type Engine struct {
	table *ptable.Table
	opts  Options
	log   *zap.Logger
}

//NewEngine returns an engine using the given table, options and logger.
//A nil table means ptable.Default(), and a nil logger disables logging.
func NewEngine(table *ptable.Table, opts Options, log *zap.Logger) *Engine {
	if table == nil {
		table = ptable.Default()
	}
	if opts.DoubleBondPairs == nil {
		opts.DoubleBondPairs = DefaultDoubleBondPairs()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{table: table, opts: opts, log: log}
}

//Build runs the whole pipeline on formula: parsing, enrichment, central atom
//selection, bond assignment and geometry prediction. Any error aborts the
//process and no molecule is returned.
func (E *Engine) Build(formula string) (*Molecule, error) {
	log := E.log.With(zap.String("formula", formula))
	atoms, err := ParseFormula(formula, E.opts.MaxAtoms)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	log.Debug("formula parsed", zap.Int("atoms", len(atoms)))
	if err := Enrich(atoms, E.table); err != nil {
		return nil, errDecorate(err, "Build")
	}
	central, err := SelectCentral(atoms)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	log.Debug("central atom selected", zap.Stringer("atom", atoms[central]))
	formed := AssignBonds(atoms, central, E.opts.DoubleBondPairs)
	for _, f := range formed {
		log.Debug("bond formed",
			zap.Stringer("at1", atoms[f.At1]),
			zap.Stringer("at2", atoms[f.At2]),
			zap.Int("order", f.Order),
			zap.Stringer("pass", f.Pass))
	}
	M := &Molecule{
		Formula:      formula,
		Atoms:        atoms,
		CentralIndex: central,
		Formed:       formed,
		Geometry:     PredictGeometry(atoms, central, E.opts.LonePairBasis),
	}
	if un := M.Unsaturated(); len(un) > 0 {
		log.Info("atoms left with spare valence", zap.Int("count", len(un)), zap.Stringers("atoms", un))
	}
	log.Debug("geometry predicted", zap.String("geometry", M.Geometry.Label), zap.Int("steric", M.Geometry.StericNumber))
	return M, nil
}

//Build runs the pipeline with the default table and options.
func Build(formula string) (*Molecule, error) {
	return NewEngine(nil, DefaultOptions(), nil).Build(formula)
}

//Molecule is the result of the pipeline. It owns its atoms.
type Molecule struct {
	Formula      string
	Atoms        []*Atom
	CentralIndex int
	Geometry     Geometry
	//Formed lists the bonds in the order they were created.
	Formed []Formed
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the atom with index (and ID) i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= len(M.Atoms) {
		panic(fmt.Sprintf("Molecule: requested atom %d out of %d", i, len(M.Atoms)))
	}
	return M.Atoms[i]
}

//Central returns the central atom.
func (M *Molecule) Central() *Atom {
	return M.Atoms[M.CentralIndex]
}

//BondOrder returns the order of the bond between the atoms with IDs id1 and id2,
//or 0 if they are not bonded or either ID is out of range.
func (M *Molecule) BondOrder(id1, id2 int) int {
	if id1 < 0 || id1 >= len(M.Atoms) {
		return 0
	}
	return M.Atoms[id1].OrderWith(id2)
}

//Unsaturated returns the atoms that still have spare valence capacity.
func (M *Molecule) Unsaturated() []*Atom {
	var ret []*Atom
	for _, at := range M.Atoms {
		if at.Spare() > 0 {
			ret = append(ret, at)
		}
	}
	return ret
}

var bondSymbols = []string{"-", "=", "≡"}

//BondSymbol returns "-", "=" or "≡" for orders 1 to 3, and "-" for anything else.
func BondSymbol(order int) string {
	if order < 1 || order > len(bondSymbols) {
		return "-"
	}
	return bondSymbols[order-1]
}

//Structure returns a human-readable report of the molecule: formula, central
//atom, geometry, and each bond once.
func (M *Molecule) Structure() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Molecule: %s\n", M.Formula)
	fmt.Fprintf(&b, "Central atom: %s\n", M.Central().Symbol)
	fmt.Fprintf(&b, "Molecular geometry: %s\n", M.Geometry.Label)
	b.WriteString("\nBonds:\n")
	printed := make(map[[2]int]bool)
	for _, at1 := range M.Atoms {
		for _, bond := range at1.Bonds {
			key := [2]int{at1.ID, bond.Partner}
			if key[1] < key[0] {
				key[0], key[1] = key[1], key[0]
			}
			if printed[key] {
				continue
			}
			printed[key] = true
			at2 := M.Atoms[bond.Partner]
			fmt.Fprintf(&b, "%s%s%s (order: %d)\n", at1.Symbol, BondSymbol(bond.Order), at2.Symbol, bond.Order)
		}
	}
	return b.String()
}
