/*
 * doc.go, part of golewis.
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

/*Package lewis builds approximate Lewis structures from molecular formulas, and
predicts the VSEPR geometry around the central atom.

The construction is a fixed pipeline:

	ParseFormula   "H2SO4" -> one atom placeholder per atom, IDs left to right
	Enrich         group, electronegativity and valence capacity from a ptable.Table
	SelectCentral  lowest-electronegativity non-hydrogen atom
	AssignBonds    three greedy passes: central-heavy, central-hydrogen, everything else
	PredictGeometry steric number of the central atom -> VSEPR label

Engine.Build runs all of them and returns a Molecule. The heuristics are crude on
purpose (no formal charges, no resonance, no ions), but the result is
deterministic: the same formula always gives the same molecule.

The sub-packages give other views of a Molecule: chemgraph (a gonum graph of the
bonds), coords (idealized cartesian coordinates and XYZ output) and chemjson (JSON
documents). The lewis command in cmd/lewis wraps everything in a CLI.
*/
package lewis
