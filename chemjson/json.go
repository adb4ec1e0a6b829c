/*
 * json.go, part of golewis.
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

package chemjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"

	lewis "github.com/rmera/golewis"
)

//Display defaults for elements absent from Radii and Colors.
const (
	DefaultRadius = 0.8
	DefaultColor  = 0xFF69B4
)

//Radii is the display radius for each element.
var Radii = map[string]float64{
	"H": 0.5, "C": 1.0, "N": 1.0, "O": 1.0,
	"F": 1.0, "P": 1.2, "S": 1.1, "Cl": 1.0,
}

//Colors is the display color (CPK) for each element, as 0xRRGGBB.
var Colors = map[string]uint32{
	"H": 0xFFFFFF, "C": 0x909090, "N": 0x3050F8,
	"O": 0xFF0D0D, "F": 0x90E050, "P": 0xFF8000,
	"S": 0xFFFF30, "Cl": 0x1FF01F,
}

//Radius returns the display radius for symbol.
func Radius(symbol string) float64 {
	if r, ok := Radii[symbol]; ok {
		return r
	}
	return DefaultRadius
}

//Color returns the display color for symbol.
func Color(symbol string) uint32 {
	if c, ok := Colors[symbol]; ok {
		return c
	}
	return DefaultColor
}

//A ready-to-serialize container for an atom.
type Atom struct {
	ID        int          `json:"id"`
	Symbol    string       `json:"symbol"`
	Role      lewis.Role   `json:"role"`
	LonePairs int          `json:"lone_pairs"`
	Bonds     []lewis.Bond `json:"bonds"`
	Coords    []float64    `json:"coords,omitempty"`
	Radius    float64      `json:"radius"`
	Color     string       `json:"color"`
}

//A ready-to-serialize container for a bond. Each bond appears once, with At1 < At2.
type Bond struct {
	At1   int `json:"at1"`
	At2   int `json:"at2"`
	Order int `json:"order"`
}

//Geometry is the serializable form of lewis.Geometry.
type Geometry struct {
	Label        string `json:"label"`
	StericNumber int    `json:"steric_number"`
	LonePairs    int    `json:"lone_pairs"`
}

//Document is the JSON view of a molecule.
type Document struct {
	Formula  string   `json:"formula"`
	Central  int      `json:"central"`
	Geometry Geometry `json:"geometry"`
	Atoms    []Atom   `json:"atoms"`
	Bonds    []Bond   `json:"bonds"`
}

//FromMolecule builds the document for mol. If coords is not nil, it must have a
//row with the cartesian coordinates of each atom.
func FromMolecule(mol *lewis.Molecule, coords *mat.Dense) (*Document, *Error) {
	if coords != nil {
		if r, c := coords.Dims(); r != mol.Len() || c != 3 {
			return nil, NewError(fmt.Errorf("coordinates are %dx%d, molecule has %d atoms", r, c, mol.Len())).decorated("FromMolecule")
		}
	}
	D := &Document{
		Formula: mol.Formula,
		Central: mol.CentralIndex,
		Geometry: Geometry{
			Label:        mol.Geometry.Label,
			StericNumber: mol.Geometry.StericNumber,
			LonePairs:    mol.Geometry.LonePairs,
		},
		Atoms: make([]Atom, 0, mol.Len()),
		Bonds: make([]Bond, 0, len(mol.Formed)),
	}
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		ja := Atom{
			ID:        at.ID,
			Symbol:    at.Symbol,
			Role:      at.Role,
			LonePairs: at.LonePairs,
			Bonds:     append([]lewis.Bond{}, at.Bonds...),
			Radius:    Radius(at.Symbol),
			Color:     fmt.Sprintf("#%06X", Color(at.Symbol)),
		}
		if coords != nil {
			ja.Coords = mat.Row(nil, i, coords)
		}
		D.Atoms = append(D.Atoms, ja)
		for _, b := range at.Bonds {
			if b.Partner > at.ID {
				D.Bonds = append(D.Bonds, Bond{At1: at.ID, At2: b.Partner, Order: b.Order})
			}
		}
	}
	return D, nil
}

//Send Marshals the document and writes it to out, returns an error or nil
func (D *Document) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(D); err != nil {
		return NewError(err).decorated("Document.Send")
	}
	return nil
}

//Decode reads one document from in.
func Decode(in io.Reader) (*Document, *Error) {
	D := new(Document)
	if err := json.NewDecoder(in).Decode(D); err != nil {
		return nil, NewError(err).decorated("Decode")
	}
	return D, nil
}

//An easily JSON-serializable error type. The stage flags tell where
//the error originated.
type Error struct {
	deco      []string
	IsError   bool //If this is false (no error) all the other fields will be at their zero-values.
	InParse   bool //Was the formula malformed?
	InEnrich  bool //Was an element missing from the table?
	InCentral bool //Could a central atom not be chosen?
	InConfig  bool
	InProcess bool   //anything else
	Formula   string `json:",omitempty"`
	Symbol    string `json:",omitempty"` //offending element symbol, if any
	Function  string //which go function(s) gave the error
	Message   string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	J.Function = strings.Join(J.deco, " <- ")
	return J.deco
}

func (J *Error) decorated(dec string) *Error {
	J.Decorate(dec)
	return J
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Send writes the serialized error, followed by a newline, to out.
func (J *Error) Send(out io.Writer) error {
	_, err := fmt.Fprintf(out, "%s\n", J.Marshal())
	return err
}

//NewError takes an error and creates a json-marshal-able error. The stage is
//taken from the kind of lewis error, if err is one.
func NewError(err error) *Error {
	jerr := &Error{IsError: true, Message: err.Error()}
	switch {
	case errors.Is(err, lewis.ErrMalformedFormula):
		jerr.InParse = true
	case errors.Is(err, lewis.ErrUnknownElement):
		jerr.InEnrich = true
	case errors.Is(err, lewis.ErrNoCentralAtom):
		jerr.InCentral = true
	default:
		jerr.InProcess = true
	}
	var le *lewis.Error
	if errors.As(err, &le) {
		jerr.Symbol = le.Symbol
		jerr.Function = le.Trace()
		if jerr.Function != "" {
			jerr.deco = strings.Split(jerr.Function, " <- ")
		}
	}
	return jerr
}

//NewConfigError creates a serializable error for a problem in the configuration.
func NewConfigError(err error) *Error {
	jerr := NewError(err)
	jerr.InProcess = false
	jerr.InConfig = true
	return jerr
}
