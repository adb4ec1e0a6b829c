/*
 * errors.go, part of golewis.
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
	"errors"
	"fmt"
	"strings"
)

//The kinds of fatal errors the pipeline can produce. Every *Error unwraps to
//exactly one of these, so callers can test with errors.Is.
var (
	//ErrMalformedFormula means the formula does not follow the grammar
	//(element symbol + optional positive count, repeated).
	ErrMalformedFormula = errors.New("malformed formula")
	//ErrUnknownElement means a parsed symbol is not in the periodic table.
	ErrUnknownElement = errors.New("unknown element")
	//ErrNoCentralAtom means no atom can be chosen as the central one,
	//for instance, in an all-hydrogen formula.
	ErrNoCentralAtom = errors.New("no central atom candidate")
)

//Error is the error type returned by all the steps of the pipeline.
//Besides the message, it keeps the offending symbol (if any) and a
//"decoration" slice listing the functions the error went through.
type Error struct {
	kind    error
	message string
	Symbol  string
	deco    []string
}

func newError(kind error, symbol, format string, a ...interface{}) *Error {
	return &Error{kind: kind, Symbol: symbol, message: fmt.Sprintf(format, a...)}
}

//Error returns the error message, prefixed by its kind.
func (err *Error) Error() string {
	if err.message == "" {
		return err.kind.Error()
	}
	return err.kind.Error() + ": " + err.message
}

//Unwrap returns the kind of the error.
func (err *Error) Unwrap() error {
	return err.kind
}

//Decorate adds dec to the decoration slice of the error, and returns the resulting slice.
//If dec is empty, the current slice is returned without changes.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Trace returns the decoration of the error as a single string, innermost call first.
func (err *Error) Trace() string {
	return strings.Join(err.deco, " <- ")
}

//Critical returns whether the error aborts the construction of the molecule.
//All errors produced by this package do, since there is no partial recovery.
func (err *Error) Critical() bool { return true }

//errDecorate decorates err with the caller's name if it is an *Error,
//and returns it. Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
