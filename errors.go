/*
 * errors.go, part of gocrys.
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
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package crys

import (
	"errors"
	"fmt"
	"strings"
)

//Sentinels for errors.Is. Every error returned by this package
//matches exactly one of them.
var (
	ErrInvalidLattice   = errors.New("invalid lattice")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrResourceExceeded = errors.New("resource exceeded")
)

type errBase struct {
	message string
	deco    []string
}

func (e *errBase) format(kind string) string {
	s := fmt.Sprintf("goChem/crys: %s: %s", kind, e.message)
	if len(e.deco) > 0 {
		s += " [" + strings.Join(e.deco, " < ") + "]"
	}
	return s
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (e *errBase) Decorate(dec string) []string {
	if dec != "" {
		e.deco = append(e.deco, dec)
	}
	return e.deco
}

//Critical always returns true: none of these errors can be ignored.
func (e *errBase) Critical() bool { return true }

//InvalidLatticeError is returned for non-3x3 or singular lattices, and for
//crystallographic constants that don't describe a parallelepiped.
type InvalidLatticeError struct {
	errBase
}

func (e *InvalidLatticeError) Error() string        { return e.format("invalid lattice") }
func (e *InvalidLatticeError) Is(target error) bool { return target == ErrInvalidLattice }

//NewInvalidLatticeError returns a new *InvalidLatticeError with the given message, decorated with caller.
func NewInvalidLatticeError(caller, format string, a ...interface{}) *InvalidLatticeError {
	return &InvalidLatticeError{errBase{fmt.Sprintf(format, a...), []string{caller}}}
}

//InvalidArgumentError is returned for missing, mutually exclusive or out-of-range parameters.
type InvalidArgumentError struct {
	errBase
}

func (e *InvalidArgumentError) Error() string        { return e.format("invalid argument") }
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

//NewInvalidArgumentError returns a new *InvalidArgumentError with the given message, decorated with caller.
func NewInvalidArgumentError(caller, format string, a ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{errBase{fmt.Sprintf(format, a...), []string{caller}}}
}

//ResourceExceededError is returned when a calculation would need more memory
//than allowed. The caller should reduce the work (i.e. use fewer time steps) and try again.
type ResourceExceededError struct {
	errBase
	Required float64 //bytes
	Budget   float64 //bytes
}

func (e *ResourceExceededError) Error() string        { return e.format("resource exceeded") }
func (e *ResourceExceededError) Is(target error) bool { return target == ErrResourceExceeded }

//NewResourceExceededError returns a new *ResourceExceededError for a calculation requiring
//required bytes when only budget bytes are allowed.
func NewResourceExceededError(caller string, required, budget float64, hint string) *ResourceExceededError {
	msg := fmt.Sprintf("would use %.3g GB of memory, but only %.3g GB are allowed", required/1e9, budget/1e9)
	if hint != "" {
		msg += ", " + hint
	}
	return &ResourceExceededError{errBase{msg, []string{caller}}, required, budget}
}

//errDecorate decorates err with the caller's name if err is a crys.Error,
//and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use one of the error types above.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilStructure = PanicMsg("goChem/crys: nil Structure")
	ErrShape        = PanicMsg("goChem/crys: Dimension mismatch")
)

//a trajectory reader error
type trajError struct {
	message string
	deco    []string
}

func (err *trajError) Error() string { return "goChem/crys: " + err.message }

func (err *trajError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err *trajError) FileName() string { return "" }
func (err *trajError) Format() string   { return "memory" }
func (err *trajError) Critical() bool   { return true }

//lastFrameError implements LastFrameError
type lastFrameError struct {
	deco []string
}

func (E *lastFrameError) NormalLastFrameTermination() {}
func (E *lastFrameError) FileName() string            { return "" }
func (E *lastFrameError) Error() string               { return "EOF" }
func (E *lastFrameError) Critical() bool              { return false }
func (E *lastFrameError) Format() string              { return "memory" }
func (E *lastFrameError) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}
