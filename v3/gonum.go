/*
 * gonum.go, part of gocrys.
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

//gonum.go contains what is needed to wrap the gonum mat.Dense type.

//All the *Vec functions will operate/produce row vectors.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the coordinates of a point in 3D space.
//The name of some functions in the library reflect this.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//data is used as backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, &Error{fmt.Sprintf("input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//FromRows returns a new Matrix with a copy of the given vectors.
func FromRows(rows [][3]float64) *Matrix {
	F := Zeros(len(rows))
	for i, v := range rows {
		copy(F.RawRowView(i), v[:])
	}
	return F
}

//Vec returns a copy of the ith vector as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	var ret [3]float64
	copy(ret[:], F.RawRowView(i))
	return ret
}

//the gonum functions below can't see that a *Matrix and its *mat.Dense
//are the same object, so we take the Dense out before calling them.
func unwrap(A mat.Matrix) mat.Matrix {
	if B, ok := A.(*Matrix); ok {
		return B.Dense
	}
	return A
}

//Mul wraps mat.Dense.Mul to take care of the case when one of the
//arguments is also the receiver.
func (F *Matrix) Mul(A, B mat.Matrix) {
	F.Dense.Mul(unwrap(A), unwrap(B))
}

//Sub wraps mat.Dense.Sub.
func (F *Matrix) Sub(A, B mat.Matrix) {
	F.Dense.Sub(unwrap(A), unwrap(B))
}

//Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	ret := Zeros(F.NVecs())
	ret.Dense.Copy(F.Dense)
	return ret
}

//Errors

//Error is the same as crys.Error, repeated here to avoid a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return fmt.Sprintf("goChem/v3: %s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("goChem/v3: A VecMatrix should have 3 columns")
	ErrShape           = PanicMsg("goChem/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("goChem/v3: index out of range")
)
