/*
 * v3_test.go, part of gocrys.
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

package v3

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

//Returns an identity matrix spanning span cols and rows
func gnEye(span int) *mat.Dense {
	A := mat.NewDense(span, span, nil)
	for i := 0; i < span; i++ {
		A.Set(i, i, 1.0)
	}
	return A
}

func TestGeo(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	T := Zeros(A.NVecs())
	T.Mul(A, gnEye(3))
	assert.True(Te, mat.Equal(T, A))
	//the data is not copied
	a[3] = 100
	assert.Equal(Te, 100.0, A.At(1, 0))
	T.Sub(T, T)
	assert.True(Te, mat.Equal(T, Zeros(3)))
	fmt.Println("A", A)
}

func TestNewMatrixBadLength(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	require.Error(Te, err)
	_, err = NewMatrix(nil)
	require.Error(Te, err)
}

func TestErrorDecorate(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2})
	require.Error(Te, err)
	e, ok := err.(*Error)
	require.True(Te, ok)
	assert.True(Te, e.Critical())
	e.Decorate("ReadAXSF")
	e.Decorate("")
	//decorations are kept in the error
	assert.Equal(Te, []string{"NewMatrix", "ReadAXSF"}, e.Decorate(""))
	assert.Contains(Te, err.Error(), "goChem/v3")
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	B := Zeros(3)
	B.SomeVecs(A, []int{1, 3, 5})
	assert.Equal(Te, [3]float64{4, 5, 6}, B.Vec(0))
	assert.Equal(Te, [3]float64{16, 17, 18}, B.Vec(2))
	assert.PanicsWithValue(Te, ErrIndexOutOfRange, func() { B.SomeVecs(A, []int{1, 3, 9}) })
	assert.PanicsWithValue(Te, ErrShape, func() { B.SomeVecs(A, []int{1}) })
}

func TestCrossDot(Te *testing.T) {
	x := [3]float64{1, 0, 0}
	y := [3]float64{0, 1, 0}
	assert.Equal(Te, [3]float64{0, 0, 1}, Cross(x, y))
	assert.Equal(Te, 0.0, Dot(x, y))
	assert.InDelta(Te, 5.0, Norm([3]float64{3, 4, 0}), 1e-15)
}

func TestClone(Te *testing.T) {
	F := FromRows([][3]float64{{1, 2, 3}, {7, 8, 9}})
	G := F.Clone()
	G.Set(0, 0, -1)
	assert.Equal(Te, 1.0, F.At(0, 0))
	assert.Equal(Te, [3]float64{7, 8, 9}, G.Vec(1))
	assert.Equal(Te, 2, G.NVecs())
}
