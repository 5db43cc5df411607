/*
 * mic.go, part of gocrys.
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
	"math"

	v3 "github.com/rmera/gocrys/v3"
)

//MinImage returns the minimum image of the fractional coordinate difference x,
//that is, x plus the integer that puts it in [-0.5, 0.5).
//MinImage(MinImage(x)) == MinImage(x) for every finite x.
//NaN and infinities give NaN.
func MinImage(x float64) float64 {
	if math.IsInf(x, 0) {
		return math.NaN()
	}
	if math.Abs(x) >= 2 {
		x -= math.Round(x)
	}
	for x >= 0.5 {
		x -= 1
	}
	for x < -0.5 {
		x += 1
	}
	return x
}

//MinImageSlice applies MinImage to every element of d.
//If copy is true, d is not modified and a new slice is returned,
//otherwise, d is modified in place and returned.
func MinImageSlice(d []float64, copy bool) []float64 {
	ret := d
	if copy {
		ret = make([]float64, len(d))
	}
	for i, v := range d {
		ret[i] = MinImage(v)
	}
	return ret
}

//MinImageMatrix applies MinImage to every element of d.
//If copy is true, d is not modified and a new matrix is returned,
//otherwise, d is modified in place and returned.
func MinImageMatrix(d *v3.Matrix, copy bool) *v3.Matrix {
	ret := d
	if copy {
		ret = d.Clone()
	}
	r, c := ret.Dims()
	for i := 0; i < r; i++ {
		row := ret.RawRowView(i)
		MinImageSlice(row[:c], false)
	}
	return ret
}

//Wrap returns the fractional coordinate x moved into the [0,1) interval.
func Wrap(x float64) float64 {
	x -= math.Floor(x)
	//tiny negative numbers end up at exactly 1
	if x >= 1 {
		x = 0
	}
	return x
}
