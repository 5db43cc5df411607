/*
 * lattice.go, part of gocrys.
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
	"fmt"
	"math"

	v3 "github.com/rmera/gocrys/v3"
	"gonum.org/v1/gonum/mat"
)

//Lattice is a set of 3 basis vectors, one per row, in a fixed length
//unit (i.e. Angstrom). A Lattice is a value: none of its methods modify it,
//transformations return new Lattices.
type Lattice [3][3]float64

//NewLattice returns a Lattice with the rows of m as basis vectors.
//m must be 3x3 and non-singular.
func NewLattice(m mat.Matrix) (Lattice, error) {
	var L Lattice
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return L, NewInvalidLatticeError("NewLattice", "lattice must be 3x3, got %dx%d", r, c)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			L[i][j] = m.At(i, j)
		}
	}
	if err := L.Check(); err != nil {
		return L, errDecorate(err, "NewLattice")
	}
	return L, nil
}

//Orthorhombic returns the lattice with basis vectors of length a, b and c along
//x, y and z. It doesn't check the lengths, use Check if unsure.
func Orthorhombic(a, b, c float64) Lattice {
	return Lattice{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

//Check returns an *InvalidLatticeError if L is singular or contains non-finite numbers.
func (L Lattice) Check() error {
	for _, v := range L {
		for _, w := range v {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return NewInvalidLatticeError("Check", "non-finite lattice component in %v", L)
			}
		}
	}
	if L.det() == 0 {
		return NewInvalidLatticeError("Check", "singular lattice %v", L)
	}
	return nil
}

//Dense returns a new 3x3 gonum matrix with the basis vectors as rows.
func (L Lattice) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		L[0][0], L[0][1], L[0][2],
		L[1][0], L[1][1], L[1][2],
		L[2][0], L[2][1], L[2][2],
	})
}

func (L Lattice) det() float64 {
	return mat.Det(L.Dense())
}

//Volume returns the volume of the cell, |det(L)|.
func (L Lattice) Volume() float64 {
	return math.Abs(L.det())
}

//Volume returns the absolute value of the determinant of m, which
//must be a 3x3 matrix.
func Volume(m mat.Matrix) (float64, error) {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return 0, NewInvalidLatticeError("Volume", "lattice must be 3x3, got %dx%d", r, c)
	}
	return math.Abs(mat.Det(m)), nil
}

//angle between x and y, in degrees.
func angle(x, y [3]float64) float64 {
	c := v3.Dot(x, y) / (v3.Norm(x) * v3.Norm(y))
	//rounding can push us slightly outside the domain of Acos
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c) * 180 / math.Pi
}

//Constants returns the crystallographic constants of the lattice.
//The result doesn't depend on the orientation of L in space.
func (L Lattice) Constants() Constants {
	return Constants{
		v3.Norm(L[0]),
		v3.Norm(L[1]),
		v3.Norm(L[2]),
		angle(L[1], L[2]),
		angle(L[0], L[2]),
		angle(L[0], L[1]),
	}
}

func scaled(f float64, a [3]float64) [3]float64 {
	return [3]float64{f * a[0], f * a[1], f * a[2]}
}

//Reciprocal returns the reciprocal lattice, with rows
//2*pi/V * (b x c, c x a, a x b). The reciprocal volume is (2*pi)^3/V.
//For a right-handed L, L.Reciprocal().Reciprocal() is L again.
func (L Lattice) Reciprocal() Lattice {
	f := 2 * math.Pi / L.Volume()
	a, b, c := L[0], L[1], L[2]
	return Lattice{
		scaled(f, v3.Cross(b, c)),
		scaled(f, v3.Cross(c, a)),
		scaled(f, v3.Cross(a, b)),
	}
}

//SmithRMax returns the radius of the biggest sphere that fits in the cell,
//which is the largest distance for which minimum image distances are
//correct (W. Smith, The Minimum Image Convention in Non-Cubic MD Cells, 1989).
//For a cubic cell of side l, it is l/2.
func (L Lattice) SmithRMax() float64 {
	a, b, c := L[0], L[1], L[2]
	bxc := v3.Cross(b, c)
	cxa := v3.Cross(c, a)
	axb := v3.Cross(a, b)
	wa := math.Abs(v3.Dot(a, bxc)) / v3.Norm(bxc)
	wb := math.Abs(v3.Dot(b, cxa)) / v3.Norm(cxa)
	wc := math.Abs(v3.Dot(c, axb)) / v3.Norm(axb)
	return 0.5 * math.Min(wa, math.Min(wb, wc))
}

//Cart returns the cartesian vector for the fractional vector f.
func (L *Lattice) Cart(f [3]float64) [3]float64 {
	var r [3]float64
	for k := 0; k < 3; k++ {
		r[k] = f[0]*L[0][k] + f[1]*L[1][k] + f[2]*L[2][k]
	}
	return r
}

//ToCart returns the cartesian coordinates for the fractional coordinates frac.
func (L Lattice) ToCart(frac *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(frac.NVecs())
	ret.Mul(frac, L.Dense())
	return ret
}

//ToFrac returns the fractional coordinates for the cartesian coordinates cart.
func (L Lattice) ToFrac(cart *v3.Matrix) (*v3.Matrix, error) {
	var inv mat.Dense
	if err := inv.Inverse(L.Dense()); err != nil {
		return nil, NewInvalidLatticeError("ToFrac", "can't invert lattice: %s", err.Error())
	}
	ret := v3.Zeros(cart.NVecs())
	ret.Mul(cart, &inv)
	return ret, nil
}

//Scale returns a new lattice with the basis vectors multiplied by
//nx, ny and nz, respectively.
func (L Lattice) Scale(nx, ny, nz float64) Lattice {
	return Lattice{scaled(nx, L[0]), scaled(ny, L[1]), scaled(nz, L[2])}
}

//Equal returns true if both lattices are exactly the same.
func (L Lattice) Equal(M Lattice) bool {
	return L == M
}

//Orthogonal returns true if all the angles of the lattice are within tol degrees of 90.
func (L Lattice) Orthogonal(tol float64) bool {
	c := L.Constants()
	for _, v := range c[3:] {
		if math.Abs(v-90) > tol {
			return false
		}
	}
	return true
}

func (L Lattice) String() string {
	return fmt.Sprintf("[%8.4f %8.4f %8.4f]\n[%8.4f %8.4f %8.4f]\n[%8.4f %8.4f %8.4f]",
		L[0][0], L[0][1], L[0][2], L[1][0], L[1][1], L[1][2], L[2][0], L[2][1], L[2][2])
}
