/*
 * distances.go, part of gocrys.
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
	"gonum.org/v1/gonum/mat"
)

//PairTensor is a dense n0 x n1 array of 3D vectors, such as the
//displacement vectors between two sets of atoms.
type PairTensor struct {
	n0, n1 int
	data   []float64
}

//NewPairTensor returns a zero-filled n0 x n1 PairTensor.
func NewPairTensor(n0, n1 int) *PairTensor {
	return &PairTensor{n0: n0, n1: n1, data: make([]float64, 3*n0*n1)}
}

//Dims returns the number of rows and columns of the tensor.
func (P *PairTensor) Dims() (int, int) {
	return P.n0, P.n1
}

func (P *PairTensor) index(i, j int) int {
	if i < 0 || i >= P.n0 || j < 0 || j >= P.n1 {
		panic(ErrShape)
	}
	return 3 * (i*P.n1 + j)
}

//At returns the vector at i, j.
func (P *PairTensor) At(i, j int) [3]float64 {
	k := P.index(i, j)
	return [3]float64{P.data[k], P.data[k+1], P.data[k+2]}
}

//Set puts v at i, j.
func (P *PairTensor) Set(i, j int, v [3]float64) {
	k := P.index(i, j)
	copy(P.data[k:k+3], v[:])
}

func negated(a [3]float64) [3]float64 {
	return [3]float64{-a[0], -a[1], -a[2]}
}

//displacement returns the fractional and cartesian vectors from fj to fi.
func displacement(L *Lattice, fi, fj []float64, pbc bool) ([3]float64, [3]float64) {
	var s [3]float64
	for k := 0; k < 3; k++ {
		s[k] = fi[k] - fj[k]
		if pbc {
			s[k] = MinImage(s[k])
		}
	}
	return s, L.Cart(s)
}

//pairwise computes only the i<j pairs and mirrors them, so the distance matrix is exactly
//symmetric and the vector tensors exactly antisymmetric. The minimum image of
//an exact half-cell difference is -0.5 in both directions, so computing j,i
//separately wouldn't give that.
func pairwise(S *Structure, pbc, squared, vectors bool) (*mat.SymDense, *PairTensor, *PairTensor) {
	n := S.Len()
	d := mat.NewSymDense(n, nil)
	var cart, frac *PairTensor
	if vectors {
		cart = NewPairTensor(n, n)
		frac = NewPairTensor(n, n)
	}
	for i := 0; i < n; i++ {
		fi := S.frac.RawRowView(i)
		for j := i + 1; j < n; j++ {
			fj := S.frac.RawRowView(j)
			s, r := displacement(&S.lattice, fi, fj, pbc)
			d2 := v3.Dot(r, r)
			if squared {
				d.SetSym(i, j, d2)
			} else {
				d.SetSym(i, j, math.Sqrt(d2))
			}
			if vectors {
				frac.Set(i, j, s)
				frac.Set(j, i, negated(s))
				cart.Set(i, j, r)
				cart.Set(j, i, negated(r))
			}
		}
	}
	return d, cart, frac
}

//Distances returns the matrix of distances (or squared distances) between all atoms of S,
//using the minimum image convention if pbc is true. Distances beyond SmithRMax are not
//guaranteed to be the shortest ones in very skewed cells.
func Distances(S *Structure, pbc, squared bool) *mat.SymDense {
	if S == nil {
		panic(ErrNilStructure)
	}
	if !squared {
		return S.Distances(pbc)
	}
	d, _, _ := pairwise(S, pbc, true, false)
	return d
}

//DistanceVectors returns the distance matrix of S, the tensor of cartesian
//displacement vectors, and the tensor of fractional ones. The vector at i,j goes from
//atom j to atom i, and is the negative of the one at j,i.
func DistanceVectors(S *Structure, pbc bool) (*mat.SymDense, *PairTensor, *PairTensor) {
	if S == nil {
		panic(ErrNilStructure)
	}
	return pairwise(S, pbc, false, true)
}

//AngleTensor is a dense n x n x n array of angles.
type AngleTensor struct {
	n    int
	data []float64
}

//Len returns the number of atoms spanned by each dimension of the tensor.
func (A *AngleTensor) Len() int {
	return A.n
}

//At returns the angle i-j-k, with j at the vertex.
func (A *AngleTensor) At(i, j, k int) float64 {
	if i < 0 || j < 0 || k < 0 || i >= A.n || j >= A.n || k >= A.n {
		panic(ErrShape)
	}
	return A.data[(i*A.n+j)*A.n+k]
}

//Angles returns the tensor of all angles i-j-k of S, with atom j at the vertex, in degrees
//if deg is true, as cosines otherwise. Entries with repeated indexes or overlapping atoms
//are set to maskValue, which must not be a possible angle or cosine.
func Angles(S *Structure, pbc bool, maskValue float64, deg bool) (*AngleTensor, error) {
	if S == nil {
		panic(ErrNilStructure)
	}
	if deg && maskValue >= 0 && maskValue <= 180 {
		return nil, NewInvalidArgumentError("Angles", "mask value %g is a valid angle", maskValue)
	}
	if !deg && maskValue >= -1 && maskValue <= 1 {
		return nil, NewInvalidArgumentError("Angles", "mask value %g is a valid cosine", maskValue)
	}
	dists, cart, _ := DistanceVectors(S, pbc)
	n := S.Len()
	A := &AngleTensor{n: n, data: make([]float64, n*n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				idx := (i*n+j)*n + k
				dij := dists.At(i, j)
				dkj := dists.At(k, j)
				if i == j || j == k || i == k || dij == 0 || dkj == 0 {
					A.data[idx] = maskValue
					continue
				}
				c := v3.Dot(cart.At(i, j), cart.At(k, j)) / (dij * dkj)
				c = math.Max(-1, math.Min(1, c))
				if deg {
					c = math.Acos(c) * 180 / math.Pi
				}
				A.data[idx] = c
			}
		}
	}
	return A, nil
}
