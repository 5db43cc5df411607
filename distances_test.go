/*
 * distances_test.go, part of gocrys.
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
	"math/rand"
	"testing"

	v3 "github.com/rmera/gocrys/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//randomStructure returns a structure of n atoms of species sym at random positions.
func randomStructure(Te *testing.T, rng *rand.Rand, n int, L Lattice, sym string) *Structure {
	Te.Helper()
	frac := v3.Zeros(n)
	symbols := make([]string, n)
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			frac.Set(i, k, rng.Float64())
		}
		symbols[i] = sym
	}
	S, err := NewStructure(symbols, frac, L)
	require.NoError(Te, err)
	return S
}

func TestDistanceSymmetry(Te *testing.T) {
	rng := rand.New(rand.NewSource(6))
	L := randomLattice(rng)
	S := randomStructure(Te, rng, 30, L, "X")
	//exact half-cell separations are the troublesome ones
	frac := S.Frac()
	frac.Set(1, 0, frac.At(0, 0)+0.5)
	frac.Set(2, 1, frac.At(0, 1)-0.5)
	S, err := NewStructure(S.Symbols(), frac, L)
	require.NoError(Te, err)
	for _, pbc := range []bool{true, false} {
		for _, sq := range []bool{true, false} {
			d := Distances(S, pbc, sq)
			n := S.Len()
			for i := 0; i < n; i++ {
				assert.Equal(Te, 0.0, d.At(i, i))
				for j := 0; j < n; j++ {
					assert.Equal(Te, d.At(i, j), d.At(j, i))
				}
			}
		}
	}
}

func TestDistancesPBC(Te *testing.T) {
	frac := v3.FromRows([][3]float64{{0, 0, 0}, {0.9, 0, 0}, {0.5, 0.5, 0.5}})
	S, err := NewStructure([]string{"A", "B", "C"}, frac, Orthorhombic(10, 10, 10))
	require.NoError(Te, err)
	d := S.Distances(true)
	assert.InDelta(Te, 1.0, d.At(0, 1), 1e-12)
	assert.InDelta(Te, 5*math.Sqrt(3), d.At(0, 2), 1e-12)
	assert.InDelta(Te, 9.0, S.Distances(false).At(0, 1), 1e-12)
	assert.InDelta(Te, 1.0, Distances(S, true, true).At(0, 1), 1e-12)
	//the returned matrix is a copy, the cached one is safe
	d.SetSym(0, 1, 100)
	assert.InDelta(Te, 1.0, S.Distances(true).At(0, 1), 1e-12)
	dists := (&Trajectory{symbols: S.symbols, lattice: S.lattice, frames: []*v3.Matrix{frac, frac}}).Distances(true)
	require.Len(Te, dists, 2)
	assert.InDelta(Te, 1.0, dists[1].At(1, 0), 1e-12)
}

func TestDistanceVectors(Te *testing.T) {
	rng := rand.New(rand.NewSource(7))
	L := randomLattice(rng)
	S := randomStructure(Te, rng, 12, L, "X")
	d, cart, frac := DistanceVectors(S, true)
	n0, n1 := cart.Dims()
	require.Equal(Te, S.Len(), n0)
	require.Equal(Te, S.Len(), n1)
	for i := 0; i < n0; i++ {
		for j := 0; j < n1; j++ {
			c := cart.At(i, j)
			assert.Equal(Te, negated(c), cart.At(j, i))
			assert.Equal(Te, negated(frac.At(i, j)), frac.At(j, i))
			assert.InDelta(Te, d.At(i, j), v3.Norm(c), 1e-12)
			f := frac.At(i, j)
			for k := 0; k < 3; k++ {
				assert.True(Te, f[k] >= -0.5 && f[k] <= 0.5)
			}
		}
	}
}

func TestAngles(Te *testing.T) {
	frac := v3.FromRows([][3]float64{{0.1, 0, 0}, {0, 0, 0}, {0, 0.1, 0}, {0, 0, 0}})
	S, err := NewStructure([]string{"H", "O", "H", "X"}, frac, Orthorhombic(10, 10, 10))
	require.NoError(Te, err)
	A, err := Angles(S, true, -1, true)
	require.NoError(Te, err)
	assert.Equal(Te, 4, A.Len())
	assert.InDelta(Te, 90.0, A.At(0, 1, 2), 1e-12)
	assert.InDelta(Te, 90.0, A.At(2, 1, 0), 1e-12)
	assert.InDelta(Te, 45.0, A.At(1, 0, 2), 1e-12)
	assert.Equal(Te, -1.0, A.At(0, 0, 2))
	assert.Equal(Te, -1.0, A.At(0, 2, 0))
	//atoms 1 and 3 overlap
	assert.Equal(Te, -1.0, A.At(0, 1, 3))
	C, err := Angles(S, true, 2, false)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.0, C.At(0, 1, 2), 1e-12)
	assert.InDelta(Te, math.Sqrt(0.5), C.At(1, 0, 2), 1e-12)
	_, err = Angles(S, true, 90, true)
	assert.ErrorIs(Te, err, ErrInvalidArgument)
	_, err = Angles(S, true, 0.5, false)
	assert.ErrorIs(Te, err, ErrInvalidArgument)
	//sentinel not valid as an angle but valid as a cosine
	_, err = Angles(S, true, 200, true)
	assert.NoError(Te, err)
	_, err = Angles(S, true, -0.5, false)
	assert.ErrorIs(Te, err, ErrInvalidArgument)
}
