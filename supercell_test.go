/*
 * supercell_test.go, part of gocrys.
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
	"math/rand"
	"testing"

	v3 "github.com/rmera/gocrys/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupercellMask(Te *testing.T) {
	assert.Equal(Te, [][3]int{{0, 0, 0}, {0, 0, 1}, {1, 0, 0}, {1, 0, 1}}, SupercellMask(2, 1, 2))
	assert.Len(Te, SupercellMask(2, 3, 4), 24)
	assert.Empty(Te, SupercellMask(0, 1, 1))
}

func TestSupercellCount(Te *testing.T) {
	rng := rand.New(rand.NewSource(8))
	L := randomLattice(rng)
	S := randomStructure(Te, rng, 7, L, "Si")
	C, err := Supercell(S, [3]int{2, 3, 1})
	require.NoError(Te, err)
	assert.Equal(Te, 6*S.Len(), C.Len())
	assert.InEpsilon(Te, 6*S.Volume(), C.Volume(), 1e-12)
}

func TestSupercellOrder(Te *testing.T) {
	frac := v3.FromRows([][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}})
	S, err := NewStructure([]string{"Na", "Cl"}, frac, Orthorhombic(4, 4, 4))
	require.NoError(Te, err)
	C, err := Supercell(S, [3]int{2, 1, 2})
	require.NoError(Te, err)
	assert.Equal(Te, []string{"Na", "Na", "Na", "Na", "Cl", "Cl", "Cl", "Cl"}, C.Symbols())
	assert.True(Te, C.Lattice().Equal(Orthorhombic(8, 4, 8)))
	//images of Cl follow the mask order
	assert.Equal(Te, [3]float64{0.25, 0.5, 0.25}, C.FracVec(4))
	assert.Equal(Te, [3]float64{0.25, 0.5, 0.75}, C.FracVec(5))
	assert.Equal(Te, [3]float64{0.75, 0.5, 0.25}, C.FracVec(6))
	//cartesian coordinates are the original ones plus lattice translations
	cart := C.Cart()
	assert.Equal(Te, [3]float64{6, 2, 2}, cart.Vec(6))
	//the supercell has the same nearest neighbor distances
	d := C.Distances(true)
	assert.InDelta(Te, 2*1.7320508075688772, d.At(0, 4), 1e-12)
}

func TestSupercellErrors(Te *testing.T) {
	S, err := NewStructure([]string{"X"}, v3.FromRows([][3]float64{{0, 0, 0}}), Orthorhombic(1, 1, 1))
	require.NoError(Te, err)
	_, err = Supercell(S, [3]int{1, 0, 1})
	assert.ErrorIs(Te, err, ErrInvalidArgument)
	T, err := Concatenate(S, S)
	require.NoError(Te, err)
	_, err = SupercellTraj(T, [3]int{-1, 1, 1})
	assert.ErrorIs(Te, err, ErrInvalidArgument)
	T2, err := SupercellTraj(T, [3]int{2, 2, 2})
	require.NoError(Te, err)
	assert.Equal(Te, 8, T2.Len())
	assert.Equal(Te, 2, T2.NStep())
	assert.Equal(Te, 8.0, T2.Volume())
}
