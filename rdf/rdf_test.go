/*
 * rdf_test.go, part of gocrys.
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

package rdf

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	crys "github.com/rmera/gocrys"
	v3 "github.com/rmera/gocrys/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//perturbedCubic returns a simple cubic crystal of n*n*n atoms with lattice constant a,
//with each atom displaced randomly by up to 0.05*a along each axis.
func perturbedCubic(Te *testing.T, rng *rand.Rand, n int, a float64) *crys.Structure {
	Te.Helper()
	frac := v3.Zeros(n * n * n)
	symbols := make([]string, 0, n*n*n)
	l := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for c, v := range []int{i, j, k} {
					frac.Set(l, c, (float64(v)+0.1*(rng.Float64()-0.5))/float64(n))
				}
				symbols = append(symbols, "Ar")
				l++
			}
		}
	}
	L := float64(n) * a
	S, err := crys.NewStructure(symbols, frac, crys.Orthorhombic(L, L, L))
	require.NoError(Te, err)
	return S
}

//randomTraj returns nstep frames of nO "O" atoms followed by nH "H" atoms at random positions.
func randomTraj(Te *testing.T, rng *rand.Rand, nstep, nO, nH int, L float64) *crys.Trajectory {
	Te.Helper()
	symbols := make([]string, 0, nO+nH)
	for i := 0; i < nO+nH; i++ {
		if i < nO {
			symbols = append(symbols, "O")
		} else {
			symbols = append(symbols, "H")
		}
	}
	frames := make([]*v3.Matrix, nstep)
	for s := range frames {
		frames[s] = v3.Zeros(nO + nH)
		for i := 0; i < nO+nH; i++ {
			for k := 0; k < 3; k++ {
				frames[s].Set(i, k, rng.Float64())
			}
		}
	}
	T, err := crys.NewTrajectory(symbols, crys.Orthorhombic(L, L, L), frames...)
	require.NoError(Te, err)
	return T
}

func last(s []float64) float64 {
	return s[len(s)-1]
}

func TestNumIntConvergence(Te *testing.T) {
	rng := rand.New(rand.NewSource(10))
	S := perturbedCubic(Te, rng, 4, 3)
	o := DefaultOptions()
	o.DR(0.1)
	//well beyond the largest minimum image distance, 12*sqrt(3)/2
	o.RMax(12)
	res, err := RPDFStructure(S, nil, o)
	require.NoError(Te, err)
	assert.InDelta(Te, float64(S.Len()-1), last(res.NumInt), 1e-9)
	assert.InDelta(Te, 6.0, res.RMaxAuto, 1e-12)
	assert.Equal(Te, 120, len(res.GR))
	assert.Equal(Te, 1, res.NSteps)
	assert.Equal(Te, 64, res.N0)
	assert.Equal(Te, 64, res.N1)
	//the first shell has the 6 nearest neighbors
	assert.InDelta(Te, 6.0, res.CoordinationNumber(3.5), 1e-9)
}

func TestTwoSelections(Te *testing.T) {
	rng := rand.New(rand.NewSource(11))
	T := randomTraj(Te, rng, 3, 10, 20, 10)
	o := DefaultOptions()
	o.DR(0.2)
	auto, err := RPDF(T, []Selection{Species("O"), Species("H")}, o)
	require.NoError(Te, err)
	assert.InDelta(Te, 5.0, auto.RMax, 1e-12)
	assert.InDelta(Te, 5.0, auto.RMaxAuto, 1e-12)
	assert.Len(Te, auto.GR, 25)

	o.RMax(10)
	oh, err := RPDF(T, []Selection{Species("O"), Species("H")}, o)
	require.NoError(Te, err)
	ho, err := RPDF(T, []Selection{Species("H"), Species("O")}, o)
	require.NoError(Te, err)
	assert.InDelta(Te, 20.0, last(oh.NumInt), 1e-9)
	assert.InDelta(Te, 10.0, last(ho.NumInt), 1e-9)
	//g(r) itself doesn't depend on the order
	for i := range oh.GR {
		assert.InDelta(Te, oh.GR[i], ho.GR[i], 1e-12)
	}
	//a mask selection is the same as a species one
	mask := make([]bool, T.Len())
	for i := 0; i < 10; i++ {
		mask[i] = true
	}
	om, err := RPDF(T, []Selection{Mask(mask), Species("H")}, o)
	require.NoError(Te, err)
	assert.Equal(Te, oh.NumInt, om.NumInt)
}

func twoAtoms(Te *testing.T) *crys.Structure {
	Te.Helper()
	frac := v3.FromRows([][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}})
	S, err := crys.NewStructure([]string{"X", "X"}, frac, crys.Orthorhombic(5, 5, 5))
	require.NoError(Te, err)
	return S
}

func TestEndToEnd(Te *testing.T) {
	S := twoAtoms(Te)
	o := DefaultOptions()
	o.DR(0.1)
	o.RMax(5)
	res, err := RPDFStructure(S, []Selection{All()}, o)
	require.NoError(Te, err)
	require.Len(Te, res.GR, 50)
	r, g := res.Peak()
	assert.InDelta(Te, 4.35, r, 1e-9)
	assert.True(Te, g > 0)
	for i, v := range res.GR {
		if i != 43 {
			assert.Equal(Te, 0.0, v, "bin %d", i)
		}
	}
	shell := 4.0 / 3.0 * math.Pi * (math.Pow(4.4, 3) - math.Pow(4.3, 3))
	assert.InEpsilon(Te, 2*125/(4*shell), g, 1e-9)
	assert.Equal(Te, 0.0, res.NumInt[42])
	assert.InDelta(Te, 1.0, res.NumInt[43], 1e-12)
	assert.InDelta(Te, 1.0, last(res.NumInt), 1e-12)
	assert.Equal(Te, 1.0, res.CoordinationNumber(4.4))
	assert.Equal(Te, 0.0, res.CoordinationNumber(4.0))

	//VMD normalization discounts the 2 self pairs
	o.NormVMD(true)
	vmd, err := RPDFStructure(S, nil, o)
	require.NoError(Te, err)
	assert.Equal(Te, 2, vmd.Duplicates)
	assert.InEpsilon(Te, 2*res.GR[43], vmd.GR[43], 1e-12)
	assert.Equal(Te, res.NumInt, vmd.NumInt)
}

func TestPBCAndFilter(Te *testing.T) {
	frac := v3.FromRows([][3]float64{{0, 0, 0}, {0.875, 0, 0}})
	S, err := crys.NewStructure([]string{"A", "B"}, frac, crys.Orthorhombic(5, 5, 5))
	require.NoError(Te, err)
	o := DefaultOptions()
	o.DR(0.1)
	o.RMax(5)
	res, err := RPDFStructure(S, []Selection{Species("A"), Species("B")}, o)
	require.NoError(Te, err)
	r, _ := res.Peak()
	assert.InDelta(Te, 0.65, r, 1e-9)
	o.PBC(false)
	res, err = RPDFStructure(S, []Selection{Species("A"), Species("B")}, o)
	require.NoError(Te, err)
	r, _ = res.Peak()
	assert.InDelta(Te, 4.35, r, 1e-9)
	o.Filter(Less(4))
	res, err = RPDFStructure(S, []Selection{Species("A"), Species("B")}, o)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, last(res.NumInt))
	o.Filter(And(Greater(4), Between(4.3, 4.5)))
	res, err = RPDFStructure(S, []Selection{Species("A"), Species("B")}, o)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, last(res.NumInt))
	assert.True(Te, Or(Less(1), Greater(2))(0.5))
	assert.False(Te, Or(Less(1), Greater(2))(1.5))
}

func TestDeterministic(Te *testing.T) {
	rng := rand.New(rand.NewSource(12))
	T := randomTraj(Te, rng, 7, 15, 15, 8)
	o := DefaultOptions()
	o.Cpus(1)
	serial, err := RPDF(T, nil, o)
	require.NoError(Te, err)
	o.Cpus(4)
	parallel, err := RPDF(T, nil, o)
	require.NoError(Te, err)
	assert.Equal(Te, serial.GR, parallel.GR)
	assert.Equal(Te, serial.NumInt, parallel.NumInt)

	o.Steps(crys.TimeSlice{First: 0, Last: -1, Step: 3})
	sliced, err := RPDF(T, nil, o)
	require.NoError(Te, err)
	assert.Equal(Te, 3, sliced.NSteps)
	T2, err := T.Slice(crys.TimeSlice{First: 0, Last: -1, Step: 3})
	require.NoError(Te, err)
	o.Steps(crys.AllSteps())
	direct, err := RPDF(T2, nil, o)
	require.NoError(Te, err)
	assert.Equal(Te, sliced.GR, direct.GR)
}

func TestRPDFPair(Te *testing.T) {
	rng := rand.New(rand.NewSource(13))
	T := randomTraj(Te, rng, 2, 5, 5, 8)
	o := DefaultOptions()
	self, err := RPDF(T, []Selection{Species("O"), Species("H")}, o)
	require.NoError(Te, err)
	pair, err := RPDFPair(T, T, []Selection{Species("O"), Species("H")}, o)
	require.NoError(Te, err)
	assert.Equal(Te, self.NumInt, pair.NumInt)

	other := randomTraj(Te, rng, 3, 5, 5, 8)
	_, err = RPDFPair(T, other, nil, o)
	assert.ErrorIs(Te, err, crys.ErrInvalidArgument)
	bigger := randomTraj(Te, rng, 2, 5, 5, 9)
	_, err = RPDFPair(T, bigger, nil, o)
	assert.ErrorIs(Te, err, crys.ErrInvalidArgument)
	swapped := randomTraj(Te, rng, 2, 4, 6, 8)
	_, err = RPDFPair(T, swapped, nil, o)
	assert.ErrorIs(Te, err, crys.ErrInvalidArgument)
}

func TestRPDFErrors(Te *testing.T) {
	rng := rand.New(rand.NewSource(14))
	T := randomTraj(Te, rng, 4, 5, 5, 8)
	bad := []func(o *Options){
		func(o *Options) { o.DR(0) },
		func(o *Options) { o.DR(-0.1) },
		func(o *Options) { o.RMax(-1) },
		func(o *Options) { o.Steps(crys.TimeSlice{First: 3, Last: 1, Step: 1}) },
		func(o *Options) { o.Steps(crys.TimeSlice{First: 0, Last: -1, Step: 0}) },
	}
	for i, f := range bad {
		o := DefaultOptions()
		f(o)
		_, err := RPDF(T, nil, o)
		assert.ErrorIs(Te, err, crys.ErrInvalidArgument, "case %d", i)
	}
	sels := [][]Selection{
		{Species("Zz")},
		{Mask([]bool{true})},
		{All(), All(), All()},
		{Species()},
	}
	for i, s := range sels {
		_, err := RPDF(T, s, nil)
		assert.ErrorIs(Te, err, crys.ErrInvalidArgument, "selection case %d", i)
	}

	o := DefaultOptions()
	o.MaxMem(1000)
	_, err := RPDF(T, nil, o)
	require.ErrorIs(Te, err, crys.ErrResourceExceeded)
	var rerr *crys.ResourceExceededError
	require.True(Te, errors.As(err, &rerr))
	assert.Equal(Te, float64(4*10*10*24), rerr.Required)
	assert.Equal(Te, 1000.0, rerr.Budget)
	//fewer steps fit in the budget
	o.MaxMem(2400)
	o.Steps(crys.TimeSlice{First: 0, Last: 0, Step: 1})
	_, err = RPDF(T, nil, o)
	assert.NoError(Te, err)
}

func TestSelectionString(Te *testing.T) {
	assert.Equal(Te, "all", All().String())
	assert.Equal(Te, "species(O H)", Species("O", "H").String())
	assert.Equal(Te, "mask(1/2)", Mask([]bool{true, false}).String())
	idx, err := Species("H", "O").Indexes([]string{"O", "C", "H"})
	require.NoError(Te, err)
	assert.Equal(Te, []int{0, 2}, idx)
}

func TestOptions(Te *testing.T) {
	o := DefaultOptions()
	assert.Equal(Te, 0.05, o.DR(0.1))
	assert.Equal(Te, 0.1, o.DR())
	assert.True(Te, o.PBC())
	assert.Equal(Te, 2e9, o.MaxMem())
	assert.Equal(Te, crys.AllSteps(), o.Steps())
	assert.False(Te, o.NormVMD())
	assert.Nil(Te, o.Filter())
	c := o.Cpus(3)
	assert.Equal(Te, 3, o.Cpus(-1))
	assert.True(Te, c > 0)
	assert.Equal(Te, 3, o.Cpus())
}
