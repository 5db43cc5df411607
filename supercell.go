/*
 * supercell.go, part of gocrys.
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
	v3 "github.com/rmera/gocrys/v3"
)

//SupercellMask returns all the translations (i,j,k) with 0<=i<nx, 0<=j<ny, 0<=k<nz,
//with k varying fastest.
func SupercellMask(nx, ny, nz int) [][3]int {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil
	}
	ret := make([][3]int, 0, nx*ny*nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				ret = append(ret, [3]int{i, j, k})
			}
		}
	}
	return ret
}

func checkDims(dims [3]int, caller string) error {
	for _, v := range dims {
		if v <= 0 {
			return NewInvalidArgumentError(caller, "supercell dimensions must be positive, got %v", dims)
		}
	}
	return nil
}

//supercellFrac returns the fractional coordinates in the supercell. All the images
//of an atom are contiguous, in mask order.
func supercellFrac(frac *v3.Matrix, mask [][3]int, dims [3]int) *v3.Matrix {
	n := frac.NVecs()
	ret := v3.Zeros(n * len(mask))
	for i := 0; i < n; i++ {
		f := frac.RawRowView(i)
		for j, m := range mask {
			row := ret.RawRowView(i*len(mask) + j)
			for k := 0; k < 3; k++ {
				row[k] = (f[k] + float64(m[k])) / float64(dims[k])
			}
		}
	}
	return ret
}

func supercellSymbols(symbols []string, nimg int) []string {
	ret := make([]string, 0, len(symbols)*nimg)
	for _, v := range symbols {
		for j := 0; j < nimg; j++ {
			ret = append(ret, v)
		}
	}
	return ret
}

//Supercell returns a new structure made of dims[0] x dims[1] x dims[2] copies of S.
//Each atom of S is followed by its images, so atom i of S becomes the atoms
//i*N to (i+1)*N-1 of the supercell, where N is the number of copies.
func Supercell(S *Structure, dims [3]int) (*Structure, error) {
	if S == nil {
		panic(ErrNilStructure)
	}
	if err := checkDims(dims, "Supercell"); err != nil {
		return nil, err
	}
	mask := SupercellMask(dims[0], dims[1], dims[2])
	return &Structure{
		symbols: supercellSymbols(S.symbols, len(mask)),
		frac:    supercellFrac(S.frac, mask, dims),
		lattice: S.lattice.Scale(float64(dims[0]), float64(dims[1]), float64(dims[2])),
	}, nil
}

//SupercellTraj builds the supercell of every frame of T.
func SupercellTraj(T *Trajectory, dims [3]int) (*Trajectory, error) {
	if err := checkDims(dims, "SupercellTraj"); err != nil {
		return nil, err
	}
	mask := SupercellMask(dims[0], dims[1], dims[2])
	ret := &Trajectory{
		symbols: supercellSymbols(T.symbols, len(mask)),
		lattice: T.lattice.Scale(float64(dims[0]), float64(dims[1]), float64(dims[2])),
	}
	for _, f := range T.frames {
		ret.frames = append(ret.frames, supercellFrac(f, mask, dims))
	}
	return ret, nil
}
