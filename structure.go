/*
 * structure.go, part of gocrys.
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
	"strings"
	"sync"

	v3 "github.com/rmera/gocrys/v3"
	"gonum.org/v1/gonum/mat"
)

//Structure is a single frame: a set of atoms with species labels and
//fractional coordinates, in a given Lattice.
//A Structure is immutable, every getter returns a copy. Cartesian coordinates and
//distance matrices are computed the first time they are requested, and then cached.
//It is safe for concurrent use.
type Structure struct {
	symbols []string
	frac    *v3.Matrix
	lattice Lattice

	mu    sync.Mutex
	cart  *v3.Matrix
	dists [2]*mat.SymDense //[0] without, [1] with periodic boundary conditions
}

//NewStructure returns a Structure with the given atom symbols, fractional coordinates and lattice.
//symbols and frac are copied.
func NewStructure(symbols []string, frac *v3.Matrix, lattice Lattice) (*Structure, error) {
	if err := lattice.Check(); err != nil {
		return nil, errDecorate(err, "NewStructure")
	}
	if frac == nil {
		return nil, NewInvalidArgumentError("NewStructure", "nil coordinates")
	}
	if len(symbols) != frac.NVecs() {
		return nil, NewInvalidArgumentError("NewStructure", "%d symbols for %d atoms", len(symbols), frac.NVecs())
	}
	S := &Structure{
		symbols: append([]string(nil), symbols...),
		frac:    frac.Clone(),
		lattice: lattice,
	}
	return S, nil
}

//NewStructureCart returns a Structure from cartesian coordinates.
func NewStructureCart(symbols []string, cart *v3.Matrix, lattice Lattice) (*Structure, error) {
	if err := lattice.Check(); err != nil {
		return nil, errDecorate(err, "NewStructureCart")
	}
	if cart == nil {
		return nil, NewInvalidArgumentError("NewStructureCart", "nil coordinates")
	}
	frac, err := lattice.ToFrac(cart)
	if err != nil {
		return nil, errDecorate(err, "NewStructureCart")
	}
	S, err := NewStructure(symbols, frac, lattice)
	if err != nil {
		return nil, errDecorate(err, "NewStructureCart")
	}
	return S, nil
}

//Len returns the number of atoms.
func (S *Structure) Len() int {
	return len(S.symbols)
}

//Symbol returns the species of the atom i. Panics if i is out of range.
func (S *Structure) Symbol(i int) string {
	return S.symbols[i]
}

//Symbols returns a copy of the species of all atoms, in order.
func (S *Structure) Symbols() []string {
	return append([]string(nil), S.symbols...)
}

//Lattice returns the lattice of the structure.
func (S *Structure) Lattice() Lattice {
	return S.lattice
}

//Frac returns a copy of the fractional coordinates.
func (S *Structure) Frac() *v3.Matrix {
	return S.frac.Clone()
}

//FracVec returns the fractional coordinates of atom i.
func (S *Structure) FracVec(i int) [3]float64 {
	return S.frac.Vec(i)
}

func (S *Structure) cartesian() *v3.Matrix {
	S.mu.Lock()
	defer S.mu.Unlock()
	if S.cart == nil {
		S.cart = S.lattice.ToCart(S.frac)
	}
	return S.cart
}

//Cart returns a copy of the cartesian coordinates.
func (S *Structure) Cart() *v3.Matrix {
	return S.cartesian().Clone()
}

//Volume returns the volume of the cell.
func (S *Structure) Volume() float64 {
	return S.lattice.Volume()
}

//Constants returns the crystallographic constants of the cell.
func (S *Structure) Constants() Constants {
	return S.lattice.Constants()
}

func pbcIndex(pbc bool) int {
	if pbc {
		return 1
	}
	return 0
}

//distances returns the cached distance matrix. The caller must not modify it.
func (S *Structure) distances(pbc bool) *mat.SymDense {
	S.mu.Lock()
	defer S.mu.Unlock()
	i := pbcIndex(pbc)
	if S.dists[i] == nil {
		S.dists[i], _, _ = pairwise(S, pbc, false, false)
	}
	return S.dists[i]
}

//Distances returns a copy of the matrix of interatomic distances, computed using the
//minimum image convention if pbc is true.
func (S *Structure) Distances(pbc bool) *mat.SymDense {
	d := S.distances(pbc)
	ret := mat.NewSymDense(d.SymmetricDim(), nil)
	ret.CopySym(d)
	return ret
}

//Mask returns a slice with true for the atoms with any of the given species,
//and false for the others.
func (S *Structure) Mask(species ...string) []bool {
	ret := make([]bool, S.Len())
	for i, v := range S.symbols {
		for _, w := range species {
			if v == w {
				ret[i] = true
				break
			}
		}
	}
	return ret
}

//SomeAtoms returns a new Structure with the atoms of the given indexes, in that order.
func (S *Structure) SomeAtoms(indexes []int) (*Structure, error) {
	if len(indexes) == 0 {
		return nil, NewInvalidArgumentError("SomeAtoms", "no atoms requested")
	}
	symbols := make([]string, len(indexes))
	for i, v := range indexes {
		if v < 0 || v >= S.Len() {
			return nil, NewInvalidArgumentError("SomeAtoms", "index %d out of range for %d atoms", v, S.Len())
		}
		symbols[i] = S.symbols[v]
	}
	frac := v3.Zeros(len(indexes))
	frac.SomeVecs(S.frac, indexes)
	return &Structure{symbols: symbols, frac: frac, lattice: S.lattice}, nil
}

//Wrap returns a new Structure with all fractional coordinates in [0,1).
func (S *Structure) Wrap() *Structure {
	frac := S.frac.Clone()
	r, _ := frac.Dims()
	for i := 0; i < r; i++ {
		row := frac.RawRowView(i)
		for j := range row[:3] {
			row[j] = Wrap(row[j])
		}
	}
	return &Structure{symbols: S.Symbols(), frac: frac, lattice: S.lattice}
}

func (S *Structure) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d atoms, constants %v\n", S.Len(), S.Constants())
	for i, v := range S.symbols {
		f := S.frac.Vec(i)
		fmt.Fprintf(&b, "%-3s %9.5f %9.5f %9.5f\n", v, f[0], f[1], f[2])
	}
	return b.String()
}
