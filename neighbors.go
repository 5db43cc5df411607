/*
 * neighbors.go, part of gocrys.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

//NeighborQuery specifies a nearest-neighbor search around the atom Index.
//Exactly one of Num (the number of neighbors wanted) and Cutoff (the distance
//below which all atoms are neighbors) must be positive.
type NeighborQuery struct {
	Index     int
	Num       int
	Cutoff    float64
	Skip      []string //species that are never neighbors
	KeepOrder bool     //return the neighbors in atom order instead of distance order
}

//NearestNeighbors returns the indexes of the neighbors of the atom q.Index, and their distances, given the
//distance matrix dists and the species labels. The central atom is excluded by index. With a cutoff,
//only atoms with 0 < d < q.Cutoff are returned, so atoms on top of the central one are left out too.
//Getting fewer than q.Num neighbors (say, because of q.Skip) is not an error.
func NearestNeighbors(dists mat.Matrix, symbols []string, q NeighborQuery) ([]int, []float64, error) {
	r, c := dists.Dims()
	if r != c {
		return nil, nil, NewInvalidArgumentError("NearestNeighbors", "distance matrix is %dx%d, not square", r, c)
	}
	if len(symbols) != r {
		return nil, nil, NewInvalidArgumentError("NearestNeighbors", "%d symbols for %d atoms", len(symbols), r)
	}
	if q.Index < 0 || q.Index >= r {
		return nil, nil, NewInvalidArgumentError("NearestNeighbors", "atom %d out of range for %d atoms", q.Index, r)
	}
	if (q.Num > 0) == (q.Cutoff > 0) {
		return nil, nil, NewInvalidArgumentError("NearestNeighbors", "exactly one of Num (%d) and Cutoff (%g) must be positive", q.Num, q.Cutoff)
	}
	skip := make(map[string]bool, len(q.Skip))
	for _, v := range q.Skip {
		skip[v] = true
	}
	idx := make([]int, 0, r)
	for i := 0; i < r; i++ {
		if i == q.Index || skip[symbols[i]] {
			continue
		}
		if q.Cutoff > 0 && !(dists.At(q.Index, i) > 0 && dists.At(q.Index, i) < q.Cutoff) {
			continue
		}
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return dists.At(q.Index, idx[a]) < dists.At(q.Index, idx[b])
	})
	if q.Num > 0 && len(idx) > q.Num {
		idx = idx[:q.Num]
	}
	if q.KeepOrder {
		sort.Ints(idx)
	}
	d := make([]float64, len(idx))
	for i, v := range idx {
		d[i] = dists.At(q.Index, v)
	}
	return idx, d, nil
}

//NearestNeighbors runs the query on the distance matrix of S. The matrix is
//computed once and cached for each value of pbc.
func (S *Structure) NearestNeighbors(q NeighborQuery, pbc bool) ([]int, []float64, error) {
	idx, d, err := NearestNeighbors(S.distances(pbc), S.symbols, q)
	if err != nil {
		return nil, nil, errDecorate(err, "Structure.NearestNeighbors")
	}
	return idx, d, nil
}

//Neighborhood returns a new Structure with the atom q.Index followed by its neighbors,
//in the order given by the query.
func (S *Structure) Neighborhood(q NeighborQuery, pbc bool) (*Structure, error) {
	idx, _, err := S.NearestNeighbors(q, pbc)
	if err != nil {
		return nil, errDecorate(err, "Neighborhood")
	}
	ret, err := S.SomeAtoms(append([]int{q.Index}, idx...))
	if err != nil {
		return nil, errDecorate(err, "Neighborhood")
	}
	return ret, nil
}
