/*
 * selection.go, part of gocrys.
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
	"fmt"
	"strings"

	crys "github.com/rmera/gocrys"
)

//Selection is a set of atoms, given either as a boolean mask over all the atoms,
//or as a list of species names (OR-ed, so Species("H","Cl") selects all H and Cl atoms).
//The zero value selects all atoms.
type Selection struct {
	species []string
	mask    []bool
}

//All returns a selection with all the atoms.
func All() Selection {
	return Selection{}
}

//Species returns a selection with all the atoms of any of the given species.
func Species(names ...string) Selection {
	return Selection{species: append([]string{}, names...)}
}

//Mask returns a selection with the atoms for which mask is true. mask is copied.
func Mask(mask []bool) Selection {
	return Selection{mask: append([]bool{}, mask...)}
}

//Indexes returns the indexes of the selected atoms, given the species of all atoms.
//It fails if the mask doesn't have one element per atom, or if nothing is selected.
func (s Selection) Indexes(symbols []string) ([]int, error) {
	var ret []int
	switch {
	case s.mask != nil:
		if len(s.mask) != len(symbols) {
			return nil, crys.NewInvalidArgumentError("Selection.Indexes", "mask of length %d for %d atoms", len(s.mask), len(symbols))
		}
		for i, v := range s.mask {
			if v {
				ret = append(ret, i)
			}
		}
	case s.species != nil:
		for i, v := range symbols {
			for _, w := range s.species {
				if v == w {
					ret = append(ret, i)
					break
				}
			}
		}
	default:
		ret = make([]int, len(symbols))
		for i := range ret {
			ret[i] = i
		}
	}
	if len(ret) == 0 {
		return nil, crys.NewInvalidArgumentError("Selection.Indexes", "selection %s is empty", s)
	}
	return ret, nil
}

func (s Selection) String() string {
	switch {
	case s.mask != nil:
		n := 0
		for _, v := range s.mask {
			if v {
				n++
			}
		}
		return fmt.Sprintf("mask(%d/%d)", n, len(s.mask))
	case s.species != nil:
		return "species(" + strings.Join(s.species, " ") + ")"
	default:
		return "all"
	}
}
