/*
 * predicates.go, part of gocrys.
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

//Predicate decides whether a distance is counted.
type Predicate func(d float64) bool

//Greater returns a Predicate true for distances larger than x.
func Greater(x float64) Predicate {
	return func(d float64) bool { return d > x }
}

//Less returns a Predicate true for distances smaller than x.
func Less(x float64) Predicate {
	return func(d float64) bool { return d < x }
}

//Between returns a Predicate true for distances in (lo,hi).
func Between(lo, hi float64) Predicate {
	return func(d float64) bool { return d > lo && d < hi }
}

//And returns a Predicate true when all the given ones are.
func And(ps ...Predicate) Predicate {
	return func(d float64) bool {
		for _, p := range ps {
			if !p(d) {
				return false
			}
		}
		return true
	}
}

//Or returns a Predicate true when any of the given ones is.
func Or(ps ...Predicate) Predicate {
	return func(d float64) bool {
		for _, p := range ps {
			if p(d) {
				return true
			}
		}
		return false
	}
}
