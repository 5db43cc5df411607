/*
 * doc.go, part of gocrys.
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

/*Package rdf calculates radial pair distribution functions, g(r), and their number integrals
for periodic structures and trajectories.

The calculation is averaged over the frames of a trajectory, and distributed over goroutines,
one frame at a time. Atoms are chosen with Selections, by species or with a mask. Jobs can
also be described in TOML or YAML files and loaded with LoadConfig.

The normalization is the standard one, so g(r) goes to 1 for an ideal gas and the number
integral of the last bin is the number of atoms in the second selection (or that number minus 1
if both selections are the same). The NormVMD option reproduces the normalization of
VMD's "measure gofr" instead, where coincident atoms are not counted as pairs.
*/
package rdf
