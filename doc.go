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

/*Package crys is the main package of the goChem/crys library. It provides periodic structures and
trajectories, and the geometry needed to analyze them under periodic boundary conditions.



	**Capabilities**


    Conversions between lattice vectors and crystallographic constants,
	also in the PWscf celldm convention.

    Cell volumes, reciprocal lattices and the Smith radius (the largest distance for
	which the minimum image convention gives correct distances).

    Minimum image convention for fractional coordinate differences, including
	separations of several cell lengths.

    Interatomic distances, displacement vectors and angles, with or without
	periodic boundary conditions, for any triclinic cell.

    Nearest neighbor searches by number or distance cutoff, with species filters.

    Supercells.

    In-memory trajectories with VMD-style time slicing.

The radial pair distribution function is in the rdf subpackage.

Structures and trajectories are immutable. Cartesian coordinates and distance matrices
are computed when first requested, and cached.

All errors returned by this package implement the Error interface, and match one of
ErrInvalidLattice, ErrInvalidArgument or ErrResourceExceeded with errors.Is.

*/
package crys
