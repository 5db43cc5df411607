/*
 * constants.go, part of gocrys.
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
)

//Constants are the crystallographic constants a, b, c (lengths, in the
//unit of the lattice) and alpha, beta, gamma (angles, in degrees). alpha is the
//angle between b and c, beta between a and c, gamma between a and b.
type Constants [6]float64

//sin(180*pi/180) is 1e-16, we want 0
func floorEps(x float64) float64 {
	if math.Abs(x) < 2.220446049250313e-16 {
		return 0
	}
	return x
}

func deg2rad(x float64) float64 {
	return x * math.Pi / 180
}

//Check returns an *InvalidLatticeError unless the lengths are positive and
//the angles are in (0,180).
func (c Constants) Check() error {
	for i, v := range c[:3] {
		if !(v > 0) || math.IsInf(v, 0) {
			return NewInvalidLatticeError("Constants.Check", "length %d must be positive, got %g", i, v)
		}
	}
	for i, v := range c[3:] {
		if !(v > 0 && v < 180) {
			return NewInvalidLatticeError("Constants.Check", "angle %d must be in (0,180), got %g", i, v)
		}
	}
	return nil
}

//Volume returns the volume of the cell described by the constants.
//It fails if the angles can't form a parallelepiped.
func (c Constants) Volume() (float64, error) {
	if err := c.Check(); err != nil {
		return 0, errDecorate(err, "Constants.Volume")
	}
	ca := math.Cos(deg2rad(c[3]))
	cb := math.Cos(deg2rad(c[4]))
	cg := math.Cos(deg2rad(c[5]))
	rad := 1 + 2*ca*cb*cg - ca*ca - cb*cb - cg*cg
	if rad < 0 {
		return 0, NewInvalidLatticeError("Constants.Volume", "angles %v don't form a parallelepiped", c[3:])
	}
	return c[0] * c[1] * c[2] * math.Sqrt(rad), nil
}

//Lattice returns one lattice with the given constants. The convention
//is that a lies along x, b is in the xy plane, and c is then fixed.
//Lattice().Constants() gives back c, but c.Lattice() is only equal to the
//lattice the constants were obtained from up to a rigid rotation.
func (c Constants) Lattice() (Lattice, error) {
	var L Lattice
	if err := c.Check(); err != nil {
		return L, errDecorate(err, "Constants.Lattice")
	}
	a, b, cc := c[0], c[1], c[2]
	alpha, beta, gamma := deg2rad(c[3]), deg2rad(c[4]), deg2rad(c[5])
	cosa := floorEps(math.Cos(alpha))
	cosb := floorEps(math.Cos(beta))
	cosg := floorEps(math.Cos(gamma))
	sing := floorEps(math.Sin(gamma))
	L[0] = [3]float64{a, 0, 0}
	L[1] = [3]float64{b * cosg, b * sing, 0}
	cx := cc * cosb
	cy := cc * (cosa - cosb*cosg) / sing
	rad := cc*cc - cy*cy - cx*cx
	if rad <= 0 {
		return L, NewInvalidLatticeError("Constants.Lattice", "constants %v don't form a parallelepiped", c)
	}
	L[2] = [3]float64{cx, cy, math.Sqrt(rad)}
	return L, nil
}

//Celldm returns the PWscf celldm representation of the constants,
//a*fac, b/a, c/a, cos(alpha), cos(beta), cos(gamma).
//fac converts the length unit to Bohr.
func (c Constants) Celldm(fac float64) [6]float64 {
	return [6]float64{
		c[0] * fac,
		c[1] / c[0],
		c[2] / c[0],
		math.Cos(deg2rad(c[3])),
		math.Cos(deg2rad(c[4])),
		math.Cos(deg2rad(c[5])),
	}
}

//ConstantsFromCelldm is the inverse of Constants.Celldm. fac converts Bohr to
//the desired length unit.
func ConstantsFromCelldm(celldm [6]float64, fac float64) Constants {
	a := celldm[0] * fac
	return Constants{
		a,
		celldm[1] * a,
		celldm[2] * a,
		math.Acos(celldm[3]) * 180 / math.Pi,
		math.Acos(celldm[4]) * 180 / math.Pi,
		math.Acos(celldm[5]) * 180 / math.Pi,
	}
}
