/*
 * options.go, part of gocrys.
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
	"runtime"

	crys "github.com/rmera/gocrys"
)

//Options for the RPDF calculation. The methods of Options return the value
//an option had before the call, and set it to the value given, if any.
type Options struct {
	dr      float64
	rmax    float64
	pbc     bool
	maxmem  float64
	steps   crys.TimeSlice
	normVMD bool
	filter  Predicate
	cpus    int
}

//Returns a Options with the default options.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.dr = 0.05
	ret.rmax = 0
	ret.pbc = true
	ret.maxmem = 2e9
	ret.steps = crys.AllSteps()
	ret.cpus = runtime.NumCPU()
	return ret
}

//Returns the width of the histogram bins, and sets it, if given.
func (o *Options) DR(dr ...float64) float64 {
	ret := o.dr
	if len(dr) > 0 {
		o.dr = dr[0]
	}
	return ret
}

//Returns the largest distance considered and sets it, if given.
//0 means the Smith radius of the cell, the largest distance for which
//the results are correct.
func (o *Options) RMax(rmax ...float64) float64 {
	ret := o.rmax
	if len(rmax) > 0 {
		o.rmax = rmax[0]
	}
	return ret
}

//Returns whether to use periodic boundary conditions, and sets it, if given.
func (o *Options) PBC(pbc ...bool) bool {
	ret := o.pbc
	if len(pbc) > 0 {
		o.pbc = pbc[0]
	}
	return ret
}

//Returns the memory budget, in bytes, and sets it, if given.
func (o *Options) MaxMem(maxmem ...float64) float64 {
	ret := o.maxmem
	if len(maxmem) > 0 {
		o.maxmem = maxmem[0]
	}
	return ret
}

//Returns the frames of the trajectory to be used, and sets them, if given.
func (o *Options) Steps(steps ...crys.TimeSlice) crys.TimeSlice {
	ret := o.steps
	if len(steps) > 0 {
		o.steps = steps[0]
	}
	return ret
}

//Returns whether g(r) is normalized the way VMD does, and sets it, if given.
//VMD divides by n0*n1 minus the number of atoms present in both selections, which
//makes g(r) go to 1 for an ideal gas, but is inconsistent with the number integral.
//Use only to compare with VMD.
func (o *Options) NormVMD(norm ...bool) bool {
	ret := o.normVMD
	if len(norm) > 0 {
		o.normVMD = norm[0]
	}
	return ret
}

//Returns the distance filter, and sets it, if given. Only distances for which the
//filter returns true are counted. A nil filter counts all distances.
func (o *Options) Filter(f ...Predicate) Predicate {
	ret := o.filter
	if len(f) > 0 {
		o.filter = f[0]
	}
	return ret
}

//Returns the current value of the Cpus options (the number of gorutines to
//use on the concurrent calculation) and sets it, if
//a valid value is given
func (o *Options) Cpus(cpus ...int) int {
	ret := o.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		o.cpus = cpus[0]
	}
	return ret
}

//Check returns an InvalidArgumentError if the options can't be used.
func (o *Options) Check() error {
	if !(o.dr > 0) {
		return crys.NewInvalidArgumentError("Options.Check", "dr must be positive, got %g", o.dr)
	}
	if o.rmax < 0 {
		return crys.NewInvalidArgumentError("Options.Check", "rmax must be positive, or 0 for automatic, got %g", o.rmax)
	}
	if !(o.maxmem > 0) {
		return crys.NewInvalidArgumentError("Options.Check", "memory budget must be positive, got %g", o.maxmem)
	}
	if o.steps.Step < 1 {
		return crys.NewInvalidArgumentError("Options.Check", "time step must be >= 1, got %d", o.steps.Step)
	}
	return nil
}
