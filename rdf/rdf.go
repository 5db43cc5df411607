/*
 * rdf.go, part of gocrys.
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
	"log"
	"math"
	"sync"
	"time"

	crys "github.com/rmera/gocrys"
	"github.com/rmera/gocrys/histo"
	"github.com/rmera/gocrys/logging"
)

//bytes per pair and step needed to hold the displacement vectors in memory.
const bytesPerPair = 3 * 8

//distances below this are coincident atoms, i.e. the same atom in both selections.
const zeroDist = 1e-15

//RPDF calculates the radial pair distribution function g(r) of the trajectory T, and
//its number integral. sels can have 0, 1 or 2 selections. With no selections, all atoms
//are used. With one, the RPDF of that selection with itself is calculated. With 2,
//the RPDF of the atoms in the second selection around the atoms in the first one is calculated.
//The order matters for the number integral, which goes to the number of atoms in the second selection.
//If o is nil, DefaultOptions is used.
func RPDF(T *crys.Trajectory, sels []Selection, o *Options) (*Result, error) {
	ret, err := rpdf(T, T, sels, o)
	if err != nil {
		return nil, errDecorate(err, "RPDF")
	}
	return ret, nil
}

//RPDFStructure is like RPDF, for a single structure.
func RPDFStructure(S *crys.Structure, sels []Selection, o *Options) (*Result, error) {
	T, err := crys.Concatenate(S)
	if err != nil {
		return nil, errDecorate(err, "RPDFStructure")
	}
	ret, err := rpdf(T, T, sels, o)
	if err != nil {
		return nil, errDecorate(err, "RPDFStructure")
	}
	return ret, nil
}

//RPDFPair calculates the RPDF of the atoms in T1 around the atoms in T0. The first
//selection applies to T0 and the second, or the first if only one is given, to T1.
//Both trajectories must have the same species, lattice, and number of frames.
func RPDFPair(T0, T1 *crys.Trajectory, sels []Selection, o *Options) (*Result, error) {
	ret, err := rpdf(T0, T1, sels, o)
	if err != nil {
		return nil, errDecorate(err, "RPDFPair")
	}
	return ret, nil
}

func errDecorate(err error, caller string) error {
	if err2, ok := err.(crys.Error); ok {
		err2.Decorate(caller)
	}
	return err
}

func compatible(T0, T1 *crys.Trajectory) error {
	if T0 == T1 {
		return nil
	}
	if T0.NStep() != T1.NStep() {
		return crys.NewInvalidArgumentError("rpdf", "trajectories have %d and %d frames", T0.NStep(), T1.NStep())
	}
	if !T0.Lattice().Equal(T1.Lattice()) {
		return crys.NewInvalidArgumentError("rpdf", "trajectories have different lattices")
	}
	s0, s1 := T0.Symbols(), T1.Symbols()
	if len(s0) != len(s1) {
		return crys.NewInvalidArgumentError("rpdf", "trajectories have %d and %d atoms", len(s0), len(s1))
	}
	for i, v := range s0 {
		if v != s1[i] {
			return crys.NewInvalidArgumentError("rpdf", "atom %d is %s in one trajectory and %s in the other", i, v, s1[i])
		}
	}
	return nil
}

//pairs holds the fractional coordinates of both selections in one frame,
//and calls f with the distance of each pair.
type pairs struct {
	lattice crys.Lattice
	pbc     bool
	c0, c1  [][3]float64
}

func newPairs(L crys.Lattice, pbc bool, n0, n1 int) *pairs {
	return &pairs{lattice: L, pbc: pbc, c0: make([][3]float64, n0), c1: make([][3]float64, n1)}
}

func (p *pairs) load(T0, T1 *crys.Trajectory, step int, idx0, idx1 []int) {
	for i, v := range idx0 {
		p.c0[i] = T0.FracVec(step, v)
	}
	for i, v := range idx1 {
		p.c1[i] = T1.FracVec(step, v)
	}
}

func (p *pairs) each(f func(d float64)) {
	var s [3]float64
	for _, a := range p.c0 {
		for _, b := range p.c1 {
			for k := 0; k < 3; k++ {
				s[k] = a[k] - b[k]
				if p.pbc {
					s[k] = crys.MinImage(s[k])
				}
			}
			r := p.lattice.Cart(s)
			f(math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2]))
		}
	}
}

func rpdf(T0, T1 *crys.Trajectory, sels []Selection, o *Options) (*Result, error) {
	start := time.Now()
	if o == nil {
		o = DefaultOptions()
	}
	if err := o.Check(); err != nil {
		return nil, err
	}
	if err := compatible(T0, T1); err != nil {
		return nil, err
	}
	switch len(sels) {
	case 0:
		sels = []Selection{All(), All()}
	case 1:
		sels = []Selection{sels[0], sels[0]}
	case 2:
	default:
		return nil, crys.NewInvalidArgumentError("rpdf", "at most 2 selections allowed, got %d", len(sels))
	}
	idx0, err := sels[0].Indexes(T0.Symbols())
	if err != nil {
		return nil, err
	}
	idx1, err := sels[1].Indexes(T1.Symbols())
	if err != nil {
		return nil, err
	}
	steps, err := T0.Steps(o.steps)
	if err != nil {
		return nil, err
	}
	n0, n1 := len(idx0), len(idx1)
	L := T0.Lattice()
	rmaxAuto := L.SmithRMax()
	rmax := o.rmax
	if rmax == 0 {
		rmax = rmaxAuto
	}
	if rmax > rmaxAuto {
		log.Printf("goChem/rdf: rmax %.4f is larger than the Smith radius of the cell, %.4f. g(r) and the number integral will be wrong beyond it", rmax, rmaxAuto)
	}
	required := float64(len(steps)) * float64(n0) * float64(n1) * bytesPerPair
	if required > o.maxmem {
		return nil, crys.NewResourceExceededError("rpdf", required, o.maxmem, "use fewer time steps")
	}
	dr := o.dr
	//the tolerance keeps, say, 5/0.1 from giving 51 bins.
	nbins := int(math.Ceil(rmax/dr - 1e-9))
	if nbins < 1 {
		nbins = 1
	}
	dividers := histo.Uniform(0, dr, nbins)
	filter := o.filter

	cpus := o.cpus
	if cpus > len(steps) {
		cpus = len(steps)
	}
	if cpus < 1 {
		cpus = 1
	}
	logging.Debugf("goChem/rdf: %d frames, %d x %d atoms, %d bins, %d goroutines", len(steps), n0, n1, nbins, cpus)
	hists := make([]*histo.Data, cpus)
	stepchan := make(chan int)
	var wg sync.WaitGroup
	for w := range hists {
		hists[w] = histo.NewData(dividers, w)
		wg.Add(1)
		go func(h *histo.Data) {
			defer wg.Done()
			p := newPairs(L, o.pbc, n0, n1)
			dists := make([]float64, 0, n0*n1)
			for s := range stepchan {
				p.load(T0, T1, s, idx0, idx1)
				dists = dists[:0]
				p.each(func(d float64) {
					if d < zeroDist || d >= rmax {
						return
					}
					if filter != nil && !filter(d) {
						return
					}
					dists = append(dists, d)
				})
				h.AddData(dists...)
			}
		}(hists[w])
	}
	for _, s := range steps {
		stepchan <- s
	}
	close(stepchan)
	wg.Wait()
	total := hists[0]
	for _, h := range hists[1:] {
		logging.Debugf("goChem/rdf: histogram %d got %d distances", h.ID(), h.Total())
		total.Add(total, h)
	}

	dups := 0
	if o.normVMD {
		p := newPairs(L, o.pbc, n0, n1)
		p.load(T0, T1, steps[0], idx0, idx1)
		p.each(func(d float64) {
			if d < zeroDist {
				dups++
			}
		})
	}
	res := &Result{
		Rad:        total.Centers(),
		GR:         make([]float64, nbins),
		NumInt:     total.Cumulative(),
		RMaxAuto:   rmaxAuto,
		RMax:       rmax,
		DR:         dr,
		NSteps:     len(steps),
		N0:         n0,
		N1:         n1,
		Duplicates: dups,
	}
	nstep := float64(len(steps))
	npairs := float64(n0*n1 - dups)
	V := L.Volume()
	counts := total.View()
	if npairs > 0 {
		for i := range res.GR {
			shell := 4.0 / 3.0 * math.Pi * (math.Pow(dividers[i+1], 3) - math.Pow(dividers[i], 3))
			res.GR[i] = counts[i] / nstep * V / (shell * npairs)
		}
	}
	for i := range res.NumInt {
		res.NumInt[i] /= nstep * float64(n0)
	}
	logging.Timer("goChem/rdf: RPDF", start)
	return res, nil
}
