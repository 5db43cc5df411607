/*
 * histo.go, part of gocrys.
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

package histo

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. Bin i counts the values v with dividers[i] <= v < dividers[i+1],
//values outside all bins are counted in the total, but not binned.
type Data struct {
	id       int
	total    int
	dividers []float64
	histo    []float64
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//Total returns the number of data points added to the histogram, including the
//ones that fell outside all bins.
func (D *Data) Total() int {
	return D.total
}

//Uniform returns n+1 dividers for n bins of the given width, starting at lo.
//Each divider is computed as lo+i*width, so there is no accumulated rounding.
func Uniform(lo, width float64, n int) []float64 {
	if n < 1 || !(width > 0) {
		panic("goChem/histo.Uniform: need at least one bin with positive width")
	}
	ret := make([]float64, n+1)
	for i := range ret {
		ret[i] = lo + float64(i)*width
	}
	return ret
}

//NewData returns a new, empty histogram with the given dividers.
//if an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1.
func NewData(dividers []float64, ID ...int) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("goChem/histo.NewData: need at least 2 dividers, in increasing order")
	}
	d := new(Data)
	//the dividers are copied so nobody changes them from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//Bin returns the index of the bin for v, or -1 if v is outside all bins.
func (D *Data) Bin(v float64) int {
	//first divider larger than v
	i := sort.Search(len(D.dividers), func(j int) bool { return D.dividers[j] > v })
	if i == 0 || i == len(D.dividers) {
		return -1
	}
	return i - 1
}

//AddData adds the given data point(s) to the histogram. The slice given
//is not modified.
func (D *Data) AddData(point ...float64) {
	D.total += len(point)
	in := make([]float64, 0, len(point))
	for _, v := range point {
		//stat.Histogram panics on values outside the dividers
		//so they are omitted here.
		if D.Bin(v) >= 0 {
			in = append(in, v)
		}
	}
	if len(in) == 0 {
		return
	}
	sort.Float64s(in)
	floats.Add(D.histo, stat.Histogram(nil, D.dividers, in, nil))
}

//View returns the bin values themselves, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//Centers returns the center of each bin.
func (D *Data) Centers() []float64 {
	ret := make([]float64, len(D.histo))
	for i := range ret {
		ret[i] = 0.5 * (D.dividers[i] + D.dividers[i+1])
	}
	return ret
}

//Cumulative returns the running sum of the bin values.
func (D *Data) Cumulative() []float64 {
	ret := make([]float64, len(D.histo))
	return floats.CumSum(ret, D.histo)
}

//Add adds the histograms a and b putting the result in the receiver.
//The receiver can be one of them.
func (D *Data) Add(a, b *Data) {
	if len(a.dividers) != len(b.dividers) || !floats.Equal(a.dividers, b.dividers) {
		panic(fmt.Sprintf("goChem/histo.Data.Add: dividers of histograms %d and %d don't match", a.id, b.id))
	}
	if len(D.dividers) != len(a.dividers) {
		D.dividers = make([]float64, len(a.dividers))
	}
	copy(D.dividers, a.dividers)
	if len(D.histo) != len(a.histo) {
		D.histo = make([]float64, len(a.histo))
	}
	floats.AddTo(D.histo, a.histo, b.histo)
	D.total = a.total + b.total
}
