/*
 * result.go, part of gocrys.
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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
)

//Result of an RPDF calculation.
type Result struct {
	Rad    []float64 //center of each bin
	GR     []float64 //g(r)
	NumInt []float64 //number integral up to the upper edge of each bin

	RMaxAuto float64 //the Smith radius. Results beyond it are not correct.
	RMax     float64
	DR       float64

	NSteps     int
	N0, N1     int //atoms in each selection
	Duplicates int //only counted with the NormVMD option
}

//WriteTo writes the result in 3 columns, r, g(r) and the number integral, with a
//commented header. It implements io.WriterTo.
func (R *Result) WriteTo(w io.Writer) (int64, error) {
	b := bufio.NewWriter(w)
	var n int64
	c, err := fmt.Fprintf(b, "# rmax_auto %.6f nsteps %d natoms0 %d natoms1 %d\n# r g(r) numint\n", R.RMaxAuto, R.NSteps, R.N0, R.N1)
	n += int64(c)
	if err != nil {
		return n, err
	}
	for i, r := range R.Rad {
		c, err = fmt.Fprintf(b, "%.6f %.10g %.10g\n", r, R.GR[i], R.NumInt[i])
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return n, b.Flush()
}

type resultJSON struct {
	Rad        []float64 `json:"rad"`
	GR         []float64 `json:"gr"`
	NumInt     []float64 `json:"num_int"`
	RMaxAuto   float64   `json:"rmax_auto"`
	RMax       float64   `json:"rmax"`
	DR         float64   `json:"dr"`
	NSteps     int       `json:"nsteps"`
	N0         int       `json:"natoms0"`
	N1         int       `json:"natoms1"`
	Duplicates int       `json:"duplicates"`
}

func (R *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON(*R))
}

func (R *Result) UnmarshalJSON(b []byte) error {
	var a resultJSON
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.GR) != len(a.Rad) || len(a.NumInt) != len(a.Rad) {
		return fmt.Errorf("goChem/rdf: columns of different lengths in RPDF result")
	}
	*R = Result(a)
	return nil
}

//Peak returns the radius and value of the maximum of g(r).
func (R *Result) Peak() (float64, float64) {
	if len(R.GR) == 0 {
		return 0, 0
	}
	i := floats.MaxIdx(R.GR)
	return R.Rad[i], R.GR[i]
}

//CoordinationNumber returns the average number of atoms of the second selection within r of
//an atom of the first one, at the resolution of the histogram.
func (R *Result) CoordinationNumber(r float64) float64 {
	//NumInt[i] counts up to (i+1)*DR
	i := int(math.Floor(r/R.DR+1e-9)) - 1
	if i < 0 || len(R.NumInt) == 0 {
		return 0
	}
	if i >= len(R.NumInt) {
		i = len(R.NumInt) - 1
	}
	return R.NumInt[i]
}
