/*
 * gofr.go, part of gocrys.
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

package vmd

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/template"

	crys "github.com/rmera/gocrys"
	"github.com/rmera/gocrys/rdf"
)

//OrthoTol is the largest deviation from 90 degrees, in degrees, that a cell angle
//can have for VMD to accept the cell.
const OrthoTol = 0.1

//GofrParams are the parameters for a "measure gofr" run in VMD.
type GofrParams struct {
	TrajFile string //the AXSF trajectory
	DataFile string //where VMD writes the result
	Sel      [2]string
	First    int
	Last     int
	Step     int
	DR       float64
	RMax     float64
	PBC      bool
	Lattice  crys.Lattice
}

//NewGofrParams returns the parameters to calculate in VMD the same RPDF that
//rdf.RPDF would calculate with the given options for the atoms of species sel0
//around those of species sel1. Empty species lists select all atoms.
//TrajFile and DataFile are left for the caller to fill.
func NewGofrParams(T *crys.Trajectory, sel0, sel1 []string, o *rdf.Options) *GofrParams {
	if o == nil {
		o = rdf.DefaultOptions()
	}
	if len(sel1) == 0 {
		sel1 = sel0
	}
	L := T.Lattice()
	rmax := o.RMax()
	if rmax == 0 {
		rmax = L.SmithRMax()
	}
	ts := o.Steps()
	return &GofrParams{
		Sel:     [2]string{vmdSelection(sel0), vmdSelection(sel1)},
		First:   ts.First,
		Last:    ts.Last,
		Step:    ts.Step,
		DR:      o.DR(),
		RMax:    rmax,
		PBC:     o.PBC(),
		Lattice: L,
	}
}

func vmdSelection(species []string) string {
	if len(species) == 0 {
		return "all"
	}
	return "name " + strings.Join(species, " ")
}

func (p *GofrParams) check() error {
	if p.TrajFile == "" || p.DataFile == "" {
		return crys.NewInvalidArgumentError("GofrScript", "trajectory and data files must be given")
	}
	if p.DR <= 0 || p.RMax <= 0 {
		return crys.NewInvalidArgumentError("GofrScript", "dr and rmax must be positive, got %g and %g", p.DR, p.RMax)
	}
	if p.Step < 1 {
		return crys.NewInvalidArgumentError("GofrScript", "step must be >= 1, got %d", p.Step)
	}
	for _, s := range p.Sel {
		if strings.TrimSpace(s) == "" || strings.ContainsAny(s, "\"[]$\n") {
			return crys.NewInvalidArgumentError("GofrScript", "invalid selection %q", s)
		}
	}
	if err := p.Lattice.Check(); err != nil {
		return err
	}
	if !p.Lattice.Orthogonal(OrthoTol) {
		return crys.NewInvalidLatticeError("GofrScript", "VMD only supports orthogonal cells, constants are %v", p.Lattice.Constants())
	}
	if !axisAligned(p.Lattice) {
		return crys.NewInvalidLatticeError("GofrScript", "VMD needs the cell vectors along x, y and z, in that order, got\n%v", p.Lattice)
	}
	return nil
}

//axisAligned is true if the off-diagonal components of L are negligible
//compared to the cell lengths.
func axisAligned(L crys.Lattice) bool {
	c := L.Constants()
	tol := 1e-6 * math.Max(c[0], math.Max(c[1], c[2]))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j && math.Abs(L[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

//Box returns the cell lengths a, b and c.
func (p *GofrParams) Box() [3]float64 {
	c := p.Lattice.Constants()
	return [3]float64{c[0], c[1], c[2]}
}

//UsePBC is 1 or 0, as VMD wants it.
func (p *GofrParams) UsePBC() int {
	if p.PBC {
		return 1
	}
	return 0
}

var gofrTemplate = template.Must(template.New("gofr").Parse(`# VMD script. Calls "measure gofr" and writes the RPDF to a file.
#
# Columns of the output file:
# radius    avg(g(r))    avg(number integral)

mol new {{.TrajFile}} type xsf waitfor all
set molid top
pbc set { {{- printf "%.8f %.8f %.8f" (index .Box 0) (index .Box 1) (index .Box 2) -}} } -all

set sel1 [atomselect $molid "{{index .Sel 0}}"]
set sel2 [atomselect $molid "{{index .Sel 1}}"]

set result [measure gofr $sel1 $sel2 delta {{.DR}} rmax {{.RMax}} first {{.First}} last {{.Last}} step {{.Step}} usepbc {{.UsePBC}}]
set rad [lindex $result 0]
set hist [lindex $result 1]
set num_int [lindex $result 2]

set fp [open "{{.DataFile}}" w]
foreach r $rad h $hist i $num_int {
    puts $fp "$r $h $i"
}
close $fp
quit
`))

//GofrScript returns a Tcl script that makes VMD calculate the RPDF with the parameters p,
//and write it in 3 columns to p.DataFile. VMD only supports orthogonal cells, so an
//InvalidLatticeError is returned for any other cell.
func GofrScript(p *GofrParams) (string, error) {
	if err := p.check(); err != nil {
		return "", errDecorate(err, "GofrScript")
	}
	var b strings.Builder
	if err := gofrTemplate.Execute(&b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}

//Command returns the command line that runs the script file in VMD without graphics.
//If log is not empty, the command goes through the shell so that the output of VMD
//is written to log. The command is not executed.
func Command(script, log string) []string {
	args := []string{"vmd", "-dispdev", "none", "-eofexit", "-e", script}
	if log == "" {
		return args
	}
	return []string{"sh", "-c", fmt.Sprintf("%s > %q 2>&1", strings.Join(args, " "), log)}
}

//ReadGofr reads the 3-column output of the GofrScript script. Empty lines and lines
//starting with # are skipped. Only Rad, GR, NumInt and DR are set in the returned Result.
func ReadGofr(r io.Reader) (*rdf.Result, error) {
	res := new(rdf.Result)
	sc := bufio.NewScanner(r)
	nline := 0
	for sc.Scan() {
		nline++
		l := strings.TrimSpace(sc.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		f := strings.Fields(l)
		if len(f) != 3 {
			return nil, fmt.Errorf("goChem/vmd: ReadGofr: line %d: expected 3 columns, got %d", nline, len(f))
		}
		var v [3]float64
		for i := range v {
			var err error
			if v[i], err = strconv.ParseFloat(f[i], 64); err != nil {
				return nil, fmt.Errorf("goChem/vmd: ReadGofr: line %d: %w", nline, err)
			}
		}
		res.Rad = append(res.Rad, v[0])
		res.GR = append(res.GR, v[1])
		res.NumInt = append(res.NumInt, v[2])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(res.Rad) == 0 {
		return nil, fmt.Errorf("goChem/vmd: ReadGofr: no data")
	}
	if len(res.Rad) > 1 {
		res.DR = res.Rad[1] - res.Rad[0]
	}
	res.RMax = res.Rad[len(res.Rad)-1] + res.DR/2
	return res, nil
}
