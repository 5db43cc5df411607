/*
 * rpdf.go, part of gocrys.
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

//Package chemplot produces plots of the results of the analyses in the library.
package chemplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/gocrys/rdf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Width and Height of the saved plots, in inches.
var (
	Width  = 5.0
	Height = 4.0
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

//RPDFPlot plots g(r) and the number integral of res, and saves the plot to filename.
//The format is given by the extension of filename (png, svg, pdf, eps...).
//A dashed vertical line marks the Smith radius of the cell, beyond which the
//results are not reliable.
func RPDFPlot(res *rdf.Result, title, filename string) error {
	if res == nil || len(res.Rad) == 0 {
		return fmt.Errorf("goChem/chemplot: RPDFPlot: empty RPDF result")
	}
	if len(res.GR) != len(res.Rad) || len(res.NumInt) != len(res.Rad) {
		return fmt.Errorf("goChem/chemplot: RPDFPlot: columns of different lengths")
	}
	p := basicPlot(title, "r (A)", "g(r)")
	p.X.Min = 0
	p.Y.Min = 0
	gr, err := plotter.NewLine(xys(res.Rad, res.GR))
	if err != nil {
		return err
	}
	gr.LineStyle.Width = vg.Points(1.5)
	gr.LineStyle.Color = color.RGBA{B: 200, A: 255}
	numint, err := plotter.NewLine(xys(res.Rad, res.NumInt))
	if err != nil {
		return err
	}
	numint.LineStyle.Color = color.RGBA{R: 200, A: 255}
	p.Add(gr, numint)
	p.Legend.Add("g(r)", gr)
	p.Legend.Add("N(r)", numint)
	p.Legend.Top = true

	if res.RMaxAuto > 0 && res.RMaxAuto < res.Rad[len(res.Rad)-1] {
		top := 1.0
		for i := range res.GR {
			top = max(top, res.GR[i], res.NumInt[i])
		}
		mark, err := plotter.NewLine(plotter.XYs{{X: res.RMaxAuto, Y: 0}, {X: res.RMaxAuto, Y: top}})
		if err != nil {
			return err
		}
		mark.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		mark.LineStyle.Color = color.Gray{Y: 128}
		p.Add(mark)
		p.Legend.Add("Smith radius", mark)
	}
	return p.Save(vg.Length(Width)*vg.Inch, vg.Length(Height)*vg.Inch, filename)
}
