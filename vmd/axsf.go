/*
 * axsf.go, part of gocrys.
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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	crys "github.com/rmera/gocrys"
	v3 "github.com/rmera/gocrys/v3"
)

//WriteAXSF writes T in the animated XSF format read by VMD and XCrySDen. The lattice
//is written once, as the cell is fixed, and the coordinates are cartesian.
func WriteAXSF(w io.Writer, T *crys.Trajectory) error {
	return errDecorate(WriteFrames(w, T, T.Reader(), T.NStep()), "WriteAXSF")
}

//WriteFrames writes nstep frames read from traj in the animated XSF format, with the species
//given by atoms. traj must fill the box, and the cell of its first frame is used for all of them.
func WriteFrames(w io.Writer, atoms crys.Atomer, traj crys.Traj, nstep int) error {
	n := atoms.Len()
	if traj.Len() != n {
		return crys.NewInvalidArgumentError("WriteFrames", "%d species for %d atoms per frame", n, traj.Len())
	}
	if nstep < 1 {
		return crys.NewInvalidArgumentError("WriteFrames", "at least one frame needed, got %d", nstep)
	}
	b := bufio.NewWriter(w)
	coords := v3.Zeros(n)
	box := make([]float64, 9)
	for step := 1; step <= nstep; step++ {
		if !traj.Readable() {
			return crys.NewInvalidArgumentError("WriteFrames", "only %d of %d frames could be read", step-1, nstep)
		}
		err := traj.Next(coords, box)
		if err != nil {
			if _, ok := err.(crys.LastFrameError); ok {
				return crys.NewInvalidArgumentError("WriteFrames", "only %d of %d frames could be read", step-1, nstep)
			}
			return errDecorate(err, "WriteFrames")
		}
		if step == 1 {
			fmt.Fprintf(b, "ANIMSTEPS %d\nCRYSTAL\nPRIMVEC\n", nstep)
			for i := 0; i < 3; i++ {
				fmt.Fprintf(b, "%14.8f %14.8f %14.8f\n", box[3*i], box[3*i+1], box[3*i+2])
			}
		}
		fmt.Fprintf(b, "PRIMCOORD %d\n%d 1\n", step, n)
		for i := 0; i < n; i++ {
			fmt.Fprintf(b, "%-3s %14.8f %14.8f %14.8f\n", atoms.Symbol(i), coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
		}
	}
	return b.Flush()
}

//compressed file writers and readers, chosen by the file suffix.
func anyWriter(name string, f io.Writer) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewWriter(f), nil
	case strings.HasSuffix(name, ".zst"):
		return zstd.NewWriter(f)
	default:
		return nil, nil
	}
}

type zstdReadCloser struct {
	*zstd.Decoder
}

//Close releases the decoder. It can't be used after this call.
func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func anyReader(name string, f io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(f)
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	default:
		return nil, nil
	}
}

//CreateAXSF writes T to the file name in the animated XSF format. The file is compressed
//with gzip if the name ends in .gz, and with z-standard if it ends in .zst.
func CreateAXSF(name string, T *crys.Trajectory) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := f.Close(); err == nil {
			err = err2
		}
	}()
	z, err := anyWriter(name, f)
	if err != nil {
		return err
	}
	if z == nil {
		return WriteAXSF(f, T)
	}
	if err = WriteAXSF(z, T); err != nil {
		z.Close()
		return err
	}
	return z.Close()
}

//OpenAXSF reads the animated XSF file name, which can be compressed as in CreateAXSF.
func OpenAXSF(name string) (*crys.Trajectory, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	z, err := anyReader(name, f)
	if err != nil {
		return nil, fmt.Errorf("goChem/vmd: OpenAXSF: %s: %w", name, err)
	}
	if z == nil {
		return ReadAXSF(f)
	}
	defer z.Close()
	return ReadAXSF(z)
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(fields))
	}
	ret := make([]float64, n)
	for i := range ret {
		var err error
		if ret[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

//ReadAXSF reads a trajectory in the animated XSF format, as written by WriteAXSF.
//Only fixed-cell files are supported. Comments (lines starting with #) are skipped.
func ReadAXSF(r io.Reader) (*crys.Trajectory, error) {
	sc := bufio.NewScanner(r)
	nline := 0
	next := func() ([]string, bool) {
		for sc.Scan() {
			nline++
			l := strings.TrimSpace(sc.Text())
			if l == "" || strings.HasPrefix(l, "#") {
				continue
			}
			return strings.Fields(l), true
		}
		return nil, false
	}
	fail := func(format string, a ...interface{}) error {
		return fmt.Errorf("goChem/vmd: ReadAXSF: line %d: %s", nline, fmt.Sprintf(format, a...))
	}
	var lattice *crys.Lattice
	var symbols []string
	var frames []*v3.Matrix
	for {
		f, ok := next()
		if !ok {
			break
		}
		switch f[0] {
		case "ANIMSTEPS", "CRYSTAL":
		case "PRIMVEC":
			if lattice != nil {
				return nil, fail("variable cells are not supported")
			}
			lattice = new(crys.Lattice)
			for i := 0; i < 3; i++ {
				f, ok = next()
				if !ok {
					return nil, fail("incomplete PRIMVEC block")
				}
				v, err := parseFloats(f, 3)
				if err != nil {
					return nil, fail("%v", err)
				}
				copy(lattice[i][:], v)
			}
		case "PRIMCOORD":
			f, ok = next()
			if !ok {
				return nil, fail("missing number of atoms")
			}
			natoms, err := strconv.Atoi(f[0])
			if err != nil || natoms < 1 {
				return nil, fail("bad number of atoms %q", f[0])
			}
			if symbols != nil && natoms != len(symbols) {
				return nil, fail("frame %d has %d atoms, not %d", len(frames)+1, natoms, len(symbols))
			}
			data := make([]float64, 0, 3*natoms)
			sym := make([]string, natoms)
			for i := 0; i < natoms; i++ {
				f, ok = next()
				if !ok {
					return nil, fail("incomplete frame %d", len(frames)+1)
				}
				v, err := parseFloats(f[1:], 3)
				if err != nil {
					return nil, fail("%v", err)
				}
				sym[i] = f[0]
				data = append(data, v...)
			}
			frame, err := v3.NewMatrix(data)
			if err != nil {
				return nil, errDecorate(err, "ReadAXSF")
			}
			if symbols == nil {
				symbols = sym
			}
			frames = append(frames, frame)
		default:
			return nil, fail("unexpected keyword %q", f[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if lattice == nil || len(frames) == 0 {
		return nil, fmt.Errorf("goChem/vmd: ReadAXSF: no cell or no frames found")
	}
	for i, c := range frames {
		fr, err := lattice.ToFrac(c)
		if err != nil {
			return nil, errDecorate(err, "ReadAXSF")
		}
		frames[i] = fr
	}
	T, err := crys.NewTrajectory(symbols, *lattice, frames...)
	if err != nil {
		return nil, errDecorate(err, "ReadAXSF")
	}
	return T, nil
}

func errDecorate(err error, caller string) error {
	if err2, ok := err.(crys.Error); ok {
		err2.Decorate(caller)
	}
	return err
}
