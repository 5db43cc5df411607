/*
 * trajectory.go, part of gocrys.
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

	v3 "github.com/rmera/gocrys/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//TimeSlice selects frames from a trajectory, the way VMD does: from First to Last,
//both included, every Step frames. Negative First or Last count from the end,
//so Last = -1 is the last frame. Step must be at least 1.
type TimeSlice struct {
	First int
	Last  int
	Step  int
}

//AllSteps returns the TimeSlice for every frame of a trajectory.
func AllSteps() TimeSlice {
	return TimeSlice{First: 0, Last: -1, Step: 1}
}

//Indexes returns the frame indexes selected by ts in a trajectory of nstep frames.
func (ts TimeSlice) Indexes(nstep int) ([]int, error) {
	if ts.Step < 1 {
		return nil, NewInvalidArgumentError("TimeSlice.Indexes", "step must be >= 1, got %d", ts.Step)
	}
	first, last := ts.First, ts.Last
	if first < 0 {
		first += nstep
	}
	if last < 0 {
		last += nstep
	}
	if first < 0 || first >= nstep || last < 0 || last >= nstep {
		return nil, NewInvalidArgumentError("TimeSlice.Indexes", "slice %v out of range for %d frames", ts, nstep)
	}
	if last < first {
		return nil, NewInvalidArgumentError("TimeSlice.Indexes", "slice %v selects no frames", ts)
	}
	ret := make([]int, 0, (last-first)/ts.Step+1)
	for i := first; i <= last; i += ts.Step {
		ret = append(ret, i)
	}
	return ret, nil
}

//Trajectory is a sequence of frames of the same atoms in a fixed lattice.
//Like Structure, it is immutable.
type Trajectory struct {
	symbols []string
	lattice Lattice
	frames  []*v3.Matrix //fractional coordinates
}

//NewTrajectory returns a trajectory with the given species, lattice and frames of fractional
//coordinates. The frames are copied. At least one frame is needed.
func NewTrajectory(symbols []string, lattice Lattice, frames ...*v3.Matrix) (*Trajectory, error) {
	if err := lattice.Check(); err != nil {
		return nil, errDecorate(err, "NewTrajectory")
	}
	if len(frames) == 0 {
		return nil, NewInvalidArgumentError("NewTrajectory", "no frames given")
	}
	T := &Trajectory{symbols: append([]string(nil), symbols...), lattice: lattice}
	for i, v := range frames {
		if v == nil || v.NVecs() != len(symbols) {
			return nil, NewInvalidArgumentError("NewTrajectory", "frame %d doesn't have %d atoms", i, len(symbols))
		}
		T.frames = append(T.frames, v.Clone())
	}
	return T, nil
}

//NewTrajectoryLattices is like NewTrajectory, but takes one lattice per frame. Variable cells are
//not supported, so all the lattices must be the same.
func NewTrajectoryLattices(symbols []string, lattices []Lattice, frames ...*v3.Matrix) (*Trajectory, error) {
	if len(lattices) != len(frames) {
		return nil, NewInvalidArgumentError("NewTrajectoryLattices", "%d lattices for %d frames", len(lattices), len(frames))
	}
	for i, v := range lattices {
		if !v.Equal(lattices[0]) {
			return nil, NewInvalidArgumentError("NewTrajectoryLattices", "lattice of frame %d differs from the first one, variable cells are not supported", i)
		}
	}
	if len(lattices) == 0 {
		return nil, NewInvalidArgumentError("NewTrajectoryLattices", "no frames given")
	}
	T, err := NewTrajectory(symbols, lattices[0], frames...)
	if err != nil {
		return nil, errDecorate(err, "NewTrajectoryLattices")
	}
	return T, nil
}

//Concatenate returns a trajectory with the given structures as frames.
//All of them must have the same species, in the same order, and the same lattice.
func Concatenate(structs ...*Structure) (*Trajectory, error) {
	if len(structs) == 0 {
		return nil, NewInvalidArgumentError("Concatenate", "no structures given")
	}
	ref := structs[0]
	frames := make([]*v3.Matrix, 0, len(structs))
	for i, S := range structs {
		if S == nil {
			panic(ErrNilStructure)
		}
		if !S.lattice.Equal(ref.lattice) {
			return nil, NewInvalidArgumentError("Concatenate", "lattice of structure %d differs from the first one", i)
		}
		if S.Len() != ref.Len() {
			return nil, NewInvalidArgumentError("Concatenate", "structure %d has %d atoms, expected %d", i, S.Len(), ref.Len())
		}
		for j, v := range S.symbols {
			if v != ref.symbols[j] {
				return nil, NewInvalidArgumentError("Concatenate", "species of atom %d in structure %d is %s, expected %s", j, i, v, ref.symbols[j])
			}
		}
		frames = append(frames, S.frac)
	}
	T, err := NewTrajectory(ref.symbols, ref.lattice, frames...)
	if err != nil {
		return nil, errDecorate(err, "Concatenate")
	}
	return T, nil
}

//Len returns the number of atoms per frame.
func (T *Trajectory) Len() int {
	return len(T.symbols)
}

//NStep returns the number of frames.
func (T *Trajectory) NStep() int {
	return len(T.frames)
}

//Symbol returns the species of atom i.
func (T *Trajectory) Symbol(i int) string {
	return T.symbols[i]
}

//Symbols returns a copy of the species of all atoms.
func (T *Trajectory) Symbols() []string {
	return append([]string(nil), T.symbols...)
}

//Lattice returns the lattice of the trajectory.
func (T *Trajectory) Lattice() Lattice {
	return T.lattice
}

//Volume returns the volume of the cell.
func (T *Trajectory) Volume() float64 {
	return T.lattice.Volume()
}

//FracVec returns the fractional coordinates of the given atom in the given frame.
func (T *Trajectory) FracVec(step, atom int) [3]float64 {
	return T.frames[step].Vec(atom)
}

//Frame returns the ith frame as a Structure. Negative i count from the end.
func (T *Trajectory) Frame(i int) (*Structure, error) {
	if i < 0 {
		i += len(T.frames)
	}
	if i < 0 || i >= len(T.frames) {
		return nil, NewInvalidArgumentError("Frame", "frame %d out of range for %d frames", i, len(T.frames))
	}
	return &Structure{symbols: T.Symbols(), frac: T.frames[i].Clone(), lattice: T.lattice}, nil
}

//Steps returns the frame indexes selected by ts.
func (T *Trajectory) Steps(ts TimeSlice) ([]int, error) {
	ret, err := ts.Indexes(len(T.frames))
	if err != nil {
		return nil, errDecorate(err, "Steps")
	}
	return ret, nil
}

//Slice returns a new trajectory with the frames selected by ts.
func (T *Trajectory) Slice(ts TimeSlice) (*Trajectory, error) {
	steps, err := T.Steps(ts)
	if err != nil {
		return nil, errDecorate(err, "Slice")
	}
	frames := make([]*v3.Matrix, 0, len(steps))
	for _, v := range steps {
		frames = append(frames, T.frames[v])
	}
	return NewTrajectory(T.symbols, T.lattice, frames...)
}

//Mean returns a structure with the mean fractional coordinates of each atom over all frames.
//Atoms that cross the cell boundary during the trajectory will give meaningless averages,
//unwrap them first if needed.
func (T *Trajectory) Mean() *Structure {
	n := T.Len()
	frac := v3.Zeros(n)
	tmp := make([]float64, len(T.frames))
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			for s, f := range T.frames {
				tmp[s] = f.At(i, k)
			}
			frac.Set(i, k, stat.Mean(tmp, nil))
		}
	}
	return &Structure{symbols: T.Symbols(), frac: frac, lattice: T.lattice}
}

//RMSD returns, for each frame, the cartesian RMSD against the frame ref.
//No superposition or unwrapping is performed.
func (T *Trajectory) RMSD(ref int) ([]float64, error) {
	if ref < 0 || ref >= len(T.frames) {
		return nil, NewInvalidArgumentError("RMSD", "reference frame %d out of range for %d frames", ref, len(T.frames))
	}
	r := T.lattice.ToCart(T.frames[ref])
	ret := make([]float64, len(T.frames))
	diff := v3.Zeros(T.Len())
	for i, f := range T.frames {
		c := T.lattice.ToCart(f)
		diff.Sub(c, r)
		d := diff.RawMatrix().Data
		ret[i] = math.Sqrt(floats.Dot(d, d) / float64(T.Len()))
	}
	return ret, nil
}

//Distances returns the distance matrix of each frame.
func (T *Trajectory) Distances(pbc bool) []*mat.SymDense {
	ret := make([]*mat.SymDense, len(T.frames))
	for i, f := range T.frames {
		S := &Structure{symbols: T.symbols, frac: f, lattice: T.lattice}
		ret[i], _, _ = pairwise(S, pbc, false, false)
	}
	return ret
}

//Reader returns a Traj that reads the trajectory frame by frame.
func (T *Trajectory) Reader() *TrajReader {
	return &TrajReader{traj: T, readable: true}
}

//TrajReader reads an in-memory trajectory frame by frame. It implements Traj.
type TrajReader struct {
	traj     *Trajectory
	current  int
	readable bool
}

//Readable returns true if there are frames left to read.
func (R *TrajReader) Readable() bool {
	return R.readable
}

//Len returns the number of atoms per frame.
func (R *TrajReader) Len() int {
	return R.traj.Len()
}

//Next puts the cartesian coordinates of the next frame in output, which can be nil to
//skip the frame. If a box slice with at least 9 elements is given, the lattice is copied there,
//row by row. After the last frame, it returns a LastFrameError.
func (R *TrajReader) Next(output *v3.Matrix, box ...[]float64) error {
	if !R.readable {
		return &trajError{message: "trajectory not readable", deco: []string{"Next"}}
	}
	if R.current >= R.traj.NStep() {
		R.readable = false
		return &lastFrameError{deco: []string{"Next"}}
	}
	f := R.traj.frames[R.current]
	R.current++
	if len(box) > 0 && len(box[0]) >= 9 {
		for i := 0; i < 3; i++ {
			copy(box[0][3*i:3*i+3], R.traj.lattice[i][:])
		}
	}
	if output == nil {
		return nil
	}
	if output.NVecs() != R.traj.Len() {
		return &trajError{message: "output matrix doesn't have the right number of atoms", deco: []string{"Next"}}
	}
	output.Mul(f, R.traj.lattice.Dense())
	return nil
}
