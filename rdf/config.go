/*
 * config.go, part of gocrys.
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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	crys "github.com/rmera/gocrys"
	"gopkg.in/yaml.v3"
)

//Config is an RPDF job, as read from a TOML or YAML file. It can be instanced through
//the LoadConfig function or by "hand". If it is instanced by hand, please use the Check
//method to check if the Config meets the requirements.
type Config struct {
	//DR is the bin width. 0 means the default.
	DR float64 `toml:"dr" yaml:"dr"`

	//RMax is the largest distance considered. 0 means the Smith radius of the cell.
	RMax float64 `toml:"rmax" yaml:"rmax"`

	//NoPBC turns off the minimum image convention.
	NoPBC bool `toml:"no_pbc" yaml:"no_pbc"`

	//MaxMemGB is the memory budget in GB. 0 means the default.
	MaxMemGB float64 `toml:"maxmem_gb" yaml:"maxmem_gb"`

	//Steps are the first frame, last frame and step, with VMD conventions.
	//Empty means all frames.
	Steps []int `toml:"steps" yaml:"steps"`

	//Sel0 and Sel1 are the species in each selection. Empty means all atoms.
	//If only Sel0 is given, the RPDF of Sel0 with itself is calculated.
	Sel0 []string `toml:"sel0" yaml:"sel0"`
	Sel1 []string `toml:"sel1" yaml:"sel1"`

	//Within, if given, must have 2 elements. Only distances between them are counted.
	Within []float64 `toml:"within" yaml:"within"`

	NormVMD bool `toml:"norm_vmd" yaml:"norm_vmd"`

	//Cpus is the number of goroutines to use. 0 means all logical CPUs.
	Cpus int `toml:"cpus" yaml:"cpus"`

	//Output is the file where the 3-column result is written, if not empty.
	Output string `toml:"output" yaml:"output"`
}

//LoadConfig opens and decodes the given configuration file, which must be
//TOML (.toml extension) or YAML (.yaml or .yml). It checks the configuration
//before returning it.
func LoadConfig(path string) (*Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
		return nil, crys.NewInvalidArgumentError("LoadConfig", "unknown configuration format %q", ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var c Config
	r := bufio.NewReader(f)
	if ext == ".toml" {
		err = toml.NewDecoder(r).Decode(&c)
	} else {
		err = yaml.NewDecoder(r).Decode(&c)
	}
	if err != nil {
		return nil, fmt.Errorf("goChem/rdf: LoadConfig: decoding %s: %w", path, err)
	}
	if err = c.Check(); err != nil {
		return nil, errDecorate(err, "LoadConfig")
	}
	return &c, nil
}

//Check checks if Config is correct. It returns an InvalidArgumentError if a field
//doesn't meet the requirements.
func (c *Config) Check() error {
	if c.DR < 0 {
		return crys.NewInvalidArgumentError("Config.Check", "dr can't be negative")
	}
	if c.RMax < 0 {
		return crys.NewInvalidArgumentError("Config.Check", "rmax can't be negative")
	}
	if c.MaxMemGB < 0 {
		return crys.NewInvalidArgumentError("Config.Check", "maxmem_gb can't be negative")
	}
	if len(c.Steps) != 0 && len(c.Steps) != 3 {
		return crys.NewInvalidArgumentError("Config.Check", "steps must be [first, last, step], got %v", c.Steps)
	}
	if len(c.Steps) == 3 && c.Steps[2] < 1 {
		return crys.NewInvalidArgumentError("Config.Check", "the step in steps must be >= 1")
	}
	if len(c.Within) != 0 && (len(c.Within) != 2 || c.Within[0] >= c.Within[1]) {
		return crys.NewInvalidArgumentError("Config.Check", "within must be [min, max] with min < max, got %v", c.Within)
	}
	if len(c.Sel1) > 0 && len(c.Sel0) == 0 {
		return crys.NewInvalidArgumentError("Config.Check", "sel1 given without sel0")
	}
	if c.Cpus < 0 {
		return crys.NewInvalidArgumentError("Config.Check", "cpus can't be negative")
	}
	return nil
}

//Options returns the Options for the job.
func (c *Config) Options() *Options {
	o := DefaultOptions()
	if c.DR > 0 {
		o.DR(c.DR)
	}
	o.RMax(c.RMax)
	o.PBC(!c.NoPBC)
	if c.MaxMemGB > 0 {
		o.MaxMem(c.MaxMemGB * 1e9)
	}
	if len(c.Steps) == 3 {
		o.Steps(crys.TimeSlice{First: c.Steps[0], Last: c.Steps[1], Step: c.Steps[2]})
	}
	if len(c.Within) == 2 {
		o.Filter(Between(c.Within[0], c.Within[1]))
	}
	o.NormVMD(c.NormVMD)
	o.Cpus(c.Cpus)
	return o
}

//Selections returns the atom selections for the job.
func (c *Config) Selections() []Selection {
	switch {
	case len(c.Sel0) == 0:
		return nil
	case len(c.Sel1) == 0:
		return []Selection{Species(c.Sel0...)}
	default:
		return []Selection{Species(c.Sel0...), Species(c.Sel1...)}
	}
}

//Run calculates the RPDF of T with the job's parameters, and writes it to
//the Output file, if one is set.
func (c *Config) Run(T *crys.Trajectory) (*Result, error) {
	res, err := RPDF(T, c.Selections(), c.Options())
	if err != nil {
		return nil, errDecorate(err, "Config.Run")
	}
	if c.Output == "" {
		return res, nil
	}
	if err = WriteFile(c.Output, res); err != nil {
		return nil, err
	}
	return res, nil
}

//WriteFile writes res to the file name, in the format of Result.WriteTo.
func WriteFile(name string, res *Result) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := f.Close(); err == nil {
			err = err2
		}
	}()
	_, err = res.WriteTo(f)
	return err
}
