// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.run) JSON or YAML file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gopkg.in/yaml.v3"

	"github.com/lodhia92/hydrogen-mobility/mdl/eos"
	"github.com/lodhia92/hydrogen-mobility/mdl/fluid"
	"github.com/lodhia92/hydrogen-mobility/mdl/litho"
	"github.com/lodhia92/hydrogen-mobility/mdl/perm"
	"github.com/lodhia92/hydrogen-mobility/mdl/por"
	"github.com/lodhia92/hydrogen-mobility/mdl/pt"
	"github.com/lodhia92/hydrogen-mobility/mdl/pvt"
	"github.com/lodhia92/hydrogen-mobility/mob"
)

// Run holds the data of one run
type Run struct {

	// global information
	Desc   string `json:"desc" yaml:"desc"`     // description of run
	DirOut string `json:"dirout" yaml:"dirout"` // directory for output; e.g. /tmp/hydrogen-mobility

	// problem definition
	Fluid   string    `json:"fluid" yaml:"fluid"`     // fluid name; e.g. "H2"
	Rock    string    `json:"rock" yaml:"rock"`       // lithology name; e.g. "Sandstone"
	Depths  []float64 `json:"depths" yaml:"depths"`   // depths [km]; if empty, zmin, zmax and nz are used
	Zmin    float64   `json:"zmin" yaml:"zmin"`       // minimum depth [km]
	Zmax    float64   `json:"zmax" yaml:"zmax"`       // maximum depth [km]
	Nz      int       `json:"nz" yaml:"nz"`           // number of depths
	Tsurf   float64   `json:"tsurf" yaml:"tsurf"`     // surface temperature [°C]
	Setting string    `json:"setting" yaml:"setting"` // geological setting; e.g. "typical"
	EOS     string    `json:"eos" yaml:"eos"`         // equation of state; e.g. "PR78"
	Ref     string    `json:"ref" yaml:"ref"`         // reference (displaced) fluid
	RefEOS  string    `json:"refeos" yaml:"refeos"`   // equation of state of the reference fluid
	Grav    float64   `json:"grav" yaml:"grav"`       // gravity acceleration [m/s²]
	Water   string    `json:"water" yaml:"water"`     // water model: "cubic" or "linear"

	// options
	Workers int    `json:"workers" yaml:"workers"` // maximum number of concurrent evaluations; 0 means number of CPUs
	Verbose bool   `json:"verbose" yaml:"verbose"` // print results of each depth
	Report  bool   `json:"report" yaml:"report"`   // print table with results
	Csv     bool   `json:"csv" yaml:"csv"`         // save results to CSV file
	Plot    string `json:"plot" yaml:"plot"`       // variable to plot against depth; e.g. "vmax". empty means no plot

	// custom data. file paths are relative to the directory of the run file
	PermFile    string     `json:"permfile" yaml:"permfile"`       // permeability table
	CompactFile string     `json:"compactfile" yaml:"compactfile"` // compaction table
	Athy        dbf.Params `json:"athy" yaml:"athy"`               // parameters of porosity model for Rock
	Multipoint  dbf.Params `json:"multipoint" yaml:"multipoint"`   // parameters of permeability model for Rock
	Linear      dbf.Params `json:"linear" yaml:"linear"`           // parameters of linear water model

	// derived
	Key string     `json:"-" yaml:"-"` // filename key; e.g. h2sand.run => h2sand
	Dir string     `json:"-" yaml:"-"` // directory of run file
	Set pt.Setting `json:"-" yaml:"-"` // geological setting
}

// SetDefault sets default values
func (o *Run) SetDefault() {
	o.Setting = pt.Typical.String()
	o.EOS = eos.PR78.String()
	o.Ref = fluid.Water
	o.Grav = mob.DefaultGrav
	o.Water = "cubic"
	o.Report = true
}

// ReadRun reads a run file. The format is selected by the extension: .yaml and .yml
// files are decoded as YAML; other files as JSON
func ReadRun(runfilepath string) (o *Run, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(runfilepath))
	if err != nil {
		return nil, chk.Err("cannot read run file %q:\n%v", runfilepath, err)
	}

	// set default values
	o = new(Run)
	o.SetDefault()

	// decode
	switch strings.ToLower(filepath.Ext(runfilepath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal run file %q:\n%v", runfilepath, err)
	}

	// input directory and filename key
	o.Dir = filepath.Dir(os.ExpandEnv(runfilepath))
	o.Key = io.FnKey(filepath.Base(runfilepath))
	if o.DirOut == "" {
		o.DirOut = "/tmp/hydrogen-mobility/" + o.Key
	}

	err = o.PostProcess()
	return
}

// PostProcess checks the data and computes derived values
func (o *Run) PostProcess() (err error) {
	if o.Fluid == "" || o.Rock == "" {
		return chk.Err("fluid and rock must be given. fluid = %q, rock = %q\n", o.Fluid, o.Rock)
	}
	if len(o.Depths) == 0 {
		if o.Nz < 1 {
			return chk.Err("depths or nz >= 1 must be given. nz = %d is incorrect\n", o.Nz)
		}
		if o.Zmax < o.Zmin {
			return chk.Err("zmax must be >= zmin. zmin = %g, zmax = %g\n", o.Zmin, o.Zmax)
		}
		if o.Nz == 1 {
			o.Depths = []float64{o.Zmin}
		} else {
			o.Depths = utl.LinSpace(o.Zmin, o.Zmax, o.Nz)
		}
	}
	for _, z := range o.Depths {
		if z < 0 {
			return chk.Err("depths must be non-negative. z = %g is incorrect\n", z)
		}
	}
	o.Set, err = pt.ParseSetting(o.Setting)
	if err != nil {
		return
	}
	if _, err = eos.Parse(o.EOS); err != nil {
		return
	}
	if o.Grav <= 0 {
		return chk.Err("gravity must be positive. grav = %g is incorrect\n", o.Grav)
	}
	switch strings.ToLower(o.Water) {
	case "cubic", "linear":
	default:
		return chk.Err("water model %q is not available. options are cubic and linear\n", o.Water)
	}
	if o.Workers < 0 {
		return chk.Err("workers must be non-negative. workers = %d is incorrect\n", o.Workers)
	}
	if o.Plot != "" && !isVariable(o.Plot) {
		return chk.Err("variable to plot %q is not available. options are %v\n", o.Plot, mob.Variables)
	}
	return
}

func isVariable(name string) bool {
	for _, v := range mob.Variables {
		if strings.EqualFold(v, name) {
			return true
		}
	}
	return false
}

// Table returns the lithology table with the custom data applied
func (o *Run) Table() (tab *litho.Table, err error) {

	// tables
	if o.PermFile == "" && o.CompactFile == "" {
		tab, err = litho.Default()
	} else {
		if o.PermFile == "" || o.CompactFile == "" {
			return nil, chk.Err("%w: both permfile and compactfile must be given", litho.ErrDataLoad)
		}
		tab, err = litho.Load(o.path(o.PermFile), o.path(o.CompactFile))
	}
	if err != nil || (len(o.Athy) == 0 && len(o.Multipoint) == 0) {
		return
	}

	// parameters of models
	r, err := litho.Parse(o.Rock)
	if err != nil {
		return
	}
	athy, err := por.NewAthy(tab, r)
	if err != nil {
		return
	}
	if err = athy.Init(o.Athy); err != nil {
		return
	}
	mp, err := perm.NewMultipoint(tab, r)
	if err != nil {
		return
	}
	if err = mp.Init(o.Multipoint); err != nil {
		return
	}
	c, err := tab.Compaction(r)
	if err != nil {
		return
	}
	c.Phi0, c.AthyKm = athy.Phi0, athy.K
	p := litho.PermPrms{Ak: mp.Ak, Phi0: mp.Phi0, Phi1: mp.Phi1, Phi2: mp.Phi2, K0: mp.K0, K1: mp.K1, K2: mp.K2}
	return tab.Override(r, p, c)
}

// Service returns the phase property service of this run
func (o *Run) Service() (pvt.Service, error) {
	if strings.ToLower(o.Water) != "linear" {
		return pvt.Cubic{}, nil
	}
	lin := pvt.NewLinear()
	if err := lin.Init(o.Linear); err != nil {
		return nil, err
	}
	return pvt.Mux{Water: lin, Other: pvt.Cubic{}}, nil
}

// Engine returns a new engine with the settings of this run
func (o *Run) Engine(tab *litho.Table, svc pvt.Service) *mob.Engine {
	e := mob.New(tab, svc)
	e.Setting = o.Set
	e.Grav = o.Grav
	e.Ref = o.Ref
	e.RefEOS = o.RefEOS
	e.Verbose = o.Verbose
	if o.Workers > 0 {
		e.Workers = o.Workers
	}
	return e
}

// Query returns the query of this run
func (o *Run) Query() mob.Query {
	return mob.Query{Fluid: o.Fluid, Rock: o.Rock, Tsurf: o.Tsurf, EOS: o.EOS, Setting: o.Set}
}

// path returns the path of a file given relative to the run file
func (o *Run) path(fn string) string {
	fn = os.ExpandEnv(fn)
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(o.Dir, fn)
}
