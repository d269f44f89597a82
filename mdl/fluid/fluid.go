// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements the database of fluids: critical properties of pure components
// and the compositions of mixtures
package fluid

import (
	"errors"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// ErrUnknownFluid is returned when a fluid is not in the database
var ErrUnknownFluid = errors.New("unknown fluid")

// Water is the name of the water fluid
const Water = "H2O"

// Component holds the critical properties of a pure component
type Component struct {
	Name  string  // name; e.g. "H2"
	Tc    float64 // critical temperature [K]
	Pc    float64 // critical pressure [Pa]
	Omega float64 // acentric factor [-]
	MW    float64 // molecular weight [g/mol]
	Vc    float64 // critical volume [m³/mol]
}

// Fluid holds a pure fluid or a mixture of components
type Fluid struct {
	Name  string      // name of fluid; e.g. "Gas-mix7"
	Comps []Component // components
	Zs    []float64   // mole fractions; sum to 1
}

// NumComps returns the number of components
func (o *Fluid) NumComps() int {
	return len(o.Comps)
}

// Pure tells whether the fluid has a single component
func (o *Fluid) Pure() bool {
	return len(o.Comps) == 1
}

// IsWater tells whether the fluid is pure water
func (o *Fluid) IsWater() bool {
	return o.Pure() && o.Comps[0].Name == Water
}

// MW returns the molecular weight of the fluid [g/mol]
func (o *Fluid) MW() (mw float64) {
	for i, c := range o.Comps {
		mw += o.Zs[i] * c.MW
	}
	return
}

// Check checks the composition
func (o *Fluid) Check() error {
	if len(o.Comps) == 0 {
		return chk.Err("fluid %q has no components", o.Name)
	}
	if len(o.Zs) != len(o.Comps) {
		return chk.Err("fluid %q: number of mole fractions (%d) must equal the number of components (%d)", o.Name, len(o.Zs), len(o.Comps))
	}
	var sum float64
	for i, z := range o.Zs {
		if z < 0 {
			return chk.Err("fluid %q: mole fraction of %s must be non-negative; got %g", o.Name, o.Comps[i].Name, z)
		}
		sum += z
	}
	if sum < 1-1e-10 || sum > 1+1e-10 {
		return chk.Err("fluid %q: mole fractions must sum to 1; got %g", o.Name, sum)
	}
	for _, c := range o.Comps {
		if c.Tc <= 0 || c.Pc <= 0 || c.MW <= 0 || c.Vc <= 0 {
			return chk.Err("fluid %q: critical properties of %s must be positive", o.Name, c.Name)
		}
	}
	return nil
}

// NewPure returns a pure fluid
func NewPure(c Component) *Fluid {
	return &Fluid{Name: c.Name, Comps: []Component{c}, Zs: []float64{1}}
}

// NewMixture returns a mixture given its mole fractions
func NewMixture(name string, comps []Component, zs []float64) (o *Fluid, err error) {
	o = &Fluid{Name: name, Comps: comps, Zs: zs}
	err = o.Check()
	return
}

// NewMixtureMass returns a mixture given its mass fractions
//   zi = (wi/MWi) / Σ_j (wj/MWj)
func NewMixtureMass(name string, comps []Component, ws []float64) (o *Fluid, err error) {
	if len(ws) != len(comps) {
		return nil, chk.Err("fluid %q: number of mass fractions (%d) must equal the number of components (%d)", name, len(ws), len(comps))
	}
	zs := make([]float64, len(ws))
	var sum float64
	for i, w := range ws {
		zs[i] = w / comps[i].MW
		sum += zs[i]
	}
	if sum <= 0 {
		return nil, chk.Err("fluid %q: mass fractions must be positive", name)
	}
	for i := range zs {
		zs[i] /= sum
	}
	return NewMixture(name, comps, zs)
}

// database ///////////////////////////////////////////////////////////////////////////////////////

// Get returns a fluid from the database
func Get(name string) (*Fluid, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("%w: %q", ErrUnknownFluid, name)
	}
	return allocator(), nil
}

// Names returns the names of all fluids in the database
func Names() []string {
	res := make([]string, 0, len(allocators))
	for name := range allocators {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// allocators holds all available fluids
var allocators = map[string]func() *Fluid{}
