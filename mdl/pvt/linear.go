// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/lodhia92/hydrogen-mobility/mdl/eos"
	"github.com/lodhia92/hydrogen-mobility/mdl/fluid"
	"github.com/lodhia92/hydrogen-mobility/mdl/visc"
)

// Linear implements Service for a slightly compressible liquid. The equation of state
// argument is ignored. The model is:
//   ρ(p) = ρ0 + C・(p - p0)   thus   dρ/dp = C
type Linear struct {
	R0 float64 // density corresponding to P0 [kg/m³]
	P0 float64 // pressure corresponding to R0 [Pa]
	C  float64 // compressibility coefficient; e.g. R0/Kbulk [kg/(m³・Pa)]
	Mu float64 // viscosity [Pa・s]; zero means the IAPWS (2008) water viscosity
}

// NewLinear returns a new model for water
func NewLinear() *Linear {
	o := new(Linear)
	if err := o.Init(o.GetPrms(true)); err != nil {
		chk.Panic("%v", err)
	}
	return o
}

// Init initialises model
func (o *Linear) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "r0":
			o.R0 = p.V
		case "p0":
			o.P0 = p.V
		case "c":
			o.C = p.V
		case "mu":
			o.Mu = p.V
		default:
			return chk.Err("linear: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.R0 <= 0 {
		return chk.Err("linear: density must be positive. r0 = %g is incorrect\n", o.R0)
	}
	if o.C < 0 || o.Mu < 0 {
		return chk.Err("linear: compressibility and viscosity must be non-negative. c = %g, mu = %g is incorrect\n", o.C, o.Mu)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Linear) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{ // water
			&dbf.P{N: "r0", V: 1000},
			&dbf.P{N: "p0", V: 101325},
			&dbf.P{N: "c", V: 4.53e-7},
			&dbf.P{N: "mu", V: 0},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "r0", V: o.R0},
		&dbf.P{N: "p0", V: o.P0},
		&dbf.P{N: "c", V: o.C},
		&dbf.P{N: "mu", V: o.Mu},
	}
}

// Props computes the (liquid) state of a fluid
func (o Linear) Props(f *fluid.Fluid, eq eos.Equation, T, P float64) (State, error) {
	ρ := o.R0 + o.C*(P-o.P0)
	if ρ <= 0 {
		return nil, chk.Err("linear: density is not positive at P = %g Pa\n", P)
	}
	μ := o.Mu
	if μ == 0 {
		μ = visc.Water(T, ρ)
	}
	return LiquidState{PhaseProps{f.MW() * 1e-3 / ρ, ρ, μ}}, nil
}

// Mux implements Service by routing water to one service and other fluids to another
type Mux struct {
	Water Service // service for water
	Other Service // service for other fluids
}

// Props computes the phase state of a fluid
func (o Mux) Props(f *fluid.Fluid, eq eos.Equation, T, P float64) (State, error) {
	if f.IsWater() {
		return o.Water.Props(f, eq, T, P)
	}
	return o.Other.Props(f, eq, T, P)
}
