// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/lodhia92/hydrogen-mobility/unc"
)

// Quadratic implements the quadratic relative permeability model
//   water-liquid:
//     Swe  = (S - Swc) / (1 - Swc - Soc)
//     krw  = 0.4・Swe²
//     krow = 1 - 1.8・Swe + 0.8・Swe²
//   vapor-liquid:
//     Sge  = (S - Sgc) / (1 - Swc - Sgc)
//     Sgoe = S / (1 - Swc)
//     krg  = 0.4・Sge²
//     krog = 1 - 1.8・Sgoe + 0.8・Sgoe²
type Quadratic struct {
	Endpoints
}

// add model to factory
func init() {
	allocators["quadratic"] = func() Model { return new(Quadratic) }
}

// NewQuadratic returns a quadratic model with the given endpoints
func NewQuadratic(e Endpoints) *Quadratic {
	return &Quadratic{e}
}

// Init initialises model
func (o *Quadratic) Init(prms dbf.Params) (err error) {
	o.Endpoints = GenericEndpoints
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "swc":
			o.Swc = p.V
		case "sgc":
			o.Sgc = p.V
		case "soc":
			o.Soc = p.V
		default:
			return chk.Err("quadratic: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Swc+o.Soc >= 1 || o.Swc+o.Sgc >= 1 {
		return chk.Err("quadratic: endpoint saturations are too large: Swc=%g, Sgc=%g, Soc=%g\n", o.Swc, o.Sgc, o.Soc)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Quadratic) GetPrms(example bool) dbf.Params {
	e := o.Endpoints
	if example {
		e = GenericEndpoints
	}
	return []*dbf.P{
		&dbf.P{N: "swc", V: e.Swc},
		&dbf.P{N: "sgc", V: e.Sgc},
		&dbf.P{N: "soc", V: e.Soc},
	}
}

// Krp computes (krw, krow) for WaterLiquid or (krg, krog) for VaporLiquid
func (o Quadratic) Krp(regime Regime, s unc.Quantity) (kr1, kr2 unc.Quantity, err error) {
	switch regime {
	case WaterLiquid:
		swe := s.AddF(-o.Swc).Scale(1.0 / (1.0 - o.Swc - o.Soc))
		kr1 = swe.PowF(2).Scale(0.4)
		kr2 = poly(swe)
	case VaporLiquid:
		sge := s.AddF(-o.Sgc).Scale(1.0 / (1.0 - o.Swc - o.Sgc))
		sgoe := s.Scale(1.0 / (1.0 - o.Swc))
		kr1 = sge.PowF(2).Scale(0.4)
		kr2 = poly(sgoe)
	default:
		err = chk.Err("quadratic: regime %v is not available", regime)
	}
	return
}

// poly computes 1 - 1.8・x + 0.8・x²
func poly(x unc.Quantity) unc.Quantity {
	return unc.Const(1).Sub(x.Scale(1.8)).Add(x.PowF(2).Scale(0.8))
}
