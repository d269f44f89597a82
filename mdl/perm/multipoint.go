// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package perm implements intrinsic permeability models for sedimentary rocks
//  References:
//   [1] Hantschel T and Kauerauf AI (2009) Fundamentals of Basin and Petroleum Systems
//       Modeling. Springer, Berlin. http://dx.doi.org/10.1007/978-3-540-72318-9
package perm

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/lodhia92/hydrogen-mobility/mdl/litho"
)

// constants
const (
	MilliDarcy = 9.869233e-15 // mD to m² conversion of the published mobility results
	Upscaling  = 50.0         // horizontal upscaling factor for sub-seismic heterogeneity
)

// Multipoint implements the multipoint permeability model: a two-segment piecewise-linear
// curve in (φ, log10 k) space which is flat beyond φ2
type Multipoint struct {
	Ak         float64 // anisotropy factor kh/kv
	Phi0       float64 // first breakpoint
	Phi1       float64 // second breakpoint
	Phi2       float64 // third breakpoint
	K0, K1, K2 float64 // log10 permeability [mD] at breakpoints
}

// NewMultipoint returns a new model with the permeability data of a lithology
func NewMultipoint(tab *litho.Table, r litho.Rock) (o *Multipoint, err error) {
	p, err := tab.Perm(r)
	if err != nil {
		return
	}
	o = new(Multipoint)
	err = o.Init([]*dbf.P{
		&dbf.P{N: "ak", V: p.Ak},
		&dbf.P{N: "phi0", V: p.Phi0},
		&dbf.P{N: "phi1", V: p.Phi1},
		&dbf.P{N: "phi2", V: p.Phi2},
		&dbf.P{N: "k0", V: p.K0},
		&dbf.P{N: "k1", V: p.K1},
		&dbf.P{N: "k2", V: p.K2},
	})
	return
}

// Init initialises model
func (o *Multipoint) Init(prms dbf.Params) (err error) {
	if o.Ak == 0 {
		o.Ak = 1
	}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "ak":
			o.Ak = p.V
		case "phi0":
			o.Phi0 = p.V
		case "phi1":
			o.Phi1 = p.V
		case "phi2":
			o.Phi2 = p.V
		case "k0":
			o.K0 = p.V
		case "k1":
			o.K1 = p.V
		case "k2":
			o.K2 = p.V
		default:
			return chk.Err("multipoint: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Phi0 > o.Phi1 || o.Phi1 >= o.Phi2 {
		return chk.Err("multipoint: breakpoints must satisfy phi0 <= phi1 < phi2. %g, %g, %g is incorrect\n", o.Phi0, o.Phi1, o.Phi2)
	}
	if o.Phi1 == o.Phi0 {
		return chk.Err("multipoint: first segment is degenerate: phi0 == phi1 == %g\n", o.Phi0)
	}
	if o.Ak <= 0 {
		return chk.Err("multipoint: anisotropy factor must be positive. ak = %g is incorrect\n", o.Ak)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Multipoint) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "ak", V: 5},
			&dbf.P{N: "phi0", V: 0},
			&dbf.P{N: "phi1", V: 0.05},
			&dbf.P{N: "phi2", V: 0.40},
			&dbf.P{N: "k0", V: -1},
			&dbf.P{N: "k1", V: 1},
			&dbf.P{N: "k2", V: 4},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "ak", V: o.Ak},
		&dbf.P{N: "phi0", V: o.Phi0},
		&dbf.P{N: "phi1", V: o.Phi1},
		&dbf.P{N: "phi2", V: o.Phi2},
		&dbf.P{N: "k0", V: o.K0},
		&dbf.P{N: "k1", V: o.K1},
		&dbf.P{N: "k2", V: o.K2},
	}
}

// LogK computes log10 of the vertical permeability [mD] at porosity φ
//   φ < φ1       : x = |k1-k0|/(φ1-φ0)・φ + k0
//   φ1 ≤ φ ≤ φ2  : x = (k2-k1)/(φ2-φ1)・φ + k2 - (k2-k1)(φ2-φ0)/(φ2-φ1)
//   φ > φ2       : x = k2
func (o Multipoint) LogK(φ float64) float64 {
	switch {
	case φ < o.Phi1:
		return math.Abs(o.K1-o.K0)/(o.Phi1-o.Phi0)*φ + o.K0
	case φ <= o.Phi2:
		a := (o.K2 - o.K1) / (o.Phi2 - o.Phi1)
		return a*φ + (o.K2 - a*(o.Phi2-o.Phi0))
	}
	return o.K2
}

// Calc computes log10 of the vertical and horizontal permeabilities [mD] at porosity φ
//   kv = 10^x
//   kh = ak・10^x・Upscaling
func (o Multipoint) Calc(φ float64) (logkv, logkh float64) {
	logkv = o.LogK(φ)
	logkh = logkv + math.Log10(o.Ak*Upscaling)
	return
}

// Permeability computes log10 of the vertical and horizontal permeabilities [mD] of a lithology
func Permeability(tab *litho.Table, r litho.Rock, φ float64) (logkv, logkh float64, err error) {
	mdl, err := NewMultipoint(tab, r)
	if err != nil {
		return
	}
	logkv, logkh = mdl.Calc(φ)
	return
}

// ToSI converts log10 permeability [mD] to permeability [m²]
func ToSI(logk float64) float64 {
	return math.Pow(10, logk) * MilliDarcy
}
