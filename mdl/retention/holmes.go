// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/lodhia92/hydrogen-mobility/mdl/litho"
	"github.com/lodhia92/hydrogen-mobility/mdl/por"
	"github.com/lodhia92/hydrogen-mobility/unc"
)

// Holmes constants
const (
	HolmesQ     = 1.05  // porosity exponent
	HolmesQstd  = 0.25  // uncertainty of Q
	ClasticC    = 0.06  // clastic constant
	ClasticCstd = 0.04  // uncertainty of clastic constant
	CarbC       = 0.035 // carbonate constant
	CarbCstd    = 0.025 // uncertainty of carbonate constant
)

// Holmes implements the Holmes connate water saturation model
//   Sw = C / φ^Q    clamped to 1 ± 1 if Sw > 1
type Holmes struct {
	C, Cstd float64 // lithology-class constant and its uncertainty
	Q, Qstd float64 // porosity exponent and its uncertainty
}

// add model to factory
func init() {
	allocators["holmes"] = func() Model { return new(Holmes) }
}

// NewHolmes returns a Holmes model with the constants of a lithology class
func NewHolmes(class litho.Class) (o *Holmes, err error) {
	o = &Holmes{Q: HolmesQ, Qstd: HolmesQstd}
	switch class {
	case litho.Clastic:
		o.C, o.Cstd = ClasticC, ClasticCstd
	case litho.Carbonate:
		o.C, o.Cstd = CarbC, CarbCstd
	default:
		return nil, chk.Err("%w: %v", litho.ErrUnsupportedClass, class)
	}
	return
}

// Init initialises model
func (o *Holmes) Init(prms dbf.Params) (err error) {
	o.Q, o.Qstd = HolmesQ, HolmesQstd
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c":
			o.C = p.V
		case "cstd":
			o.Cstd = p.V
		case "q":
			o.Q = p.V
		case "qstd":
			o.Qstd = p.V
		default:
			return chk.Err("holmes: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.C <= 0 {
		return chk.Err("holmes: constant C must be positive. C = %g is incorrect\n", o.C)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Holmes) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "c", V: ClasticC},
			&dbf.P{N: "cstd", V: ClasticCstd},
			&dbf.P{N: "q", V: HolmesQ},
			&dbf.P{N: "qstd", V: HolmesQstd},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "c", V: o.C},
		&dbf.P{N: "cstd", V: o.Cstd},
		&dbf.P{N: "q", V: o.Q},
		&dbf.P{N: "qstd", V: o.Qstd},
	}
}

// Sw computes the water saturation at porosity φ
func (o Holmes) Sw(φ float64) unc.Quantity {
	sw := unc.New(o.C, o.Cstd).Div(unc.Const(φ).Pow(unc.New(o.Q, o.Qstd)))
	if sw.Nominal() > 1 {
		return unc.New(1, 1)
	}
	return sw
}

// ConnateSw computes the connate water saturation of a lithology at depth z [km]
func ConnateSw(tab *litho.Table, r litho.Rock, z float64) (depth, φ float64, sw unc.Quantity, err error) {
	if !r.Valid() {
		err = chk.Err("%w: %v", litho.ErrUnknownLithology, r)
		return
	}
	mdl, err := NewHolmes(r.Class())
	if err != nil {
		err = chk.Err("%w: %v", err, r)
		return
	}
	φ, err = por.Porosity(tab, r, z)
	if err != nil {
		return
	}
	return z, φ, mdl.Sw(φ), nil
}
