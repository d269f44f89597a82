// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements relative permeability models for water, oil and gas
//  References:
//   [1] Aziz K and Settari A (1979) Petroleum Reservoir Simulation. Applied Science
//       Publishers, London
package conduct

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/lodhia92/hydrogen-mobility/mdl/litho"
	"github.com/lodhia92/hydrogen-mobility/unc"
)

// Regime defines the pair of phases flowing together
type Regime int

// regimes
const (
	WaterLiquid Regime = iota // water and oil
	VaporLiquid               // gas and oil
)

// String returns the name of the regime
func (r Regime) String() string {
	switch r {
	case WaterLiquid:
		return "water-liquid"
	case VaporLiquid:
		return "vapor-liquid"
	}
	return fmt.Sprintf("Regime(%d)", int(r))
}

// Endpoints holds the critical (residual) saturations
type Endpoints struct {
	Swc float64 // connate water saturation
	Sgc float64 // critical gas saturation
	Soc float64 // residual oil saturation
}

// endpoints of each lithology group
var (
	GenericEndpoints = Endpoints{Swc: 0.05, Sgc: 0.00, Soc: 0.001}
	ShaleEndpoints   = Endpoints{Swc: 0.05, Sgc: 0.00, Soc: 0.01}
)

// EndpointsFor returns the endpoint saturations of a lithology
func EndpointsFor(r litho.Rock) Endpoints {
	if r.IsShale() {
		return ShaleEndpoints
	}
	return GenericEndpoints
}

// Model defines relative permeability models
type Model interface {
	Init(prms dbf.Params) error                                           // Init initialises this structure
	GetPrms(example bool) dbf.Params                                      // gets (an example) of parameters
	Krp(regime Regime, s unc.Quantity) (kr1, kr2 unc.Quantity, err error) // computes (krw, krow) or (krg, krog)
}

// New relative permeability model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// RelPerm computes the relative permeabilities of a lithology with the quadratic model
//  Output:
//   s   -- the input saturation
//   kr1 -- krw (WaterLiquid) or krg (VaporLiquid)
//   kr2 -- krow (WaterLiquid) or krog (VaporLiquid)
func RelPerm(r litho.Rock, regime Regime, s unc.Quantity) (S, kr1, kr2 unc.Quantity, err error) {
	if !r.Valid() {
		err = chk.Err("%w: %v", litho.ErrUnknownLithology, r)
		return
	}
	mdl := NewQuadratic(EndpointsFor(r))
	kr1, kr2, err = mdl.Krp(regime, s)
	return s, kr1, kr2, err
}

// Kro computes the oil relative permeability with water and gas present by assuming
// non-interacting phases: kro = krow・krog
func Kro(krow, krog unc.Quantity) unc.Quantity {
	return krow.Mul(krog)
}
