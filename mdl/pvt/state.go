// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pvt implements the phase behaviour service: phase, molar volume, density and
// viscosity of a fluid at given temperature and pressure
package pvt

import (
	"errors"

	"github.com/lodhia92/hydrogen-mobility/mdl/eos"
	"github.com/lodhia92/hydrogen-mobility/mdl/fluid"
)

// ErrService wraps failures of a phase property service; e.g. no volume root
var ErrService = errors.New("phase property service failed")

// PhaseProps holds the properties of one phase
type PhaseProps struct {
	Vm  float64 // molar volume [m³/mol]
	Rho float64 // density [kg/m³]
	Mu  float64 // viscosity [Pa・s]
}

// State holds the phases present at (T, P). It is one of LiquidState, GasState or
// TwoPhaseState
type State interface {
	Phase() eos.Phase
	isState()
}

// LiquidState holds a liquid-only state
type LiquidState struct {
	L PhaseProps
}

// GasState holds a gas-only state
type GasState struct {
	G PhaseProps
}

// TwoPhaseState holds coexisting liquid and gas
type TwoPhaseState struct {
	L PhaseProps
	G PhaseProps
}

// Phase returns eos.Liquid
func (LiquidState) Phase() eos.Phase { return eos.Liquid }

// Phase returns eos.Gas
func (GasState) Phase() eos.Phase { return eos.Gas }

// Phase returns eos.TwoPhase
func (TwoPhaseState) Phase() eos.Phase { return eos.TwoPhase }

func (LiquidState) isState()   {}
func (GasState) isState()      {}
func (TwoPhaseState) isState() {}

// Service computes the phase state of a fluid
//  Input:
//   f  -- fluid
//   eq -- equation of state
//   T  -- temperature [K]
//   P  -- pressure [Pa]
type Service interface {
	Props(f *fluid.Fluid, eq eos.Equation, T, P float64) (State, error)
}
