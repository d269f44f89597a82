// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/gosl/chk"

	"github.com/lodhia92/hydrogen-mobility/mdl/eos"
	"github.com/lodhia92/hydrogen-mobility/mdl/fluid"
	"github.com/lodhia92/hydrogen-mobility/mdl/visc"
)

// Cubic implements Service with cubic equations of state and the Lorentz-Bray-Clarke
// viscosity. Water uses the IAPWS (2008) viscosity at the density from the equation of state
type Cubic struct{}

// Props computes the phase state of a fluid
func (o Cubic) Props(f *fluid.Fluid, eq eos.Equation, T, P float64) (State, error) {
	e, err := eos.New(eq, f)
	if err != nil {
		return nil, err
	}
	sol, err := e.Solve(T, P)
	if err != nil {
		return nil, chk.Err("%w: %v", ErrService, err)
	}
	props := func(V float64) PhaseProps {
		ρ := e.Density(V)
		if f.IsWater() {
			return PhaseProps{V, ρ, visc.Water(T, ρ)}
		}
		return PhaseProps{V, ρ, visc.LBC(T, V, f)}
	}
	switch sol.Phase {
	case eos.Liquid:
		return LiquidState{props(sol.Vl)}, nil
	case eos.Gas:
		return GasState{props(sol.Vg)}, nil
	case eos.TwoPhase:
		return TwoPhaseState{props(sol.Vl), props(sol.Vg)}, nil
	}
	return nil, chk.Err("%w: unknown phase %v", ErrService, sol.Phase)
}
