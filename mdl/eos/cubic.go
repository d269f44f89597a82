// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/lodhia92/hydrogen-mobility/mdl/fluid"
)

// Cubic implements a cubic equation of state for a fluid with one-fluid mixing rules
// (van der Waals mixing with zero binary interaction parameters)
//   θ = Σ_i Σ_j zi・zj・√(θi・θj)
//   b = Σ_i zi・bi
type Cubic struct {
	Eq    Equation     // equation of state
	Fluid *fluid.Fluid // fluid
}

// New returns a new equation of state for a fluid. Water is restricted to PR78, SRK, RK and VDW
func New(eq Equation, f *fluid.Fluid) (o *Cubic, err error) {
	if eq < 0 || eq >= NumEquations {
		return nil, chk.Err("%w: %v", ErrUnknownEOS, eq)
	}
	if err = f.Check(); err != nil {
		return
	}
	if f.IsWater() {
		if err = eq.CheckWater(); err != nil {
			return
		}
	}
	return &Cubic{eq, f}, nil
}

// Params computes the mixture parameters at temperature T [K]
func (o *Cubic) Params(T float64) (θ, dθdT, b, δ, ε float64) {
	n := o.Fluid.NumComps()
	θs := make([]float64, n)
	dθs := make([]float64, n)
	for i, c := range o.Fluid.Comps {
		var bi float64
		θs[i], dθs[i], bi = o.Eq.pure(T, c.Tc, c.Pc, c.Omega)
		b += o.Fluid.Zs[i] * bi
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			zz := o.Fluid.Zs[i] * o.Fluid.Zs[j]
			if zz == 0 {
				continue
			}
			s := math.Sqrt(θs[i] * θs[j])
			θ += zz * s
			if s > 0 {
				dθdT += zz * (dθs[i]*θs[j] + θs[i]*dθs[j]) / (2 * s)
			}
		}
	}
	δ, ε = o.Eq.volumeTerms(b)
	return
}

// Pressure computes the pressure [Pa] at temperature T [K] and molar volume V [m³/mol]
func (o *Cubic) Pressure(T, V float64) float64 {
	θ, _, b, δ, ε := o.Params(T)
	return R*T/(V-b) - θ/(V*V+δ*V+ε)
}

// Solve finds the phase and molar volumes at temperature T [K] and pressure P [Pa].
// Three admissible roots (V > b) indicate two phases: the smallest volume is the liquid
// and the largest the gas. Otherwise, the largest admissible root is labelled with the
// phase identification parameter Π: liquid if Π > 1 and gas otherwise. Supercritical
// states (T above the pseudo-critical temperature) are reported as gas
func (o *Cubic) Solve(T, P float64) (sol Solution, err error) {
	if T <= 0 || P <= 0 || math.IsNaN(T) || math.IsNaN(P) {
		return sol, chk.Err("%s: temperature and pressure must be positive; T=%g, P=%g", o.Eq, T, P)
	}

	// coefficients of Z³ + c2・Z² + c1・Z + c0 = 0
	θ, dθdT, b, δ, ε := o.Params(T)
	RT := R * T
	B := b * P / RT
	D := δ * P / RT
	E := ε * P * P / (RT * RT)
	A := θ * P / (RT * RT)
	c2 := D - B - 1
	c1 := E - B*D - D + A
	c0 := -(B*E + E + A*B)

	// admissible volumes
	var vols []float64
	for _, z := range cubicRoots(c2, c1, c0) {
		if z > B && z > 0 {
			vols = append(vols, z*RT/P)
		}
	}
	switch len(vols) {
	case 0:
		return sol, chk.Err("%w: %s, %s at T=%g K, P=%g Pa", ErrNoRoot, o.Eq, o.Fluid.Name, T, P)
	case 3:
		vl, vg := vols[0], vols[2]
		if vg-vl > 1e-12*vg {
			return Solution{Phase: TwoPhase, Vl: vl, Vg: vg}, nil
		}
	}

	// single phase with the largest admissible root
	V := vols[len(vols)-1]
	if T < o.Tpc() && pip(RT, T, V, θ, dθdT, b, δ, ε) > 1 {
		return Solution{Phase: Liquid, Vl: V}, nil
	}
	return Solution{Phase: Gas, Vg: V}, nil
}

// Tpc returns the pseudo-critical temperature (Kay's rule) [K]
func (o *Cubic) Tpc() (tpc float64) {
	for i, c := range o.Fluid.Comps {
		tpc += o.Fluid.Zs[i] * c.Tc
	}
	return
}

// Density converts molar volume [m³/mol] to density [kg/m³]
func (o *Cubic) Density(V float64) float64 {
	return o.Fluid.MW() * 1e-3 / V
}

// pip computes the phase identification parameter
//   Π = V・(∂²P/∂T∂V / ∂P/∂T - ∂²P/∂V² / ∂P/∂V)
func pip(RT, T, V, θ, dθdT, b, δ, ε float64) float64 {
	vb := V - b
	den := V*V + δ*V + ε
	w := 2*V + δ
	dPdT := R/vb - dθdT/den
	dPdV := -RT/(vb*vb) + θ*w/(den*den)
	d2PdTdV := -R/(vb*vb) + dθdT*w/(den*den)
	d2PdV2 := 2*RT/(vb*vb*vb) + θ*(2*den-2*w*w)/(den*den*den)
	return V * (d2PdTdV/dPdT - d2PdV2/dPdV)
}

// cubicRoots returns the real roots of Z³ + a・Z² + b・Z + c = 0 in ascending order
func cubicRoots(a, b, c float64) (roots []float64) {
	p := b - a*a/3
	q := 2*a*a*a/27 - a*b/3 + c
	shift := -a / 3
	disc := q*q/4 + p*p*p/27
	switch {
	case p == 0 && q == 0:
		roots = []float64{shift}
	case disc > 0:
		s := math.Sqrt(disc)
		roots = []float64{math.Cbrt(-q/2+s) + math.Cbrt(-q/2-s) + shift}
	default:
		r := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (p * r)
		arg = math.Max(-1, math.Min(1, arg))
		φ := math.Acos(arg) / 3
		roots = make([]float64, 3)
		for k := 0; k < 3; k++ {
			roots[k] = r*math.Cos(φ-2*math.Pi*float64(k)/3) + shift
		}
	}

	// polish with Newton's method
	for i, z := range roots {
		for it := 0; it < 3; it++ {
			f := ((z+a)*z+b)*z + c
			df := (3*z+2*a)*z + b
			if df == 0 {
				break
			}
			z -= f / df
		}
		roots[i] = z
	}
	sort.Float64s(roots)
	return
}
