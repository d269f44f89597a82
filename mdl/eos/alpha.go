// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// attraction constants
const (
	prOmegaA  = 0.45723553
	prOmegaB  = 0.077796074
	srkOmegaA = 0.42748023354
	srkOmegaB = 0.08664034996
)

// twu holds the (L, M, N) parameters of the Twu alpha function
//   α(Tr) = Tr^(N・(M-1))・exp(L・(1 - Tr^(N・M)))
type twu struct{ L, M, N float64 }

// Twu (1995) parameters: [Tr < 1, Tr ≥ 1][α0, α1]
var (
	twuPR = [2][2]twu{
		{{0.125283, 0.911807, 1.948150}, {0.511614, 0.784054, 2.812520}},
		{{0.401219, 4.963070, -0.2}, {0.024955, 1.248089, -8.0}},
	}
	twuSRK = [2][2]twu{
		{{0.141599, 0.919422, 2.496441}, {0.500315, 0.799457, 3.291790}},
		{{0.441411, 6.500018, -0.20}, {0.032580, 1.289098, -8.0}},
	}
)

// eval computes α and dα/dTr
func (o twu) eval(tr float64) (α, dαdTr float64) {
	nm := o.N * o.M
	α = math.Pow(tr, o.N*(o.M-1)) * math.Exp(o.L*(1-math.Pow(tr, nm)))
	dαdTr = α * (o.N*(o.M-1)/tr - o.L*nm*math.Pow(tr, nm-1))
	return
}

// twuAlpha computes α = α0 + ω(α1 - α0) and dα/dTr
func twuAlpha(prms *[2][2]twu, tr, ω float64) (α, dαdTr float64) {
	k := 0
	if tr >= 1 {
		k = 1
	}
	α0, d0 := prms[k][0].eval(tr)
	α1, d1 := prms[k][1].eval(tr)
	return α0 + ω*(α1-α0), d0 + ω*(d1-d0)
}

// soave computes α = (1 + m(1 - √Tr))² and dα/dTr
func soave(m, tr float64) (α, dαdTr float64) {
	s := math.Sqrt(tr)
	f := 1 + m*(1-s)
	return f * f, -m * f / s
}

// pr78m computes κ of the PR78 alpha function
func pr78m(ω float64) float64 {
	if ω <= 0.491 {
		return 0.37464 + 1.54226*ω - 0.26992*ω*ω
	}
	return 0.379642 + 1.48503*ω - 0.164423*ω*ω + 0.016666*ω*ω*ω
}

// srkm computes m of the SRK alpha function
func srkm(ω float64) float64 {
	return 0.480 + 1.574*ω - 0.176*ω*ω
}

// apim computes S1 of the API SRK alpha function (with S2 = 0)
func apim(ω float64) float64 {
	return 0.48508 + 1.55171*ω - 0.15613*ω*ω
}

// pure computes the parameters of a pure component at temperature T
//  Output:
//   θ, dθdT -- attraction parameter and its temperature derivative
//   b       -- covolume
func (e Equation) pure(T, Tc, Pc, ω float64) (θ, dθdT, b float64) {
	tr := T / Tc
	var a, α, dαdTr float64
	switch e {
	case VDW:
		a = 27 * R * R * Tc * Tc / (64 * Pc)
		b = R * Tc / (8 * Pc)
		return a, 0, b
	case RK:
		a = srkOmegaA * R * R * Tc * Tc / Pc
		b = srkOmegaB * R * Tc / Pc
		α = 1 / math.Sqrt(tr)
		dαdTr = -0.5 * α / tr
	case SRK, TWUSRK, APISRK:
		a = srkOmegaA * R * R * Tc * Tc / Pc
		b = srkOmegaB * R * Tc / Pc
		switch e {
		case SRK:
			α, dαdTr = soave(srkm(ω), tr)
		case APISRK:
			α, dαdTr = soave(apim(ω), tr)
		default:
			α, dαdTr = twuAlpha(&twuSRK, tr, ω)
		}
	default: // PR78, TWUPR
		a = prOmegaA * R * R * Tc * Tc / Pc
		b = prOmegaB * R * Tc / Pc
		if e == TWUPR {
			α, dαdTr = twuAlpha(&twuPR, tr, ω)
		} else {
			α, dαdTr = soave(pr78m(ω), tr)
		}
	}
	return a * α, a * dαdTr / Tc, b
}

// volumeTerms returns δ and ε for a mixture covolume b
func (e Equation) volumeTerms(b float64) (δ, ε float64) {
	switch e {
	case PR78, TWUPR:
		return 2 * b, -b * b
	case VDW:
		return 0, 0
	}
	return b, 0
}
