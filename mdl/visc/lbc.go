// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package visc implements viscosity correlations for gases, liquids and water
//  References:
//   [1] Lohrenz J, Bray BG and Clark CR (1964) Calculating viscosities of reservoir fluids
//       from their compositions. Journal of Petroleum Technology, 16(10), 1171-1176
//   [2] Stiel LI and Thodos G (1961) The viscosity of nonpolar gases at normal pressures.
//       AIChE Journal, 7(4), 611-615
//   [3] Huber ML et al. (2009) New international formulation for the viscosity of H2O.
//       Journal of Physical and Chemical Reference Data, 38(2), 101-125
package visc

import (
	"math"

	"github.com/lodhia92/hydrogen-mobility/mdl/fluid"
)

// atm is the standard atmosphere [Pa]
const atm = 101325.0

// xi computes the viscosity reducing parameter with Pc in atm [1/cP]
func xi(Tc, Pc, MW float64) float64 {
	return math.Pow(Tc, 1.0/6.0) / (math.Sqrt(MW) * math.Pow(Pc/atm, 2.0/3.0))
}

// StielThodos computes the dilute gas viscosity of a component [Pa・s]
//   Tr ≤ 1.5 : μ・ξ = 34e-5・Tr^0.94
//   Tr > 1.5 : μ・ξ = 17.78e-5・(4.58・Tr - 1.67)^0.625
func StielThodos(T float64, c fluid.Component) float64 {
	tr := T / c.Tc
	var μ float64 // [cP]
	if tr <= 1.5 {
		μ = 34e-5 * math.Pow(tr, 0.94)
	} else {
		μ = 17.78e-5 * math.Pow(4.58*tr-1.67, 0.625)
	}
	return μ / xi(c.Tc, c.Pc, c.MW) * 1e-3
}

// Dilute computes the dilute gas viscosity of a fluid with Herning-Zipperer mixing [Pa・s]
//   μ = Σ zi・μi・√MWi / Σ zi・√MWi
func Dilute(T float64, f *fluid.Fluid) float64 {
	var num, den float64
	for i, c := range f.Comps {
		s := f.Zs[i] * math.Sqrt(c.MW)
		num += s * StielThodos(T, c)
		den += s
	}
	return num / den
}

// LBC computes the viscosity [Pa・s] of a fluid with molar volume Vm [m³/mol] at
// temperature T [K] with the Lorentz-Bray-Clarke correlation. The pseudo-critical
// properties are obtained with Kay's rule
//   (μ - μ*)・ξ + 1e-4 = (0.1023 + 0.023364・ρr + 0.058533・ρr² - 0.040758・ρr³ + 0.0093324・ρr⁴)⁴
func LBC(T, Vm float64, f *fluid.Fluid) float64 {
	var Tc, Pc, Vc, MW float64
	for i, c := range f.Comps {
		z := f.Zs[i]
		Tc += z * c.Tc
		Pc += z * c.Pc
		Vc += z * c.Vc
		MW += z * c.MW
	}
	ρr := Vc / Vm
	poly := 0.1023 + ρr*(0.023364+ρr*(0.058533+ρr*(-0.040758+ρr*0.0093324)))
	poly2 := poly * poly
	return Dilute(T, f) + (poly2*poly2-1e-4)/xi(Tc, Pc, MW)*1e-3
}
