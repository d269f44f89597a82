// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visc

import "math"

// IAPWS (2008) reference constants
const (
	waterTref = 647.096 // [K]
	waterRref = 322.0   // [kg/m³]
)

// h0 holds the coefficients of the dilute-gas term
var h0 = [4]float64{1.67752, 2.20462, 0.6366564, -0.241605}

// h1 holds the coefficients H_ij of the residual term
var h1 = [6][7]float64{
	{5.20094e-1, 2.22531e-1, -2.81378e-1, 1.61913e-1, -3.25372e-2, 0, 0},
	{8.50895e-2, 9.99115e-1, -9.06851e-1, 2.57399e-1, 0, 0, 0},
	{-1.08374, 1.88797, -7.72479e-1, 0, 0, 0, 0},
	{-2.89555e-1, 1.26613, -4.89837e-1, 0, 6.98452e-2, 0, -4.35673e-3},
	{0, 0, -2.57040e-1, 0, 0, 8.72102e-3, 0},
	{0, 1.20573e-1, 0, 0, 0, 0, -5.93264e-4},
}

// Water computes the viscosity of water [Pa・s] at temperature T [K] and density ρ [kg/m³]
// with the IAPWS (2008) formulation without the critical enhancement
//   μ = μ0(T̄)・μ1(T̄, ρ̄)
func Water(T, ρ float64) float64 {
	t := T / waterTref
	r := ρ / waterRref

	// dilute gas
	var s float64
	for i := 3; i >= 0; i-- {
		s = s/t + h0[i]
	}
	μ0 := 100 * math.Sqrt(t) / s

	// residual
	x := 1/t - 1
	y := r - 1
	sum, xp := 0.0, 1.0
	for i := 0; i < 6; i++ {
		inner, yp := 0.0, 1.0
		for j := 0; j < 7; j++ {
			inner += h1[i][j] * yp
			yp *= y
		}
		sum += xp * inner
		xp *= x
	}
	μ1 := math.Exp(r * sum)
	return μ0 * μ1 * 1e-6
}
