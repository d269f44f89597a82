// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

// pure components
//  Note: oils are represented by one n-alkane pseudo-component each
var (
	H2O  = Component{"H2O", 647.13, 22.055e6, 0.3449, 18.015, 5.595e-5}
	H2   = Component{"H2", 33.18, 1.313e6, -0.2150, 2.016, 6.42e-5}
	CO2  = Component{"CO2", 304.13, 7.3773e6, 0.2239, 44.0095, 9.4e-5}
	CH4  = Component{"CH4", 190.564, 4.5992e6, 0.0114, 16.0425, 9.86e-5}
	C2H6 = Component{"C2H6", 305.32, 4.872e6, 0.0995, 30.069, 1.455e-4}
	C3H8 = Component{"C3H8", 369.83, 4.248e6, 0.1523, 44.096, 2.0e-4}
	NC4  = Component{"nC4", 425.12, 3.796e6, 0.2002, 58.122, 2.55e-4}
	N2   = Component{"N2", 126.2, 3.3958e6, 0.0372, 28.0134, 8.95e-5}
	NC6  = Component{"nC6", 507.6, 3.025e6, 0.301, 86.175, 3.68e-4}
	NC8  = Component{"nC8", 568.7, 2.49e6, 0.398, 114.229, 4.92e-4}
	NC10 = Component{"nC10", 617.7, 2.11e6, 0.489, 142.282, 6.24e-4}
	NC16 = Component{"nC16", 723.0, 1.40e6, 0.718, 226.44, 9.69e-4}
	NC20 = Component{"nC20", 768.0, 1.16e6, 0.906, 282.55, 1.34e-3}
)

// add fluids to database
func init() {
	pure := map[string]Component{
		"H2O": H2O, "H2": H2, "CO2": CO2, "CH4": CH4,
		"Oil-volatile": NC6, "Oil-light": NC8, "Oil-medium": NC10, "Oil-heavy": NC16, "Oil-extraheavy": NC20,
	}
	for name, c := range pure {
		name, c := name, c
		allocators[name] = func() *Fluid {
			o := NewPure(c)
			o.Name = name
			return o
		}
	}
	allocators["DryGas"] = func() *Fluid {
		return &Fluid{"DryGas", []Component{CH4, C2H6, N2}, []float64{0.95, 0.03, 0.02}}
	}
	allocators["WetGas"] = func() *Fluid {
		return &Fluid{"WetGas", []Component{CH4, C2H6, C3H8, NC4}, []float64{0.80, 0.10, 0.06, 0.04}}
	}
	allocators["Gas-mix7"] = func() *Fluid {
		o, err := NewMixtureMass("Gas-mix7",
			[]Component{H2, CH4, C2H6, C3H8, NC4, CO2, N2},
			[]float64{0.02, 0.70, 0.10, 0.05, 0.03, 0.05, 0.05})
		if err != nil {
			panic(err)
		}
		return o
	}
}
