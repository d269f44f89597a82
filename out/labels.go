// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of depth sweeps: report tables, CSV files and plots
package out

// GetTexLabel returns a TeX label for a variable
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "depth":
		l += "z"
	case "vmax":
		l += "v_{max}"
	case "mobility":
		l += "\\lambda_v"
	case "buoyancy":
		l += "\\Delta\\rho\\,g"
	case "density":
		l += "\\rho"
	case "viscosity":
		l += "\\mu"
	default:
		l += key
	}
	l += "$"
	if unit != "" {
		l += " [" + unit + "]"
	}
	return l
}

// Units returns the units of a variable
func Units(key string) string {
	switch key {
	case "depth":
		return "km"
	case "vmax":
		return "m/year"
	case "mobility":
		return "m²/(Pa・s)"
	case "buoyancy":
		return "Pa/m"
	case "density":
		return "kg/m³"
	case "viscosity":
		return "Pa・s"
	}
	return ""
}
