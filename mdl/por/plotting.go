// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package por

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots porosity versus depth with the depth axis pointing downwards
func (o Athy) Plot(zmax float64, np int, args *plt.A) {
	Z := utl.LinSpace(0, zmax, np)
	Y := make([]float64, np)
	for i, z := range Z {
		Y[i] = o.Phi(z)
	}
	if args == nil {
		args = &plt.A{C: "b", Ls: "-"}
	}
	plt.Plot(Y, Z, args)
}

// PlotEnd finalises the porosity plot. The depth axis points downwards
func PlotEnd(zmax float64, dirout, fnkey string) {
	plt.AxisYrange(zmax, 0)
	plt.Gll("$\\phi$", "$z$ [km]", nil)
	plt.Save(dirout, fnkey)
}
