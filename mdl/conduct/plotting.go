// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/lodhia92/hydrogen-mobility/unc"
)

// Plot plots the relative permeability curves of a regime
func Plot(o Model, dirout, fnkey string, regime Regime, np int, withText bool) (err error) {
	X := utl.LinSpace(0, 1, np)
	Y1 := make([]float64, np)
	Y2 := make([]float64, np)
	for i := 0; i < np; i++ {
		kr1, kr2, e := o.Krp(regime, unc.Const(X[i]))
		if e != nil {
			return e
		}
		Y1[i], Y2[i] = kr1.Nominal(), kr2.Nominal()
	}
	key, lbl := "w", "krw"
	if regime == VaporLiquid {
		key, lbl = "g", "krg"
	}
	plt.Reset(false, nil)
	plt.Plot(X, Y1, &plt.A{C: "b", Ls: "-", L: lbl})
	plt.Plot(X, Y2, &plt.A{C: "r", Ls: "-", L: lbl[:2] + "o" + key})
	if withText {
		l := np - 1
		plt.Text(X[0], Y2[0], io.Sf("(%g, %g)", X[0], Y2[0]), &plt.A{Ha: "left", C: "red", Fsz: 8})
		plt.Text(X[l], Y1[l], io.Sf("(%g, %g)", X[l], Y1[l]), &plt.A{Ha: "right", C: "red", Fsz: 8})
	}
	plt.Gll("$s_{"+key+"}$", "$k^r$", nil)
	plt.Save(dirout, fnkey)
	return
}
