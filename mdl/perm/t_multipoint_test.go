// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/lodhia92/hydrogen-mobility/mdl/litho"
)

func Test_multipoint01(tst *testing.T) {

	chk.PrintTitle("multipoint01")

	var mdl Multipoint
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// breakpoints
	chk.Float64(tst, "x(0)", 1e-15, mdl.LogK(0), -1)
	chk.Float64(tst, "x(φ1)", 1e-14, mdl.LogK(0.05), 1)
	chk.Float64(tst, "x(φ2)", 1e-14, mdl.LogK(0.40), 4)

	// vertical and horizontal
	logkv, logkh := mdl.Calc(0.40)
	io.Pforan("logkv = %v, logkh = %v\n", logkv, logkh)
	chk.Float64(tst, "logkv", 1e-14, logkv, 4)
	chk.Float64(tst, "logkh", 1e-14, logkh, 4+math.Log10(5*50))

	// SI
	chk.Float64(tst, "1 mD", 1e-30, ToSI(0), 9.869233e-15)

	// wrong parameters
	prms := mdl.GetPrms(true)
	prms[2].V = 0.5 // phi1 > phi2
	if err = mdl.Init(prms); err == nil {
		tst.Errorf("Init with decreasing breakpoints should fail\n")
	}
}

func Test_multipoint02(tst *testing.T) {

	chk.PrintTitle("multipoint02. continuity and flat extrapolation")

	tab, err := litho.Default()
	if err != nil {
		tst.Errorf("Default failed: %v\n", err)
		return
	}
	δ := 1e-12
	for r := litho.Rock(0); r < litho.NumRocks; r++ {
		mdl, err := NewMultipoint(tab, r)
		if err != nil {
			tst.Errorf("NewMultipoint failed: %v\n", err)
			return
		}

		// continuity
		left := math.Abs(mdl.K1-mdl.K0)/(mdl.Phi1-mdl.Phi0)*mdl.Phi1 + mdl.K0
		chk.Float64(tst, r.String()+" @ φ1", 1e-10, mdl.LogK(mdl.Phi1), left)
		chk.Float64(tst, r.String()+" @ φ1-δ", 1e-9, mdl.LogK(mdl.Phi1-δ), mdl.LogK(mdl.Phi1))
		chk.Float64(tst, r.String()+" @ φ2+δ", 1e-10, mdl.LogK(mdl.Phi2+δ), mdl.LogK(mdl.Phi2))

		// flat above φ2
		for _, φ := range []float64{mdl.Phi2 + 1e-3, mdl.Phi2 + 0.1, 0.99, 10} {
			kv, _ := mdl.Calc(φ)
			if kv != mdl.K2 {
				tst.Errorf("%v: permeability above φ2 must be flat: %v != %v\n", r, kv, mdl.K2)
				return
			}
		}
	}

	if chk.Verbose {
		plt.Reset(false, nil)
		X := utl.LinSpace(0, 0.8, 101)
		for _, r := range []litho.Rock{litho.Sandstone, litho.Shale, litho.Micrite} {
			mdl, _ := NewMultipoint(tab, r)
			Y := make([]float64, len(X))
			for i, φ := range X {
				Y[i], _ = mdl.Calc(φ)
			}
			plt.Plot(X, Y, &plt.A{L: r.String()})
		}
		plt.Gll("$\\phi$", "$\\log_{10}k_v$ [mD]", nil)
		plt.Save("/tmp/hmob", "multipoint02")
	}
}

func Test_multipoint03(tst *testing.T) {

	chk.PrintTitle("multipoint03. lookup")

	tab, _ := litho.Default()
	logkv, logkh, err := Permeability(tab, litho.Sandstone, 0.2)
	if err != nil {
		tst.Errorf("Permeability failed: %v\n", err)
		return
	}
	io.Pforan("sandstone @ 0.2: logkv = %v, logkh = %v\n", logkv, logkh)
	chk.Float64(tst, "kh/kv", 1e-10, math.Pow(10, logkh-logkv), 5*50)

	if _, _, err = Permeability(tab, litho.Rock(-1), 0.2); err == nil {
		tst.Errorf("Permeability with invalid lithology should fail\n")
	}
}
