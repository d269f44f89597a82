// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lodhia92/hydrogen-mobility/mdl/litho"
	"github.com/lodhia92/hydrogen-mobility/unc"
)

func Test_quad01(tst *testing.T) {

	chk.PrintTitle("quad01")

	mdl, err := New("quadratic")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	prm := mdl.GetPrms(true)
	soc := prm.Find("soc")
	soc.V = 0.01
	err = mdl.Init(prm)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	s := 0.3
	krw, krow, err := mdl.Krp(WaterLiquid, unc.Const(s))
	if err != nil {
		tst.Errorf("Krp failed: %v\n", err)
		return
	}
	swe := (s - 0.05) / (1 - 0.05 - 0.01)
	chk.Float64(tst, "krw", 1e-15, krw.Nominal(), 0.4*swe*swe)
	chk.Float64(tst, "krow", 1e-15, krow.Nominal(), 1-1.8*swe+0.8*swe*swe)

	krg, krog, err := mdl.Krp(VaporLiquid, unc.Const(s))
	if err != nil {
		tst.Errorf("Krp failed: %v\n", err)
		return
	}
	sge := s / (1 - 0.05)
	chk.Float64(tst, "krg", 1e-15, krg.Nominal(), 0.4*sge*sge)
	chk.Float64(tst, "krog", 1e-15, krog.Nominal(), 1-1.8*sge+0.8*sge*sge)

	if _, _, err = mdl.Krp(Regime(7), unc.Const(s)); err == nil {
		tst.Errorf("Krp with wrong regime should fail\n")
	}
	if _, err = New("corey"); err == nil {
		tst.Errorf("New(corey) should fail\n")
	}

	if chk.Verbose {
		Plot(mdl, "/tmp/hmob", "quad01_wl", WaterLiquid, 101, true)
		Plot(mdl, "/tmp/hmob", "quad01_vl", VaporLiquid, 101, true)
	}
}

func Test_quad02(tst *testing.T) {

	chk.PrintTitle("quad02. uncertainty and lithology groups")

	// derivative of krow w.r.t S
	S := unc.New(0.3, 0.02)
	_, _, krow, err := RelPerm(litho.Sandstone, WaterLiquid, S)
	if err != nil {
		tst.Errorf("RelPerm failed: %v\n", err)
		return
	}
	a := 1.0 / (1 - 0.05 - 0.001)
	swe := (0.3 - 0.05) * a
	chk.Float64(tst, "std(krow)", 1e-15, krow.Std(), math.Abs((-1.8+1.6*swe)*a)*0.02)

	// shales use their own endpoints
	chk.Float64(tst, "shale Soc", 1e-15, EndpointsFor(litho.ShaleTOC8).Soc, 0.01)
	chk.Float64(tst, "sandstone Soc", 1e-15, EndpointsFor(litho.Sandstone).Soc, 0.001)
	chk.Float64(tst, "siltstone Soc", 1e-15, EndpointsFor(litho.Siltstone).Soc, 0.001)

	_, krwSh, _, _ := RelPerm(litho.Shale, WaterLiquid, unc.Const(0.3))
	_, krwSs, _, _ := RelPerm(litho.Sandstone, WaterLiquid, unc.Const(0.3))
	io.Pforan("krw(shale) = %v, krw(sandstone) = %v\n", krwSh, krwSs)
	if krwSh.Nominal() <= krwSs.Nominal() {
		tst.Errorf("larger Soc must give larger Swe and krw\n")
	}

	if _, _, _, err = RelPerm(litho.NumRocks, WaterLiquid, S); err == nil {
		tst.Errorf("RelPerm with invalid lithology should fail\n")
	}
}

func Test_quad03(tst *testing.T) {

	chk.PrintTitle("quad03. kro product rule")

	a, da := 0.62, 0.05
	b, db := 0.48, 0.07
	kro := Kro(unc.New(a, da), unc.New(b, db))
	io.Pforan("kro = %v\n", kro)
	chk.Float64(tst, "kro", 1e-15, kro.Nominal(), a*b)
	chk.Float64(tst, "std(kro)", 1e-15, kro.Std(), math.Sqrt((b*da)*(b*da)+(a*db)*(a*db)))
}
