// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mob

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"

	"github.com/lodhia92/hydrogen-mobility/mdl/eos"
	"github.com/lodhia92/hydrogen-mobility/mdl/fluid"
	"github.com/lodhia92/hydrogen-mobility/mdl/litho"
	"github.com/lodhia92/hydrogen-mobility/mdl/perm"
	"github.com/lodhia92/hydrogen-mobility/mdl/pt"
	"github.com/lodhia92/hydrogen-mobility/mdl/pvt"
)

// fakeService returns liquid water and two-phase states for all other fluids
type fakeService struct{}

func (fakeService) Props(f *fluid.Fluid, eq eos.Equation, T, P float64) (pvt.State, error) {
	if f.IsWater() {
		return pvt.LiquidState{L: pvt.PhaseProps{Vm: 1.8e-5, Rho: 1000, Mu: 1e-3}}, nil
	}
	return pvt.TwoPhaseState{
		L: pvt.PhaseProps{Vm: 1e-4, Rho: 700, Mu: 1e-4},
		G: pvt.PhaseProps{Vm: 1e-3, Rho: 100, Mu: 1e-5},
	}, nil
}

func newEngine(tst *testing.T, svc pvt.Service) *Engine {
	tab, err := litho.Default()
	if err != nil {
		tst.Fatalf("Default failed: %v\n", err)
	}
	return New(tab, svc)
}

func Test_mob01(tst *testing.T) {

	chk.PrintTitle("mob01. two-phase state")

	e := newEngine(tst, fakeService{})
	res, err := e.Mobility(Query{Fluid: "CH4", Rock: "Sandstone", Depth: 2, Tsurf: 20, EOS: "PR78"})
	if err != nil {
		tst.Errorf("Mobility failed: %v\n", err)
		return
	}
	if res.Liq == nil || res.Gas == nil {
		tst.Errorf("both phases must be present\n")
		return
	}
	chk.String(tst, res.Phase.String(), "l/g")
	chk.Float64(tst, "T", 1e-12, res.T, 293.15+50)
	chk.Float64(tst, "P", 1e-6, res.P, 25e6)

	// mobilities
	kv := perm.ToSI(res.LogKv) * res.Kro.Nominal()
	chk.Float64(tst, "kveff", 1e-25, res.Kveff.Nominal(), kv)
	chk.Float64(tst, "mob_v(liq)", 1e-20, res.Liq.Vert.Nominal(), kv/1e-4)
	chk.Float64(tst, "mob_v(gas)", 1e-20, res.Gas.Vert.Nominal(), kv/1e-5)
	chk.Float64(tst, "kheff/kveff", 1e-10, res.Kheff.Nominal()/res.Kveff.Nominal(), 5*perm.Upscaling)
	chk.Float64(tst, "rel std", 1e-12, res.Liq.Vert.Std()/res.Liq.Vert.Nominal(), res.Kveff.Std()/res.Kveff.Nominal())

	// buoyancy uses the liquid phase
	buoy, vel, ρref, err := e.Buoyancy(res)
	if err != nil {
		tst.Errorf("Buoyancy failed: %v\n", err)
		return
	}
	io.Pforan("buoy = %v, vel = %v m/year\n", buoy, vel)
	chk.Float64(tst, "ρref", 1e-15, ρref, 1000)
	chk.Float64(tst, "buoy", 1e-10, buoy, DefaultGrav*300)
	chk.Float64(tst, "vel", 1e-12*math.Abs(vel), vel, res.Liq.Vert.Nominal()*DefaultGrav*300*SecondsPerYear)
}

// twoPhaseWater returns two-phase states for all fluids, including water
type twoPhaseWater struct{}

func (twoPhaseWater) Props(f *fluid.Fluid, eq eos.Equation, T, P float64) (pvt.State, error) {
	if f.IsWater() {
		return pvt.TwoPhaseState{
			L: pvt.PhaseProps{Vm: 1.8e-5, Rho: 990, Mu: 1e-3},
			G: pvt.PhaseProps{Vm: 1e-3, Rho: 1, Mu: 1e-5},
		}, nil
	}
	return fakeService{}.Props(f, eq, T, P)
}

func Test_mob04(tst *testing.T) {

	chk.PrintTitle("mob04. two-phase reference fluid")

	e := newEngine(tst, twoPhaseWater{})
	res, err := e.Mobility(Query{Fluid: "CH4", Rock: "Sandstone", Depth: 1, Tsurf: 20, EOS: "SRK"})
	if err != nil {
		tst.Errorf("Mobility failed: %v\n", err)
		return
	}
	buoy, vel, ρref, err := e.Buoyancy(res)
	if err != nil {
		tst.Errorf("Buoyancy failed: %v\n", err)
		return
	}
	io.Pforan("ρref = %v, buoy = %v\n", ρref, buoy)
	chk.Float64(tst, "ρref", 1e-15, ρref, 990)
	chk.Float64(tst, "buoy", 1e-10, buoy, DefaultGrav*(990-700))
	chk.Float64(tst, "vel", 1e-12*math.Abs(vel), vel, res.Liq.Vert.Nominal()*buoy*SecondsPerYear)
}

func Test_mob02(tst *testing.T) {

	chk.PrintTitle("mob02. errors")

	e := newEngine(tst, fakeService{})
	q := Query{Fluid: "H2", Rock: "Granite", Depth: 1, Tsurf: 20, EOS: "PR78"}
	if _, err := e.Mobility(q); !errors.Is(err, litho.ErrUnknownLithology) {
		tst.Errorf("Granite should fail with ErrUnknownLithology; got %v\n", err)
	}
	q.Rock = "Shale"
	if _, err := e.Mobility(q); !errors.Is(err, litho.ErrUnsupportedClass) {
		tst.Errorf("Shale should fail with ErrUnsupportedClass; got %v\n", err)
	}
	q.Rock, q.Fluid = "Sandstone", "Unobtainium"
	if _, err := e.Mobility(q); !errors.Is(err, fluid.ErrUnknownFluid) {
		tst.Errorf("unknown fluid should fail with ErrUnknownFluid; got %v\n", err)
	}
	q.Fluid, q.EOS = "H2", "BWR"
	if _, err := e.Mobility(q); !errors.Is(err, eos.ErrUnknownEOS) {
		tst.Errorf("unknown equation should fail with ErrUnknownEOS; got %v\n", err)
	}
	q.EOS, q.Depth = "PR78", -5
	if _, err := e.Mobility(q); !errors.Is(err, ErrInvalidDepth) {
		tst.Errorf("negative depth should fail with ErrInvalidDepth; got %v\n", err)
	}
	q.Depth, q.Setting = 1, pt.Setting(9)
	if _, err := e.Mobility(q); !errors.Is(err, pt.ErrInvalidSetting) {
		tst.Errorf("invalid setting should fail with ErrInvalidSetting; got %v\n", err)
	}

	// water is not supported by the Twu equations
	e = newEngine(tst, pvt.Cubic{})
	res, err := e.Mobility(Query{Fluid: "H2", Rock: "Sandstone", Depth: 1, Tsurf: 20, EOS: "TWUPR"})
	if err != nil {
		tst.Errorf("Mobility failed: %v\n", err)
		return
	}
	if _, _, _, err = e.Buoyancy(res); !errors.Is(err, eos.ErrUnknownEOS) {
		tst.Errorf("water with TWUPR should fail with ErrUnknownEOS; got %v\n", err)
	}
	e.RefEOS = "PR78"
	if _, _, _, err = e.Buoyancy(res); err != nil {
		tst.Errorf("Buoyancy with RefEOS failed: %v\n", err)
	}
}

func Test_mob03(tst *testing.T) {

	chk.PrintTitle("mob03. idempotence")

	e := newEngine(tst, pvt.Cubic{})
	q := Query{Fluid: "H2", Rock: "Sandstone", Depth: 1.5, Tsurf: 20, EOS: "SRK"}
	r1, err := e.Mobility(q)
	if err != nil {
		tst.Errorf("Mobility failed: %v\n", err)
		return
	}
	r2, _ := e.Mobility(q)
	m1, m2 := r1.Migrating(), r2.Migrating()
	if m1.Vert.Nominal() != m2.Vert.Nominal() || m1.Vert.Std() != m2.Vert.Std() {
		tst.Errorf("results must be bit-identical: %v != %v\n", m1.Vert, m2.Vert)
	}
	if m1.Rho != m2.Rho || m1.Mu != m2.Mu {
		tst.Errorf("phase properties must be bit-identical\n")
	}
}

func Test_sweep01(tst *testing.T) {

	chk.PrintTitle("sweep01. hydrogen in sandstone")

	e := newEngine(tst, pvt.Cubic{})
	e.Workers = 3
	e.Verbose = chk.Verbose
	depths := []float64{0.5, 1, 1.5, 2, 2.5, 3, 4}
	ser, err := e.Sweep(context.Background(), Query{Fluid: "H2", Rock: "Sandstone", Tsurf: 20, EOS: "PR78"}, depths)
	if err != nil {
		tst.Errorf("Sweep failed: %v\n", err)
		return
	}
	if len(ser.Failed()) > 0 {
		tst.Errorf("no point should fail: %v\n", ser.Failed()[0].Err)
		return
	}
	chk.Array(tst, "depths", 1e-15, ser.Depths(), depths)
	if _, err = uuid.Parse(ser.ID); err != nil {
		tst.Errorf("sweep must have a valid identifier: %v\n", err)
	}
	for i, p := range ser.Points {
		m := p.Res.Migrating()
		chk.String(tst, p.Res.Phase.String(), "g")
		if m.Rho <= 0 || m.Rho > 50 {
			tst.Errorf("hydrogen density out of range: %g\n", m.Rho)
		}
		if p.RhoRef < 700 || p.RhoRef > 1100 {
			tst.Errorf("water density out of range: %g\n", p.RhoRef)
		}
		if p.Buoy <= 0 || p.Vel <= 0 {
			tst.Errorf("hydrogen must migrate upwards: buoy = %g, vel = %g\n", p.Buoy, p.Vel)
		}
		chk.Float64(tst, "vel", 1e-15*math.Abs(p.Vel), p.Vel, m.Vert.Nominal()*p.Buoy*SecondsPerYear)
		chk.Float64(tst, "depth", 1e-15, p.Depth, depths[i])
	}

	vel, err := ser.Values("vmax")
	if err != nil {
		tst.Errorf("Values failed: %v\n", err)
		return
	}
	chk.Int(tst, "len(vel)", len(vel), len(depths))
	rho, _ := ser.Values("density")
	for i := 1; i < len(rho); i++ {
		if rho[i] <= rho[i-1] {
			tst.Errorf("hydrogen density must increase with depth\n")
		}
	}
	if _, err = ser.Values("pressure"); err == nil {
		tst.Errorf("Values(pressure) should fail\n")
	}
}

func Test_sweep02(tst *testing.T) {

	chk.PrintTitle("sweep02. errors")

	e := newEngine(tst, fakeService{})
	_, err := e.Sweep(context.Background(), Query{Fluid: "H2", Rock: "Granite", EOS: "PR78"}, []float64{1})
	if !errors.Is(err, litho.ErrUnknownLithology) {
		tst.Errorf("Granite should fail with ErrUnknownLithology; got %v\n", err)
	}

	// per-point errors
	ser, err := e.Sweep(context.Background(), Query{Fluid: "H2", Rock: "Shale", EOS: "PR78"}, []float64{1, 2})
	if err != nil {
		tst.Errorf("Sweep failed: %v\n", err)
		return
	}
	chk.Int(tst, "failed", len(ser.Failed()), 2)
	for _, p := range ser.Points {
		if !errors.Is(p.Err, litho.ErrUnsupportedClass) {
			tst.Errorf("Shale should fail with ErrUnsupportedClass; got %v\n", p.Err)
		}
	}
	chk.Int(tst, "len(depths)", len(ser.Depths()), 0)

	// cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ser, err = e.Sweep(ctx, Query{Fluid: "H2", Rock: "Sandstone", EOS: "PR78"}, []float64{1, 2})
	if err != nil {
		tst.Errorf("Sweep failed: %v\n", err)
		return
	}
	for _, p := range ser.Points {
		if !errors.Is(p.Err, context.Canceled) {
			tst.Errorf("cancelled sweep should report context.Canceled; got %v\n", p.Err)
		}
	}
}
