// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/lodhia92/hydrogen-mobility/mdl/eos"
	"github.com/lodhia92/hydrogen-mobility/mdl/fluid"
	"github.com/lodhia92/hydrogen-mobility/mdl/visc"
)

func Test_pvt01(tst *testing.T) {

	chk.PrintTitle("pvt01. hydrogen and water")

	var svc Service = Cubic{}
	h2, _ := fluid.Get("H2")
	st, err := svc.Props(h2, eos.PR78, 318.15, 12.5e6)
	if err != nil {
		tst.Errorf("Props failed: %v\n", err)
		return
	}
	g, ok := st.(GasState)
	if !ok {
		tst.Errorf("hydrogen should be gas; got %v\n", st.Phase())
		return
	}
	io.Pforan("H2: %+v\n", g.G)
	chk.Float64(tst, "ρ(H2)", 1e-12, g.G.Rho, 2.016e-3/g.G.Vm)
	chk.Float64(tst, "μ(H2)", 1e-18, g.G.Mu, visc.LBC(318.15, g.G.Vm, h2))

	water, _ := fluid.Get("H2O")
	st, err = svc.Props(water, eos.PR78, 318.15, 12.5e6)
	if err != nil {
		tst.Errorf("Props failed: %v\n", err)
		return
	}
	l, ok := st.(LiquidState)
	if !ok {
		tst.Errorf("water should be liquid; got %v\n", st.Phase())
		return
	}
	io.Pforan("H2O: %+v\n", l.L)
	chk.Float64(tst, "μ(H2O)", 1e-18, l.L.Mu, visc.Water(318.15, l.L.Rho))

	// surface conditions
	st, err = svc.Props(water, eos.PR78, 293.15, 101325)
	if err != nil {
		tst.Errorf("Props failed: %v\n", err)
		return
	}
	tp, ok := st.(TwoPhaseState)
	if !ok {
		tst.Errorf("water at the surface should be l/g; got %v\n", st.Phase())
		return
	}
	io.Pforan("H2O surface: L=%+v G=%+v\n", tp.L, tp.G)
	if tp.L.Rho <= tp.G.Rho {
		tst.Errorf("liquid must be denser than gas\n")
	}
	chk.String(tst, tp.Phase().String(), "l/g")
}

func Test_pvt02(tst *testing.T) {

	chk.PrintTitle("pvt02. errors")

	water, _ := fluid.Get("H2O")
	if _, err := (Cubic{}).Props(water, eos.TWUPR, 318.15, 12.5e6); !errors.Is(err, eos.ErrUnknownEOS) {
		tst.Errorf("TWUPR for water should fail with ErrUnknownEOS; got %v\n", err)
	}
	h2, _ := fluid.Get("H2")
	if _, err := (Cubic{}).Props(h2, eos.Equation(99), 318.15, 12.5e6); !errors.Is(err, eos.ErrUnknownEOS) {
		tst.Errorf("invalid equation should fail with ErrUnknownEOS; got %v\n", err)
	}
	if _, err := (Cubic{}).Props(h2, eos.PR78, -1, 12.5e6); err == nil {
		tst.Errorf("negative temperature should fail\n")
	}
}

func Test_pvt03(tst *testing.T) {

	chk.PrintTitle("pvt03. linear liquid and mux")

	lin := NewLinear()
	water, _ := fluid.Get(fluid.Water)
	T, P := 318.15, 12.5e6
	st, err := lin.Props(water, eos.TWUPR, T, P)
	if err != nil {
		tst.Errorf("Props failed: %v\n", err)
		return
	}
	l, ok := st.(LiquidState)
	if !ok {
		tst.Errorf("water must be liquid; got %T\n", st)
		return
	}
	ρ := 1000 + 4.53e-7*(P-101325)
	io.Pforan("ρ = %v, μ = %v\n", l.L.Rho, l.L.Mu)
	chk.Float64(tst, "ρ", 1e-12, l.L.Rho, ρ)
	chk.Float64(tst, "Vm", 1e-18, l.L.Vm, 18.015e-3/ρ)
	chk.Float64(tst, "μ", 1e-15, l.L.Mu, visc.Water(T, ρ))

	// constant viscosity
	var cte Linear
	if err = cte.Init(append(lin.GetPrms(false)[:3], &dbf.P{N: "mu", V: 1e-3})); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	st, _ = cte.Props(water, eos.PR78, T, P)
	chk.Float64(tst, "μ", 1e-15, st.(LiquidState).L.Mu, 1e-3)
	if err = cte.Init([]*dbf.P{&dbf.P{N: "kbulk", V: 1}}); err == nil {
		tst.Errorf("Init with wrong parameter should fail\n")
	}

	// mux
	mux := Mux{Water: lin, Other: Cubic{}}
	st, err = mux.Props(water, eos.TWUPR, T, P)
	if err != nil {
		tst.Errorf("Props(water) failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ρ(mux)", 1e-12, st.(LiquidState).L.Rho, ρ)
	h2, _ := fluid.Get("H2")
	st, err = mux.Props(h2, eos.TWUPR, T, P)
	if err != nil {
		tst.Errorf("Props(H2) failed: %v\n", err)
		return
	}
	chk.String(tst, st.Phase().String(), "g")
}
