// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fluid01(tst *testing.T) {

	chk.PrintTitle("fluid01. database")

	names := Names()
	io.Pforan("fluids = %v\n", names)
	chk.Int(tst, "number of fluids", len(names), 12)
	for _, name := range names {
		f, err := Get(name)
		if err != nil {
			tst.Errorf("Get failed: %v\n", err)
			return
		}
		chk.String(tst, f.Name, name)
		if err = f.Check(); err != nil {
			tst.Errorf("%v\n", err)
			return
		}
	}

	w, _ := Get("H2O")
	if !w.IsWater() {
		tst.Errorf("H2O must be water\n")
	}
	h, _ := Get("H2")
	if h.IsWater() || !h.Pure() {
		tst.Errorf("H2 is a pure fluid other than water\n")
	}
	chk.Float64(tst, "H2 Tc", 1e-15, h.Comps[0].Tc, 33.18)
	chk.Float64(tst, "H2 Vc", 1e-15, h.Comps[0].Vc, 0.0642/1000)
	chk.Float64(tst, "H2O MW", 1e-15, w.MW(), 18.015)

	// each call returns a new fluid
	h.Zs[0] = 0.5
	h2, _ := Get("H2")
	chk.Float64(tst, "H2 z", 1e-15, h2.Zs[0], 1)

	if _, err := Get("Helium"); !errors.Is(err, ErrUnknownFluid) {
		tst.Errorf("Get(Helium) should fail with ErrUnknownFluid\n")
	}
}

func Test_fluid02(tst *testing.T) {

	chk.PrintTitle("fluid02. mixtures")

	// equal masses of two components
	mix, err := NewMixtureMass("test", []Component{CH4, CO2}, []float64{0.5, 0.5})
	if err != nil {
		tst.Errorf("NewMixtureMass failed: %v\n", err)
		return
	}
	n1, n2 := 0.5/CH4.MW, 0.5/CO2.MW
	chk.Array(tst, "zs", 1e-15, mix.Zs, []float64{n1 / (n1 + n2), n2 / (n1 + n2)})
	chk.Float64(tst, "MW", 1e-12, mix.MW(), 1/(n1+n2))

	g, _ := Get("Gas-mix7")
	chk.Int(tst, "Gas-mix7 components", g.NumComps(), 7)
	io.Pforan("Gas-mix7 zs = %v\n", g.Zs)

	if _, err = NewMixture("bad", []Component{CH4, CO2}, []float64{0.5, 0.4}); err == nil {
		tst.Errorf("mole fractions not summing to 1 should fail\n")
	}
	if _, err = NewMixtureMass("bad", []Component{CH4}, []float64{0.5, 0.5}); err == nil {
		tst.Errorf("wrong number of mass fractions should fail\n")
	}
}
