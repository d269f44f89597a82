// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/cpmech/gosl/io"

	"github.com/lodhia92/hydrogen-mobility/mob"
)

// columns of report and CSV files
var columns = []string{"depth", "phase", "density", "buoyancy", "viscosity", "mobility", "mobility_std", "vmax"}

// Report returns a table with the results of a sweep. Viscosities are given in 10⁻⁵ Pa・s.
// Failed depths are listed after the table
func Report(ser *mob.Series) string {
	var b bytes.Buffer
	q := ser.Query
	if ser.ID != "" {
		io.Ff(&b, "sweep = %s\n", ser.ID)
	}
	io.Ff(&b, "fluid = %s, rock = %s, eos = %s, tsurf = %g °C\n", q.Fluid, q.Rock, q.EOS, q.Tsurf)
	io.Ff(&b, "%8s%8s%14s%14s%14s%14s%14s\n", "depth", "phase", "density", "buoyancy", "visc×1e-5", "mobility", "vmax")
	io.Ff(&b, "%8s%8s%14s%14s%14s%14s%14s\n", "[km]", "", "[kg/m³]", "[Pa/m]", "[Pa・s]", "[m²/(Pa・s)]", "[m/year]")
	for _, p := range ser.Points {
		if p.Err != nil {
			continue
		}
		m := p.Res.Migrating()
		io.Ff(&b, "%8g%8v%14.6g%14.6g%14.6g%14.6g%14.6g\n", p.Depth, p.Res.Phase, m.Rho, p.Buoy, m.Mu/1e-5, m.Vert.Nominal(), p.Vel)
	}
	for _, p := range ser.Failed() {
		io.Ff(&b, "depth = %g km failed: %v\n", p.Depth, p.Err)
	}
	return b.String()
}

// Csv returns the CSV representation of the successful points of a sweep
func Csv(ser *mob.Series) (buf *bytes.Buffer, err error) {
	buf = new(bytes.Buffer)
	w := csv.NewWriter(buf)
	if err = w.Write(columns); err != nil {
		return
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, p := range ser.Points {
		if p.Err != nil {
			continue
		}
		m := p.Res.Migrating()
		rec := []string{f(p.Depth), p.Res.Phase.String(), f(m.Rho), f(p.Buoy), f(m.Mu), f(m.Vert.Nominal()), f(m.Vert.Std()), f(p.Vel)}
		if err = w.Write(rec); err != nil {
			return
		}
	}
	w.Flush()
	err = w.Error()
	return
}

// SaveCsv saves the results of a sweep to <dirout>/<fnkey>.csv
func SaveCsv(ser *mob.Series, dirout, fnkey string, verbose bool) (err error) {
	buf, err := Csv(ser)
	if err != nil {
		return
	}
	if verbose {
		io.WriteFileVD(dirout, fnkey+".csv", buf)
		return
	}
	io.WriteFileD(dirout, fnkey+".csv", buf)
	return
}
