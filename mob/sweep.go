// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mob

import (
	"context"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lodhia92/hydrogen-mobility/mdl/eos"
	"github.com/lodhia92/hydrogen-mobility/mdl/fluid"
	"github.com/lodhia92/hydrogen-mobility/mdl/litho"
)

// Point holds the results at one depth. Err is set if the evaluation failed
type Point struct {
	Depth  float64 // depth [km]
	Res    *Result // mobility results
	RhoRef float64 // density of the reference fluid [kg/m³]
	Buoy   float64 // buoyancy [Pa/m]
	Vel    float64 // vertical velocity [m/year]
	Err    error   // error of this evaluation
}

// Series holds the results of a depth sweep in the order of the input depths
type Series struct {
	ID     string  // identifier of the sweep
	Query  Query   // query; Depth is ignored
	Points []Point // results at each depth
}

// Sweep evaluates mobility, buoyancy and velocity at each depth. Evaluations run
// concurrently and failed depths are reported in Point.Err. The query is checked
// before starting and an error is returned if fluid, lithology or equation are unknown
func (o *Engine) Sweep(ctx context.Context, q Query, depths []float64) (ser *Series, err error) {
	if _, err = fluid.Get(q.Fluid); err != nil {
		return
	}
	if _, err = litho.Parse(q.Rock); err != nil {
		return
	}
	if _, err = eos.Parse(q.EOS); err != nil {
		return
	}
	ser = &Series{ID: uuid.NewString(), Query: q, Points: make([]Point, len(depths))}
	g, ctx := errgroup.WithContext(ctx)
	if o.Workers > 0 {
		g.SetLimit(o.Workers)
	}
	for i, z := range depths {
		i, z := i, z
		g.Go(func() error {
			p := &ser.Points[i]
			p.Depth = z
			if p.Err = ctx.Err(); p.Err != nil {
				return nil
			}
			qz := q
			qz.Depth = z
			p.Res, p.Err = o.Mobility(qz)
			if p.Err != nil {
				return nil
			}
			p.Buoy, p.Vel, p.RhoRef, p.Err = o.Buoyancy(p.Res)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if o.Verbose {
		for _, p := range ser.Points {
			p.Print(ser.ID, q)
		}
	}
	return
}

// Print prints the results of one depth
func (o Point) Print(id string, q Query) {
	io.Pf("------------ mobility results ------------------------------------\n")
	io.Pf("sweep = %s\n", id)
	io.Pf("fluid = %s, rock = %s, eos = %s\n", q.Fluid, q.Rock, q.EOS)
	if o.Err != nil {
		io.PfRed("depth = %g km: %v\n", o.Depth, o.Err)
		return
	}
	m := o.Res.Migrating()
	io.Pf("phase             = %v\n", o.Res.Phase)
	io.Pf("mobility          = %v m²/(Pa・s) at depth = %g km\n", m.Vert, o.Depth)
	io.Pf("reference density = %g kg/m³ at depth = %g km\n", o.RhoRef, o.Depth)
	io.Pf("fluid density     = %g kg/m³ at depth = %g km\n", m.Rho, o.Depth)
	io.Pforan("vertical velocity = %g m/year at depth = %g km\n", o.Vel, o.Depth)
}

// variables //////////////////////////////////////////////////////////////////////////////////////

// Variables holds the names of the variables that can be extracted from a series
var Variables = []string{"vmax", "mobility", "buoyancy", "density", "viscosity"}

// Depths returns the depths of all successful points
func (o *Series) Depths() (res []float64) {
	for _, p := range o.Points {
		if p.Err == nil {
			res = append(res, p.Depth)
		}
	}
	return
}

// Values returns a variable at all successful points
//  vmax      -- vertical velocity [m/year]
//  mobility  -- vertical mobility of the migrating phase [m²/(Pa・s)]
//  buoyancy  -- buoyancy [Pa/m]
//  density   -- density of the migrating phase [kg/m³]
//  viscosity -- viscosity of the migrating phase [Pa・s]
func (o *Series) Values(variable string) (res []float64, err error) {
	var get func(p *Point) float64
	switch strings.ToLower(variable) {
	case "vmax":
		get = func(p *Point) float64 { return p.Vel }
	case "mobility":
		get = func(p *Point) float64 { return p.Res.Migrating().Vert.Nominal() }
	case "buoyancy":
		get = func(p *Point) float64 { return p.Buoy }
	case "density":
		get = func(p *Point) float64 { return p.Res.Migrating().Rho }
	case "viscosity":
		get = func(p *Point) float64 { return p.Res.Migrating().Mu }
	default:
		return nil, chk.Err("variable %q is not available. options are %v", variable, Variables)
	}
	for i := range o.Points {
		if o.Points[i].Err == nil {
			res = append(res, get(&o.Points[i]))
		}
	}
	return
}

// Failed returns the points that failed
func (o *Series) Failed() (res []Point) {
	for _, p := range o.Points {
		if p.Err != nil {
			res = append(res, p)
		}
	}
	return
}
