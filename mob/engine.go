// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mob implements the mobility engine: effective mobility, buoyancy and migration
// velocity of a fluid in a sedimentary rock at depth
//  References:
//   [1] Lodhia BH and Clark SR (2022) Computation of vertical fluid mobility of CO2, methane,
//       hydrogen and hydrocarbons through sedimentary basins using pressure-temperature
//       gradients. Journal of Natural Gas Science and Engineering
package mob

import (
	"errors"
	"math"
	"runtime"

	"github.com/cpmech/gosl/chk"

	"github.com/lodhia92/hydrogen-mobility/mdl/conduct"
	"github.com/lodhia92/hydrogen-mobility/mdl/eos"
	"github.com/lodhia92/hydrogen-mobility/mdl/fluid"
	"github.com/lodhia92/hydrogen-mobility/mdl/litho"
	"github.com/lodhia92/hydrogen-mobility/mdl/perm"
	"github.com/lodhia92/hydrogen-mobility/mdl/por"
	"github.com/lodhia92/hydrogen-mobility/mdl/pt"
	"github.com/lodhia92/hydrogen-mobility/mdl/pvt"
	"github.com/lodhia92/hydrogen-mobility/mdl/retention"
	"github.com/lodhia92/hydrogen-mobility/unc"
)

// ErrInvalidDepth is returned for negative depths
var ErrInvalidDepth = errors.New("invalid depth")

// constants
const (
	DefaultGrav    = 9.08665 // gravity of the published results [m/s²]
	SecondsPerYear = 3.154e7 // [s/year]
)

// Engine computes mobilities with an injected lithology table and phase service
type Engine struct {
	Tab     *litho.Table // lithology database
	Svc     pvt.Service  // phase behaviour service
	Setting pt.Setting   // geological setting used when a query does not set one
	Grav    float64      // gravity acceleration [m/s²]
	Ref     string       // reference (displaced) fluid
	RefEOS  string       // equation of state of the reference fluid; empty means the query's
	Workers int          // maximum number of concurrent evaluations in Sweep
	Verbose bool         // print results of each depth in Sweep
}

// New returns a new engine with default settings: typical geological setting, reference
// fluid H2O and the gravity of the published results
func New(tab *litho.Table, svc pvt.Service) *Engine {
	return &Engine{
		Tab:     tab,
		Svc:     svc,
		Setting: pt.Typical,
		Grav:    DefaultGrav,
		Ref:     fluid.Water,
		Workers: runtime.NumCPU(),
	}
}

// Query defines one evaluation
type Query struct {
	Fluid   string     // fluid name; e.g. "H2"
	Rock    string     // lithology name; e.g. "Sandstone"
	Depth   float64    // depth [km]
	Tsurf   float64    // surface temperature [°C]
	EOS     string     // equation of state; e.g. "PR78"
	Setting pt.Setting // geological setting; zero means the engine's setting
}

// PhaseMob holds the mobility of one phase
type PhaseMob struct {
	Vert  unc.Quantity // vertical mobility [m²/(Pa・s)]
	Horiz unc.Quantity // horizontal mobility [m²/(Pa・s)]
	Mu    float64      // viscosity [Pa・s]
	Rho   float64      // density [kg/m³]
	Vm    float64      // molar volume [m³/mol]
}

// Result holds the results of one evaluation. Liq and Gas are nil when the phase is absent
type Result struct {
	Fluid   string       // fluid name
	Rock    litho.Rock   // lithology
	EOS     eos.Equation // equation of state
	Setting pt.Setting   // geological setting
	Depth   float64      // depth [km]
	Tsurf   float64      // surface temperature [°C]
	Phase   eos.Phase    // phases present
	T       float64      // temperature [K]
	P       float64      // pressure [Pa]
	Phi     float64      // porosity [-]
	LogKv   float64      // log10 vertical permeability [mD]
	LogKh   float64      // log10 horizontal permeability [mD]
	Sw      unc.Quantity // connate water saturation
	Kro     unc.Quantity // oil relative permeability
	Kveff   unc.Quantity // effective vertical permeability [m²]
	Kheff   unc.Quantity // effective horizontal permeability [m²]
	Liq     *PhaseMob    // liquid phase
	Gas     *PhaseMob    // gas phase
}

// Migrating returns the phase used for buoyancy: liquid when present, gas otherwise
func (o *Result) Migrating() *PhaseMob {
	if o.Liq != nil {
		return o.Liq
	}
	return o.Gas
}

// Mobility computes the mobility of a fluid
func (o *Engine) Mobility(q Query) (res *Result, err error) {

	// input
	f, err := fluid.Get(q.Fluid)
	if err != nil {
		return
	}
	r, err := litho.Parse(q.Rock)
	if err != nil {
		return
	}
	eq, err := eos.Parse(q.EOS)
	if err != nil {
		return
	}
	if q.Depth < 0 || math.IsNaN(q.Depth) {
		return nil, chk.Err("%w: depth must be non-negative. z = %g km is incorrect", ErrInvalidDepth, q.Depth)
	}
	setting := q.Setting
	if setting == 0 {
		setting = o.Setting
	}
	if err = setting.Check(); err != nil {
		return
	}
	res = &Result{Fluid: f.Name, Rock: r, EOS: eq, Setting: setting, Depth: q.Depth, Tsurf: q.Tsurf}

	// porosity and permeability
	res.Phi, err = por.Porosity(o.Tab, r, q.Depth)
	if err != nil {
		return nil, err
	}
	res.LogKv, res.LogKh, err = perm.Permeability(o.Tab, r, res.Phi)
	if err != nil {
		return nil, err
	}

	// saturation and relative permeabilities at S = Sw
	_, _, res.Sw, err = retention.ConnateSw(o.Tab, r, q.Depth)
	if err != nil {
		return nil, err
	}
	_, _, krow, err := conduct.RelPerm(r, conduct.WaterLiquid, res.Sw)
	if err != nil {
		return nil, err
	}
	_, _, krog, err := conduct.RelPerm(r, conduct.VaporLiquid, res.Sw)
	if err != nil {
		return nil, err
	}

	// krow and krog enter the product as independent quantities
	res.Kro = conduct.Kro(independent(krow), independent(krog))
	kro := independent(res.Kro)
	res.Kveff = kro.Scale(perm.ToSI(res.LogKv))
	res.Kheff = kro.Scale(perm.ToSI(res.LogKh))

	// phases
	var Pmpa float64
	res.T, Pmpa, err = setting.Compute(q.Depth, q.Tsurf)
	if err != nil {
		return nil, err
	}
	res.P = Pmpa * 1e6
	st, err := o.Svc.Props(f, eq, res.T, res.P)
	if err != nil {
		if !errors.Is(err, eos.ErrUnknownEOS) && !errors.Is(err, pvt.ErrService) {
			err = chk.Err("%w: %v", pvt.ErrService, err)
		}
		return nil, err
	}
	res.Phase = st.Phase()
	switch s := st.(type) {
	case pvt.LiquidState:
		res.Liq = res.phaseMob(s.L)
	case pvt.GasState:
		res.Gas = res.phaseMob(s.G)
	case pvt.TwoPhaseState:
		res.Liq = res.phaseMob(s.L)
		res.Gas = res.phaseMob(s.G)
	default:
		return nil, chk.Err("%w: unknown state %T", pvt.ErrService, st)
	}
	return
}

// Buoyancy computes the buoyancy [Pa/m] and vertical velocity [m/year] of an evaluated
// fluid relative to the reference fluid at the same lithology, depth, surface temperature,
// setting and equation of state
//   buoy = g・(ρref - ρ)
//   vel  = mob_v・buoy・SecondsPerYear
func (o *Engine) Buoyancy(res *Result) (buoy, vel, ρref float64, err error) {
	refEOS := o.RefEOS
	if refEOS == "" {
		refEOS = res.EOS.String()
	}
	ref, err := o.Mobility(Query{Fluid: o.Ref, Rock: res.Rock.String(), Depth: res.Depth, Tsurf: res.Tsurf, EOS: refEOS, Setting: res.Setting})
	if err != nil {
		return
	}
	m := res.Migrating()
	ρref = ref.Migrating().Rho
	buoy = o.Grav * (ρref - m.Rho)
	vel = m.Vert.Nominal() * buoy * SecondsPerYear
	return
}

// phaseMob computes the mobilities of a phase
func (o *Result) phaseMob(p pvt.PhaseProps) *PhaseMob {
	return &PhaseMob{
		Vert:  o.Kveff.Div(unc.Const(p.Mu)),
		Horiz: o.Kheff.Div(unc.Const(p.Mu)),
		Mu:    p.Mu,
		Rho:   p.Rho,
		Vm:    p.Vm,
	}
}

// independent returns a new independent variable with the same value and uncertainty
func independent(x unc.Quantity) unc.Quantity {
	return unc.New(x.Nominal(), x.Std())
}
