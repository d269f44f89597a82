// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package por implements porosity models for compacting sediments
//  References:
//   [1] Athy LF (1930) Density, porosity, and compaction of sedimentary rocks.
//       AAPG Bulletin, 14(1), 1-24
//   [2] Hantschel T and Kauerauf AI (2009) Fundamentals of Basin and Petroleum Systems
//       Modeling. Springer, Berlin. http://dx.doi.org/10.1007/978-3-540-72318-9
package por

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/lodhia92/hydrogen-mobility/mdl/litho"
)

// Athy implements Athy's law of porosity decay with depth
//   φ(z) = φ0・exp(-z/k) / 100
type Athy struct {
	Phi0 float64 // depositional porosity [%]
	K    float64 // compaction length [km]
}

// NewAthy returns a new Athy model with the compaction data of a lithology
func NewAthy(tab *litho.Table, r litho.Rock) (o *Athy, err error) {
	c, err := tab.Compaction(r)
	if err != nil {
		return
	}
	o = new(Athy)
	err = o.Init([]*dbf.P{
		&dbf.P{N: "phi0", V: c.Phi0},
		&dbf.P{N: "k", V: c.AthyKm},
	})
	return
}

// Init initialises model
func (o *Athy) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "phi0":
			o.Phi0 = p.V
		case "k", "athyk":
			o.K = p.V
		default:
			return chk.Err("athy: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Phi0 <= 0 || o.Phi0 > 100 {
		return chk.Err("athy: depositional porosity must be in (0, 100]. phi0 = %g is incorrect\n", o.Phi0)
	}
	if o.K <= 0 {
		return chk.Err("athy: compaction length must be positive. k = %g is incorrect\n", o.K)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Athy) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "phi0", V: 41},
			&dbf.P{N: "k", V: 3.23},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "phi0", V: o.Phi0},
		&dbf.P{N: "k", V: o.K},
	}
}

// Phi computes porosity [-] at depth z [km]
func (o Athy) Phi(z float64) float64 {
	return o.Phi0 * math.Exp(-z/o.K) / 100.0
}

// Porosity computes the porosity of a lithology at depth z [km]
func Porosity(tab *litho.Table, r litho.Rock, z float64) (float64, error) {
	mdl, err := NewAthy(tab, r)
	if err != nil {
		return 0, err
	}
	return mdl.Phi(z), nil
}
