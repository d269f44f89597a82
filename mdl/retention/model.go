// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements models for the connate (irreducible) water saturation
//  References:
//   [1] Holmes M, Holmes A and Holmes D (2009) Relationship between porosity and water
//       saturation: methodology to distinguish mobile from capillary bound water.
//       AAPG Annual Convention, Denver, Colorado
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/lodhia92/hydrogen-mobility/unc"
)

// Model implements a connate water saturation model
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Sw(φ float64) unc.Quantity       // computes the water saturation at porosity φ
}

// New returns new saturation model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
