// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/lodhia92/hydrogen-mobility/mob"
)

// Plot plots a variable against depth with the depth axis pointing downwards and saves
// the figure to <dirout>/<fnkey>_<variable>
func Plot(ser *mob.Series, variable, dirout, fnkey string, args *plt.A) (err error) {
	key := strings.ToLower(variable)
	Y, err := ser.Values(key)
	if err != nil {
		return
	}
	Z := ser.Depths()
	if len(Z) == 0 {
		return chk.Err("there are no results to plot\n")
	}
	if args == nil {
		args = &plt.A{C: "b", Ls: "-", M: "o", L: ser.Query.Fluid + " in " + ser.Query.Rock}
	}
	plt.Reset(false, nil)
	plt.Plot(Y, Z, args)
	zmin, zmax := utl.MinMax(Z)
	plt.AxisYrange(zmax, zmin)
	plt.Gll(GetTexLabel(key, Units(key)), GetTexLabel("depth", Units("depth")), nil)
	plt.Save(dirout, fnkey+"_"+key)
	return
}
