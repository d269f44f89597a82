// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pt implements the pressure-temperature depth model
package pt

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// ErrInvalidSetting is returned for geological settings not in 1..5
var ErrInvalidSetting = errors.New("invalid geological setting")

// constants
const (
	GeoGrad  = 25.0     // geothermal gradient [°C/km]
	Patm     = 0.101325 // atmospheric pressure [MPa]
	KelvinC0 = 273.15   // 0 °C in Kelvin
)

// Setting identifies a geological setting by its pressure-temperature gradient
type Setting int

// geological settings
const (
	CoolOverpressured Setting = iota + 1 // 2.5 MPa/K
	Overpressured                        // 1.0 MPa/K
	Typical                              // 0.5 MPa/K
	Hydrostatic                          // 0.3 MPa/K
	HotHydrostatic                       // 0.1 MPa/K
)

// settings data
var (
	gradients    = [...]float64{0, 2.5, 1.0, 0.5, 0.3, 0.1}
	settingNames = [...]string{"", "cool-overpressured", "overpressured", "typical", "hydrostatic", "hot-hydrostatic"}
)

// Valid tells whether s is one of the five settings
func (s Setting) Valid() bool {
	return s >= CoolOverpressured && s <= HotHydrostatic
}

// Check returns ErrInvalidSetting if s is not valid
func (s Setting) Check() error {
	if !s.Valid() {
		return chk.Err("%w: %d (must be 1 to 5)", ErrInvalidSetting, int(s))
	}
	return nil
}

// Gradient returns the pressure-temperature gradient [MPa/K]
func (s Setting) Gradient() (float64, error) {
	if err := s.Check(); err != nil {
		return 0, err
	}
	return gradients[s], nil
}

// String returns the name of the setting
func (s Setting) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Setting(%d)", int(s))
	}
	return settingNames[s]
}

// ParseSetting returns the setting with the given name, e.g. "typical"
func ParseSetting(name string) (Setting, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i := CoolOverpressured; i <= HotHydrostatic; i++ {
		if settingNames[i] == key {
			return i, nil
		}
	}
	return 0, chk.Err("%w: %q", ErrInvalidSetting, name)
}

// Calc computes temperature and pressure at depth
//  Input:
//   grad  -- pressure-temperature gradient [MPa/K]
//   depth -- depth [km]
//   tsurf -- surface temperature [°C]
//  Output:
//   T -- temperature [K]
//   P -- pressure [MPa]; never below Patm
func Calc(grad, depth, tsurf float64) (T, P float64) {
	temp := depth*GeoGrad + tsurf
	c := -tsurf * grad
	P = math.Max(grad*temp+c, Patm)
	T = temp + KelvinC0
	return
}

// Compute computes temperature [K] and pressure [MPa] for a geological setting
func (s Setting) Compute(depth, tsurf float64) (T, P float64, err error) {
	grad, err := s.Gradient()
	if err != nil {
		return
	}
	T, P = Calc(grad, depth, tsurf)
	return
}
