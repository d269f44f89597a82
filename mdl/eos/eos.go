// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements cubic equations of state for pure fluids and mixtures
//   P = R・T/(V - b) - θ/(V² + δ・V + ε)
//  References:
//   [1] Poling BE, Prausnitz JM and O'Connell JP (2001) The Properties of Gases and
//       Liquids. 5th edition. McGraw-Hill, New York
//   [2] Twu CH, Coon JE and Cunningham JR (1995) A new generalized alpha function for a
//       cubic equation of state. Fluid Phase Equilibria, 105, 49-59
package eos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// errors
var (
	ErrUnknownEOS = errors.New("unknown equation of state")
	ErrNoRoot     = errors.New("equation of state has no admissible volume root")
)

// R is the universal gas constant [J/(mol・K)]
const R = 8.314462618

// Equation identifies a cubic equation of state
type Equation int

// equations of state
const (
	PR78   Equation = iota // Peng-Robinson (1978)
	TWUPR                  // Peng-Robinson with Twu (1995) alpha function
	SRK                    // Soave-Redlich-Kwong
	TWUSRK                 // Soave-Redlich-Kwong with Twu (1995) alpha function
	APISRK                 // API Soave-Redlich-Kwong
	RK                     // Redlich-Kwong
	VDW                    // van der Waals
	NumEquations
)

// eqNames holds the names of the equations of state
var eqNames = [NumEquations]string{"PR78", "TWUPR", "SRK", "TWUSRK", "APISRK", "RK", "VDW"}

// String returns the name of the equation of state
func (e Equation) String() string {
	if e < 0 || e >= NumEquations {
		return fmt.Sprintf("Equation(%d)", int(e))
	}
	return eqNames[e]
}

// Parse returns the equation of state with the given name; e.g. "PR78"
func Parse(name string) (Equation, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range eqNames {
		if n == key {
			return Equation(i), nil
		}
	}
	return -1, chk.Err("%w: %q", ErrUnknownEOS, name)
}

// Names returns the names of all equations of state
func Names() []string {
	res := make([]string, NumEquations)
	copy(res, eqNames[:])
	return res
}

// SupportsWater tells whether the equation can be used for pure water
func (e Equation) SupportsWater() bool {
	switch e {
	case PR78, SRK, RK, VDW:
		return true
	}
	return false
}

// CheckWater returns ErrUnknownEOS if the equation cannot be used for pure water
func (e Equation) CheckWater() error {
	if !e.SupportsWater() {
		return chk.Err("%w: %v is not available for water (use PR78, SRK, RK or VDW)", ErrUnknownEOS, e)
	}
	return nil
}

// Phase defines the phases found by the equation of state
type Phase int

// phases
const (
	Liquid   Phase = iota // liquid only
	Gas                   // gas only
	TwoPhase              // liquid and gas
)

// String returns l, g or l/g
func (p Phase) String() string {
	switch p {
	case Liquid:
		return "l"
	case Gas:
		return "g"
	case TwoPhase:
		return "l/g"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Solution holds the phase and molar volumes at (T, P)
type Solution struct {
	Phase Phase   // phase
	Vl    float64 // molar volume of liquid [m³/mol]; zero if absent
	Vg    float64 // molar volume of gas [m³/mol]; zero if absent
}
