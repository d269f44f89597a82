// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package unc implements scalar quantities with standard uncertainties propagated by
// first-order (linear) rules. Each quantity keeps its sensitivities with respect to
// the independent variables it was computed from; thus, sub-expressions sharing the
// same operands are correlated, whereas independently created variables are not.
//
//   σ(f)² = Σ_i (∂f/∂x_i ・ σ_i)²
//
package unc

import (
	"math"
	"sync/atomic"

	"github.com/cpmech/gosl/io"
)

// lastId holds the identifier of the last independent variable
var lastId uint64

// term holds the contribution ∂f/∂x_i・σ_i of independent variable i
type term struct {
	id uint64  // identifier of independent variable
	c  float64 // contribution
}

// Quantity holds a nominal value and its contributions from independent variables
//  Note: terms are kept sorted by id; thus arithmetic is deterministic
type Quantity struct {
	v     float64 // nominal value
	terms []term  // contributions from independent variables
}

// New returns a new independent variable with nominal value v and standard uncertainty s
func New(v, s float64) Quantity {
	if s == 0 {
		return Quantity{v: v}
	}
	return Quantity{v: v, terms: []term{{atomic.AddUint64(&lastId, 1), math.Abs(s)}}}
}

// Const returns an exact quantity
func Const(v float64) Quantity {
	return Quantity{v: v}
}

// Nominal returns the nominal value
func (o Quantity) Nominal() float64 {
	return o.v
}

// Std returns the standard uncertainty
func (o Quantity) Std() float64 {
	var sum float64
	for _, t := range o.terms {
		sum += t.c * t.c
	}
	return math.Sqrt(sum)
}

// Exact tells whether the quantity has zero uncertainty
func (o Quantity) Exact() bool {
	return o.Std() == 0
}

// String returns a representation such as 0.25+/-0.01
func (o Quantity) String() string {
	return io.Sf("%g+/-%g", o.v, o.Std())
}

// operators //////////////////////////////////////////////////////////////////////////////////////

// Add returns o + b
func (o Quantity) Add(b Quantity) Quantity {
	return combine(o.v+b.v, o, 1, b, 1)
}

// Sub returns o - b
func (o Quantity) Sub(b Quantity) Quantity {
	return combine(o.v-b.v, o, 1, b, -1)
}

// Mul returns o・b
func (o Quantity) Mul(b Quantity) Quantity {
	return combine(o.v*b.v, o, b.v, b, o.v)
}

// Div returns o / b
func (o Quantity) Div(b Quantity) Quantity {
	return combine(o.v/b.v, o, 1/b.v, b, -o.v/(b.v*b.v))
}

// Pow returns o^b
func (o Quantity) Pow(b Quantity) Quantity {
	f := math.Pow(o.v, b.v)
	dfda := b.v * math.Pow(o.v, b.v-1)
	var dfdb float64
	if len(b.terms) > 0 {
		dfdb = math.Log(o.v) * f
	}
	return combine(f, o, dfda, b, dfdb)
}

// PowF returns o^n
func (o Quantity) PowF(n float64) Quantity {
	return scale(math.Pow(o.v, n), o, n*math.Pow(o.v, n-1))
}

// AddF returns o + a
func (o Quantity) AddF(a float64) Quantity {
	return scale(o.v+a, o, 1)
}

// Scale returns a・o
func (o Quantity) Scale(a float64) Quantity {
	return scale(a*o.v, o, a)
}

// Inv returns 1 / o
func (o Quantity) Inv() Quantity {
	return scale(1/o.v, o, -1/(o.v*o.v))
}

// DivF returns a / o
func DivF(a float64, o Quantity) Quantity {
	return scale(a/o.v, o, -a/(o.v*o.v))
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// scale returns a quantity with value f and contributions df/da・c_a
func scale(f float64, a Quantity, dfda float64) Quantity {
	if len(a.terms) == 0 {
		return Quantity{v: f}
	}
	res := Quantity{v: f, terms: make([]term, len(a.terms))}
	for i, t := range a.terms {
		res.terms[i] = term{t.id, dfda * t.c}
	}
	return res
}

// combine returns a quantity with value f and contributions df/da・c_a + df/db・c_b
func combine(f float64, a Quantity, dfda float64, b Quantity, dfdb float64) Quantity {
	res := Quantity{v: f}
	if len(a.terms)+len(b.terms) == 0 {
		return res
	}
	res.terms = make([]term, 0, len(a.terms)+len(b.terms))
	i, j := 0, 0
	for i < len(a.terms) || j < len(b.terms) {
		switch {
		case j == len(b.terms) || (i < len(a.terms) && a.terms[i].id < b.terms[j].id):
			res.terms = append(res.terms, term{a.terms[i].id, dfda * a.terms[i].c})
			i++
		case i == len(a.terms) || b.terms[j].id < a.terms[i].id:
			res.terms = append(res.terms, term{b.terms[j].id, dfdb * b.terms[j].c})
			j++
		default:
			res.terms = append(res.terms, term{a.terms[i].id, dfda*a.terms[i].c + dfdb*b.terms[j].c})
			i++
			j++
		}
	}
	return res
}
