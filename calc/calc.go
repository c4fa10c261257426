// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package calc implements the Boyle's law calculator: given the initial state
// (p1, V1) and one of p2 or V2, it finds the other one
package calc

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/margauxf/divephysfun/ana"
)

// Tol is the relative tolerance used to compare p1・V1 with p2・V2
const Tol = 1e-9

// Status tells what Solve did with a form
type Status int

// statuses
const (
	MissingInput      Status = iota // neither p2 nor V2 were given
	SolvedVolume                    // V2 computed from p2
	SolvedPressure                  // p2 computed from V2
	Consistent                      // both given and p1・V1 == p2・V2
	InconsistentInput               // both given and p1・V1 != p2・V2
)

var statusNames = []string{"missing input", "solved volume", "solved pressure", "consistent", "inconsistent input"}

// String returns the name of the status
func (o Status) String() string {
	if o < 0 || int(o) >= len(statusNames) {
		return io.Sf("status(%d)", int(o))
	}
	return statusNames[o]
}

// Form holds the calculator input. Nil P2 or V2 means the value was not entered
type Form struct {
	P1 float64  // initial pressure [bar]
	V1 float64  // initial volume [L]
	P2 *float64 // final pressure [bar]
	V2 *float64 // final volume [L]
}

// Value returns a pointer to v; used to fill P2 or V2
func Value(v float64) *float64 { return &v }

// Result holds the solution of a form
type Result struct {
	Status    Status
	P1, V1    float64 // initial state
	P2, V2    float64 // final state
	Depth     float64 // depth corresponding to P2 (only when HasDepth)
	Elevation float64 // -Depth; negative below the surface
	HasDepth  bool    // Depth and Elevation were computed
}

// Soft tells whether the status is a guidance message for the user instead of a solution
func (o Result) Soft() bool {
	return o.Status == MissingInput || o.Status == InconsistentInput
}

// Message returns the user-facing message
func (o Result) Message() string {
	switch o.Status {
	case MissingInput:
		return "Enter a value for the final pressure or volume."
	case InconsistentInput:
		return io.Sf("There is an error with either p2 or V2: p1・V1 = %g but p2・V2 = %g.", o.P1*o.V1, o.P2*o.V2)
	case SolvedVolume:
		return io.Sf("The final volume is V2 = %g liters.", o.V2)
	case SolvedPressure:
		l := io.Sf("The corresponding pressure is p2 = %g bars.", o.P2)
		if o.HasDepth {
			l += io.Sf("\nThe corresponding depth is %g meters.", o.Elevation)
		}
		return l
	case Consistent:
		return io.Sf("p1・V1 = p2・V2 = %g.", o.P1*o.V1)
	}
	return o.Status.String()
}

// String returns the message
func (o Result) String() string { return o.Message() }

// Solve applies Boyle's law to the form. Missing and inconsistent inputs are reported
// in the result status and do not return an error. When V2 is given and the resulting
// p2 is below the surface pressure, the result holds p2 and ana.ErrInvalidPressure is returned
func Solve(form Form, regime ana.Regime) (res Result, err error) {
	if _, err = ana.ConversionFactor(regime); err != nil {
		return
	}
	res.P1, res.V1 = form.P1, form.V1
	k := form.P1 * form.V1
	switch {
	case form.P2 == nil && form.V2 == nil:
		res.Status = MissingInput

	case form.V2 == nil:
		res.Status = SolvedVolume
		res.P2 = *form.P2
		res.V2, err = ana.FinalVolume(form.V1, form.P1, res.P2)

	case form.P2 == nil:
		res.Status = SolvedPressure
		res.V2 = *form.V2
		res.P2, err = ana.FinalPressure(form.P1, form.V1, res.V2)
		if err != nil {
			return
		}
		res.Depth, err = ana.DepthFromPressure(res.P2, regime)
		if err != nil {
			return
		}
		if res.Depth != 0 {
			res.Elevation = -res.Depth
		}
		res.HasDepth = true

	default:
		res.P2, res.V2 = *form.P2, *form.V2
		res.Status = InconsistentInput
		if Equal(k, res.P2*res.V2) {
			res.Status = Consistent
		}
	}
	return
}

// Equal compares a and b with the relative tolerance Tol
func Equal(a, b float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return true
	}
	return math.Abs(a-b) <= Tol*scale
}
