// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/margauxf/divephysfun/ana"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_calc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("calc01. final pressure given: compute V2")

	res, err := Solve(Form{P1: 1, V1: 1, P2: Value(2)}, ana.Seawater)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", res)
	chk.String(tst, res.Status.String(), SolvedVolume.String())
	chk.Float64(tst, "V2", 1e-17, res.V2, 0.5)
	chk.String(tst, res.Message(), "The final volume is V2 = 0.5 liters.")
	if res.Soft() {
		tst.Errorf("solved volume is not a soft status\n")
	}
}

func Test_calc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("calc02. final volume given: compute p2 and depth")

	res, err := Solve(Form{P1: 1, V1: 2, V2: Value(0.5)}, ana.Seawater)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", res)
	chk.String(tst, res.Status.String(), SolvedPressure.String())
	chk.Float64(tst, "p2", 1e-17, res.P2, 4)
	chk.Float64(tst, "depth", 1e-17, res.Depth, 30)
	chk.Float64(tst, "elevation", 1e-17, res.Elevation, -30)
	chk.String(tst, res.Message(), "The corresponding pressure is p2 = 4 bars.\nThe corresponding depth is -30 meters.")

	res, err = Solve(Form{P1: 1, V1: 1, V2: Value(1)}, ana.Seawater)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, res.Message(), "The corresponding pressure is p2 = 1 bars.\nThe corresponding depth is 0 meters.")

	res, err = Solve(Form{P1: 1, V1: 2, V2: Value(1)}, ana.Freshwater)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "depth freshwater", 1e-15, res.Depth, 10.2)
}

func Test_calc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("calc03. p2 below the surface pressure")

	res, err := Solve(Form{P1: 1, V1: 1, V2: Value(2)}, ana.Seawater)
	if !errors.Is(err, ana.ErrInvalidPressure) {
		tst.Errorf("ErrInvalidPressure was expected. err = %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
	chk.Float64(tst, "p2", 1e-17, res.P2, 0.5)
	if res.HasDepth {
		tst.Errorf("depth must not be computed\n")
	}
}

func Test_calc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("calc04. soft conditions")

	res, err := Solve(Form{P1: 1, V1: 1}, ana.Seawater)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, res.Status.String(), MissingInput.String())
	chk.String(tst, res.Message(), "Enter a value for the final pressure or volume.")
	if !res.Soft() {
		tst.Errorf("missing input is a soft status\n")
	}

	res, err = Solve(Form{P1: 1, V1: 1, P2: Value(2), V2: Value(2)}, ana.Seawater)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", res)
	chk.String(tst, res.Status.String(), InconsistentInput.String())
	if !res.Soft() {
		tst.Errorf("inconsistent input is a soft status\n")
	}

	// 0.1・3 != 0.3 exactly
	res, err = Solve(Form{P1: 0.1, V1: 3, P2: Value(0.3), V2: Value(1)}, ana.Seawater)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, res.Status.String(), Consistent.String())
}

func Test_calc05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("calc05. zeros and regimes")

	_, err := Solve(Form{P1: 1, V1: 1, P2: Value(0)}, ana.Seawater)
	if !errors.Is(err, ana.ErrDivisionByZero) {
		tst.Errorf("ErrDivisionByZero was expected. err = %v\n", err)
	}

	_, err = Solve(Form{P1: 1, V1: 1, V2: Value(0)}, ana.Seawater)
	if !errors.Is(err, ana.ErrDivisionByZero) {
		tst.Errorf("ErrDivisionByZero was expected. err = %v\n", err)
	}

	_, err = Solve(Form{P1: 3, V1: 1, V2: Value(1)}, "swamp")
	if !errors.Is(err, ana.ErrUnsupportedRegime) {
		tst.Errorf("ErrUnsupportedRegime was expected. err = %v\n", err)
	}

	if !Equal(0, 0) {
		tst.Errorf("0 == 0\n")
	}
	if Equal(1, 1+1e-6) {
		tst.Errorf("1 != 1+1e-6\n")
	}
	chk.String(tst, Status(42).String(), "status(42)")
}

func Test_calc06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("calc06. unsupported regime on every branch")

	forms := []Form{
		{P1: 1, V1: 1},
		{P1: 1, V1: 1, P2: Value(2)},
		{P1: 3, V1: 1, V2: Value(1)},
		{P1: 1, V1: 1, P2: Value(2), V2: Value(0.5)},
	}
	for i, form := range forms {
		_, err := Solve(form, "swamp")
		if !errors.Is(err, ana.ErrUnsupportedRegime) {
			tst.Errorf("form %d: ErrUnsupportedRegime was expected. err = %v\n", i, err)
		}
	}

	// the empty regime is seawater
	res, err := Solve(Form{P1: 1, V1: 1, P2: Value(2)}, "")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "V2", 1e-15, res.V2, 0.5)
}
