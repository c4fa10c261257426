// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_regime01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("regime01. conversion factors")

	fac, err := ConversionFactor(Seawater)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "seawater", 1e-17, fac, 10)

	fac, err = ConversionFactor(Freshwater)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "freshwater", 1e-17, fac, 10.2)

	fac, err = ConversionFactor("")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "default", 1e-17, fac, 10)

	for _, r := range []Regime{"brine", "Seawater ", "mercury"} {
		_, err = ConversionFactor(r)
		checkErr(tst, "regime "+string(r), err, ErrUnsupportedRegime)
	}
}

func Test_regime02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("regime02. parse regimes")

	for str, correct := range map[string]Regime{
		"":             Seawater,
		"seawater":     Seawater,
		" FreshWater ": Freshwater,
	} {
		r, err := ParseRegime(str)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.String(tst, string(r), string(correct))
	}

	_, err := ParseRegime("lake")
	checkErr(tst, "lake", err, ErrUnsupportedRegime)

	chk.String(tst, Regime("").String(), "seawater")
	chk.String(tst, Freshwater.String(), "freshwater")
}
