// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"fmt"
	"strings"
)

// Regime selects the liquid in the column
type Regime string

// liquid regimes
const (
	Seawater   Regime = "seawater"
	Freshwater Regime = "freshwater"

	DefaultRegime = Seawater
)

// SurfacePressure is the absolute pressure at the surface [bar]
const SurfacePressure = 1.0

// Regimes lists all supported regimes
var Regimes = []Regime{Seawater, Freshwater}

// ParseRegime converts a user string into a Regime. The empty string gives DefaultRegime
func ParseRegime(s string) (Regime, error) {
	r := Regime(strings.ToLower(strings.TrimSpace(s)))
	if r == "" {
		return DefaultRegime, nil
	}
	if _, err := ConversionFactor(r); err != nil {
		return "", err
	}
	return r, nil
}

// ConversionFactor returns the metres of liquid corresponding to one bar of pressure
//   seawater   → 10
//   freshwater → 10.2
func ConversionFactor(regime Regime) (float64, error) {
	switch regime {
	case Seawater, "":
		return 10, nil
	case Freshwater:
		return 10.2, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedRegime, string(regime))
}

// String returns the regime name
func (o Regime) String() string {
	if o == "" {
		return string(DefaultRegime)
	}
	return string(o)
}
