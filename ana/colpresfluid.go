// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for the pressure along liquid columns
// and for the volume of gas parcels following Boyle's law
package ana

import "fmt"

// Column computes the absolute pressure (p) along a liquid column using a linear model:
//
//    p(z) = pa + z / F      z ≥ 0 is the depth below the surface
//    z(p) = (p - pa) ・ F   p ≥ pa
//
// where pa is the surface (atmospheric) pressure and F is the conversion factor of the regime.
// The zero value is not usable: Init or NewColumn must be called first
type Column struct {
	Regime Regime  // liquid regime
	Fac    float64 // metres of liquid per bar
	Pa     float64 // pressure at the surface
}

// Init initialises this structure
func (o *Column) Init(regime Regime) (err error) {
	o.Fac, err = ConversionFactor(regime)
	if err != nil {
		return
	}
	o.Regime = regime
	if o.Regime == "" {
		o.Regime = DefaultRegime
	}
	o.Pa = SurfacePressure
	return
}

// NewColumn returns a new initialised column
func NewColumn(regime Regime) (o *Column, err error) {
	o = new(Column)
	err = o.Init(regime)
	return
}

// check returns an error if the column has not been initialised
func (o Column) check() error {
	if !(o.Fac > 0) {
		return fmt.Errorf("%w: column is not initialised; call Init or NewColumn", ErrUnsupportedRegime)
	}
	return nil
}

// Pressure computes the absolute pressure at depth z
func (o Column) Pressure(z float64) (float64, error) {
	if err := o.check(); err != nil {
		return 0, err
	}
	if !(z >= 0) {
		return 0, fmt.Errorf("%w: z = %g", ErrInvalidDepth, z)
	}
	return z/o.Fac + o.Pa, nil
}

// Depth computes the depth corresponding to the absolute pressure p
func (o Column) Depth(p float64) (float64, error) {
	if err := o.check(); err != nil {
		return 0, err
	}
	if !(p >= o.Pa) {
		return 0, fmt.Errorf("%w: p = %g", ErrInvalidPressure, p)
	}
	return (p - o.Pa) * o.Fac, nil
}

// Pressures computes pressures for all depths in Z. All values are checked before computing
func (o Column) Pressures(Z []float64) (P []float64, err error) {
	if err = o.check(); err != nil {
		return
	}
	for i, z := range Z {
		if !(z >= 0) {
			return nil, fmt.Errorf("%w: z[%d] = %g", ErrInvalidDepth, i, z)
		}
	}
	P = make([]float64, len(Z))
	for i, z := range Z {
		P[i] = z/o.Fac + o.Pa
	}
	return
}

// Depths computes depths for all pressures in P. All values are checked before computing
func (o Column) Depths(P []float64) (Z []float64, err error) {
	if err = o.check(); err != nil {
		return
	}
	for i, p := range P {
		if !(p >= o.Pa) {
			return nil, fmt.Errorf("%w: p[%d] = %g", ErrInvalidPressure, i, p)
		}
	}
	Z = make([]float64, len(P))
	for i, p := range P {
		Z[i] = (p - o.Pa) * o.Fac
	}
	return
}

// PressureFromDepth returns z/F + 1 for the given regime
func PressureFromDepth(z float64, regime Regime) (float64, error) {
	col, err := NewColumn(regime)
	if err != nil {
		return 0, err
	}
	return col.Pressure(z)
}

// DepthFromPressure returns (p - 1)・F for the given regime
func DepthFromPressure(p float64, regime Regime) (float64, error) {
	col, err := NewColumn(regime)
	if err != nil {
		return 0, err
	}
	return col.Depth(p)
}

// PressuresFromDepths is the element-wise version of PressureFromDepth
func PressuresFromDepths(Z []float64, regime Regime) ([]float64, error) {
	col, err := NewColumn(regime)
	if err != nil {
		return nil, err
	}
	return col.Pressures(Z)
}

// DepthsFromPressures is the element-wise version of DepthFromPressure
func DepthsFromPressures(P []float64, regime Regime) ([]float64, error) {
	col, err := NewColumn(regime)
	if err != nil {
		return nil, err
	}
	return col.Depths(P)
}
