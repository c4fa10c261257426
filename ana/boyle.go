// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"fmt"
	"math"
)

// Boyle's law for a fixed quantity of gas at constant temperature:
//
//    p0・V0 = p1・V1 = k

// FinalVolume computes V1 = V0・p0 / p1
func FinalVolume(V0, p0, p1 float64) (V1 float64, err error) {
	if p1 == 0 {
		return 0, fmt.Errorf("%w: final pressure is zero", ErrDivisionByZero)
	}
	return V0 * p0 / p1, nil
}

// FinalPressure computes p1 = p0・V0 / V1
func FinalPressure(p0, V0, V1 float64) (p1 float64, err error) {
	if V1 == 0 {
		return 0, fmt.Errorf("%w: final volume is zero", ErrDivisionByZero)
	}
	return p0 * V0 / V1, nil
}

// FinalVolumes computes V1 for each final pressure in P1
func FinalVolumes(V0, p0 float64, P1 []float64) (V1 []float64, err error) {
	V1 = make([]float64, len(P1))
	for i, p1 := range P1 {
		V1[i], err = FinalVolume(V0, p0, p1)
		if err != nil {
			return nil, fmt.Errorf("p1[%d]: %w", i, err)
		}
	}
	return
}

// SphereRadius returns the radius of a sphere with volume V
//   r = ∛(3V / 4π)
func SphereRadius(V float64) (float64, error) {
	if !(V >= 0) {
		return 0, fmt.Errorf("%w: V = %g", ErrInvalidVolume, V)
	}
	return math.Cbrt(3 * V / (4 * math.Pi)), nil
}

// EquivalentDiskArea treats V as the volume of a sphere and returns 2πr²
// (twice the area of its cross-section). Used to size bubbles in figures
func EquivalentDiskArea(V float64) (float64, error) {
	r, err := SphereRadius(V)
	if err != nil {
		return 0, err
	}
	return 2 * math.Pi * r * r, nil
}

// EquivalentDiskAreas is the element-wise version of EquivalentDiskArea
func EquivalentDiskAreas(V []float64) (A []float64, err error) {
	A = make([]float64, len(V))
	for i, v := range V {
		A[i], err = EquivalentDiskArea(v)
		if err != nil {
			return nil, fmt.Errorf("V[%d]: %w", i, err)
		}
	}
	return
}
