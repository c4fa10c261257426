// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_boyle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("boyle01. final volume")

	V1, err := FinalVolume(1, 1, 2)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "V1", 1e-17, V1, 0.5)

	p1, err := FinalPressure(1, 1, 2)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "p1", 1e-17, p1, 0.5)

	_, err = FinalVolume(1, 1, 0)
	checkErr(tst, "p1 = 0", err, ErrDivisionByZero)

	_, err = FinalPressure(1, 1, 0)
	checkErr(tst, "V1 = 0", err, ErrDivisionByZero)

	_, err = FinalVolumes(1, 1, []float64{1, 2, 0})
	checkErr(tst, "P1 with zero", err, ErrDivisionByZero)
}

func Test_boyle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("boyle02. p・V is constant")

	for _, V0 := range []float64{0.1, 1, 12, 250} {
		for _, p0 := range []float64{0.3, 1, 4.7} {
			for _, p1 := range utl.LinSpace(0.1, 30, 37) {
				V1, err := FinalVolume(V0, p0, p1)
				if err != nil {
					tst.Errorf("test failed: %v\n", err)
					return
				}
				k0 := V0 * p0
				if math.Abs(V1*p1-k0) > 1e-12*k0 {
					tst.Errorf("p1・V1 = %g != p0・V0 = %g\n", V1*p1, k0)
					return
				}
			}
		}
	}
}

func Test_disk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disk01. equivalent disk area")

	A, err := EquivalentDiskArea(0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A(0)", 1e-17, A, 0)

	// V = 4π/3 → r = 1 → A = 2π
	A, err = EquivalentDiskArea(4 * math.Pi / 3)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A(4π/3)", 1e-14, A, 2*math.Pi)

	r, err := SphereRadius(36 * math.Pi)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "r(36π)", 1e-14, r, 3)

	_, err = EquivalentDiskArea(-1)
	checkErr(tst, "V = -1", err, ErrInvalidVolume)

	_, err = EquivalentDiskAreas([]float64{1, -1e-3})
	checkErr(tst, "V with negative", err, ErrInvalidVolume)
}

func Test_disk02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disk02. monotonic")

	V := utl.LinSpace(0, 100, 201)
	A, err := EquivalentDiskAreas(V)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for i := 1; i < len(A); i++ {
		if A[i] <= A[i-1] {
			tst.Errorf("area is not increasing: A(%g) = %g <= A(%g) = %g\n", V[i], A[i], V[i-1], A[i-1])
			return
		}
	}
	io.Pforan("A(100) = %v\n", A[len(A)-1])
}
