// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the visualisation of gas parcels along the depth slider:
// marker scales, a terminal gauge, an HTML report and figures
package out

import (
	"math"

	"github.com/margauxf/divephysfun/ana"
)

// colours
const (
	ColorTrack  = "#29B5E8" // slider track
	ColorBubble = "#09A9C8" // gas parcel
	ColorDeep   = "#001F3D" // deep water
	ColorThumb  = "orange"  // slider thumb
)

// SizeScale maps disk areas onto marker sizes (areas in px²). The scaled area
// Factor・A is mapped linearly from [Factor・Amin, Factor・Amax] onto [Factor, 100・Factor]
type SizeScale struct {
	Factor float64 // scale factor
	Dmin   float64 // domain: smallest scaled area
	Dmax   float64 // domain: largest scaled area
	Rmin   float64 // range: smallest size
	Rmax   float64 // range: largest size
}

// NewSizeScale returns the scale covering all snapshots in prof
func NewSizeScale(prof *ana.Profile, factor float64) (o SizeScale) {
	o.Factor = factor
	o.Rmin, o.Rmax = factor, 100*factor
	A := prof.Areas()
	if len(A) == 0 {
		return
	}
	amin, amax := A[0], A[0]
	for _, a := range A {
		amin = math.Min(amin, a)
		amax = math.Max(amax, a)
	}
	o.Dmin, o.Dmax = factor*amin, factor*amax
	return
}

// Size returns the marker size corresponding to the disk area A
func (o SizeScale) Size(A float64) float64 {
	if o.Dmax == o.Dmin {
		return o.Rmax
	}
	return o.Rmin + (o.Factor*A-o.Dmin)*(o.Rmax-o.Rmin)/(o.Dmax-o.Dmin)
}

// Radius returns the radius of a circular marker with the given size (area)
func Radius(size float64) float64 {
	if size <= 0 {
		return 0
	}
	return math.Sqrt(size / math.Pi)
}
