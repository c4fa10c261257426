// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Snapshot holds the state of a gas parcel at depth Z
type Snapshot struct {
	Z float64 // depth below the surface [m]
	P float64 // absolute pressure [bar]
	V float64 // volume [L]
	A float64 // equivalent disk area
}

// String returns a row with the snapshot values
func (o Snapshot) String() string {
	return io.Sf("%8.2f%10.4f%10.4f%10.4f", o.Z, o.P, o.V, o.A)
}

// Descend computes the snapshot at depth z of a gas parcel that holds V0 at the surface
func Descend(V0, z float64, regime Regime) (s Snapshot, err error) {
	col, err := NewColumn(regime)
	if err != nil {
		return
	}
	return col.Descend(V0, z)
}

// Descend computes the snapshot at depth z of a gas parcel that holds V0 at the surface
func (o Column) Descend(V0, z float64) (s Snapshot, err error) {
	p0, err := o.Pressure(0)
	if err != nil {
		return
	}
	s.Z = z
	s.P, err = o.Pressure(z)
	if err != nil {
		return
	}
	s.V, err = FinalVolume(V0, p0, s.P)
	if err != nil {
		return
	}
	s.A, err = EquivalentDiskArea(s.V)
	return
}

// Profile holds snapshots of a gas parcel along a range of depths
type Profile struct {
	V0     float64    // volume at the surface
	Regime Regime     // liquid regime
	Snaps  []Snapshot // snapshots ordered as the depths
}

// NewProfile computes np snapshots equally spaced in [zmin, zmax]
func NewProfile(V0, zmin, zmax float64, np int, regime Regime) (o *Profile, err error) {
	if np < 2 {
		return nil, chk.Err("profile needs at least 2 points. np = %d is invalid", np)
	}
	col, err := NewColumn(regime)
	if err != nil {
		return
	}
	Z := utl.LinSpace(zmin, zmax, np)
	P, err := col.Pressures(Z)
	if err != nil {
		return
	}
	V, err := FinalVolumes(V0, col.Pa, P)
	if err != nil {
		return
	}
	A, err := EquivalentDiskAreas(V)
	if err != nil {
		return
	}
	o = &Profile{V0: V0, Regime: col.Regime, Snaps: make([]Snapshot, np)}
	for i := range Z {
		o.Snaps[i] = Snapshot{Z[i], P[i], V[i], A[i]}
	}
	return
}

// Depths returns all depths
func (o Profile) Depths() []float64 { return o.column(func(s Snapshot) float64 { return s.Z }) }

// Pressures returns all pressures
func (o Profile) Pressures() []float64 { return o.column(func(s Snapshot) float64 { return s.P }) }

// Volumes returns all volumes
func (o Profile) Volumes() []float64 { return o.column(func(s Snapshot) float64 { return s.V }) }

// Areas returns all disk areas
func (o Profile) Areas() []float64 { return o.column(func(s Snapshot) float64 { return s.A }) }

func (o Profile) column(get func(Snapshot) float64) []float64 {
	res := make([]float64, len(o.Snaps))
	for i, s := range o.Snaps {
		res[i] = get(s)
	}
	return res
}

// String returns a table with all snapshots
func (o Profile) String() string {
	l := io.Sf("%8s%10s%10s%10s\n", "z", "p", "V", "A")
	for _, s := range o.Snaps {
		l += s.String() + "\n"
	}
	return l
}
