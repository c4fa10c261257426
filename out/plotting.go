// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/margauxf/divephysfun/ana"
)

// PlotProfile plots pressure and volume along the profile. The position of snap is
// marked if snap is not nil. Depths are drawn as elevations (negative below the surface).
// The figure is saved to dirout/fnkey. Requires python and matplotlib
func PlotProfile(prof *ana.Profile, snap *ana.Snapshot, dirout, fnkey string) (err error) {

	// plt panics when python fails
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot plot profile: %v", r)
		}
	}()

	Z := prof.Depths()
	E := make([]float64, len(Z))
	for i, z := range Z {
		E[i] = -z
	}

	plt.Reset(false, nil)

	plt.Subplot(1, 2, 1)
	plt.Plot(prof.Pressures(), E, &plt.A{C: ColorTrack, Ls: "-"})
	if snap != nil {
		plt.Plot([]float64{snap.P}, []float64{-snap.Z}, &plt.A{C: ColorThumb, M: "s", Ls: "none"})
	}
	plt.Gll(Label("p", Units("p")), Label("elev", Units("elev")), nil)

	plt.Subplot(1, 2, 2)
	plt.Plot(prof.Volumes(), E, &plt.A{C: ColorBubble, Ls: "-"})
	if snap != nil {
		plt.Plot([]float64{snap.V}, []float64{-snap.Z}, &plt.A{C: ColorBubble, M: "o", Ls: "none"})
	}
	plt.Gll(Label("V", Units("V")), Label("elev", Units("elev")), nil)

	plt.Save(dirout, fnkey)
	return
}
