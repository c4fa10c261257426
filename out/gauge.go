// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	goio "io"
	"math"
	"os"
	"strings"

	"github.com/containerd/console"
	"github.com/cpmech/gosl/io"
	"github.com/margauxf/divephysfun/ana"
)

// Size holds the dimensions of a terminal
type Size struct{ X, Y int }

// DefaultTermSize is used when no terminal is attached
var DefaultTermSize = Size{80, 24}

// TermSize returns the size of the terminal attached to stdout, stderr or stdin
func TermSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		c, err := console.ConsoleFromFile(f)
		if err != nil {
			continue
		}
		ws, err := c.Size()
		if err != nil || ws.Width == 0 || ws.Height == 0 {
			continue
		}
		return Size{int(ws.Width), int(ws.Height)}
	}
	return DefaultTermSize
}

// Gauge draws the depth slider as text: a vertical axis with elevations from Zmax
// (top) to Zmin (bottom) and the gas parcel drawn at the elevation of the snapshot
type Gauge struct {
	Zmin  float64      // deepest elevation; e.g. -100
	Zmax  float64      // shallowest elevation; e.g. 0
	Snap  ana.Snapshot // gas parcel
	Scale SizeScale    // marker scale
	Term  Size         // terminal size
}

// Row returns the row of the axis corresponding to the elevation e
func (o Gauge) Row(e float64, nrows int) int {
	if nrows < 2 || o.Zmax == o.Zmin {
		return 0
	}
	t := (o.Zmax - e) / (o.Zmax - o.Zmin)
	t = math.Max(0, math.Min(1, t))
	return int(math.Round(t * float64(nrows-1)))
}

// Width returns the number of characters of the parcel (half width), from 1 to maxw
func (o Gauge) Width(maxw int) int {
	rmax := Radius(o.Scale.Rmax)
	if rmax == 0 {
		return 1
	}
	w := int(math.Round(Radius(o.Scale.Size(o.Snap.A)) / rmax * float64(maxw)))
	if w < 1 {
		w = 1
	}
	if w > maxw {
		w = maxw
	}
	return w
}

// Render writes the gauge to w
func (o Gauge) Render(w goio.Writer) (err error) {
	term := o.Term
	if term.X < 30 || term.Y < 8 {
		term = DefaultTermSize
	}
	nrows := term.Y - 4
	const axisw = 10
	maxw := (term.X - axisw - 4) / 4
	if maxw < 1 {
		maxw = 1
	}
	elev := -o.Snap.Z
	row := o.Row(elev, nrows)
	half := o.Width(maxw)
	centre := axisw + 2 + maxw*2

	buf := bytes.NewBuffer(make([]byte, 0, term.X*term.Y))
	buf.WriteString(io.Sf("%*s\n", axisw, "elev [m]"))
	for i := 0; i < nrows; i++ {
		e := o.Zmax - float64(i)*(o.Zmax-o.Zmin)/float64(nrows-1)
		label := ""
		if i == 0 || i == nrows-1 || i%5 == 0 {
			label = io.Sf("%.1f", e)
		}
		line := io.Sf("%*s |", axisw-2, label)
		if i == row {
			pad := centre - half - len(line)
			if pad < 0 {
				pad = 0
			}
			line += strings.Repeat(" ", pad) + "(" + strings.Repeat("o", 2*half-1) + ")"
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString(io.Sf("z = %g m   p = %.4g bar   V = %.4g L\n", o.Snap.Z, o.Snap.P, o.Snap.V))
	_, err = buf.WriteTo(w)
	return
}
