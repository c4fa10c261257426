// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/margauxf/divephysfun/ana"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Report holds the data of an HTML page with the gas parcel at the slider position
// and the table of the whole profile
type Report struct {
	Title   string       // page title
	Zmin    float64      // deepest elevation of the chart
	Zmax    float64      // shallowest elevation of the chart
	Snap    ana.Snapshot // gas parcel at the slider position
	Profile *ana.Profile // profile; may be nil
	Scale   SizeScale    // marker scale
	Width   int          // chart width [px]
	Height  int          // chart height [px]
}

// chart margins [px]
const (
	marginX = 50
	marginY = 20
)

// elevation domain of the chart; as the original depth axis [Zmin-1, Zmax+8]
func (o Report) ydomain() (ymin, ymax float64) {
	return o.Zmin - 1, o.Zmax + 8
}

// Y returns the vertical pixel coordinate of elevation e
func (o Report) Y(e float64) float64 {
	ymin, ymax := o.ydomain()
	h := float64(o.Height - 2*marginY)
	return marginY + (ymax-e)/(ymax-ymin)*h
}

// Node builds the HTML document
func (o Report) Node() *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := elem("html")
	doc.AppendChild(root)

	head := elem("head")
	head.AppendChild(elem("meta", "charset", "utf-8"))
	head.AppendChild(withText(elem("title"), o.Title))
	root.AppendChild(head)

	body := elem("body")
	body.AppendChild(withText(elem("h1"), o.Title))
	body.AppendChild(withText(elem("p"), io.Sf(
		"Elevation %g m, absolute pressure %.4g bar: the gas volume is %.4g L.",
		-o.Snap.Z, o.Snap.P, o.Snap.V)))
	body.AppendChild(o.chart())
	if o.Profile != nil {
		body.AppendChild(withText(elem("h2"), "Profile ("+o.Profile.Regime.String()+")"))
		body.AppendChild(o.table())
	}
	root.AppendChild(body)
	return doc
}

// chart returns the SVG with the depth axis and the gas parcel
func (o Report) chart() *html.Node {
	w, h := float64(o.Width), float64(o.Height)
	svg := elem("svg",
		"xmlns", "http://www.w3.org/2000/svg",
		"width", io.Sf("%d", o.Width),
		"height", io.Sf("%d", o.Height),
		"viewBox", io.Sf("0 0 %d %d", o.Width, o.Height))
	svg.AppendChild(elem("rect", "x", "0", "y", "0", "width", ff(w), "height", ff(h), "fill", "white"))
	svg.AppendChild(elem("line",
		"x1", ff(marginX), "y1", ff(marginY),
		"x2", ff(marginX), "y2", ff(h-marginY),
		"stroke", ColorTrack))
	for e := o.Zmax; e >= o.Zmin; e -= 20 {
		y := o.Y(e)
		svg.AppendChild(elem("line", "x1", ff(marginX-4), "y1", ff(y), "x2", ff(marginX), "y2", ff(y), "stroke", ColorDeep))
		svg.AppendChild(withText(elem("text", "x", ff(marginX-8), "y", ff(y+4), "text-anchor", "end", "font-size", "10"), io.Sf("%g", e)))
	}
	svg.AppendChild(withText(elem("text", "x", "4", "y", ff(marginY-6), "font-size", "10"), "Depth [meters]"))
	circle := elem("circle",
		"cx", ff((w+marginX)/2), "cy", ff(o.Y(-o.Snap.Z)),
		"r", ff(Radius(o.Scale.Size(o.Snap.A))),
		"fill", ColorBubble)
	circle.AppendChild(withText(elem("title"), io.Sf("V in liters: %g", o.Snap.V)))
	svg.AppendChild(circle)
	return svg
}

// table returns the profile table
func (o Report) table() *html.Node {
	tbl := elem("table")
	tr := elem("tr")
	for _, k := range []string{"z", "p", "V", "A"} {
		u := Units(k)
		if u != "" {
			u = " [" + u + "]"
		}
		tr.AppendChild(withText(elem("th"), k+u))
	}
	tbl.AppendChild(tr)
	for _, s := range o.Profile.Snaps {
		tr = elem("tr")
		for _, v := range []float64{s.Z, s.P, s.V, s.A} {
			tr.AppendChild(withText(elem("td"), io.Sf("%.4g", v)))
		}
		tbl.AppendChild(tr)
	}
	return tbl
}

// Render writes the HTML document to w
func (o Report) Render(w goio.Writer) error {
	return html.Render(w, o.Node())
}

// Save writes the HTML document to dirout/fn
func (o Report) Save(dirout, fn string) (path string, err error) {
	if err = os.MkdirAll(dirout, 0755); err != nil {
		return
	}
	path = filepath.Join(dirout, fn)
	f, err := os.Create(path)
	if err != nil {
		return
	}
	if err = o.Render(f); err != nil {
		f.Close()
		return
	}
	err = f.Close()
	return
}

// elem returns an element node; attrs are key-value pairs
func elem(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func withText(n *html.Node, txt string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: txt})
	return n
}

func ff(x float64) string { return io.Sf("%.2f", x) }
