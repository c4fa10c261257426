// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// Label returns the TeX label of a quantity; e.g. Label("p", "bar") → "$p\;[bar]$"
func Label(key, unit string) string {
	l := "$"
	switch key {
	case "z":
		l += "z"
	case "elev":
		l += "-z"
	case "p":
		l += "p"
	case "p1":
		l += "p_1"
	case "p2":
		l += "p_2"
	case "V":
		l += "V"
	case "V1":
		l += "V_1"
	case "V2":
		l += "V_2"
	case "A":
		l += "A"
	case "k":
		l += "p\\cdot V"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;[" + unit + "]"
	}
	l += "$"
	return l
}

// Units returns the unit of a quantity
func Units(key string) string {
	switch key {
	case "z", "elev":
		return "m"
	case "p", "p1", "p2":
		return "bar"
	case "V", "V1", "V2":
		return "L"
	}
	return ""
}
