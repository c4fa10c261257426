// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "errors"

// errors returned by the converters; callers should match them with errors.Is
var (
	ErrUnsupportedRegime = errors.New("unsupported regime")
	ErrInvalidDepth      = errors.New("depth should be a non-negative number")
	ErrInvalidPressure   = errors.New("pressure should be greater than or equal to 1 bar")
	ErrInvalidVolume     = errors.New("volume should be a non-negative number")
	ErrDivisionByZero    = errors.New("division by zero")
)
