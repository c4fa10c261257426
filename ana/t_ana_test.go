// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkErr checks that err wraps target
func checkErr(tst *testing.T, msg string, err, target error) {
	if err == nil {
		tst.Errorf("%s: error %q was expected\n", msg, target)
		return
	}
	if !errors.Is(err, target) {
		tst.Errorf("%s: error %q does not wrap %q\n", msg, err, target)
		return
	}
	io.Pforan("%s: %v\n", msg, err)
}
