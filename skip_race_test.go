// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package mono_test

import "testing"

// skipRace skips tests that share a cell across goroutines.
// The race detector tracks per-variable happens-before and cannot
// see atomix's acquire/release ordering on the slot, so the payload
// written before publish and read after load shows up as a false positive.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: slot uses atomix acquire/release ordering")
}
