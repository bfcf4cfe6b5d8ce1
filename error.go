// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mono

import "errors"

// ErrAlreadyPopulated is returned by Populate when the cell already holds
// a value. It is a normal outcome under contention, not a fault: the
// rejected value is returned alongside it, unreleased.
var ErrAlreadyPopulated = errors.New("mono: cell already populated")
