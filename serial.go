// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mono

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing allocation identifier.
// Each reference-counted allocation gets the next serial value;
// handles and cells sharing an allocation report the same serial.
type Serial = uint64

// counter is the global monotonic counter for allocation serials.
var counter atomix.Uint64

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}
