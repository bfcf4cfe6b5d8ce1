// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mono

import "fmt"

// emptyString is what an empty cell or handle formats as.
const emptyString = "<empty>"

// String formats the held value with %v, or "<empty>".
func (b *Box[T]) String() string {
	if p := b.Borrow(); p != nil {
		return fmt.Sprint(*p)
	}
	return emptyString
}

// String formats the held value with %v, or "<empty>".
func (s *Shared[T]) String() string {
	if p := s.Borrow(); p != nil {
		return fmt.Sprint(*p)
	}
	return emptyString
}

// String formats the value with %v prefixed by the allocation serial,
// e.g. "#3 hello", or "<empty>".
func (r *Ref[T]) String() string {
	if r.c == nil {
		return emptyString
	}
	return fmt.Sprintf("#%d %v", r.c.serial, r.c.value)
}
