// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mono_test

import "code.hybscloud.com/atomix"

// tracker counts how many times values sharing drops were released.
type tracker struct {
	id    int
	drops *atomix.Int32
}

func (t tracker) Release() {
	t.drops.Add(1)
}

func newTracker(id int) (tracker, *atomix.Int32) {
	drops := new(atomix.Int32)
	return tracker{id: id, drops: drops}, drops
}

// ptrTracker releases through a pointer receiver.
type ptrTracker struct {
	drops *atomix.Int32
}

func (t *ptrTracker) Release() {
	t.drops.Add(1)
}
