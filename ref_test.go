// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mono_test

import (
	"testing"

	"code.hybscloud.com/mono"
)

func TestRefClone(t *testing.T) {
	v, drops := newTracker(1)
	r := mono.NewRef(v)

	if r.Refs() != 1 {
		t.Fatalf("NewRef Refs() = %d, want 1", r.Refs())
	}
	c := r.Clone()
	if r.Refs() != 2 || !r.Same(c) {
		t.Fatalf("Clone() did not share the allocation")
	}

	r.Release()
	if r.Value() != nil {
		t.Fatalf("released handle still has a value")
	}
	if c.Value().id != 1 {
		t.Fatalf("clone lost the value")
	}
	if n := drops.Load(); n != 0 {
		t.Fatalf("value released %d times while a clone is live", n)
	}

	// Releasing the same handle twice does not decrement twice.
	r.Release()
	if c.Refs() != 1 {
		t.Fatalf("Refs() = %d after double Release, want 1", c.Refs())
	}

	c.Release()
	if n := drops.Load(); n != 1 {
		t.Fatalf("value released %d times, want 1", n)
	}
}

func TestRefEmptyHandle(t *testing.T) {
	r := mono.NewRef(1)
	r.Release()

	if r.Refs() != 0 || r.Serial() != 0 {
		t.Fatalf("empty handle Refs()=%d Serial()=%d, want 0 0", r.Refs(), r.Serial())
	}
	c := r.Clone()
	if c.Value() != nil {
		t.Fatalf("Clone of empty handle has a value")
	}
	if r.Same(c) {
		t.Fatalf("two empty handles reported Same")
	}
	c.Release()
}

func TestRefNestedInBox(t *testing.T) {
	v, drops := newTracker(1)
	r := mono.NewRef(v)
	b := mono.NewBox(r.Clone())

	b.Release()
	if n := drops.Load(); n != 0 {
		t.Fatalf("value released %d times while a handle is live", n)
	}
	r.Release()
	if n := drops.Load(); n != 1 {
		t.Fatalf("value released %d times, want 1", n)
	}
}

func TestSharedReleaseTwice(t *testing.T) {
	v, drops := newTracker(1)
	s := mono.NewShared(v)
	r := s.Get()

	s.Release()
	s.Release()
	if r.Refs() != 1 {
		t.Fatalf("Refs() = %d after double cell Release, want 1", r.Refs())
	}
	r.Release()
	if n := drops.Load(); n != 1 {
		t.Fatalf("value released %d times, want 1", n)
	}
}
