// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mono

import "code.hybscloud.com/atomix"

// refCell is a reference-counted allocation.
// The value is released when the count drops to zero.
type refCell[T any] struct {
	refs   atomix.Int64
	serial Serial
	value  T
}

func newRefCell[T any](v T) *refCell[T] {
	c := &refCell[T]{serial: nextSerial(), value: v}
	c.refs.Store(1)
	return c
}

// incref requires the caller to already own one reference,
// directly or through a populated cell.
func (c *refCell[T]) incref() {
	c.refs.Add(1)
}

func (c *refCell[T]) decref() {
	n := c.refs.Add(-1)
	if n < 0 {
		panic("mono: reference count underflow")
	}
	if n == 0 {
		releaseValue(&c.value)
	}
}

// Ref is an owning handle to a reference-counted value.
//
// Each Ref owns one reference. Clone duplicates ownership without touching
// the value; Release gives it up, and the last Release releases the value.
// A Ref handed to Shared.Store, Shared.Swap or SharedOf is consumed: its
// reference moves into the cell and the handle becomes empty.
//
// A single Ref must not be used from multiple goroutines at once;
// clone it instead.
type Ref[T any] struct {
	c *refCell[T]
}

// NewRef allocates v with a reference count of 1.
func NewRef[T any](v T) *Ref[T] {
	return &Ref[T]{c: newRefCell(v)}
}

// Value returns the shared value, or nil if the handle was released
// or consumed. Mutating the value is the caller's responsibility.
func (r *Ref[T]) Value() *T {
	if r.c == nil {
		return nil
	}
	return &r.c.value
}

// Clone returns a new handle to the same value.
// Cloning an empty handle returns an empty handle.
func (r *Ref[T]) Clone() *Ref[T] {
	if r.c == nil {
		return &Ref[T]{}
	}
	r.c.incref()
	return &Ref[T]{c: r.c}
}

// Release gives up this handle's reference. Releasing an empty handle,
// or releasing twice, is a no-op.
func (r *Ref[T]) Release() {
	c := r.c
	if c == nil {
		return
	}
	r.c = nil
	c.decref()
}

// Refs returns the current reference count, or 0 for an empty handle.
// Racy by nature: only useful for diagnostics and tests.
func (r *Ref[T]) Refs() int64 {
	if r.c == nil {
		return 0
	}
	return r.c.refs.Load()
}

// Serial returns the allocation serial, or 0 for an empty handle.
func (r *Ref[T]) Serial() Serial {
	if r.c == nil {
		return 0
	}
	return r.c.serial
}

// Same reports whether r and o are handles to the same allocation.
// Two empty handles are not the same.
func (r *Ref[T]) Same(o *Ref[T]) bool {
	return r.c != nil && r.c == o.c
}

// consume takes the allocation out of the handle without touching the count.
func (r *Ref[T]) consume() *refCell[T] {
	c := r.c
	r.c = nil
	return c
}

// adopt wraps an owned reference into a new handle.
func adopt[T any](c *refCell[T]) *Ref[T] {
	if c == nil {
		return nil
	}
	return &Ref[T]{c: c}
}
