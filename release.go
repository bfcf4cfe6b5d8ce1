// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mono

// Releaser is implemented by values that own resources beyond memory.
// Release is called exactly once for every value a cell gives up on its
// takedown path. It is never called for a value rejected by a populate.
type Releaser interface {
	Release()
}

// releaseValue runs the Releaser hook of the value at p, if it has one.
// Both *T and T are checked so that pointer-typed T works as well.
func releaseValue[T any](p *T) {
	if r, ok := any(p).(Releaser); ok {
		r.Release()
		return
	}
	if r, ok := any(*p).(Releaser); ok {
		r.Release()
	}
}

// exclusive is the ownership of Box: the cell is the sole owner of its
// value, release means the value is gone.
type exclusive[T any] struct{}

func (exclusive[T]) wrap(v T) *T { return &v }
func (exclusive[T]) unwrap(p *T) T { return *p }
func (exclusive[T]) release(p *T) { releaseValue(p) }

// shared is the ownership of Shared: the cell is one co-owner of a
// reference-counted value, release means one decrement.
type shared[T any] struct{}

func (shared[T]) wrap(v T) *refCell[T] { return newRefCell(v) }
func (shared[T]) unwrap(p *refCell[T]) T { return p.value }
func (shared[T]) release(p *refCell[T]) { p.decref() }
