// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mono

import "code.hybscloud.com/kont"

// Shared is an atomic, lock-free, write-once optional reference-counted
// value. It is Box with shared ownership: the cell is one of potentially
// many co-owners of its value, and releasing it decrements the count.
//
// The same concurrency contract as Box applies: readers and populators
// may run concurrently; Swap, Take, IntoInner and Release require
// exclusive access.
//
// The zero Shared is empty and ready to use. A Shared must not be copied
// after first use; use Clone.
type Shared[T any] struct {
	c cell[T, refCell[T], shared[T]]
}

// NewShared returns a Shared holding v with a reference count of 1.
func NewShared[T any](v T) *Shared[T] {
	s := &Shared[T]{}
	s.c.init(newRefCell(v))
	return s
}

// SharedOf returns a Shared that takes over r's reference.
// A nil or empty r yields an empty Shared. r is empty afterwards.
func SharedOf[T any](r *Ref[T]) *Shared[T] {
	s := &Shared[T]{}
	if r != nil {
		s.c.init(r.consume())
	}
	return s
}

// SharedFromBox converts b into a Shared. b's value, if any, is moved into a
// fresh reference-counted allocation; b is left empty.
// Requires exclusive access to b.
func SharedFromBox[T any](b *Box[T]) *Shared[T] {
	p := b.IntoInner()
	if p == nil {
		return EmptyShared[T]()
	}
	return NewShared(*p)
}

// EmptyShared returns an empty Shared.
func EmptyShared[T any]() *Shared[T] {
	return &Shared[T]{}
}

// IsEmpty reports whether the cell holds no value.
// Advisory only: use Borrow or Get to access the value.
func (s *Shared[T]) IsEmpty() bool {
	return s.c.empty()
}

// IsPopulated reports whether the cell holds a value.
// Advisory only: use Borrow or Get to access the value.
func (s *Shared[T]) IsPopulated() bool {
	return !s.c.empty()
}

// Borrow returns the held value, or nil if the cell is empty.
// The pointer stays valid for as long as the cell is not taken down.
func (s *Shared[T]) Borrow() *T {
	if p := s.c.load(); p != nil {
		return &p.value
	}
	return nil
}

// Get returns a new owning handle to the held value, or nil if the cell is
// empty. The count is incremented in place; the handle outlives the cell.
func (s *Shared[T]) Get() *Ref[T] {
	p := s.c.load()
	if p == nil {
		return nil
	}
	p.incref()
	return adopt(p)
}

// Clone returns a new cell co-owning the same value.
// A clone of an empty cell is an independent empty cell; a clone of a
// populated cell is populated and can only be emptied through Take.
func (s *Shared[T]) Clone() *Shared[T] {
	p := s.c.load()
	if p != nil {
		p.incref()
	}
	c := &Shared[T]{}
	c.c.init(p)
	return c
}

// Store attempts to upgrade the cell from empty to holding r's value.
// Returns Right on success, consuming r. Otherwise the cell is unchanged
// and r is passed back as Left, untouched. Store panics if r is nil or
// empty.
func (s *Shared[T]) Store(r *Ref[T]) kont.Either[*Ref[T], struct{}] {
	if r == nil || r.c == nil {
		panic("mono: Store of empty Ref")
	}
	if s.c.publish(r.c) {
		r.c = nil
		return kont.Right[*Ref[T]](struct{}{})
	}
	return kont.Left[*Ref[T], struct{}](r)
}

// Populate attempts to upgrade the cell from empty to holding v.
// Returns ErrAlreadyPopulated together with v if the cell was already
// populated; v is not released.
func (s *Shared[T]) Populate(v T) (T, error) {
	rejected, ok := s.c.populate(v)
	if !ok {
		return rejected, ErrAlreadyPopulated
	}
	return rejected, nil
}

// StoreValue attempts to populate the cell with v.
// Returns false if the cell already held a value.
func (s *Shared[T]) StoreValue(v T) bool {
	_, ok := s.c.populate(v)
	return ok
}

// Swap replaces the held value with r's and returns a handle owning the
// previous reference, or nil if the cell was empty. r is consumed; a nil
// r empties the cell. Requires exclusive access.
func (s *Shared[T]) Swap(r *Ref[T]) *Ref[T] {
	var p *refCell[T]
	if r != nil {
		p = r.consume()
	}
	return adopt(s.c.swap(p))
}

// Take empties the cell and returns a handle owning its reference, if any.
// Requires exclusive access.
func (s *Shared[T]) Take() *Ref[T] {
	return adopt(s.c.swap(nil))
}

// IntoInner unwraps the cell, returning a handle owning its reference, if
// any. The cell is left empty and is not meant to be used again.
// Requires exclusive access.
func (s *Shared[T]) IntoInner() *Ref[T] {
	return s.Take()
}

// Release takes down the cell: its reference, if any, is given up exactly
// once. The value is released only when no other owner remains.
// Requires exclusive access.
func (s *Shared[T]) Release() {
	s.c.drop()
}

// TryGet is Get at the non-blocking boundary.
// Returns iox.ErrWouldBlock while the cell is empty.
func (s *Shared[T]) TryGet() (*Ref[T], error) {
	p, err := s.c.tryLoad()
	if err != nil {
		return nil, err
	}
	p.incref()
	return adopt(p), nil
}

// Await waits until the cell is populated and returns a new owning handle.
// Waits with iox.Backoff, without spawning goroutines or creating channels.
func (s *Shared[T]) Await() *Ref[T] {
	p := s.c.await()
	p.incref()
	return adopt(p)
}
