// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mono

import "code.hybscloud.com/kont"

// Box is an atomic, lock-free, write-once optional pointer with exclusive
// ownership of its value. A Box transitions from empty to holding a value
// at most once and is then frozen until it is released.
//
// Borrow and the other read accessors may be called from any number of
// goroutines concurrently with Store and Populate. Swap, Take, IntoInner
// and Release require exclusive access to the Box: no other goroutine may
// use it at the same time. That is the caller's contract, not a lock.
//
// The zero Box is empty and ready to use. A Box must not be copied after
// first use.
type Box[T any] struct {
	c cell[T, T, exclusive[T]]
}

// NewBox returns a Box holding a fresh heap copy of v.
func NewBox[T any](v T) *Box[T] {
	return BoxOf(&v)
}

// BoxOf returns a Box that takes ownership of p. A nil p yields an empty Box.
// The caller must not use p for anything the Box does not permit afterwards.
func BoxOf[T any](p *T) *Box[T] {
	b := &Box[T]{}
	b.c.init(p)
	return b
}

// EmptyBox returns an empty Box.
func EmptyBox[T any]() *Box[T] {
	return &Box[T]{}
}

// IsEmpty reports whether the Box holds no value.
// Advisory only: use Borrow to access the value.
func (b *Box[T]) IsEmpty() bool {
	return b.c.empty()
}

// IsPopulated reports whether the Box holds a value.
// Advisory only: use Borrow to access the value.
func (b *Box[T]) IsPopulated() bool {
	return !b.c.empty()
}

// Borrow returns the held value, or nil if the Box is empty.
// Once non-nil, the pointer stays valid for as long as the Box is not
// taken down through Swap, Take, IntoInner or Release.
func (b *Box[T]) Borrow() *T {
	return b.c.load()
}

// Store attempts to upgrade the Box from empty to holding p.
// Returns Right on success. Otherwise the Box is unchanged and p is passed
// back as Left, untouched. Store panics if p is nil.
func (b *Box[T]) Store(p *T) kont.Either[*T, struct{}] {
	if p == nil {
		panic("mono: Store of nil pointer")
	}
	if b.c.publish(p) {
		return kont.Right[*T](struct{}{})
	}
	return kont.Left[*T, struct{}](p)
}

// Populate attempts to upgrade the Box from empty to holding a heap copy
// of v. Returns ErrAlreadyPopulated together with v if the Box was already
// populated; v is not released.
func (b *Box[T]) Populate(v T) (T, error) {
	rejected, ok := b.c.populate(v)
	if !ok {
		return rejected, ErrAlreadyPopulated
	}
	return rejected, nil
}

// StoreValue attempts to populate the Box with v.
// Returns false if the Box already held a value.
func (b *Box[T]) StoreValue(v T) bool {
	_, ok := b.c.populate(v)
	return ok
}

// Swap replaces the held value with p and returns the previous one,
// or nil if the Box was empty. Ownership of the returned pointer moves to
// the caller; nothing is released. Requires exclusive access.
func (b *Box[T]) Swap(p *T) *T {
	return b.c.swap(p)
}

// Take empties the Box and returns its previous value, if any.
// Requires exclusive access.
func (b *Box[T]) Take() *T {
	return b.c.swap(nil)
}

// IntoInner unwraps the Box, returning its value, if any. The Box is left
// empty and is not meant to be used again. Requires exclusive access.
func (b *Box[T]) IntoInner() *T {
	return b.Take()
}

// Release takes down the Box: the held value, if any, is released exactly
// once and the Box is left empty. Requires exclusive access.
func (b *Box[T]) Release() {
	b.c.drop()
}

// TryBorrow is Borrow at the non-blocking boundary.
// Returns iox.ErrWouldBlock while the Box is empty.
func (b *Box[T]) TryBorrow() (*T, error) {
	return b.c.tryLoad()
}

// Await waits until the Box is populated and returns its value.
// Waits with iox.Backoff, without spawning goroutines or creating channels.
func (b *Box[T]) Await() *T {
	return b.c.await()
}
