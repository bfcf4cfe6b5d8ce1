// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mono

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// ownership is the structural interface for the two ownership disciplines.
// A cell only ever sees addresses; ownership decides how a value becomes an
// address and what giving an address up means.
// Implementations are zero-size: the cell calls them on a zero value of O.
type ownership[T, P any] interface {
	// wrap allocates a fresh owned address for v.
	wrap(v T) *P
	// unwrap reconstructs the value of an address that was never published.
	unwrap(p *P) T
	// release gives up one owned address.
	release(p *P)
}

// cell is the lock-free write-once slot behind Box and Shared.
//
// Every address stored into slot is converted back into exactly one owned
// address, either by swap (Take, Swap, IntoInner) or by drop (Release).
// Addresses never leave the package raw.
type cell[T, P any, O ownership[T, P]] struct {
	_    noCopy
	slot atomix.Pointer[P]
}

// init stores the initial address. The cell is not shared yet.
func (c *cell[T, P, O]) init(p *P) {
	c.slot.StoreRelaxed(p)
}

// empty is an advisory observation: it never justifies a dereference.
func (c *cell[T, P, O]) empty() bool {
	return c.slot.LoadRelaxed() == nil
}

// load pairs with the release of the writer that published the address.
func (c *cell[T, P, O]) load() *P {
	return c.slot.LoadAcquire()
}

// tryLoad is load at the non-blocking boundary.
// Returns iox.ErrWouldBlock while the cell is empty.
func (c *cell[T, P, O]) tryLoad() (*P, error) {
	if p := c.slot.LoadAcquire(); p != nil {
		return p, nil
	}
	return nil, iox.ErrWouldBlock
}

// await waits for the first write with adaptive backoff.
// Never returns nil.
func (c *cell[T, P, O]) await() *P {
	var bo iox.Backoff
	for {
		if p := c.slot.LoadAcquire(); p != nil {
			return p
		}
		bo.Wait()
	}
}

// publish is the linearization point of the one-shot write: exactly one of
// any number of racing publishers succeeds.
func (c *cell[T, P, O]) publish(p *P) bool {
	return c.slot.CompareAndSwapRelease(nil, p)
}

// populate wraps v and publishes it. On loss the fresh address is unwrapped
// and v comes back untouched; nothing is released.
func (c *cell[T, P, O]) populate(v T) (T, bool) {
	var o O
	p := o.wrap(v)
	if c.publish(p) {
		var zero T
		return zero, true
	}
	return o.unwrap(p), false
}

// swap requires exclusive access to the cell. A plain store suffices:
// no other goroutine can observe the transition.
func (c *cell[T, P, O]) swap(p *P) *P {
	old := c.slot.LoadAcquire()
	c.slot.StoreRelease(p)
	return old
}

// drop empties the cell and releases the held address, if any.
// Requires exclusive access.
func (c *cell[T, P, O]) drop() {
	if old := c.swap(nil); old != nil {
		var o O
		o.release(old)
	}
}

// noCopy may be embedded into structs which must not be copied
// after the first use. Checked by go vet -copylocks.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
