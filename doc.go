// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mono provides atomic, lock-free, write-once containers.
//
// A container starts empty (or pre-populated) and may transition from empty
// to holding a value at most once, through a single compare-and-swap. It is
// then frozen until it is taken down. Because the set of values a container
// owns only grows, readers need no coordination with writers: any pointer
// or handle obtained from a populated container stays valid for as long as
// the container itself is alive.
//
// # Architecture
//
//   - Slot: one [code.hybscloud.com/atomix.Pointer] word, nil when empty.
//     Populate is a release CAS, reads are acquire loads, emptiness checks
//     are relaxed loads.
//   - Ownership: [Box] owns its value exclusively; [Shared] co-owns a
//     reference-counted value through [Ref] handles. Both share one slot
//     implementation and differ only in how an address is released.
//   - Takedown: Swap, Take, IntoInner and Release are the only
//     non-monotonic operations. They require exclusive access to the
//     container and use ordered stores, not CAS.
//   - Release: values implementing [Releaser] are released exactly once
//     on the takedown path, never on a lost populate race.
//
// # API Topologies
//
//   - Construction: [NewBox], [BoxOf], [EmptyBox], [NewShared], [SharedOf],
//     [EmptyShared], [SharedFromBox]. Zero values are empty.
//   - One-shot write: Store (returns [code.hybscloud.com/kont.Either]),
//     Populate (returns [ErrAlreadyPopulated] with the rejected value),
//     StoreValue.
//   - Reads: Borrow, [Shared.Get], [Shared.Clone], IsEmpty, IsPopulated.
//   - Non-blocking boundary: TryBorrow and TryGet return
//     [code.hybscloud.com/iox.ErrWouldBlock] while empty; Await waits with
//     adaptive backoff.
//
// # Example
//
//	var cfg mono.Box[Config]
//	if _, err := cfg.Populate(load()); errors.Is(err, mono.ErrAlreadyPopulated) {
//		// another goroutine won; use its value
//	}
//	c := cfg.Borrow()
package mono
