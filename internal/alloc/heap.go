// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package alloc

const initSlotCap = 256

// A Heap tracks allocations that may be individually resized or freed.
// Each allocation is identified by a slot index that never changes, even
// though Resize replaces the backing storage; the slot table is the
// single source of truth for which backing is current.
//
// Heap methods are not safe for concurrent use.
type Heap struct {
	slots  []any // slots[i] holds a []T, or nil once freed
	next   int   // next slot index to issue; indices are never reused
	live   int
	closed bool
}

// NewHeap constructs an empty heap.
func NewHeap() *Heap {
	return &Heap{slots: make([]any, initSlotCap)}
}

// A Block is a handle to one heap allocation: a stable slot index plus
// the current backing slice. After Resize the old handle is stale, and
// callers must continue with the returned Block; using a stale handle
// panics.
type Block[T any] struct {
	Slot int
	Data []T
}

// Make allocates a block of n zeroed elements on h.
func Make[T any](h *Heap, n int) Block[T] {
	h.check()
	if h.next == len(h.slots) {
		grown := make([]any, 2*len(h.slots))
		copy(grown, h.slots)
		h.slots = grown
	}
	data := make([]T, n)
	h.slots[h.next] = data
	b := Block[T]{Slot: h.next, Data: data}
	h.next++
	h.live++
	return b
}

// Resize replaces b's backing storage with n elements, copying
// min(len(b.Data), n) of the old contents. The slot index is preserved.
func Resize[T any](h *Heap, b Block[T], n int) Block[T] {
	h.check()
	cur := current(h, b)
	data := make([]T, n)
	copy(data, cur)
	h.slots[b.Slot] = data
	return Block[T]{Slot: b.Slot, Data: data}
}

// Free releases b's slot. The slot index is retired, not recycled.
func Free[T any](h *Heap, b Block[T]) {
	h.check()
	current(h, b)
	h.slots[b.Slot] = nil
	h.live--
}

// current validates that b is the live handle for its slot and returns
// the backing slice recorded there.
func current[T any](h *Heap, b Block[T]) []T {
	if b.Slot < 0 || b.Slot >= len(h.slots) || h.slots[b.Slot] == nil {
		panic("alloc: block is not live")
	}
	cur, ok := h.slots[b.Slot].([]T)
	if !ok || !sameBacking(cur, b.Data) {
		panic("alloc: stale block handle")
	}
	return cur
}

func sameBacking[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// Close releases every live slot. The heap cannot be used afterward.
func (h *Heap) Close() {
	h.slots = nil
	h.live = 0
	h.closed = true
}

func (h *Heap) check() {
	if h.closed {
		panic("alloc: heap used after Close")
	}
}

// Live reports the number of live allocations.
func (h *Heap) Live() int { return h.live }

// Cap reports the current slot table capacity.
func (h *Heap) Cap() int { return len(h.slots) }

// Issued reports how many slot indices have ever been issued.
func (h *Heap) Issued() int { return h.next }
