// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package alloc

import (
	"testing"

	"github.com/creachadair/mds/mtest"
)

func TestHeapMake(t *testing.T) {
	h := NewHeap()
	a := Make[int](h, 4)
	b := Make[int](h, 2)
	if a.Slot != 0 || b.Slot != 1 {
		t.Errorf("slots: got %d, %d, want 0, 1", a.Slot, b.Slot)
	}
	if len(a.Data) != 4 || len(b.Data) != 2 {
		t.Errorf("lengths: got %d, %d, want 4, 2", len(a.Data), len(b.Data))
	}
	if got := h.Live(); got != 2 {
		t.Errorf("Live: got %d, want 2", got)
	}
}

func TestHeapResize(t *testing.T) {
	h := NewHeap()
	b := Make[byte](h, 4)
	copy(b.Data, "data")

	nb := Resize(h, b, 8)
	if nb.Slot != b.Slot {
		t.Errorf("Resize changed slot: got %d, want %d", nb.Slot, b.Slot)
	}
	if got := string(nb.Data[:4]); got != "data" {
		t.Errorf("prefix after grow: got %q, want data", got)
	}
	if got := len(nb.Data); got != 8 {
		t.Errorf("len after grow: got %d, want 8", got)
	}

	// Shrinking keeps the surviving prefix.
	sb := Resize(h, nb, 2)
	if got := string(sb.Data); got != "da" {
		t.Errorf("prefix after shrink: got %q, want da", got)
	}

	// The pre-resize handle is stale and must not be accepted.
	mtest.MustPanic(t, func() { Resize(h, nb, 16) })

	if got := h.Live(); got != 1 {
		t.Errorf("Live: got %d, want 1", got)
	}
}

func TestHeapFree(t *testing.T) {
	h := NewHeap()
	a := Make[int](h, 1)
	b := Make[int](h, 1)
	Free(h, a)
	if got := h.Live(); got != 1 {
		t.Errorf("Live: got %d, want 1", got)
	}

	// Freed slots are retired for good, never reissued.
	c := Make[int](h, 1)
	if c.Slot != 2 {
		t.Errorf("slot after free: got %d, want 2", c.Slot)
	}
	if got := h.Issued(); got != 3 {
		t.Errorf("Issued: got %d, want 3", got)
	}

	mtest.MustPanic(t, func() { Free(h, a) })      // double free
	mtest.MustPanic(t, func() { Resize(h, a, 4) }) // use after free
	_ = b
}

func TestHeapSlotGrowth(t *testing.T) {
	h := NewHeap()
	if got := h.Cap(); got != initSlotCap {
		t.Fatalf("initial Cap: got %d, want %d", got, initSlotCap)
	}

	blocks := make([]Block[int], 0, initSlotCap+10)
	for i := 0; i < initSlotCap+10; i++ {
		b := Make[int](h, 1)
		b.Data[0] = i
		blocks = append(blocks, b)
	}
	if got, want := h.Cap(), 2*initSlotCap; got != want {
		t.Errorf("Cap after growth: got %d, want %d", got, want)
	}

	// Early handles survive the table growth.
	early := Resize(h, blocks[3], 2)
	if got := early.Data[0]; got != 3 {
		t.Errorf("early block data: got %d, want 3", got)
	}
	for i, b := range blocks {
		if i == 3 {
			continue // resized above, so the old handle is stale
		}
		if got := b.Data[0]; got != i {
			t.Errorf("block %d: got %d, want %d", i, got, i)
		}
	}
}

func TestHeapClose(t *testing.T) {
	h := NewHeap()
	Make[int](h, 3)
	h.Close()
	h.Close() // closing twice is harmless

	if got := h.Live(); got != 0 {
		t.Errorf("Live after Close: got %d, want 0", got)
	}
	mtest.MustPanic(t, func() { Make[int](h, 1) })
}
