// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package seq

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"

	"github.com/garrisonhh/ghh-json/internal/alloc"
)

func collect(v *Vector[string]) []string {
	var out []string
	for _, s := range v.All() {
		out = append(out, s)
	}
	return out
}

func TestVectorGrowth(t *testing.T) {
	h := alloc.NewHeap()
	v := New[string](h, 0)
	if got := v.Cap(); got != MinCap {
		t.Fatalf("initial Cap: got %d, want %d", got, MinCap)
	}

	for i := 0; i < MinCap; i++ {
		v.Push("x")
	}
	if got := v.Cap(); got != MinCap {
		t.Errorf("Cap at exactly full: got %d, want %d", got, MinCap)
	}

	// The push that would exceed capacity doubles it first.
	v.Push("x")
	if got, want := v.Cap(), 2*MinCap; got != want {
		t.Errorf("Cap after overflow push: got %d, want %d", got, want)
	}
	if got, want := v.Len(), MinCap+1; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}

func TestVectorShrink(t *testing.T) {
	h := alloc.NewHeap()
	v := New[string](h, 0)
	for i := 0; i < 2*MinCap+1; i++ {
		v.Push("x")
	}
	if got, want := v.Cap(), 4*MinCap; got != want {
		t.Fatalf("Cap after pushes: got %d, want %d", got, want)
	}

	// Shrinking waits until occupancy drops under a quarter of capacity.
	for v.Len() > MinCap {
		v.Pop()
	}
	if got, want := v.Cap(), 4*MinCap; got != want {
		t.Errorf("Cap at size %d: got %d, want %d", v.Len(), got, want)
	}
	v.Pop() // size MinCap-1 < (4*MinCap)/4
	if got, want := v.Cap(), 2*MinCap; got != want {
		t.Errorf("Cap after shrink: got %d, want %d", got, want)
	}

	// Capacity never shrinks past the creation capacity.
	for v.Len() > 0 {
		v.Pop()
	}
	if got := v.Cap(); got != MinCap {
		t.Errorf("Cap when empty: got %d, want %d", got, MinCap)
	}
	mtest.MustPanic(t, func() { v.Pop() })
}

func TestVectorHint(t *testing.T) {
	h := alloc.NewHeap()
	v := New[string](h, 20)
	if got := v.Cap(); got != 20 {
		t.Fatalf("Cap: got %d, want 20", got)
	}

	// A creation capacity above MinCap is also the shrink floor.
	v.Push("only")
	v.Pop()
	if got := v.Cap(); got != 20 {
		t.Errorf("Cap after pop: got %d, want 20", got)
	}
}

func TestVectorAccess(t *testing.T) {
	h := alloc.NewHeap()
	v := New[string](h, 0)
	v.Push("a")
	v.Push("b")
	v.Push("c")

	if got := v.At(1); got != "b" {
		t.Errorf("At(1): got %q, want b", got)
	}
	v.Set(1, "B")
	if got := v.At(1); got != "B" {
		t.Errorf("At(1) after Set: got %q, want B", got)
	}
	if diff := cmp.Diff([]string{"a", "B", "c"}, collect(v)); diff != "" {
		t.Errorf("All (-want, +got):\n%s", diff)
	}

	mtest.MustPanic(t, func() { v.At(3) })
	mtest.MustPanic(t, func() { v.At(-1) })
	mtest.MustPanic(t, func() { v.Set(3, "x") })
}

func TestVectorSwapRemove(t *testing.T) {
	h := alloc.NewHeap()
	v := New[string](h, 0)
	for _, s := range []string{"a", "b", "c", "d"} {
		v.Push(s)
	}

	if got := v.SwapRemove(1); got != "b" {
		t.Errorf("SwapRemove(1): got %q, want b", got)
	}
	if diff := cmp.Diff([]string{"a", "d", "c"}, collect(v)); diff != "" {
		t.Errorf("after SwapRemove(1) (-want, +got):\n%s", diff)
	}

	// Removing the last position has nothing to swap in.
	if got := v.SwapRemove(2); got != "c" {
		t.Errorf("SwapRemove(2): got %q, want c", got)
	}
	if diff := cmp.Diff([]string{"a", "d"}, collect(v)); diff != "" {
		t.Errorf("after SwapRemove(2) (-want, +got):\n%s", diff)
	}
}

func TestVectorOrderedRemove(t *testing.T) {
	h := alloc.NewHeap()
	v := New[string](h, 0)
	for _, s := range []string{"a", "b", "c", "d"} {
		v.Push(s)
	}

	if got := v.OrderedRemove(1); got != "b" {
		t.Errorf("OrderedRemove(1): got %q, want b", got)
	}
	if diff := cmp.Diff([]string{"a", "c", "d"}, collect(v)); diff != "" {
		t.Errorf("after OrderedRemove(1) (-want, +got):\n%s", diff)
	}

	if got := v.OrderedRemove(2); got != "d" {
		t.Errorf("OrderedRemove(2): got %q, want d", got)
	}
	if diff := cmp.Diff([]string{"a", "c"}, collect(v)); diff != "" {
		t.Errorf("after OrderedRemove(2) (-want, +got):\n%s", diff)
	}
}

func TestVectorAllBreak(t *testing.T) {
	h := alloc.NewHeap()
	v := New[string](h, 0)
	for _, s := range []string{"a", "b", "c"} {
		v.Push(s)
	}

	var seen int
	for i, s := range v.All() {
		seen++
		if i == 1 && s == "b" {
			break
		}
	}
	if seen != 2 {
		t.Errorf("elements seen before break: got %d, want 2", seen)
	}
}

func TestVectorRelease(t *testing.T) {
	h := alloc.NewHeap()
	v := New[string](h, 0)
	v.Push("gone")
	v.Release()
	if got := h.Live(); got != 0 {
		t.Errorf("Live after Release: got %d, want 0", got)
	}
	mtest.MustPanic(t, func() { v.Push("nope") })
}
