// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

// Package seq implements the heap-backed dynamic vector used for array
// elements and for key ordering in objects.
package seq

import (
	"iter"

	"github.com/garrisonhh/ghh-json/internal/alloc"
)

// MinCap is the smallest capacity a vector will hold. Capacities below
// it are clamped at creation and shrinking never passes below the
// creation capacity.
const MinCap = 8

// A Vector is a growable sequence of T stored in a single heap block.
// Pushing doubles the capacity when the block is full; removing shrinks
// it by half once occupancy falls under a quarter. Elements are
// addressed by position, and positions shift only through the ordered
// removal operations.
//
// Vector methods are not safe for concurrent use.
type Vector[T any] struct {
	h      *alloc.Heap
	blk    alloc.Block[T]
	minCap int
	size   int
}

// New constructs an empty vector on h with capacity for hint elements,
// clamped up to MinCap.
func New[T any](h *alloc.Heap, hint int) *Vector[T] {
	c := hint
	if c < MinCap {
		c = MinCap
	}
	return &Vector[T]{h: h, blk: alloc.Make[T](h, c), minCap: c}
}

// Len reports the number of elements in v.
func (v *Vector[T]) Len() int { return v.size }

// Cap reports the current capacity of v.
func (v *Vector[T]) Cap() int { return len(v.blk.Data) }

// At returns the element at position i. It panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	v.bounds(i)
	return v.blk.Data[i]
}

// Set replaces the element at position i. It panics if i is out of
// range.
func (v *Vector[T]) Set(i int, x T) {
	v.bounds(i)
	v.blk.Data[i] = x
}

// Push appends x to the end of v, doubling the capacity first if the
// block is full.
func (v *Vector[T]) Push(x T) {
	if c := len(v.blk.Data); v.size+1 > c {
		v.blk = alloc.Resize(v.h, v.blk, 2*c)
	}
	v.blk.Data[v.size] = x
	v.size++
}

// Pop removes and returns the last element. It panics if v is empty.
func (v *Vector[T]) Pop() T {
	if v.size == 0 {
		panic("seq: pop from empty vector")
	}
	x := v.blk.Data[v.size-1]
	v.freeOne()
	return x
}

// SwapRemove removes the element at position i by moving the last
// element into its place, and returns the removed element. Order is not
// preserved. It panics if i is out of range.
func (v *Vector[T]) SwapRemove(i int) T {
	v.bounds(i)
	x := v.blk.Data[i]
	last := v.Pop()
	if i < v.size {
		v.blk.Data[i] = last
	}
	return x
}

// OrderedRemove removes the element at position i, shifting the tail
// left one place, and returns the removed element. It panics if i is
// out of range.
func (v *Vector[T]) OrderedRemove(i int) T {
	v.bounds(i)
	x := v.blk.Data[i]
	copy(v.blk.Data[i:v.size-1], v.blk.Data[i+1:v.size])
	v.freeOne()
	return x
}

// All ranges over the elements of v in positional order. The vector
// must not be modified during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.blk.Data[i]) {
				return
			}
		}
	}
}

// Release frees the vector's heap block. The vector must not be used
// afterward.
func (v *Vector[T]) Release() {
	alloc.Free(v.h, v.blk)
	v.blk = alloc.Block[T]{}
	v.size = 0
}

// freeOne drops the last element, zeroing its slot, and halves the
// capacity once occupancy falls under a quarter of it. The shrink floor
// is the creation capacity.
func (v *Vector[T]) freeOne() {
	if v.size == 0 {
		panic("seq: pop from empty vector")
	}
	v.size--
	var zero T
	v.blk.Data[v.size] = zero
	if c := len(v.blk.Data); c > v.minCap && v.size < c/4 {
		v.blk = alloc.Resize(v.h, v.blk, c/2)
	}
}

func (v *Vector[T]) bounds(i int) {
	if i < 0 || i >= v.size {
		panic("seq: index out of range")
	}
}
