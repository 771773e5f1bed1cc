// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package ghhjson

import "iter"

// An Array is a view of a Value of array type, with positional access
// and modification. Obtain one from Value.Array or Document.NewArray
// followed by Value.Array. The view is only as valid as the value
// behind it.
type Array struct {
	v *Value
}

// Value returns the value behind a.
func (a Array) Value() *Value { return a.v }

// Len reports the number of elements in a.
func (a Array) Len() int { return a.v.arr.Len() }

// At returns the element at position i. It panics if i is out of
// range.
func (a Array) At(i int) *Value {
	a.bounds(i)
	return a.v.arr.At(i)
}

// SetAt replaces the element at position i. val must belong to the
// same document as a, or be nil. It panics if i is out of range.
func (a Array) SetAt(i int, val *Value) {
	a.v.doc.check()
	a.v.doc.own(val)
	a.bounds(i)
	a.v.arr.Set(i, val)
}

// Append adds vals to the end of a. Each must belong to the same
// document as a, or be nil.
func (a Array) Append(vals ...*Value) {
	a.v.doc.check()
	for _, val := range vals {
		a.v.doc.own(val)
		a.v.arr.Push(val)
	}
}

// All ranges over the elements of a in positional order. The array
// must not be modified during iteration.
func (a Array) All() iter.Seq2[int, *Value] { return a.v.arr.All() }

// Remove removes and returns the element at position i, shifting the
// elements after it down one place. It panics if i is out of range.
func (a Array) Remove(i int) *Value {
	a.v.doc.check()
	a.bounds(i)
	return a.v.arr.OrderedRemove(i)
}

// SwapRemove removes and returns the element at position i by moving
// the final element into its place, not preserving order. It panics if
// i is out of range.
func (a Array) SwapRemove(i int) *Value {
	a.v.doc.check()
	a.bounds(i)
	return a.v.arr.SwapRemove(i)
}

func (a Array) bounds(i int) {
	if i < 0 || i >= a.v.arr.Len() {
		panic("ghhjson: array index out of range")
	}
}
