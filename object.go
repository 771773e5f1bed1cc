// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package ghhjson

import "iter"

// An Object is a view of a Value of object type, with member access
// and modification. Obtain one from Value.Object, Document.NewObject
// followed by Value.Object, or the Put helpers. The view is only as
// valid as the value behind it.
//
// Two keys are the same member exactly when their hashes are equal.
// Members iterate in key insertion order.
type Object struct {
	v *Value
}

// Value returns the value behind o.
func (o Object) Value() *Value { return o.v }

// Len reports the number of members in o.
func (o Object) Len() int { return o.v.obj.Len() }

// Has reports whether o has a member named key.
func (o Object) Has(key string) bool {
	_, ok := o.v.obj.Get(key)
	return ok
}

// Get returns the member named key, or nil if there is none.
func (o Object) Get(key string) *Value {
	m, _ := o.v.obj.Get(key)
	return m
}

// Keys returns the keys of o in insertion order.
func (o Object) Keys() []string {
	out := make([]string, 0, o.v.obj.Len())
	for k := range o.v.obj.All() {
		out = append(out, string(k))
	}
	return out
}

// All ranges over the members of o in key insertion order. The object
// must not be modified during iteration.
func (o Object) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for k, m := range o.v.obj.All() {
			if !yield(string(k), m) {
				return
			}
		}
	}
}

// Put stores val as the member of o named by key. A member whose key
// hashes equally is replaced in place, keeping its position in key
// order. val must belong to the same document as o, or be nil.
func (o Object) Put(key string, val *Value) {
	d := o.v.doc
	d.check()
	d.own(val)
	o.v.obj.Put(d.arena.CopyString(key), val)
}

// PutObject creates an empty object value, stores it under key, and
// returns its view for further construction.
func (o Object) PutObject(key string) Object {
	child := o.v.doc.NewObject()
	o.Put(key, child)
	return Object{child}
}

// PutArray creates an array value holding elems, stores it under key,
// and returns its view.
func (o Object) PutArray(key string, elems ...*Value) Array {
	child := o.v.doc.NewArray(elems...)
	o.Put(key, child)
	return Array{child}
}

// PutString stores a new string value under key and returns it.
func (o Object) PutString(key, s string) *Value {
	child := o.v.doc.NewString(s)
	o.Put(key, child)
	return child
}

// PutNumber stores a new number value under key and returns it.
func (o Object) PutNumber(key string, f float64) *Value {
	child := o.v.doc.NewNumber(f)
	o.Put(key, child)
	return child
}

// PutBool stores a new bool value under key and returns it.
func (o Object) PutBool(key string, b bool) *Value {
	child := o.v.doc.NewBool(b)
	o.Put(key, child)
	return child
}

// PutNull stores a new null value under key and returns it.
func (o Object) PutNull(key string) *Value {
	child := o.v.doc.NewNull()
	o.Put(key, child)
	return child
}

// Pop removes and returns the member named key, reporting false if
// there is none. The vacated key-order slot is filled by the final
// key, so the order of the remaining keys changes; use PopOrdered when
// order matters.
func (o Object) Pop(key string) (*Value, bool) {
	o.v.doc.check()
	return o.v.obj.Delete(key)
}

// PopOrdered is Pop preserving the order of the remaining keys, at the
// cost of shifting them.
func (o Object) PopOrdered(key string) (*Value, bool) {
	o.v.doc.check()
	return o.v.obj.DeleteOrdered(key)
}
