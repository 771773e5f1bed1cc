// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package ghhjson

import (
	"bytes"
	"fmt"

	"github.com/garrisonhh/ghh-json/internal/alloc"
	"github.com/garrisonhh/ghh-json/internal/rhmap"
	"github.com/garrisonhh/ghh-json/internal/seq"
)

func newMemberMap(h *alloc.Heap) *rhmap.Map[*Value] { return rhmap.New[*Value](h) }

func newElemVector(h *alloc.Heap, hint int) *seq.Vector[*Value] { return seq.New[*Value](h, hint) }

// A Type identifies the JSON type of a Value.
type Type byte

const (
	TypeObject Type = iota
	TypeArray
	TypeString
	TypeNumber
	TypeBool
	TypeNull
)

var typeStr = [...]string{
	TypeObject: "object",
	TypeArray:  "array",
	TypeString: "string",
	TypeNumber: "number",
	TypeBool:   "bool",
	TypeNull:   "null",
}

func (t Type) String() string {
	if int(t) >= len(typeStr) {
		return fmt.Sprintf("Type(%d)", byte(t))
	}
	return typeStr[t]
}

// A Value is one node of a document tree: an object, array, string,
// number, boolean, or null. Values are created by and belong to a
// Document, are allocated from its storage, and are valid only until
// the document is closed.
type Value struct {
	doc  *Document
	kind Type
	b    bool
	num  float64
	str  []byte              // string payload, arena owned
	obj  *rhmap.Map[*Value]  // object members
	arr  *seq.Vector[*Value] // array elements
}

// Type reports the JSON type of v. A nil Value reports TypeNull, so
// probes that came up empty read as null.
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.kind
}

// Object returns the object view of v, or a TypeError if v is not an
// object.
func (v *Value) Object() (Object, error) {
	if v.Type() != TypeObject {
		return Object{}, &TypeError{Want: TypeObject, Got: v.Type()}
	}
	return Object{v}, nil
}

// Array returns the array view of v, or a TypeError if v is not an
// array.
func (v *Value) Array() (Array, error) {
	if v.Type() != TypeArray {
		return Array{}, &TypeError{Want: TypeArray, Got: v.Type()}
	}
	return Array{v}, nil
}

// Text returns the text of a string value.
func (v *Value) Text() (string, error) {
	if v.Type() != TypeString {
		return "", &TypeError{Want: TypeString, Got: v.Type()}
	}
	return string(v.str), nil
}

// Bytes returns the raw bytes of a string value. The slice aliases
// document-owned storage: it must not be modified and is valid only
// until the document is closed.
func (v *Value) Bytes() ([]byte, error) {
	if v.Type() != TypeString {
		return nil, &TypeError{Want: TypeString, Got: v.Type()}
	}
	return v.str, nil
}

// Number returns the numeric value of v.
func (v *Value) Number() (float64, error) {
	if v.Type() != TypeNumber {
		return 0, &TypeError{Want: TypeNumber, Got: v.Type()}
	}
	return v.num, nil
}

// Bool returns the truth value of v.
func (v *Value) Bool() (bool, error) {
	if v.Type() != TypeBool {
		return false, &TypeError{Want: TypeBool, Got: v.Type()}
	}
	return v.b, nil
}

// Get returns the member of an object value named by key, or nil if v
// is nil, is not an object, or has no such member. Probes chain safely
// through missing links: v.Get("a").Get("b") is nil when "a" is
// absent.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != TypeObject {
		return nil
	}
	m, _ := v.obj.Get(key)
	return m
}

// GetObject returns the object view of the member of v named by key.
func (v *Value) GetObject(key string) (Object, error) {
	m, err := v.member(key)
	if err != nil {
		return Object{}, err
	}
	return m.Object()
}

// GetArray returns the array view of the member of v named by key.
func (v *Value) GetArray(key string) (Array, error) {
	m, err := v.member(key)
	if err != nil {
		return Array{}, err
	}
	return m.Array()
}

// GetString returns the text of the string member of v named by key.
func (v *Value) GetString(key string) (string, error) {
	m, err := v.member(key)
	if err != nil {
		return "", err
	}
	return m.Text()
}

// GetNumber returns the value of the number member of v named by key.
func (v *Value) GetNumber(key string) (float64, error) {
	m, err := v.member(key)
	if err != nil {
		return 0, err
	}
	return m.Number()
}

// GetBool returns the truth value of the bool member of v named by
// key.
func (v *Value) GetBool(key string) (bool, error) {
	m, err := v.member(key)
	if err != nil {
		return false, err
	}
	return m.Bool()
}

func (v *Value) member(key string) (*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("field %q %w", key, ErrNotFound)
	}
	if v.kind != TypeObject {
		return nil, &TypeError{Want: TypeObject, Got: v.kind}
	}
	m, ok := v.obj.Get(key)
	if !ok {
		return nil, fmt.Errorf("field %q %w", key, ErrNotFound)
	}
	return m, nil
}

// String renders v in its minified wire form for debugging. Use
// Serialize for output meant to be parsed back.
func (v *Value) String() string {
	if v == nil {
		return "null"
	}
	data, err := Serialize(v, Format{Mini: true})
	if err != nil {
		return "<invalid>"
	}
	return string(bytes.TrimSuffix(data, []byte("\n")))
}
