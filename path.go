// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package ghhjson

import "fmt"

// Path traverses a sequential path into the structure of v, where path
// elements are either strings (denoting object keys) or integers
// (denoting offsets into arrays). Negative offsets count backward from
// the end of the array (-1 is last). If the path cannot be completely
// consumed, traversal stops with an error; a missing key reports
// ErrNotFound in its error chain.
func Path(v *Value, path ...any) (*Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			if cur.Type() != TypeObject {
				return nil, fmt.Errorf("cannot traverse %s with %q", cur.Type(), t)
			}
			m, ok := cur.obj.Get(t)
			if !ok {
				return nil, fmt.Errorf("key %q %w", t, ErrNotFound)
			}
			cur = m
		case int:
			if cur.Type() != TypeArray {
				return nil, fmt.Errorf("cannot traverse %s with %v", cur.Type(), t)
			}
			n := cur.arr.Len()
			i := t
			if i < 0 {
				i += n
			}
			if i < 0 || i >= n {
				return nil, fmt.Errorf("array index %d out of bounds (n=%d)", t, n)
			}
			cur = cur.arr.At(i)
		default:
			return nil, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}
