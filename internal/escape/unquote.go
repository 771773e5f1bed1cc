// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// unescBytes maps each escape letter to the byte it denotes, or 0 for
// letters outside the escape table.
var unescBytes = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Unquote decodes a byte slice containing the encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Exactly the escapes `\" \\ \/ \b \f \n \r \t` are decoded. A Unicode
// escape or any letter outside the table is reported as an error, never
// passed through.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	for {
		dec = mem.Append(dec, src.SliceTo(i))
		if i+1 >= src.Len() {
			return nil, errors.New("incomplete escape sequence")
		}
		b := src.At(i + 1)
		if b == 'u' {
			return nil, errors.New("ghh_json does not support unicode escape sequences currently.")
		}
		e := unescBytes[b]
		if e == 0 {
			return nil, fmt.Errorf("unknown character escape: '%c' (%X)", b, b)
		}
		dec = append(dec, e)
		src = src.SliceFrom(i + 2)

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}
