// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package escape

import "go4.org/mem"

// escBytes maps each byte that must be escaped in output to its escape
// letter, or 0 for bytes emitted verbatim.
var escBytes = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// AppendQuote appends the encoded form of src to dst, including the
// enclosing quotation marks, and returns the extended buffer. Exactly
// the eight escapes Unquote accepts are produced; all other bytes pass
// through unchanged.
func AppendQuote(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if e := escBytes[b]; e != 0 {
			dst = append(dst, '\\', e)
		} else {
			dst = append(dst, b)
		}
	}
	return append(dst, '"')
}
