// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

// Package ghhjson implements a small JSON document engine: a
// recursive-descent parser, a mutable in-memory tree, and a serializer
// with pretty and minified forms.
//
// The dialect is a strict subset of RFC 8259 with two deviations: the
// `\uXXXX` escape is rejected rather than decoded, and every number is
// stored as a float64 with no integer or bignum distinction.
//
// # Documents
//
// All memory behind a tree belongs to its Document. Parsing and
// construction allocate values from the document's page arena and
// growable storage from its tracked heap, and Close releases the whole
// of it at once:
//
//	d, err := ghhjson.LoadString(`{"name": "garrison", "tags": [1, 2]}`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Close()
//
// A syntax error carries the position and the source line of the
// offense; its Detail method renders the line with a caret under the
// offending column.
//
// # Navigation
//
// Value accessors return explicit errors when the type does not match.
// Get probes chain through missing members without panicking, and Path
// walks a mixed key and index path in one call:
//
//	name, err := d.Root().GetString("name")
//	second, err := ghhjson.Path(d.Root(), "tags", 1)
//
// # Building
//
// New values are created through the document and linked in through
// the Object and Array views:
//
//	d := ghhjson.New()
//	root := d.NewObject()
//	d.SetRoot(root)
//	obj, _ := root.Object()
//	obj.PutString("name", "garrison")
//	obj.PutArray("tags", d.NewNumber(1), d.NewNumber(2))
//
// Keys are identified by their 64-bit FNV-1a hashes: two keys with
// equal hashes are the same member. Objects keep key insertion order
// for iteration and serialization.
//
// # Output
//
// Serialize renders a tree in a pretty form (one member per line,
// configurable indent) or a mini form that drops exactly the line
// breaks, indentation, and the space after ":". Output always ends
// with a single newline:
//
//	text, err := ghhjson.Serialize(d.Root(), ghhjson.Format{Mini: true})
package ghhjson
