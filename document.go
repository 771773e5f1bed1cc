// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package ghhjson

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tailscale/hujson"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/garrisonhh/ghh-json/internal/alloc"
)

// fileBufSize is the read buffer used when loading from a file.
const fileBufSize = 4096

// A Document owns a tree of Values and all of the memory behind them.
// Parsing and construction allocate from the document's page arena and
// tracked heap; Close releases the whole document at once, and every
// Value, Object, and Array obtained from it becomes invalid together.
//
// A document and its values are confined to a single goroutine.
type Document struct {
	arena  *alloc.Arena[Value]
	heap   *alloc.Heap
	root   *Value
	closed bool
}

// New constructs an empty document with no root value.
func New() *Document {
	return &Document{
		arena: alloc.NewArena[Value](),
		heap:  alloc.NewHeap(),
	}
}

// Load parses text into a new document. The root of the document holds
// the parsed value, or nil when text is empty. A malformed input
// reports an error of concrete type [*SyntaxError] and no document.
func Load(text []byte) (*Document, error) {
	d := New()
	root, err := parse(d, text)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.root = root
	return d, nil
}

// LoadString parses s into a new document.
func LoadString(s string) (*Document, error) { return Load([]byte(s)) }

// LoadFile reads and parses the file at path. A failure to open or
// read the file is reported as is, distinct from a parse failure. The
// file may begin with a Unicode byte order mark, in which case its
// encoding is converted to UTF-8 before parsing.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bom := unicode.BOMOverride(encoding.Nop.NewDecoder())
	br := bufio.NewReaderSize(f, fileBufSize)
	text, err := io.ReadAll(transform.NewReader(br, bom))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Load(text)
}

// LoadHuJSON parses text in the HuJSON relaxed form, which permits
// comments and trailing commas, by standardizing it to plain JSON
// first. Standardizing replaces relaxations with spaces, so positions
// in syntax errors still refer to the original text.
func LoadHuJSON(text []byte) (*Document, error) {
	std, err := hujson.Standardize(text)
	if err != nil {
		return nil, err
	}
	return Load(std)
}

// Close releases all memory held by the document. Closing twice is
// harmless; any other use of a closed document or its values panics.
func (d *Document) Close() {
	if d.closed {
		return
	}
	d.arena.Release()
	d.heap.Close()
	d.root = nil
	d.closed = true
}

// Root returns the document's root value, or nil when the document is
// empty.
func (d *Document) Root() *Value {
	d.check()
	return d.root
}

// SetRoot replaces the document's root value. v must belong to d, or
// be nil to empty the document.
func (d *Document) SetRoot(v *Value) {
	d.check()
	d.own(v)
	d.root = v
}

// NewObject returns a new empty object value owned by d.
func (d *Document) NewObject() *Value {
	v := d.newValue(TypeObject)
	v.obj = newMemberMap(d.heap)
	return v
}

// NewArray returns a new array value owned by d holding elems, with
// room reserved for at least len(elems) elements.
func (d *Document) NewArray(elems ...*Value) *Value {
	v := d.newValue(TypeArray)
	v.arr = newElemVector(d.heap, len(elems))
	for _, e := range elems {
		d.own(e)
		v.arr.Push(e)
	}
	return v
}

// NewString returns a new string value owned by d, copying s into the
// document's storage.
func (d *Document) NewString(s string) *Value {
	v := d.newValue(TypeString)
	v.str = d.arena.CopyString(s)
	return v
}

// NewNumber returns a new number value owned by d.
func (d *Document) NewNumber(f float64) *Value {
	v := d.newValue(TypeNumber)
	v.num = f
	return v
}

// NewBool returns a new bool value owned by d.
func (d *Document) NewBool(b bool) *Value {
	v := d.newValue(TypeBool)
	v.b = b
	return v
}

// NewNull returns a new null value owned by d.
func (d *Document) NewNull() *Value { return d.newValue(TypeNull) }

// newStringBytes is NewString for text already held as bytes.
func (d *Document) newStringBytes(b []byte) *Value {
	v := d.newValue(TypeString)
	v.str = d.arena.CopyBytes(b)
	return v
}

func (d *Document) newValue(t Type) *Value {
	d.check()
	v := d.arena.NewElem()
	v.doc = d
	v.kind = t
	return v
}

func (d *Document) check() {
	if d.closed {
		panic("ghhjson: use of closed Document")
	}
}

// own verifies that v may be linked into d's tree.
func (d *Document) own(v *Value) {
	if v != nil && v.doc != d {
		panic("ghhjson: value belongs to a different Document")
	}
}

// Stats describes the memory held by a document.
type Stats struct {
	ArenaPages int // arena pages held, dedicated and element pages included
	ArenaBytes int // string bytes handed out by the arena
	Values     int // values allocated
	HeapBlocks int // live heap blocks: object tables, key orders, array storage
}

// Stats reports the document's memory footprint.
func (d *Document) Stats() Stats {
	d.check()
	return Stats{
		ArenaPages: d.arena.Pages() + d.arena.ElemPages(),
		ArenaBytes: d.arena.BytesUsed(),
		Values:     d.arena.Elems(),
		HeapBlocks: d.heap.Live(),
	}
}
