// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

// Package alloc provides the two allocation tiers backing a JSON
// document: a page Arena for append-only parse output, and a
// slot-indexed Heap for storage that must grow, shrink, or move after
// creation.
package alloc

// PageSize is the capacity in bytes of a normal arena page. Requests of
// PageSize or more are given a dedicated page of their own.
const PageSize = 65536

const (
	initPageCap  = 8    // initial page table capacity
	elemsPerPage = 1024 // elements per element page
)

// An Arena is a bump allocator over fixed-size pages, serving two pools:
// raw bytes for string payloads and elements of type T for tree nodes.
// Nothing is freed individually; Release drops every page at once.
//
// The zero Arena is not ready for use; call NewArena.
type Arena[T any] struct {
	pages [][]byte // pages[len-1] is the active byte page
	off   int      // bytes used in the active byte page

	elems [][]T // elems[len-1] is the active element page
	eoff  int   // elements used in the active element page

	nbytes   int
	nelems   int
	released bool
}

// NewArena constructs an empty arena with one byte page and one element
// page ready for use.
func NewArena[T any]() *Arena[T] {
	a := &Arena[T]{
		pages: make([][]byte, 0, initPageCap),
		elems: make([][]T, 0, initPageCap),
	}
	a.pages = append(a.pages, make([]byte, PageSize))
	a.elems = append(a.elems, make([]T, elemsPerPage))
	return a
}

// AllocBytes returns a slice of n arena-owned bytes, valid until Release.
// An allocation never spans two pages: when n does not fit in the active
// page, a request under PageSize opens a fresh page, while a request of
// PageSize or more is given a dedicated page sized exactly n and a fresh
// normal page is opened to continue from.
func (a *Arena[T]) AllocBytes(n int) []byte {
	a.check()
	if a.off+n > PageSize {
		if n >= PageSize {
			big := make([]byte, n)
			a.pages = append(a.pages, big, make([]byte, PageSize))
			a.off = 0
			a.nbytes += n
			return big
		}
		a.pages = append(a.pages, make([]byte, PageSize))
		a.off = 0
	}
	page := a.pages[len(a.pages)-1]
	s := page[a.off : a.off+n : a.off+n]
	a.off += n
	a.nbytes += n
	return s
}

// CopyBytes copies b into the arena and returns the arena-owned copy.
func (a *Arena[T]) CopyBytes(b []byte) []byte {
	s := a.AllocBytes(len(b))
	copy(s, b)
	return s
}

// CopyString copies s into the arena and returns the arena-owned bytes.
func (a *Arena[T]) CopyString(s string) []byte {
	b := a.AllocBytes(len(s))
	copy(b, s)
	return b
}

// NewElem returns a pointer to a zeroed element. Element pages are never
// reallocated, so the pointer is stable for the arena's lifetime.
func (a *Arena[T]) NewElem() *T {
	a.check()
	page := a.elems[len(a.elems)-1]
	if a.eoff == len(page) {
		page = make([]T, elemsPerPage)
		a.elems = append(a.elems, page)
		a.eoff = 0
	}
	p := &page[a.eoff]
	a.eoff++
	a.nelems++
	return p
}

// Release drops every page. Any later use of the arena panics.
func (a *Arena[T]) Release() {
	a.pages, a.elems = nil, nil
	a.released = true
}

func (a *Arena[T]) check() {
	if a.released {
		panic("alloc: arena used after Release")
	}
}

// Pages reports the number of byte pages held, dedicated pages included.
func (a *Arena[T]) Pages() int { return len(a.pages) }

// ElemPages reports the number of element pages held.
func (a *Arena[T]) ElemPages() int { return len(a.elems) }

// BytesUsed reports the total bytes handed out by AllocBytes.
func (a *Arena[T]) BytesUsed() int { return a.nbytes }

// Elems reports the number of elements handed out by NewElem.
func (a *Arena[T]) Elems() int { return a.nelems }
