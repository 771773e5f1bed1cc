// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package alloc

import (
	"strings"
	"testing"

	"github.com/creachadair/mds/mtest"
)

func TestArenaBytes(t *testing.T) {
	a := NewArena[int]()
	if got := a.Pages(); got != 1 {
		t.Errorf("Pages on a fresh arena: got %d, want 1", got)
	}

	p := a.CopyString("alpha")
	q := a.CopyString("beta")
	if got := a.Pages(); got != 1 {
		t.Errorf("Pages: got %d, want 1", got)
	}
	if got := string(p); got != "alpha" {
		t.Errorf("first copy: got %q, want alpha", got)
	}
	if got := string(q); got != "beta" {
		t.Errorf("second copy: got %q, want beta", got)
	}

	// Slices handed out must not alias each other's storage.
	for i := range p {
		p[i] = 'x'
	}
	if got := string(q); got != "beta" {
		t.Errorf("second copy after scribbling on first: got %q, want beta", got)
	}
	if got := a.BytesUsed(); got != 9 {
		t.Errorf("BytesUsed: got %d, want 9", got)
	}
}

func TestArenaPageRoll(t *testing.T) {
	a := NewArena[int]()
	a.AllocBytes(PageSize - 4)
	if got := a.Pages(); got != 1 {
		t.Errorf("Pages: got %d, want 1", got)
	}

	// Does not fit in the 4 bytes remaining, so a fresh page opens.
	s := a.AllocBytes(16)
	if got := len(s); got != 16 {
		t.Errorf("len: got %d, want 16", got)
	}
	if got := a.Pages(); got != 2 {
		t.Errorf("Pages: got %d, want 2", got)
	}
}

func TestArenaOversized(t *testing.T) {
	a := NewArena[int]()
	a.AllocBytes(8)
	big := a.CopyString(strings.Repeat("j", PageSize+100))
	if got, want := len(big), PageSize+100; got != want {
		t.Errorf("len: got %d, want %d", got, want)
	}

	// A dedicated page for the large block plus a fresh normal page.
	if got := a.Pages(); got != 3 {
		t.Errorf("Pages: got %d, want 3", got)
	}

	// The fresh page is active and serves small requests again.
	a.AllocBytes(8)
	if got := a.Pages(); got != 3 {
		t.Errorf("Pages after small alloc: got %d, want 3", got)
	}
}

func TestArenaPageSizeExact(t *testing.T) {
	// An exactly page-sized request on an untouched page is served by the
	// normal bump path without opening a dedicated page.
	a := NewArena[int]()
	s := a.AllocBytes(PageSize)
	if got := len(s); got != PageSize {
		t.Errorf("len: got %d, want %d", got, PageSize)
	}
	if got := a.Pages(); got != 1 {
		t.Errorf("Pages: got %d, want 1", got)
	}
}

func TestArenaElems(t *testing.T) {
	a := NewArena[int]()

	// Allocate past one element page and verify earlier pointers survive
	// the rollover intact.
	ps := make([]*int, 0, elemsPerPage+5)
	for i := 0; i < elemsPerPage+5; i++ {
		p := a.NewElem()
		if *p != 0 {
			t.Fatalf("element %d: got %d, want zeroed", i, *p)
		}
		*p = i
		ps = append(ps, p)
	}
	if got := a.ElemPages(); got != 2 {
		t.Errorf("ElemPages: got %d, want 2", got)
	}
	for i, p := range ps {
		if *p != i {
			t.Errorf("element %d: got %d, want %d", i, *p, i)
		}
	}
	if got, want := a.Elems(), elemsPerPage+5; got != want {
		t.Errorf("Elems: got %d, want %d", got, want)
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena[string]()
	a.CopyString("soon to vanish")
	a.NewElem()
	a.Release()
	a.Release() // releasing twice is harmless

	mtest.MustPanic(t, func() { a.AllocBytes(1) })
	mtest.MustPanic(t, func() { a.NewElem() })
}
