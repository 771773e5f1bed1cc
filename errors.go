// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package ghhjson

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is the base error reported when a key or path names no
// member. Use errors.Is to distinguish absence from other failures.
var ErrNotFound = errors.New("not found")

// A LineCol describes the line number and column offset of a location
// in source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Offset   int     // byte offset of the offending input position, 0-based
	Location LineCol // line and column of the offending input position
	LineText string  // the full source line containing the position
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// Detail renders the source line of the error with a caret marking the
// offending column, for inclusion in diagnostics:
//
//	     3 | "c": flse,
//	       |      ^
func (s *SyntaxError) Detail() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%6d | %s\n", s.Location.Line, s.LineText)
	fmt.Fprintf(&sb, "%6s | %*s", "", s.Location.Column+1, "^")
	return sb.String()
}

// A TypeError reports a value accessed as a type it does not have.
type TypeError struct {
	Want Type // the type requested
	Got  Type // the type the value has
}

func (t *TypeError) Error() string {
	return fmt.Sprintf("cannot use %s value as %s", t.Got, t.Want)
}
