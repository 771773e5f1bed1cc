// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package ghhjson

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"go4.org/mem"

	"github.com/garrisonhh/ghh-json/internal/escape"
)

// A Format controls serialized output. The zero Format is the pretty
// form with no indentation.
type Format struct {
	Mini   bool // single line, no space after ":"
	Indent int  // spaces of indentation per level in the pretty form
}

// Serialize renders the tree rooted at v. The pretty form places each
// member or element on its own line, indented by level, with ": " and
// ",\n" separators; the mini form drops exactly the line breaks,
// indentation, and the space after ":". Output always ends with one
// newline.
//
// Serializing a nil value, or a tree with a nil value inside it,
// reports an error, as does a number with no wire form (NaN or an
// infinity).
func Serialize(v *Value, f Format) ([]byte, error) {
	s := serializer{f: f}
	if err := s.value(v, 0); err != nil {
		return nil, err
	}
	s.buf = append(s.buf, '\n')
	return s.buf, nil
}

type serializer struct {
	buf []byte
	f   Format
}

func (s *serializer) value(v *Value, level int) error {
	if v == nil {
		return errors.New("attempted to serialize a nil value")
	}
	switch v.kind {
	case TypeObject:
		return s.object(v, level)
	case TypeArray:
		return s.array(v, level)
	case TypeString:
		s.buf = escape.AppendQuote(s.buf, mem.B(v.str))
	case TypeNumber:
		return s.number(v.num)
	case TypeBool:
		if v.b {
			s.buf = append(s.buf, "true"...)
		} else {
			s.buf = append(s.buf, "false"...)
		}
	case TypeNull:
		s.buf = append(s.buf, "null"...)
	}
	return nil
}

func (s *serializer) object(v *Value, level int) error {
	s.buf = append(s.buf, '{')
	s.nl()
	first := true
	for k, m := range v.obj.All() {
		if !first {
			s.buf = append(s.buf, ',')
			s.nl()
		}
		first = false
		s.indent(level + 1)
		s.buf = escape.AppendQuote(s.buf, mem.B(k))
		s.buf = append(s.buf, ':')
		if !s.f.Mini {
			s.buf = append(s.buf, ' ')
		}
		if err := s.value(m, level+1); err != nil {
			return err
		}
	}
	s.nl()
	s.indent(level)
	s.buf = append(s.buf, '}')
	return nil
}

func (s *serializer) array(v *Value, level int) error {
	s.buf = append(s.buf, '[')
	s.nl()
	for i, e := range v.arr.All() {
		if i > 0 {
			s.buf = append(s.buf, ',')
			s.nl()
		}
		s.indent(level + 1)
		if err := s.value(e, level+1); err != nil {
			return err
		}
	}
	s.nl()
	s.indent(level)
	s.buf = append(s.buf, ']')
	return nil
}

// Bounds within which truncation proves a double holds an integer
// representable as int64. The upper bound is one past MaxInt64; both
// are exact as doubles.
const (
	minInt64f = -1 << 63
	maxInt64f = 1 << 63
)

// number prints x as a bare integer literal when truncation preserves
// it exactly and it fits in int64, and as fixed six-digit decimal
// otherwise. There is no scientific notation: very large or very
// precise values do not round-trip, they flatten into the fixed form.
func (s *serializer) number(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("cannot serialize %g", x)
	}
	if t := math.Trunc(x); t == x && x >= minInt64f && x < maxInt64f {
		s.buf = strconv.AppendInt(s.buf, int64(x), 10)
	} else {
		s.buf = strconv.AppendFloat(s.buf, x, 'f', 6, 64)
	}
	return nil
}

func (s *serializer) nl() {
	if !s.f.Mini {
		s.buf = append(s.buf, '\n')
	}
}

func (s *serializer) indent(level int) {
	if !s.f.Mini {
		for i := 0; i < level*s.f.Indent; i++ {
			s.buf = append(s.buf, ' ')
		}
	}
}
