// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package ghhjson

import (
	"errors"
	"strings"

	"go4.org/mem"

	"github.com/garrisonhh/ghh-json/internal/escape"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added. Exactly the escapes the parser
// accepts are produced, so quoting never fails.
func Quote(src string) string {
	return string(escape.AppendQuote(nil, mem.S(src)))
}

// Unquote decodes a JSON string value. Double quotation marks are
// removed, and escape sequences are replaced with their unescaped
// equivalents. A Unicode escape or an escape letter outside the
// supported table is reported as an error.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
