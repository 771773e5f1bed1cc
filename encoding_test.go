// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package ghhjson_test

import (
	"testing"

	ghhjson "github.com/garrisonhh/ghh-json"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a/b", `"a\/b"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\tand\rret", `"tab\tand\rret"`},
	}
	for _, tc := range tests {
		if got := ghhjson.Quote(tc.input); got != tc.want {
			t.Errorf("Quote(%q): got %#q, want %#q", tc.input, got, tc.want)
		}
	}
}

func TestUnquoteValue(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"say \"hi\""`, `say "hi"`},
		{`"a\/b"`, "a/b"},
		{`"line\nbreak"`, "line\nbreak"},
	}
	for _, tc := range tests {
		got, err := ghhjson.Unquote(tc.input)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", tc.input, err)
		} else if string(got) != tc.want {
			t.Errorf("Unquote(%#q): got %q, want %q", tc.input, got, tc.want)
		}
	}

	bad := []string{``, `"`, `x`, `"unclosed`, `"\u0041"`, `"\q"`, `"trailing\"`}
	for _, tc := range bad {
		if got, err := ghhjson.Unquote(tc); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", tc, got)
		}
	}
}
