// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatcmd

import "testing"

func TestCoerce(t *testing.T) {
	tests := []struct {
		token string
		want  any
	}{
		// Numbers
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"+3", int64(3)},
		{"3.5", 3.5},
		{"-0.25", -0.25},
		{".5", 0.5},
		{"1e3", 1000.0},
		{"0", int64(0)},

		// Booleans and nil
		{"true", true},
		{"false", false},
		{"nil", nil},

		// Strings
		{"hello", "hello"},
		{"True", "True"},
		{"FALSE", "FALSE"},
		{"Nil", "Nil"},
		{"", ""},
		{"1.2.3", "1.2.3"},
		{"42abc", "42abc"},
		{"-", "-"},
		{"+", "+"},
		{".", "."},
		{"-x", "-x"},
		{"inf", "inf"},
		{"nan", "nan"},
		{"Inf", "Inf"},
		{"NaN", "NaN"},
	}

	for _, tc := range tests {
		got := Coerce(tc.token)
		if got != tc.want {
			t.Errorf("Coerce(%q) = %#v, want %#v", tc.token, got, tc.want)
		}
	}
}

// A token that looks numeric but overflows every numeric form falls back to
// a float; one that fails both parses stays a string.
func TestCoerce_LargeNumbers(t *testing.T) {
	// Too big for int64, fine as float64.
	got := Coerce("9223372036854775808")
	if _, ok := got.(float64); !ok {
		t.Errorf("Coerce overflow = %#v, want float64", got)
	}

	// Out of float64 range entirely: stays a string.
	if got := Coerce("1e999"); got != "1e999" {
		t.Errorf("Coerce(%q) = %#v, want the string back", "1e999", got)
	}
}

func TestCoerce_IsIdentityForPlainText(t *testing.T) {
	for _, token := range []string{"hello", "world", "how", "are", "you?", "a=b", "nil!"} {
		if got := Coerce(token); got != token {
			t.Errorf("Coerce(%q) = %#v, want identity", token, got)
		}
	}
}
