// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatcmd

import "strconv"

// =============================================================================
// VALUE COERCION
// =============================================================================

// Coerce converts a raw token into a typed scalar. Checks run in a fixed
// order and are mutually exclusive:
//
//  1. numeric literal -> int64 (integers) or float64 (decimals)
//  2. "true" / "false" -> bool
//  3. "nil" -> untyped nil
//  4. anything else -> the token itself, unchanged
//
// Coerce never fails; a token that parses as none of the above is a string.
func Coerce(token string) any {
	if looksNumeric(token) {
		if n, err := strconv.ParseInt(token, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return f
		}
	}
	switch token {
	case "true":
		return true
	case "false":
		return false
	case "nil":
		return nil
	}
	return token
}

// looksNumeric reports whether a token has the shape of a numeric literal.
// ParseFloat alone is too permissive ("inf", "nan" and friends would stop
// being ordinary words), so only tokens starting with a digit, or with a
// sign or dot followed by a digit or dot, are handed to strconv.
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if c >= '0' && c <= '9' {
		return true
	}
	if (c == '+' || c == '-' || c == '.') && len(s) > 1 {
		d := s[1]
		return (d >= '0' && d <= '9') || d == '.'
	}
	return false
}
