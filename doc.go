// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatcmd is a command parsing and dispatch engine for free-text
// chat input.
//
// Given a raw line of text, the engine decides whether the line invokes a
// registered command, splits the remainder into positional and keyword
// arguments, coerces primitive-looking tokens to typed values, and invokes
// the command's handler.
//
// # Key Types
//
//   - Engine: prefix set, command registry, and dispatcher in one value
//   - Command: a registered command record (handler + activation flag)
//   - Call: everything a handler receives for one invocation
//   - Handler: the handler function signature
//
// # Usage
//
// Register a prefix and a command, then feed lines to Process:
//
//	eng := chatcmd.New()
//	eng.AddPrefix("!")
//	eng.AddCommand("greet", true, func(call chatcmd.Call) any {
//	    return fmt.Sprintf("hello %v", call.Args)
//	})
//	out, ok := eng.Process("!greet world loud=true")
//
// A line that matches no prefix, names no registered command, or names a
// deactivated command is not an error: Process reports ok=false and does
// nothing else.
//
// # Argument Syntax
//
// Tokens are split on runs of whitespace; there is no quoting or escaping.
// A token of the form key=value (both sides non-empty, neither containing a
// further '=') is a keyword argument; every other token is positional.
// Values are coerced: integer and decimal literals become int64/float64,
// the literal words true/false become booleans, the literal word nil
// becomes an untyped nil, and everything else stays a string. Note the
// sharp edge this implies: a positional that legitimately contains a single
// bare '=' (say, a search query "a=b") is always read as a keyword.
package chatcmd
