// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatcmd

import "strings"

// =============================================================================
// TOKENIZER
// =============================================================================

// Tokenize splits a line into whitespace-delimited tokens. Runs of
// whitespace are discarded; an empty or all-whitespace line yields no
// tokens. There is no quoting, escaping, or comma handling: embedded commas
// and unbalanced quotes are literal parts of a token.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// =============================================================================
// ARGUMENT CLASSIFICATION
// =============================================================================

// Classify partitions tail tokens (everything after the command name) into
// an ordered positional list and a keyword map. Each token is classified
// exactly once: a token matching key=value becomes a keyword argument, any
// other token is appended, coerced, to the positionals in original order.
// A later duplicate keyword key overwrites an earlier one.
func Classify(tokens []string) ([]any, map[string]any) {
	args := make([]any, 0, len(tokens))
	keywords := make(map[string]any)

	for _, tok := range tokens {
		if key, value, ok := splitKeyValue(tok); ok {
			keywords[key] = Coerce(value)
			continue
		}
		args = append(args, Coerce(tok))
	}

	return args, keywords
}

// splitKeyValue matches the key=value form: key and value are both
// non-empty runs of non-'=' characters. A token with an empty side, no '=',
// or more than one '=' does not match and stays positional.
func splitKeyValue(tok string) (key, value string, ok bool) {
	i := strings.IndexByte(tok, '=')
	if i <= 0 || i == len(tok)-1 {
		return "", "", false
	}
	key, value = tok[:i], tok[i+1:]
	if strings.IndexByte(value, '=') >= 0 {
		return "", "", false
	}
	return key, value, true
}
