// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatcmd

import "strings"

// =============================================================================
// PREFIX SET
// =============================================================================

// AddPrefix appends one or more prefixes to the prefix set. No validation
// or uniqueness check is performed: duplicates are kept, and insertion
// order determines match priority.
func (e *Engine) AddPrefix(prefix string, more ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prefixes = append(e.prefixes, prefix)
	e.prefixes = append(e.prefixes, more...)
}

// RemovePrefix removes every occurrence of each given prefix and returns
// the removed occurrences, once per removal. Targets are processed
// independently; a prefix that was never registered contributes nothing.
func (e *Engine) RemovePrefix(prefixes ...string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var removed []string
	for _, target := range prefixes {
		kept := e.prefixes[:0]
		for _, p := range e.prefixes {
			if p == target {
				removed = append(removed, p)
				continue
			}
			kept = append(kept, p)
		}
		e.prefixes = kept
	}
	return removed
}

// MatchPrefix returns the first registered prefix, in insertion order, that
// the line starts with. There is no longest-match rule: registration order
// alone decides precedence. A line matching no prefix is a normal
// not-found outcome, not an error.
func (e *Engine) MatchPrefix(line string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return matchPrefix(e.prefixes, line)
}

// Prefixes returns a snapshot of the prefix set in insertion order.
func (e *Engine) Prefixes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, len(e.prefixes))
	copy(out, e.prefixes)
	return out
}

// SetPrefixes replaces the prefix set wholesale, preserving the order of
// the given slice. Used by hosts that reload prefixes from configuration.
func (e *Engine) SetPrefixes(prefixes []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prefixes = make([]string, len(prefixes))
	copy(e.prefixes, prefixes)
}

// matchPrefix is the lock-free core of MatchPrefix.
func matchPrefix(prefixes []string, line string) (string, bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return p, true
		}
	}
	return "", false
}
