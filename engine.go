// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatcmd

import (
	"strings"
	"sync"
)

// =============================================================================
// HANDLER AND CALL
// =============================================================================

// Handler executes one command invocation. Whatever it returns is handed
// back to the caller of Process or Run unchanged; nil is fine. Panics are
// not recovered: only the host knows the right recovery policy for a
// failing command.
type Handler func(call Call) any

// Call carries everything a handler receives for one invocation. Keyword
// arguments travel with the call rather than through shared state, so two
// concurrent dispatches can never observe each other's keywords.
type Call struct {
	// Line is the raw input line. Empty for direct Run invocations.
	Line string

	// Prefix is the matched prefix. Empty for direct Run invocations.
	Prefix string

	// Name is the resolved command name.
	Name string

	// Args are the coerced positional arguments, in input order.
	Args []any

	// Keywords are the coerced keyword arguments. May be nil for direct
	// Run invocations.
	Keywords map[string]any
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine holds the prefix set, the command registry, and the keyword
// snapshot of the most recent dispatch. All methods are safe for
// concurrent use; handlers run outside the engine lock.
type Engine struct {
	mu       sync.RWMutex
	prefixes []string
	commands map[string]*Command
	keywords map[string]any
}

// New creates an engine with no prefixes and no commands.
func New() *Engine {
	return &Engine{
		commands: make(map[string]*Command),
		keywords: make(map[string]any),
	}
}

// Keywords returns a copy of the keyword arguments of the most recent
// Process call that reached argument classification. It is overwritten
// wholesale on every such call, including to empty when the call carried
// no keywords, and is left untouched by calls that fail to match a prefix
// or resolve a command.
func (e *Engine) Keywords() map[string]any {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string]any, len(e.keywords))
	for k, v := range e.keywords {
		out[k] = v
	}
	return out
}

// =============================================================================
// DISPATCH
// =============================================================================

// Process runs one line through the full pipeline: prefix match, tokenize,
// command resolution, argument classification, handler invocation. It
// returns the handler's return value and true when a command was
// dispatched.
//
// A line that matches no prefix, produces no command token, names no
// registered command, or names a deactivated command yields (nil, false).
// These are normal negative outcomes, not errors.
func (e *Engine) Process(line string) (any, bool) {
	e.mu.RLock()
	prefix, ok := matchPrefix(e.prefixes, line)
	e.mu.RUnlock()
	if !ok {
		return nil, false
	}

	// The prefix is part of the first token, so the whole line is
	// tokenized and the prefix stripped off afterwards.
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil, false
	}
	name := strings.TrimPrefix(tokens[0], prefix)
	if name == "" {
		return nil, false
	}

	e.mu.RLock()
	cmd, found := e.commands[name]
	activated := found && cmd.Activated
	e.mu.RUnlock()
	if !found || !activated {
		return nil, false
	}

	args, keywords := Classify(tokens[1:])

	// Snapshot replaced wholesale, even when this call has no keywords.
	e.mu.Lock()
	e.keywords = keywords
	handler := cmd.handler
	e.mu.Unlock()

	return handler(Call{
		Line:     line,
		Prefix:   prefix,
		Name:     name,
		Args:     args,
		Keywords: keywords,
	}), true
}
