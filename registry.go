// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatcmd

import "errors"

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUnknownCommand indicates a registry operation on a name with no record.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrEmptyName indicates a command registered under an empty name.
	ErrEmptyName = errors.New("command name must not be empty")
	// ErrNilHandler indicates a command registered without a handler.
	ErrNilHandler = errors.New("command handler must not be nil")
)

// =============================================================================
// COMMAND RECORD
// =============================================================================

// Command is a registered command record. The handler is fixed at
// registration; only the activation flag is mutable. Replacing a command's
// handler requires re-adding it under the same name.
type Command struct {
	// Name is the registration name, matched case-sensitively.
	Name string

	// Activated gates text-driven dispatch. Deactivated commands are
	// invisible to Process but still runnable via Run.
	Activated bool

	handler Handler
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// AddCommand registers a command, overwriting any existing record of the
// same name. The returned record is shared: activation changes made through
// Toggle or SetActivated are visible through it.
func (e *Engine) AddCommand(name string, activated bool, handler Handler) (*Command, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	cmd := &Command{Name: name, Activated: activated, handler: handler}

	e.mu.Lock()
	e.commands[name] = cmd
	e.mu.Unlock()

	return cmd, nil
}

// Command retrieves a command record by name.
func (e *Engine) Command(name string) (*Command, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cmd, ok := e.commands[name]
	return cmd, ok
}

// RemoveCommand deletes a command record. Reports whether a record existed
// and was removed.
func (e *Engine) RemoveCommand(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.commands[name]; !ok {
		return false
	}
	delete(e.commands, name)
	return true
}

// Toggle flips a command's activation flag and returns the new value.
// Returns ErrUnknownCommand if no record exists under the name.
func (e *Engine) Toggle(name string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cmd, ok := e.commands[name]
	if !ok {
		return false, ErrUnknownCommand
	}
	cmd.Activated = !cmd.Activated
	return cmd.Activated, nil
}

// SetActivated sets a command's activation flag explicitly and returns the
// new value. Returns ErrUnknownCommand if no record exists under the name.
func (e *Engine) SetActivated(name string, activated bool) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cmd, ok := e.commands[name]
	if !ok {
		return false, ErrUnknownCommand
	}
	cmd.Activated = activated
	return cmd.Activated, nil
}

// Run invokes a command's handler directly with the given positional
// arguments, bypassing prefix matching and the activation flag. Activation
// only gates text-driven dispatch, never programmatic invocation.
func (e *Engine) Run(name string, args ...any) (any, error) {
	e.mu.RLock()
	cmd, ok := e.commands[name]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownCommand
	}
	return cmd.handler(Call{Name: name, Args: args}), nil
}
