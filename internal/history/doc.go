// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history provides a persistent log of command invocations.
//
// Every line the REPL feeds through the engine is recorded with its
// dispatch outcome: resolved command name, coerced positional and keyword
// arguments (as JSON), and whether a handler actually ran. Storage is a
// single SQLite database, so the log survives restarts and can be queried
// for per-command usage counts.
package history
