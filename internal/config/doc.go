// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for chatcmd.
//
// Configuration lives in a single TOML file under ~/.chatcmd/config.toml.
// Fields absent from the file keep built-in defaults, so an empty or missing
// file is always valid.
//
// # Sections
//
//   - [engine]: command prefixes (in match-priority order) and commands to
//     register deactivated
//   - [history]: invocation log location and default listing size
//   - [repl]: prompt, color, and flood limiter settings
//
// # Hot Reload
//
// Watcher observes the config file via fsnotify and delivers reloaded
// configs to a callback, debounced so editor save patterns (multiple
// writes, rename-over) produce a single reload.
package config
