// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - interactive loop: liner input, flood guard, dispatch, history.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"golang.org/x/time/rate"

	"github.com/jeranaias/chatcmd"
	"github.com/jeranaias/chatcmd/internal/config"
	"github.com/jeranaias/chatcmd/internal/history"
	"github.com/jeranaias/chatcmd/internal/styles"
)

// =============================================================================
// INPUT
// =============================================================================

// input wraps liner with a persistent history file under the config dir.
type input struct {
	line        *liner.State
	historyFile string
}

func newInput() *input {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	in := &input{
		line:        line,
		historyFile: filepath.Join(configDir, "repl_history"),
	}
	if f, err := os.Open(in.historyFile); err == nil {
		in.line.ReadHistory(f)
		f.Close()
	}
	return in
}

func (in *input) Read(prompt string) (string, error) {
	text, err := in.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) != "" {
		in.line.AppendHistory(text)
	}
	return text, nil
}

func (in *input) Close() {
	if err := config.EnsureConfigDir(); err == nil {
		if f, err := os.OpenFile(in.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			in.line.WriteHistory(f)
			f.Close()
		}
	}
	in.line.Close()
}

// =============================================================================
// APP
// =============================================================================

// app wires the engine to input, output, configuration, and the invocation
// log for one REPL session.
type app struct {
	cfg      *config.Config
	engine   *chatcmd.Engine
	input    *input
	store    *history.Store
	watcher  *config.Watcher
	limiter  *rate.Limiter
	builtins []builtin
	quiet    bool
	done     bool
}

func newApp(cfg *config.Config, configPath string, quiet bool) (*app, error) {
	a := &app{
		cfg:     cfg,
		engine:  chatcmd.New(),
		limiter: rate.NewLimiter(rate.Limit(cfg.REPL.FloodRate), cfg.REPL.FloodBurst),
		quiet:   quiet,
	}

	a.engine.SetPrefixes(cfg.Engine.Prefixes)
	if err := registerBuiltins(a); err != nil {
		return nil, err
	}
	for _, name := range cfg.Engine.DisabledCommands {
		if _, err := a.engine.SetActivated(name, false); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot disable %q: %v\n", name, err)
		}
	}

	if cfg.History.Enabled {
		path, err := cfg.HistoryPath()
		if err != nil {
			return nil, err
		}
		store, err := history.Open(path)
		if err != nil {
			return nil, err
		}
		a.store = store
	}

	// Watch the config file so prefix edits apply to the running session.
	watchPath := configPath
	if watchPath == "" {
		if p, err := config.ConfigPath(); err == nil {
			watchPath = p
		}
	}
	if watchPath != "" {
		w, err := config.NewWatcher(watchPath, a.applyConfig, func(err error) {
			fmt.Fprintf(os.Stderr, "%s\n", a.render(styles.Warning, "config reload failed: "+err.Error()))
		})
		if err == nil && w.Watch() == nil {
			a.watcher = w
		}
	}

	return a, nil
}

// applyConfig carries reloaded settings into the live session.
func (a *app) applyConfig(cfg *config.Config) {
	a.engine.SetPrefixes(cfg.Engine.Prefixes)
	a.limiter.SetLimit(rate.Limit(cfg.REPL.FloodRate))
	a.limiter.SetBurst(cfg.REPL.FloodBurst)
	fmt.Println(a.render(styles.Info, "config reloaded: prefixes = "+strings.Join(cfg.Engine.Prefixes, " ")))
}

func (a *app) Close() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
	if a.input != nil {
		a.input.Close()
	}
}

// render applies a style unless color output is disabled.
func (a *app) render(style lipgloss.Style, s string) string {
	if !a.cfg.REPL.Color {
		return s
	}
	return style.Render(s)
}

// =============================================================================
// MAIN LOOP
// =============================================================================

func (a *app) Run() error {
	a.input = newInput()

	if !a.quiet {
		fmt.Println(a.render(styles.Prompt, "chatcmd"), a.render(styles.Info, Version))
		if prefixes := a.engine.Prefixes(); len(prefixes) > 0 {
			fmt.Println(a.render(styles.Info, "prefixes: "+strings.Join(prefixes, " ")+"   try "+prefixes[0]+"help"))
		}
		fmt.Println()
	}

	for !a.done {
		line, err := a.input.Read(a.render(styles.Prompt, a.cfg.REPL.Prompt))
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D: normal exit.
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !a.limiter.Allow() {
			fmt.Println(a.render(styles.Warning, "slow down: flood limit reached"))
			continue
		}

		a.processLine(line)
	}
	return nil
}

// processLine dispatches one line and records the outcome.
func (a *app) processLine(line string) {
	result, dispatched := a.engine.Process(line)

	if a.store != nil {
		inv := history.Invocation{Line: line, Dispatched: dispatched}
		if dispatched {
			if prefix, ok := a.engine.MatchPrefix(line); ok {
				tokens := chatcmd.Tokenize(line)
				inv.Command = strings.TrimPrefix(tokens[0], prefix)
				inv.Args, inv.Keywords = chatcmd.Classify(tokens[1:])
			}
		}
		if err := a.store.Record(inv); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", a.render(styles.Warning, "history: "+err.Error()))
		}
	}

	switch {
	case dispatched && result != nil:
		fmt.Println(a.render(styles.Success, fmt.Sprintf("%v", result)))
	case dispatched:
		// Command ran and returned nothing; stay silent.
	case a.looksLikeCommand(line):
		fmt.Println(a.render(styles.Warning, "unknown or deactivated command"))
	default:
		// Plain chat: echo it back the way a host would broadcast it.
		fmt.Println(a.render(styles.Info, line))
	}
}

// looksLikeCommand reports whether a non-dispatched line carried a prefix.
func (a *app) looksLikeCommand(line string) bool {
	_, ok := a.engine.MatchPrefix(line)
	return ok
}
