// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// builtins.go - the commands the demonstration REPL ships with.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jeranaias/chatcmd"
	"github.com/jeranaias/chatcmd/internal/styles"
	"github.com/jeranaias/chatcmd/internal/util"
)

// builtin pairs a command with the help metadata the engine itself does not
// carry (its records are handler + activation flag only).
type builtin struct {
	name    string
	usage   string
	desc    string
	handler chatcmd.Handler
}

func registerBuiltins(a *app) error {
	builtins := []builtin{
		{
			name: "help", usage: "help",
			desc:    "Show available commands",
			handler: a.handleHelp,
		},
		{
			name: "echo", usage: "echo <words...>",
			desc:    "Echo the positional arguments back",
			handler: handleEcho,
		},
		{
			name: "sum", usage: "sum <numbers...>",
			desc:    "Add up numeric arguments",
			handler: handleSum,
		},
		{
			name: "kwargs", usage: "kwargs [key=value...]",
			desc:    "Show how a line splits into keywords",
			handler: handleKwargs,
		},
		{
			name: "prefix", usage: "prefix <add|del|list> [prefixes...]",
			desc:    "Manage command prefixes",
			handler: a.handlePrefix,
		},
		{
			name: "toggle", usage: "toggle <command> [true|false]",
			desc:    "Flip or set a command's activation",
			handler: a.handleToggle,
		},
		{
			name: "commands", usage: "commands",
			desc:    "List registered commands and activation state",
			handler: a.handleCommands,
		},
		{
			name: "history", usage: "history [n]",
			desc:    "Show recent invocations",
			handler: a.handleHistory,
		},
		{
			name: "stats", usage: "stats",
			desc:    "Show dispatch counts per command",
			handler: a.handleStats,
		},
		{
			name: "quit", usage: "quit",
			desc:    "Exit the REPL",
			handler: a.handleQuit,
		},
	}

	a.builtins = builtins
	for _, b := range builtins {
		if _, err := a.engine.AddCommand(b.name, true, b.handler); err != nil {
			return fmt.Errorf("register %s: %w", b.name, err)
		}
	}
	return nil
}

// =============================================================================
// HANDLERS
// =============================================================================

func (a *app) handleHelp(chatcmd.Call) any {
	var sb strings.Builder
	sb.WriteString(a.render(styles.Info, "commands:"))
	sb.WriteString("\n")
	for _, b := range a.builtins {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			a.render(styles.CommandName, fmt.Sprintf("%-34s", b.usage)), b.desc))
	}
	sb.WriteString(a.render(styles.Info,
		"arguments: whitespace-separated; key=value tokens become keywords;\n"+
			"numbers, true/false and nil are coerced to typed values"))
	return sb.String()
}

func handleEcho(call chatcmd.Call) any {
	parts := make([]string, len(call.Args))
	for i, arg := range call.Args {
		parts[i] = fmt.Sprintf("%v", arg)
	}
	return strings.Join(parts, " ")
}

func handleSum(call chatcmd.Call) any {
	var total float64
	integral := true
	for _, arg := range call.Args {
		switch v := arg.(type) {
		case int64:
			total += float64(v)
		case float64:
			total += v
			integral = false
		default:
			return fmt.Sprintf("sum: %v is not a number", arg)
		}
	}
	if integral {
		return int64(total)
	}
	return total
}

func handleKwargs(call chatcmd.Call) any {
	if len(call.Keywords) == 0 {
		return "no keyword arguments"
	}
	keys := make([]string, 0, len(call.Keywords))
	for k := range call.Keywords {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%#v", k, call.Keywords[k])
	}
	return strings.Join(parts, " ")
}

func (a *app) handlePrefix(call chatcmd.Call) any {
	if len(call.Args) == 0 {
		return "usage: prefix <add|del|list> [prefixes...]"
	}
	sub, _ := call.Args[0].(string)

	rest := make([]string, 0, len(call.Args)-1)
	for _, arg := range call.Args[1:] {
		rest = append(rest, fmt.Sprintf("%v", arg))
	}

	switch sub {
	case "add":
		if len(rest) == 0 {
			return "prefix add: nothing to add"
		}
		a.engine.AddPrefix(rest[0], rest[1:]...)
		return "prefixes: " + strings.Join(a.engine.Prefixes(), " ")
	case "del":
		removed := a.engine.RemovePrefix(rest...)
		return fmt.Sprintf("removed %d, prefixes: %s",
			len(removed), strings.Join(a.engine.Prefixes(), " "))
	case "list":
		return "prefixes: " + strings.Join(a.engine.Prefixes(), " ")
	default:
		return fmt.Sprintf("prefix: unknown subcommand %q", sub)
	}
}

func (a *app) handleToggle(call chatcmd.Call) any {
	if len(call.Args) == 0 {
		return "usage: toggle <command> [true|false]"
	}
	name := fmt.Sprintf("%v", call.Args[0])

	var on bool
	var err error
	if len(call.Args) > 1 {
		explicit, ok := call.Args[1].(bool)
		if !ok {
			return fmt.Sprintf("toggle: %v is not a boolean", call.Args[1])
		}
		on, err = a.engine.SetActivated(name, explicit)
	} else {
		on, err = a.engine.Toggle(name)
	}
	if err != nil {
		return fmt.Sprintf("toggle: %v", err)
	}
	return fmt.Sprintf("%s activated=%v", name, on)
}

func (a *app) handleCommands(chatcmd.Call) any {
	var sb strings.Builder
	for i, b := range a.builtins {
		state := "off"
		if cmd, ok := a.engine.Command(b.name); ok && cmd.Activated {
			state = "on"
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s [%s]", a.render(styles.CommandName, b.name), state))
	}
	return sb.String()
}

func (a *app) handleHistory(call chatcmd.Call) any {
	if a.store == nil {
		return "history is disabled"
	}

	limit := a.cfg.History.Limit
	if len(call.Args) > 0 {
		if n, ok := call.Args[0].(int64); ok && n > 0 {
			limit = int(n)
		}
	}

	entries, err := a.store.Recent(limit)
	if err != nil {
		return fmt.Sprintf("history: %v", err)
	}
	if len(entries) == 0 {
		return "history is empty"
	}

	var sb strings.Builder
	for i, inv := range entries {
		marker := "-"
		if inv.Dispatched {
			marker = "*"
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s", marker,
			inv.CreatedAt.Format("15:04:05"), util.TruncateRunes(inv.Line, 60)))
	}
	return sb.String()
}

func (a *app) handleStats(chatcmd.Call) any {
	if a.store == nil {
		return "history is disabled"
	}

	counts, err := a.store.CountByCommand()
	if err != nil {
		return fmt.Sprintf("stats: %v", err)
	}
	if len(counts) == 0 {
		return "no dispatches recorded yet"
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %d", name, counts[name])
	}
	return strings.Join(parts, "\n")
}

func (a *app) handleQuit(chatcmd.Call) any {
	a.done = true
	return nil
}
