// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling for the chatcmd REPL.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PALETTE
// =============================================================================

// Cyan - prompt, command names
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - successful dispatches
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - warnings (flood limiter, unknown commands)
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// TextSecondary - help text, history listings
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// Prompt renders the input prompt.
	Prompt = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

	// CommandName renders command names in help and listings.
	CommandName = lipgloss.NewStyle().Foreground(Cyan)

	// Success renders dispatch results.
	Success = lipgloss.NewStyle().Foreground(Emerald)

	// Warning renders recoverable conditions.
	Warning = lipgloss.NewStyle().Foreground(Amber)

	// Error renders failures.
	Error = lipgloss.NewStyle().Foreground(Rose).Bold(true)

	// Info renders secondary text.
	Info = lipgloss.NewStyle().Foreground(TextSecondary)
)
