// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Violet - Primary accent, assistant messages, headings
var Violet = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Teal - User highlights, interactive affordances
var Teal = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Green - Completed tool calls, success states
var Green = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Red - Failed tool calls, errors
var Red = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Pending and running tool calls, blocked-content notices
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Header/footer background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, timestamps
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, placeholder text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User message bubble - Blue tones
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#E0F2FE"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

// Assistant message bubble - Soft violet tones
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#5B4B8A", Dark: "#E9E4F5"}
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#C4B5FD", Dark: "#A78BFA"}

// System message bubble - Amber tones
var SystemBubbleFg = lipgloss.AdaptiveColor{Light: "#92400E", Dark: "#FEF3C7"}
var SystemBubbleBorder = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

// =============================================================================
// MARKDOWN RENDERING COLORS
// =============================================================================

// HeadingColor - Heading block text
var HeadingColor = Violet

// InlineCodeFg - Inline code span text
var InlineCodeFg = lipgloss.AdaptiveColor{Light: "#BE185D", Dark: "#F5C2E7"}

// InlineCodeBg - Inline code span background
var InlineCodeBg = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#313244"}

// CodeBlockBg - Fenced code block background
var CodeBlockBg = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#181825"}

// LinkColor - Allowed link text. Rendered with an underline so links
// stay distinguishable without color.
var LinkColor = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// BlockedColor - Links and images suppressed by the content policy
var BlockedColor = TextMuted

// TableBorderColor - Table rules and separators
var TableBorderColor = Overlay

// TableHeaderColor - Table header row text
var TableHeaderColor = Teal

// =============================================================================
// TOOL CALL STATUS
// =============================================================================

// StatusIndicatorSet contains ASCII indicators for tool call states.
// Shapes provide a cue beyond color for colorblind users.
type StatusIndicatorSet struct {
	Pending   string
	Running   string
	Completed string
	Failed    string
}

// StatusIndicators provides accessible shape indicators alongside colors.
var StatusIndicators = StatusIndicatorSet{
	Pending:   "[ ]",
	Running:   "[~]",
	Completed: "[OK]",
	Failed:    "[X]",
}

// RenderSuccess renders a success message with its shape indicator.
func RenderSuccess(message string) string {
	style := lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)
	return style.Render(StatusIndicators.Completed + " " + message)
}

// RenderError renders an error message with its shape indicator.
func RenderError(message string) string {
	style := lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)
	return style.Render(StatusIndicators.Failed + " " + message)
}
