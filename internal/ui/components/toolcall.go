// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/transcript-tui/internal/content"
	"github.com/jeranaias/transcript-tui/internal/ui/styles"
)

// =============================================================================
// TOOL CALL VIEW
// =============================================================================

// ToolCallView displays one tool call record with its status, arguments,
// and result. Collapsed by default; expanding shows the full result.
type ToolCallView struct {
	call  content.ToolCallRecord
	theme *styles.Theme

	expanded     bool
	maxCollapsed int // Max result lines when collapsed
	maxExpanded  int // Max result lines when expanded
	width        int
}

// NewToolCallView creates a view for one tool call.
func NewToolCallView(call content.ToolCallRecord, theme *styles.Theme) *ToolCallView {
	return &ToolCallView{
		call:         call,
		theme:        theme,
		maxCollapsed: 3,
		maxExpanded:  50,
	}
}

// SetWidth sets the display width.
func (v *ToolCallView) SetWidth(width int) {
	v.width = width
}

// Toggle expands or collapses the result.
func (v *ToolCallView) Toggle() {
	v.expanded = !v.expanded
}

// IsExpanded returns whether the result is expanded.
func (v *ToolCallView) IsExpanded() bool {
	return v.expanded
}

// Call returns the underlying record.
func (v *ToolCallView) Call() content.ToolCallRecord {
	return v.call
}

// =============================================================================
// VIEW RENDERING
// =============================================================================

// View renders the tool call.
func (v *ToolCallView) View() string {
	if v.expanded {
		return v.renderExpanded()
	}
	return v.renderCollapsed()
}

func (v *ToolCallView) renderCollapsed() string {
	var builder strings.Builder

	icon, iconStyle := v.statusIndicator()
	builder.WriteString(iconStyle.Render(icon))
	builder.WriteString(" ")

	nameStyle := lipgloss.NewStyle().
		Foreground(styles.Teal).
		Bold(true)
	builder.WriteString(nameStyle.Render(v.call.Name))

	if v.call.Arguments != "" {
		builder.WriteString(v.theme.ToolArgs.Render(" (" + oneLine(v.call.Arguments, 60) + ")"))
	}

	if v.hasResult() {
		builder.WriteString(v.theme.HintText.Render(" [+]"))
	}

	if preview := v.resultPreview(); preview != "" {
		builder.WriteString("\n")
		builder.WriteString(v.theme.ToolArgs.Copy().PaddingLeft(2).Render(preview))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(v.borderColor()).
		BorderLeft(true).
		PaddingLeft(1).
		Render(builder.String())
}

func (v *ToolCallView) renderExpanded() string {
	var builder strings.Builder

	icon, iconStyle := v.statusIndicator()
	builder.WriteString(iconStyle.Render(icon))
	builder.WriteString(" ")

	nameStyle := lipgloss.NewStyle().
		Foreground(styles.Teal).
		Bold(true)
	builder.WriteString(nameStyle.Render(v.call.Name))
	builder.WriteString(v.theme.HintText.Render(" [-]"))
	builder.WriteString("\n")

	width := v.width - 6
	if width < 20 {
		width = 60
	}
	separator := v.theme.TableBorder.Render(strings.Repeat("-", width))

	if v.call.Arguments != "" {
		builder.WriteString(separator)
		builder.WriteString("\n")
		builder.WriteString(v.theme.ToolArgs.Render(v.call.Arguments))
		builder.WriteString("\n")
	}

	if v.call.Result != nil {
		builder.WriteString(separator)
		builder.WriteString("\n")

		lines := strings.Split(*v.call.Result, "\n")
		if len(lines) > v.maxExpanded {
			total := len(lines)
			lines = lines[:v.maxExpanded]
			lines = append(lines, "... ("+strconv.Itoa(total-v.maxExpanded)+" more lines)")
		}

		resultStyle := v.theme.Paragraph
		if v.call.Status == content.ToolFailed {
			resultStyle = v.theme.ToolFailed
		}
		builder.WriteString(resultStyle.Render(strings.Join(lines, "\n")))
	}

	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(v.borderColor()).
		Padding(0, 1)
	if v.width > 0 {
		boxStyle = boxStyle.Width(v.width - 2)
	}

	return boxStyle.Render(builder.String())
}

// =============================================================================
// HELPER METHODS
// =============================================================================

// statusIndicator returns the shape indicator and style for the call's
// status. Shapes keep states distinguishable without color.
func (v *ToolCallView) statusIndicator() (string, lipgloss.Style) {
	switch v.call.Status {
	case content.ToolCompleted:
		return styles.StatusIndicators.Completed, v.theme.ToolCompleted.Copy().Bold(true)
	case content.ToolFailed:
		return styles.StatusIndicators.Failed, v.theme.ToolFailed
	case content.ToolRunning:
		return styles.StatusIndicators.Running, v.theme.ToolRunning
	default:
		return styles.StatusIndicators.Pending, v.theme.ToolPending
	}
}

func (v *ToolCallView) borderColor() lipgloss.AdaptiveColor {
	switch v.call.Status {
	case content.ToolCompleted:
		return styles.Green
	case content.ToolFailed:
		return styles.Red
	case content.ToolRunning:
		return styles.Amber
	default:
		return styles.Overlay
	}
}

func (v *ToolCallView) hasResult() bool {
	return v.call.Result != nil && *v.call.Result != ""
}

// resultPreview returns the first few result lines for the collapsed
// view.
func (v *ToolCallView) resultPreview() string {
	if !v.hasResult() {
		return ""
	}

	lines := strings.Split(*v.call.Result, "\n")
	if len(lines) > v.maxCollapsed {
		remaining := len(lines) - v.maxCollapsed
		lines = lines[:v.maxCollapsed]
		lines = append(lines, "... ("+strconv.Itoa(remaining)+" more lines)")
	}
	return strings.Join(lines, "\n")
}

// oneLine collapses text to a single line capped at maxRunes.
func oneLine(s string, maxRunes int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > maxRunes {
		return string(runes[:maxRunes-3]) + "..."
	}
	return s
}
