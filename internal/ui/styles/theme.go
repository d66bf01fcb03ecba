// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the transcript browser.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER AND STATUS BAR STYLES
	// ==========================================================================

	Header       lipgloss.Style
	HeaderTitle  lipgloss.Style
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// TRANSCRIPT LIST STYLES
	// ==========================================================================

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListTitle        lipgloss.Style
	ListPreview      lipgloss.Style
	ListTimestamp    lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SystemBubble    lipgloss.Style
	RoleLabel       lipgloss.Style
	Timestamp       lipgloss.Style

	// ==========================================================================
	// MARKDOWN RENDERING STYLES
	// ==========================================================================

	Heading       lipgloss.Style
	Paragraph     lipgloss.Style
	InlineCode    lipgloss.Style
	CodeBlock     lipgloss.Style
	CodeLangBadge lipgloss.Style
	Link          lipgloss.Style
	BlockedLink   lipgloss.Style
	ImageNotice   lipgloss.Style
	TableHeader   lipgloss.Style
	TableCell     lipgloss.Style
	TableBorder   lipgloss.Style

	// ==========================================================================
	// TOOL CALL STYLES
	// ==========================================================================

	ToolPending   lipgloss.Style
	ToolRunning   lipgloss.Style
	ToolCompleted lipgloss.Style
	ToolFailed    lipgloss.Style
	ToolArgs      lipgloss.Style
	ToolResult    lipgloss.Style

	// ==========================================================================
	// SEARCH STYLES
	// ==========================================================================

	SearchPrompt lipgloss.Style
	SearchInput  lipgloss.Style
	SearchHit    lipgloss.Style
	SearchRole   lipgloss.Style

	// ==========================================================================
	// FEEDBACK STYLES
	// ==========================================================================

	ErrorText lipgloss.Style
	HintText  lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Violet)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Transcript list
	t.ListItem = lipgloss.NewStyle().
		Padding(0, 1)

	t.ListItemSelected = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(Teal).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Teal)

	t.ListTitle = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ListPreview = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ListTimestamp = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.SystemBubble = lipgloss.NewStyle().
		Foreground(SystemBubbleFg).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(SystemBubbleBorder).
		Padding(0, 2)

	t.RoleLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Markdown rendering
	t.Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(HeadingColor)

	t.Paragraph = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InlineCode = lipgloss.NewStyle().
		Foreground(InlineCodeFg).
		Background(InlineCodeBg)

	t.CodeBlock = lipgloss.NewStyle().
		Background(CodeBlockBg).
		Padding(0, 1)

	t.CodeLangBadge = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	// Underline provides a non-color cue for links.
	t.Link = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)

	t.BlockedLink = lipgloss.NewStyle().
		Foreground(BlockedColor).
		Strikethrough(true)

	t.ImageNotice = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)

	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TableHeaderColor)

	t.TableCell = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TableBorder = lipgloss.NewStyle().
		Foreground(TableBorderColor)

	// Tool calls
	t.ToolPending = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ToolRunning = lipgloss.NewStyle().
		Foreground(Amber)

	t.ToolCompleted = lipgloss.NewStyle().
		Foreground(Green)

	t.ToolFailed = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	t.ToolArgs = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ToolResult = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Overlay).
		PaddingLeft(1)

	// Search
	t.SearchPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.SearchInput = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.SearchHit = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.SearchRole = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Feedback
	t.ErrorText = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	t.HintText = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
