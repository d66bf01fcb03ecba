// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/transcript-tui/internal/model"
	"github.com/jeranaias/transcript-tui/internal/ui/styles"
)

// =============================================================================
// TRANSCRIPT VIEWPORT - Scrollable message area
// =============================================================================

// TranscriptViewport is a scrollable view over a transcript's messages.
type TranscriptViewport struct {
	viewport viewport.Model
	messages []*model.Message
	width    int
	height   int
	ready    bool
	theme    *styles.Theme
	list     *MessageList
}

// NewTranscriptViewport creates an empty viewport.
func NewTranscriptViewport(list *MessageList, theme *styles.Theme) *TranscriptViewport {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()

	return &TranscriptViewport{
		viewport: vp,
		width:    80,
		height:   20,
		theme:    theme,
		list:     list,
	}
}

// SetSize updates the viewport dimensions.
func (tv *TranscriptViewport) SetSize(width, height int) {
	tv.width = width
	tv.height = height
	tv.viewport.Width = width
	tv.viewport.Height = height
	tv.list.SetWidth(width - 4)
	tv.ready = true

	tv.Refresh()
}

// SetMessages replaces the displayed messages and scrolls to the top.
func (tv *TranscriptViewport) SetMessages(messages []*model.Message) {
	tv.messages = messages
	tv.list.SetMessages(messages)
	tv.Refresh()
	tv.viewport.GotoTop()
}

// Refresh re-renders the content, preserving the scroll position.
func (tv *TranscriptViewport) Refresh() {
	content := tv.list.View()
	tv.viewport.SetContent(wrapContent(content, tv.width-2))
}

// List exposes the underlying message list for toggle state.
func (tv *TranscriptViewport) List() *MessageList {
	return tv.list
}

// =============================================================================
// SCROLLING
// =============================================================================

// ScrollToTop scrolls to the top of the viewport.
func (tv *TranscriptViewport) ScrollToTop() {
	tv.viewport.GotoTop()
}

// ScrollToBottom scrolls to the bottom of the viewport.
func (tv *TranscriptViewport) ScrollToBottom() {
	tv.viewport.GotoBottom()
}

// AtTop returns true when scrolled to the top.
func (tv *TranscriptViewport) AtTop() bool {
	return tv.viewport.AtTop()
}

// AtBottom returns true when scrolled to the bottom.
func (tv *TranscriptViewport) AtBottom() bool {
	return tv.viewport.AtBottom()
}

// ScrollPosition returns a "42%" style position string for the status
// bar.
func (tv *TranscriptViewport) ScrollPosition() string {
	if tv.viewport.AtTop() {
		return "top"
	}
	if tv.viewport.AtBottom() {
		return "bot"
	}
	return fmt.Sprintf("%d%%", int(tv.viewport.ScrollPercent()*100))
}

// Update handles scroll key and mouse events.
func (tv *TranscriptViewport) Update(msg tea.Msg) (*TranscriptViewport, tea.Cmd) {
	var cmd tea.Cmd
	tv.viewport, cmd = tv.viewport.Update(msg)
	return tv, cmd
}

// View renders the viewport.
func (tv *TranscriptViewport) View() string {
	if !tv.ready {
		return "loading..."
	}
	return tv.viewport.View()
}

// =============================================================================
// CONTENT WRAPPING
// =============================================================================

// wrapContent hard-wraps long lines so they never overflow the
// viewport. ANSI-styled lines are passed through untouched; lipgloss
// already constrains them and re-wrapping would split escape sequences.
func wrapContent(content string, width int) string {
	if width <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	var wrapped []string

	for _, line := range lines {
		if strings.Contains(line, "\x1b[") || runewidth.StringWidth(line) <= width {
			wrapped = append(wrapped, line)
			continue
		}
		wrapped = append(wrapped, wrapPlainLine(line, width)...)
	}

	return strings.Join(wrapped, "\n")
}

// wrapPlainLine wraps one unstyled line to the given display width.
// Breaks fall after the last space that fits so words move whole, and
// the original spacing is carried through verbatim, indentation
// included.
func wrapPlainLine(line string, width int) []string {
	var out []string
	runes := []rune(line)

	for len(runes) > 0 {
		cells, cut, lastSpace := 0, 0, -1
		for i, r := range runes {
			w := runewidth.RuneWidth(r)
			if cells+w > width {
				break
			}
			cells += w
			cut = i + 1
			if r == ' ' {
				lastSpace = i
			}
		}
		if cut == 0 {
			cut = 1 // width narrower than a single rune
		}
		if cut < len(runes) && lastSpace >= 0 && runes[cut] != ' ' && lastSpace+1 < cut {
			// Move the overflowing word whole onto the next line.
			cut = lastSpace + 1
		}
		out = append(out, string(runes[:cut]))
		runes = runes[cut:]
	}

	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}
