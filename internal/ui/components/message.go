// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/transcript-tui/internal/content"
	"github.com/jeranaias/transcript-tui/internal/model"
	"github.com/jeranaias/transcript-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one message as a styled bubble. Text items go
// through the markdown renderer; tool call items render as ToolCallView
// boxes between the text runs.
type MessageBubble struct {
	Message       *model.Message
	Width         int
	ShowTimestamp bool

	renderer *DocumentRenderer
	theme    *styles.Theme

	// Expanded state per tool call ID, owned by the chat model.
	expandedTools map[string]bool
}

// NewMessageBubble creates a bubble for one message.
func NewMessageBubble(msg *model.Message, renderer *DocumentRenderer, theme *styles.Theme) *MessageBubble {
	if msg == nil {
		msg = &model.Message{Role: model.RoleSystem}
	}
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		renderer:      renderer,
		theme:         theme,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// SetExpandedTools supplies the expanded/collapsed state per tool call.
func (b *MessageBubble) SetExpandedTools(expanded map[string]bool) {
	b.expandedTools = expanded
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	switch b.Message.Role {
	case model.RoleUser:
		return b.renderBubble(b.theme.UserBubble, "you", lipgloss.Right)
	case model.RoleAssistant:
		return b.renderBubble(b.theme.AssistantBubble, "assistant", lipgloss.Left)
	default:
		return b.renderBubble(b.theme.SystemBubble, "system", lipgloss.Left)
	}
}

// renderBubble assembles the header line and the item stack.
func (b *MessageBubble) renderBubble(bubbleStyle lipgloss.Style, roleLabel string, align lipgloss.Position) string {
	body := b.renderItems()
	if body == "" {
		body = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}

	bubble := bubbleStyle.MaxWidth(maxContentWidth).Render(body)

	header := b.theme.RoleLabel.Render(roleLabel)
	if b.ShowTimestamp {
		header += " " + b.theme.Timestamp.Render(formatTime(b.Message.Timestamp))
	}

	return lipgloss.JoinVertical(align, header, bubble)
}

// renderItems renders the message's display items in order.
func (b *MessageBubble) renderItems() string {
	itemWidth := b.Width - 16
	if itemWidth < 20 {
		itemWidth = 20
	}
	b.renderer.SetWidth(itemWidth)

	var parts []string
	for _, item := range b.Message.DisplayItems() {
		switch it := item.(type) {
		case content.TextItem:
			parts = append(parts, b.renderer.Render(it.Text))
		case content.ToolCallItem:
			view := NewToolCallView(it.Call, b.theme)
			view.SetWidth(itemWidth)
			if b.expandedTools[it.Call.ID] {
				view.Toggle()
			}
			parts = append(parts, view.View())
		}
	}
	return strings.Join(parts, "\n")
}

// formatTime formats a timestamp, using the date for older messages.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04")
	}
	return t.Format("Jan 2 15:04")
}

// =============================================================================
// MESSAGE LIST
// =============================================================================

// MessageList renders a sequence of message bubbles.
type MessageList struct {
	messages []*model.Message
	renderer *DocumentRenderer
	theme    *styles.Theme
	width    int

	expandedTools map[string]bool
}

// NewMessageList creates an empty message list.
func NewMessageList(renderer *DocumentRenderer, theme *styles.Theme) *MessageList {
	return &MessageList{
		renderer:      renderer,
		theme:         theme,
		width:         80,
		expandedTools: make(map[string]bool),
	}
}

// SetMessages replaces the message list.
func (ml *MessageList) SetMessages(messages []*model.Message) {
	ml.messages = messages
}

// SetWidth sets the rendering width.
func (ml *MessageList) SetWidth(width int) {
	ml.width = width
}

// ToggleTool flips the expanded state for a tool call ID.
func (ml *MessageList) ToggleTool(id string) {
	ml.expandedTools[id] = !ml.expandedTools[id]
}

// ToolCallIDs returns the IDs of all tool calls in display order.
func (ml *MessageList) ToolCallIDs() []string {
	var ids []string
	for _, msg := range ml.messages {
		for _, call := range msg.ToolCalls {
			ids = append(ids, call.ID)
		}
	}
	return ids
}

// ImageURLs returns every image URL in the list's messages, in order.
func (ml *MessageList) ImageURLs() []string {
	var urls []string
	for _, msg := range ml.messages {
		for _, item := range msg.DisplayItems() {
			textItem, ok := item.(content.TextItem)
			if !ok {
				continue
			}
			urls = append(urls, imageURLs(textItem.Text)...)
		}
	}
	return urls
}

// View renders all bubbles separated by blank lines.
func (ml *MessageList) View() string {
	var views []string
	for _, msg := range ml.messages {
		bubble := NewMessageBubble(msg, ml.renderer, ml.theme)
		bubble.SetWidth(ml.width)
		bubble.SetExpandedTools(ml.expandedTools)
		views = append(views, bubble.View())
	}
	return strings.Join(views, "\n\n")
}
