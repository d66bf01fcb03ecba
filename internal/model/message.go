// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/transcript-tui/internal/content"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	case RoleSystem:
		return "System"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a transcript. Its body is stored
// as the backend delivered it: ordered text fragments plus structured
// tool-call records, each carrying an optional sequence key.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content, in arrival/storage order
	Fragments []content.Fragment       `json:"fragments,omitempty"`
	ToolCalls []content.ToolCallRecord `json:"tool_calls,omitempty"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, text string) *Message {
	msg := &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Timestamp: time.Now(),
	}
	if text != "" {
		msg.Fragments = []content.Fragment{{Text: text}}
	}
	return msg
}

// NewUserMessage creates a new user message with a single text fragment.
func NewUserMessage(text string) *Message {
	return NewMessage(RoleUser, text)
}

// NewAssistantMessage creates a new, initially empty assistant message.
func NewAssistantMessage() *Message {
	return NewMessage(RoleAssistant, "")
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// DisplayItems computes the ordered display timeline for this message.
// The result is derived fresh on every call; nothing is cached.
func (m *Message) DisplayItems() []content.DisplayItem {
	return content.BuildDisplayItems(m.ID, m.Fragments, m.ToolCalls)
}

// Body returns the message's text with fragments joined by newlines, in
// display order and without tool calls. Used for previews, search and
// indexing.
func (m *Message) Body() string {
	var parts []string
	for _, item := range m.DisplayItems() {
		if text, ok := item.(content.TextItem); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// HasToolCalls reports whether any tool-call records are attached.
func (m *Message) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

// IsEmpty reports whether the message carries no fragments and no tool calls.
func (m *Message) IsEmpty() bool {
	return len(m.Fragments) == 0 && len(m.ToolCalls) == 0
}
