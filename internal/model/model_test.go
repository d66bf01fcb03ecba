// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"

	"github.com/jeranaias/transcript-tui/internal/content"
)

func TestNewMessage(t *testing.T) {
	msg := NewUserMessage("hello")

	if msg.ID == "" {
		t.Error("expected generated ID")
	}
	if msg.Role != RoleUser {
		t.Errorf("Role = %q, want %q", msg.Role, RoleUser)
	}
	if got := msg.Body(); got != "hello" {
		t.Errorf("Body() = %q, want %q", got, "hello")
	}
	if msg.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestMessage_BodySkipsToolCalls(t *testing.T) {
	key := int64(2)
	msg := NewAssistantMessage()
	msg.Fragments = []content.Fragment{{Text: "before"}, {Text: "after"}}
	msg.ToolCalls = []content.ToolCallRecord{
		{ID: "t1", Name: "fetch", Status: content.ToolCompleted, SequenceKey: &key},
	}

	body := msg.Body()
	if strings.Contains(body, "fetch") {
		t.Errorf("Body() = %q, should not contain tool call content", body)
	}
	if body != "before\nafter" {
		t.Errorf("Body() = %q, want %q", body, "before\nafter")
	}
}

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Assistant"},
		{RoleSystem, "System"},
		{Role("other"), "other"},
	}
	for _, tt := range tests {
		if got := tt.role.DisplayName(); got != tt.want {
			t.Errorf("%q.DisplayName() = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestTranscript_TitleFromFirstUserMessage(t *testing.T) {
	tr := NewTranscript()
	tr.AddMessage(NewMessage(RoleSystem, "system prompt"))
	tr.AddMessage(NewUserMessage("what is\na monad?"))

	if tr.Title != "what is a monad?" {
		t.Errorf("Title = %q, want %q", tr.Title, "what is a monad?")
	}
}

func TestTranscript_TitleTruncated(t *testing.T) {
	tr := NewTranscript()
	tr.AddMessage(NewUserMessage(strings.Repeat("x", 100)))

	if len([]rune(tr.Title)) != 50 {
		t.Errorf("Title length = %d runes, want 50", len([]rune(tr.Title)))
	}
	if !strings.HasSuffix(tr.Title, "...") {
		t.Errorf("Title = %q, want trailing ellipsis", tr.Title)
	}
}

func TestTranscript_PruneOldMessages(t *testing.T) {
	tr := NewTranscript()
	for i := 0; i < MaxMessages+10; i++ {
		tr.AddMessage(NewUserMessage("m"))
	}
	if got := tr.MessageCount(); got != MaxMessages {
		t.Errorf("MessageCount() = %d, want %d", got, MaxMessages)
	}
}
