// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/transcript-tui/internal/content"
	"github.com/jeranaias/transcript-tui/internal/model"
	"github.com/jeranaias/transcript-tui/internal/ui/styles"
)

func TestMessageBubbleInterleavesToolCalls(t *testing.T) {
	theme := styles.NewTheme()
	renderer := newTestRenderer()

	key1, key2, key3 := int64(1), int64(2), int64(3)
	msg := model.NewMessage(model.RoleAssistant, "")
	msg.Fragments = []content.Fragment{
		{Text: "checking the file", SequenceKey: &key1},
		{Text: "all done", SequenceKey: &key3},
	}
	msg.ToolCalls = []content.ToolCallRecord{
		{ID: "tc-1", Name: "read_file", Status: content.ToolCompleted, SequenceKey: &key2},
	}

	bubble := NewMessageBubble(msg, renderer, theme)
	out := bubble.View()

	first := strings.Index(out, "checking the file")
	mid := strings.Index(out, "read_file")
	last := strings.Index(out, "all done")

	if first == -1 || mid == -1 || last == -1 {
		t.Fatalf("bubble missing content:\n%s", out)
	}
	if !(first < mid && mid < last) {
		t.Errorf("items out of order: text=%d tool=%d text=%d", first, mid, last)
	}
}

func TestMessageListToolCallIDs(t *testing.T) {
	theme := styles.NewTheme()
	list := NewMessageList(newTestRenderer(), theme)

	m1 := model.NewMessage(model.RoleAssistant, "a")
	m1.ToolCalls = []content.ToolCallRecord{{ID: "x"}, {ID: "y"}}
	m2 := model.NewMessage(model.RoleAssistant, "b")
	m2.ToolCalls = []content.ToolCallRecord{{ID: "z"}}

	list.SetMessages([]*model.Message{m1, m2})

	ids := list.ToolCallIDs()
	want := []string{"x", "y", "z"}
	if len(ids) != len(want) {
		t.Fatalf("ToolCallIDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ToolCallIDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
