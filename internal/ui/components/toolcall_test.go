// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/transcript-tui/internal/content"
	"github.com/jeranaias/transcript-tui/internal/ui/styles"
)

func strPtrTest(s string) *string { return &s }

func TestToolCallViewCollapsed(t *testing.T) {
	theme := styles.NewTheme()
	call := content.ToolCallRecord{
		ID:        "tc-1",
		Name:      "read_file",
		Status:    content.ToolCompleted,
		Arguments: `{"path": "main.go"}`,
		Result:    strPtrTest("package main\nline two\nline three\nline four\nline five"),
	}

	view := NewToolCallView(call, theme)
	out := view.View()

	if !strings.Contains(out, "read_file") {
		t.Errorf("collapsed view missing tool name: %q", out)
	}
	if !strings.Contains(out, styles.StatusIndicators.Completed) {
		t.Errorf("collapsed view missing status indicator: %q", out)
	}
	if !strings.Contains(out, "more lines") {
		t.Errorf("collapsed view should truncate the result preview: %q", out)
	}
}

func TestToolCallViewExpanded(t *testing.T) {
	theme := styles.NewTheme()
	call := content.ToolCallRecord{
		ID:     "tc-2",
		Name:   "run_tests",
		Status: content.ToolFailed,
		Result: strPtrTest("assertion failed"),
	}

	view := NewToolCallView(call, theme)
	view.Toggle()
	if !view.IsExpanded() {
		t.Fatal("Toggle() did not expand the view")
	}

	out := view.View()
	if !strings.Contains(out, "assertion failed") {
		t.Errorf("expanded view missing result: %q", out)
	}
	if !strings.Contains(out, styles.StatusIndicators.Failed) {
		t.Errorf("expanded view missing failed indicator: %q", out)
	}
}

func TestToolCallViewStatusIndicators(t *testing.T) {
	theme := styles.NewTheme()

	tests := []struct {
		status content.ToolStatus
		want   string
	}{
		{content.ToolPending, styles.StatusIndicators.Pending},
		{content.ToolRunning, styles.StatusIndicators.Running},
		{content.ToolCompleted, styles.StatusIndicators.Completed},
		{content.ToolFailed, styles.StatusIndicators.Failed},
	}

	for _, tt := range tests {
		view := NewToolCallView(content.ToolCallRecord{Name: "t", Status: tt.status}, theme)
		if out := view.View(); !strings.Contains(out, tt.want) {
			t.Errorf("status %q: view missing indicator %q", tt.status, tt.want)
		}
	}
}
