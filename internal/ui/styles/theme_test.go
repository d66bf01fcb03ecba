// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// Spot-check that styles carry their defining attributes.
	if !theme.Heading.GetBold() {
		t.Error("Heading style should be bold")
	}
	if !theme.Link.GetUnderline() {
		t.Error("Link style should be underlined")
	}
	if !theme.BlockedLink.GetStrikethrough() {
		t.Error("BlockedLink style should be struck through")
	}
	if !theme.ToolFailed.GetBold() {
		t.Error("ToolFailed style should be bold")
	}
}

func TestGetLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	theme := NewTheme()
	for _, tt := range tests {
		theme.SetSize(tt.width, 24)
		if got := theme.GetLayoutMode(); got != tt.want {
			t.Errorf("GetLayoutMode() at width %d = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestRenderStatusHelpers(t *testing.T) {
	success := RenderSuccess("saved")
	if success == "" {
		t.Error("RenderSuccess() returned empty string")
	}

	failure := RenderError("broken")
	if failure == "" {
		t.Error("RenderError() returned empty string")
	}
}
