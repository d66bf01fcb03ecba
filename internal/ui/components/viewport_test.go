// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapPlainLineKeepsSpacing(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
	}{
		{
			name:  "internal double spaces survive",
			line:  "alpha  beta  gamma delta epsilon zeta eta theta",
			width: 20,
		},
		{
			name:  "leading indentation survives",
			line:  "    indented line that is much too wide for the window",
			width: 16,
		},
		{
			name:  "tab-ish run of spaces survives",
			line:  "key:        value and then some very long trailing text",
			width: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := wrapPlainLine(tt.line, tt.width)

			// Rejoining the segments must reproduce the input exactly:
			// wrapping only inserts breaks, never edits spacing.
			if got := strings.Join(out, ""); got != tt.line {
				t.Errorf("wrapPlainLine() rejoined = %q, want %q", got, tt.line)
			}
			for _, seg := range out {
				if w := runewidth.StringWidth(seg); w > tt.width {
					t.Errorf("segment %q width %d exceeds %d", seg, w, tt.width)
				}
			}
		})
	}
}

func TestWrapPlainLineWordBoundaries(t *testing.T) {
	out := wrapPlainLine("one two three", 8)

	// "three" does not fit after "one two "; it moves whole.
	if len(out) != 2 {
		t.Fatalf("wrapPlainLine() = %q, want 2 segments", out)
	}
	if out[1] != "three" {
		t.Errorf("second segment = %q, want %q", out[1], "three")
	}
}

func TestWrapPlainLineBreaksLongWords(t *testing.T) {
	word := strings.Repeat("x", 25)
	out := wrapPlainLine(word, 10)

	if got := strings.Join(out, ""); got != word {
		t.Errorf("wrapPlainLine() rejoined = %q, want %q", got, word)
	}
	for _, seg := range out {
		if w := runewidth.StringWidth(seg); w > 10 {
			t.Errorf("segment %q width %d exceeds 10", seg, w)
		}
	}
}

func TestWrapContentPassesStyledLines(t *testing.T) {
	styled := "\x1b[1m" + strings.Repeat("y", 40) + "\x1b[0m"

	out := wrapContent(styled, 10)
	if out != styled {
		t.Errorf("wrapContent() rewrapped a styled line: %q", out)
	}
}
