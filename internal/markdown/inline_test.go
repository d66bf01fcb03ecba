// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"reflect"
	"testing"
)

// =============================================================================
// INLINE TOKENIZER TESTS
// =============================================================================

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []InlineToken
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "plain text",
			text: "just words",
			want: []InlineToken{Text{Content: "just words"}},
		},
		{
			name: "inline code",
			text: "run `go vet` first",
			want: []InlineToken{
				Text{Content: "run "},
				InlineCode{Content: "go vet"},
				Text{Content: " first"},
			},
		},
		{
			name: "empty code span",
			text: "a `` b",
			want: []InlineToken{
				Text{Content: "a "},
				InlineCode{Content: ""},
				Text{Content: " b"},
			},
		},
		{
			name: "unclosed backtick is text",
			text: "a `b",
			want: []InlineToken{Text{Content: "a `b"}},
		},
		{
			name: "link",
			text: "see [here](https://x.com)",
			want: []InlineToken{
				Text{Content: "see "},
				Link{Label: "here", URL: "https://x.com"},
			},
		},
		{
			name: "link url trimmed",
			text: "[a](  https://x.com\n)",
			want: []InlineToken{Link{Label: "a", URL: "https://x.com"}},
		},
		{
			name: "link without url part is text",
			text: "array[0] indexing",
			want: []InlineToken{Text{Content: "array[0] indexing"}},
		},
		{
			name: "unclosed bracket is text",
			text: "[dangling",
			want: []InlineToken{Text{Content: "[dangling"}},
		},
		{
			name: "unclosed paren is text",
			text: "[a](https://x",
			want: []InlineToken{Text{Content: "[a](https://x"}},
		},
		{
			name: "image",
			text: "![diagram](https://x.com/d.png)",
			want: []InlineToken{Image{Alt: "diagram", URL: "https://x.com/d.png"}},
		},
		{
			name: "image with empty alt",
			text: "![](https://x.com/d.png)",
			want: []InlineToken{Image{Alt: "", URL: "https://x.com/d.png"}},
		},
		{
			name: "fully empty image rejected",
			text: "![]()",
			want: []InlineToken{Text{Content: "![]()"}},
		},
		{
			name: "empty link allowed",
			text: "[]()",
			want: []InlineToken{Link{}},
		},
		{
			name: "bang without bracket is text",
			text: "wow! [a](https://x.com)",
			want: []InlineToken{
				Text{Content: "wow! "},
				Link{Label: "a", URL: "https://x.com"},
			},
		},
		{
			name: "tokens in source order",
			text: "`c` then [l](u) then ![i](v) end",
			want: []InlineToken{
				InlineCode{Content: "c"},
				Text{Content: " then "},
				Link{Label: "l", URL: "u"},
				Text{Content: " then "},
				Image{Alt: "i", URL: "v"},
				Text{Content: " end"},
			},
		},
		{
			name: "code span swallows bracket syntax",
			text: "`[not](a-link)`",
			want: []InlineToken{InlineCode{Content: "[not](a-link)"}},
		},
		{
			name: "multibyte text preserved",
			text: "日本語 [リンク](https://例え.jp)",
			want: []InlineToken{
				Text{Content: "日本語 "},
				Link{Label: "リンク", URL: "https://例え.jp"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInline(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInline(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}
