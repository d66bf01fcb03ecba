// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// inline.go - Inline tokenization of paragraph and heading text.
package markdown

import "strings"

// =============================================================================
// INLINE TOKEN TYPES
// =============================================================================

// InlineToken is one lexical unit within a paragraph or heading's text.
// Like Block, it is a closed set consumed by exhaustive type switches.
type InlineToken interface {
	inlineToken()
}

// Text is a run of plain text.
type Text struct {
	Content string
}

// InlineCode is a `code` span. Content may be empty.
type InlineCode struct {
	Content string
}

// Link is a [label](url) reference. The label is taken verbatim; nested
// brackets are not supported.
type Link struct {
	Label string
	URL   string
}

// Image is an ![alt](url) reference.
type Image struct {
	Alt string
	URL string
}

func (Text) inlineToken()       {}
func (InlineCode) inlineToken() {}
func (Link) inlineToken()       {}
func (Image) inlineToken()      {}

// =============================================================================
// INLINE TOKENIZER
// =============================================================================

// ParseInline lexes text into an ordered sequence of inline tokens with a
// single left-to-right scan and one character of lookahead. Unterminated
// constructs (a lone backtick, an unmatched bracket) are emitted as
// ordinary text rather than failing.
func ParseInline(text string) []InlineToken {
	var tokens []InlineToken
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, Text{Content: buf.String()})
			buf.Reset()
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]

		// Rule 1: inline code span. The opening backtick only counts if a
		// closing one exists; otherwise it is ordinary text.
		if c == '`' {
			if end := strings.IndexByte(text[i+1:], '`'); end >= 0 {
				flush()
				tokens = append(tokens, InlineCode{Content: text[i+1 : i+1+end]})
				i += end + 2
				continue
			}
		}

		// Rule 2: image reference, '!' immediately followed by '['.
		if c == '!' && i+1 < len(text) && text[i+1] == '[' {
			if label, url, next, ok := parseLinkTarget(text, i+1, true); ok {
				flush()
				tokens = append(tokens, Image{Alt: label, URL: url})
				i = next
				continue
			}
		}

		// Rule 3: link reference.
		if c == '[' {
			if label, url, next, ok := parseLinkTarget(text, i, false); ok {
				flush()
				tokens = append(tokens, Link{Label: label, URL: url})
				i = next
				continue
			}
		}

		// Rule 4: plain text.
		buf.WriteByte(c)
		i++
	}

	flush()
	return tokens
}

// parseLinkTarget attempts to read "[label](url)" starting at the '[' at
// position open. It returns the label, the whitespace-trimmed url, and
// the scan position just past the closing ')'. The parse fails when any
// delimiter is missing, or, for images, when both label and url are
// empty - an all-empty "![]()" is noise, not an image.
func parseLinkTarget(text string, open int, isImage bool) (label, url string, next int, ok bool) {
	rel := strings.IndexByte(text[open+1:], ']')
	if rel < 0 {
		return "", "", 0, false
	}
	closeBracket := open + 1 + rel

	if closeBracket+1 >= len(text) || text[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	rel = strings.IndexByte(text[closeBracket+2:], ')')
	if rel < 0 {
		return "", "", 0, false
	}
	end := closeBracket + 2 + rel

	label = text[open+1 : closeBracket]
	url = strings.TrimSpace(text[closeBracket+2 : end])

	if isImage && label == "" && url == "" {
		return "", "", 0, false
	}
	return label, url, end + 1, true
}
