// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown implements the document engine for transcript rendering.
//
// The engine is a two-phase parser. ParseBlocks segments a complete document
// into structural blocks (paragraphs, headings, fenced code blocks, tables).
// ParseInline lexes the text of a paragraph or heading into inline tokens
// (text runs, code spans, links, image references). Blocks store raw text;
// inline tokenization happens when a consumer renders a block, not before.
//
// The parser is deliberately not CommonMark: it supports exactly the
// constructs assistant output uses in practice, and every malformed input
// degrades to a plain-text interpretation instead of failing. Both entry
// points are pure functions over complete strings, safe for concurrent use.
//
// # Usage
//
//	blocks := markdown.ParseBlocks(msg.Body())
//	for _, b := range blocks {
//	    switch b := b.(type) {
//	    case markdown.Paragraph:
//	        tokens := markdown.ParseInline(b.Text)
//	        // render tokens
//	    case markdown.CodeBlock:
//	        // highlight b.Code
//	    }
//	}
package markdown
