// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the transcript TUI.
//
// The central type is DocumentRenderer, which turns parsed markdown
// blocks into styled terminal output. Link and image rendering is gated
// by the content policy: disallowed links lose their target, and images
// render as placeholders until revealed (or never, depending on the
// configured image mode).
//
// MessageBubble composes a full message from its display items, routing
// text items through the DocumentRenderer and tool call items through
// ToolCallView. TranscriptViewport stacks bubbles into a scrollable
// Bubble Tea viewport.
package components
