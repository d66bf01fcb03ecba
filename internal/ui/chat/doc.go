// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the interactive transcript browser.
//
// The browser is a Bubble Tea program with three states:
//
//   - StateList: the saved transcripts, newest first. Enter opens the
//     selected transcript; / starts a search.
//
//   - StateReading: one transcript rendered as message bubbles with
//     markdown, policy-gated links, and tool call boxes. o reveals the
//     next unrevealed image (tap-to-load mode), t expands or collapses
//     tool call results.
//
//   - StateSearching: a query prompt over the message index. Enter on
//     a hit jumps to its transcript.
//
// All state transitions happen in Update; View is pure rendering.
package chat
