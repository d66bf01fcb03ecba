// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// items.go - Deterministic ordering and merging of message content.
package content

import (
	"fmt"
	"sort"
)

// =============================================================================
// CONTENT-ITEM ORDERER
// =============================================================================

// entry is one fragment or tool call tagged with its arrival index in the
// concatenated input (fragments first, then tool calls).
type entry struct {
	key     *int64
	arrival int

	fragment *Fragment
	call     *ToolCallRecord
}

// BuildDisplayItems merges a message's text fragments and tool calls into
// one ordered sequence of display items.
//
// Ordering: an item with a sequence key always sorts ahead of one
// without; items with keys sort by key ascending; every tie, and the
// all-keys-absent case, falls back to arrival index. Because arrival
// indexes are unique the result is stable for identical input.
//
// After sorting, consecutive text fragments are concatenated with a
// newline into one logical run; a tool call always terminates the
// current run. Each emitted item gets the identifier
// "<messageID>-item-<n>", counting emissions, not source fragments.
func BuildDisplayItems(messageID string, fragments []Fragment, toolCalls []ToolCallRecord) []DisplayItem {
	entries := make([]entry, 0, len(fragments)+len(toolCalls))
	for i := range fragments {
		entries = append(entries, entry{
			key:      fragments[i].SequenceKey,
			arrival:  len(entries),
			fragment: &fragments[i],
		})
	}
	for i := range toolCalls {
		entries = append(entries, entry{
			key:     toolCalls[i].SequenceKey,
			arrival: len(entries),
			call:    &toolCalls[i],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.key != nil && b.key != nil:
			if *a.key != *b.key {
				return *a.key < *b.key
			}
			return a.arrival < b.arrival
		case a.key != nil:
			return true
		case b.key != nil:
			return false
		default:
			return a.arrival < b.arrival
		}
	})

	var items []DisplayItem
	var run string
	var inRun bool

	itemID := func() string {
		return fmt.Sprintf("%s-item-%d", messageID, len(items))
	}
	flushRun := func() {
		if inRun {
			items = append(items, TextItem{ID: itemID(), Text: run})
			run = ""
			inRun = false
		}
	}

	for _, e := range entries {
		if e.call != nil {
			flushRun()
			items = append(items, ToolCallItem{ID: itemID(), Call: *e.call})
			continue
		}
		if inRun {
			run += "\n" + e.fragment.Text
		} else {
			run = e.fragment.Text
			inRun = true
		}
	}
	flushRun()

	return items
}
