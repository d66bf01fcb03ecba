// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content reconstructs a message's display timeline.
//
// A message arrives from the backend as two independently-ordered
// collections: plain text fragments and structured tool-call records.
// BuildDisplayItems re-interleaves them into the single sequence the user
// actually saw, using the backend's per-message sequence key when present
// and arrival order as a deterministic fallback.
package content

// =============================================================================
// FRAGMENT AND TOOL CALL RECORDS
// =============================================================================

// Fragment is one raw text chunk belonging to a message, in
// arrival/storage order. SequenceKey is nil when the backend did not
// assign one.
type Fragment struct {
	Text        string `json:"text"`
	SequenceKey *int64 `json:"sequence_key,omitempty"`
}

// ToolStatus is the lifecycle state of a tool invocation.
type ToolStatus string

const (
	ToolPending   ToolStatus = "pending"
	ToolRunning   ToolStatus = "running"
	ToolCompleted ToolStatus = "completed"
	ToolFailed    ToolStatus = "failed"
)

// ToolCallRecord is one structured tool invocation attached to a message.
// Result is nil until the call has produced output.
type ToolCallRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      ToolStatus `json:"status"`
	Arguments   string     `json:"arguments"`
	Result      *string    `json:"result,omitempty"`
	SequenceKey *int64     `json:"sequence_key,omitempty"`
}

// =============================================================================
// DISPLAY ITEMS
// =============================================================================

// DisplayItem is one renderable unit of a message's timeline: either a
// merged text run or a single tool call. A closed set, like the block
// and token kinds in the markdown package.
type DisplayItem interface {
	// ItemID returns the synthesized "<messageID>-item-<n>" identifier,
	// where n is the item's position in the final ordered output.
	ItemID() string

	displayItem()
}

// TextItem is a run of adjacent text fragments merged with newlines.
type TextItem struct {
	ID   string
	Text string
}

// ToolCallItem wraps a single tool-call record.
type ToolCallItem struct {
	ID   string
	Call ToolCallRecord
}

func (t TextItem) ItemID() string     { return t.ID }
func (t ToolCallItem) ItemID() string { return t.ID }

func (TextItem) displayItem()     {}
func (ToolCallItem) displayItem() {}
