// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for transcripts and messages.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxMessages is the maximum number of messages kept per transcript.
// When exceeded, the oldest messages are pruned.
const MaxMessages = 1000

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds one complete chat exchange with its metadata.
type Transcript struct {
	// Identity
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Origin metadata as reported by the backend
	Model string `json:"model,omitempty"`

	// Messages in conversation order
	Messages []*Message `json:"messages"`
}

// NewTranscript creates a new transcript with a generated ID.
func NewTranscript() *Transcript {
	now := time.Now()
	return &Transcript{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddMessage appends a message and refreshes derived metadata.
func (t *Transcript) AddMessage(msg *Message) {
	t.Messages = append(t.Messages, msg)
	t.UpdatedAt = time.Now()
	t.updateTitle()
	t.pruneOldMessages()
}

// updateTitle derives a title from the first user message if none is set.
func (t *Transcript) updateTitle() {
	if t.Title != "" {
		return
	}
	for _, msg := range t.Messages {
		if msg.Role != RoleUser {
			continue
		}
		title := strings.ReplaceAll(msg.Body(), "\n", " ")
		runes := []rune(title)
		if len(runes) > 50 {
			title = string(runes[:47]) + "..."
		}
		if title != "" {
			t.Title = title
			return
		}
	}
}

// pruneOldMessages drops the oldest messages beyond MaxMessages.
func (t *Transcript) pruneOldMessages() {
	if len(t.Messages) > MaxMessages {
		t.Messages = t.Messages[len(t.Messages)-MaxMessages:]
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// MessageCount returns the number of messages in the transcript.
func (t *Transcript) MessageCount() int {
	return len(t.Messages)
}

// Preview returns the first user message's text, truncated for lists.
func (t *Transcript) Preview() string {
	for _, msg := range t.Messages {
		if msg.Role == RoleUser {
			preview := strings.ReplaceAll(msg.Body(), "\n", " ")
			runes := []rune(preview)
			if len(runes) > 80 {
				preview = string(runes[:77]) + "..."
			}
			return preview
		}
	}
	return ""
}

// LastUpdated returns the transcript's last activity time: the newest
// message timestamp when present, otherwise UpdatedAt.
func (t *Transcript) LastUpdated() time.Time {
	if len(t.Messages) > 0 {
		if ts := t.Messages[len(t.Messages)-1].Timestamp; ts.After(t.UpdatedAt) {
			return ts
		}
	}
	return t.UpdatedAt
}
