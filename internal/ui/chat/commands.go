// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/transcript-tui/internal/index"
	"github.com/jeranaias/transcript-tui/internal/model"
	"github.com/jeranaias/transcript-tui/internal/storage"
)

// =============================================================================
// MESSAGES
// =============================================================================

type transcriptsLoadedMsg struct {
	metas []storage.TranscriptMeta
}

type transcriptOpenedMsg struct {
	transcript *model.Transcript
}

type transcriptDeletedMsg struct {
	id string
}

type searchResultsMsg struct {
	hits []index.SearchHit
}

type errMsg struct {
	err error
}

// =============================================================================
// COMMANDS
// =============================================================================

const searchLimit = 50

// loadTranscriptsCmd lists all saved transcripts, newest first.
func loadTranscriptsCmd(store *storage.TranscriptStore) tea.Cmd {
	return func() tea.Msg {
		metas, err := store.List()
		if err != nil {
			return errMsg{err}
		}
		return transcriptsLoadedMsg{metas}
	}
}

// openTranscriptCmd loads one transcript from disk.
func openTranscriptCmd(store *storage.TranscriptStore, id string) tea.Cmd {
	return func() tea.Msg {
		tr, err := store.Load(id)
		if err != nil {
			return errMsg{err}
		}
		return transcriptOpenedMsg{tr}
	}
}

// deleteTranscriptCmd deletes a transcript from the store and, when
// indexing is enabled, from the index.
func deleteTranscriptCmd(store *storage.TranscriptStore, idx *index.MessageIndex, id string) tea.Cmd {
	return func() tea.Msg {
		if err := store.Delete(id); err != nil {
			return errMsg{err}
		}
		if idx != nil {
			if err := idx.RemoveTranscript(id); err != nil {
				return errMsg{err}
			}
		}
		return transcriptDeletedMsg{id}
	}
}

// searchCmd queries the message index. Without an index it falls back
// to scanning the store, mapping matched transcripts onto hits.
func searchCmd(store *storage.TranscriptStore, idx *index.MessageIndex, query string) tea.Cmd {
	return func() tea.Msg {
		if query == "" {
			return searchResultsMsg{nil}
		}

		if idx != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			hits, err := idx.Search(ctx, query, searchLimit)
			if err != nil {
				return errMsg{err}
			}
			return searchResultsMsg{hits}
		}

		metas, err := store.SearchMessages(query)
		if err != nil {
			return errMsg{err}
		}

		hits := make([]index.SearchHit, 0, len(metas))
		for _, meta := range metas {
			hits = append(hits, index.SearchHit{
				TranscriptID: meta.ID,
				Title:        meta.Title,
				Body:         meta.Preview,
				Timestamp:    meta.UpdatedAt,
			})
		}
		return searchResultsMsg{hits}
	}
}
