// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/transcript-tui/internal/config"
	"github.com/jeranaias/transcript-tui/internal/model"
	"github.com/jeranaias/transcript-tui/internal/storage"
	"github.com/jeranaias/transcript-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	store, err := storage.NewTranscriptStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewTranscriptStoreWithDir() error = %v", err)
	}

	cfg := config.Default()
	m := New(cfg, store, nil, styles.NewTheme())

	// Simulate the first resize so the model is ready.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelStartsInListState(t *testing.T) {
	m := newTestModel(t)
	if m.state != StateList {
		t.Errorf("initial state = %v, want StateList", m.state)
	}
}

func TestTranscriptsLoadedClampsSelection(t *testing.T) {
	m := newTestModel(t)
	m.selected = 5

	updated, _ := m.Update(transcriptsLoadedMsg{metas: []storage.TranscriptMeta{
		{ID: "a", UpdatedAt: time.Now()},
		{ID: "b", UpdatedAt: time.Now()},
	}})
	m = updated.(Model)

	if m.selected != 1 {
		t.Errorf("selected = %d, want 1 (clamped to last entry)", m.selected)
	}
}

func TestSlashEntersSearchState(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)

	if m.state != StateSearching {
		t.Errorf("state after / = %v, want StateSearching", m.state)
	}
	if !m.searchInput.Focused() {
		t.Error("search input should be focused")
	}
}

func TestEscLeavesSearchState(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.state != StateList {
		t.Errorf("state after esc = %v, want StateList", m.state)
	}
}

func TestOpenTranscriptEntersReadingState(t *testing.T) {
	m := newTestModel(t)

	tr := model.NewTranscript()
	tr.AddMessage(model.NewMessage(model.RoleUser, "hello"))
	tr.AddMessage(model.NewMessage(model.RoleAssistant, "hi there"))

	updated, _ := m.Update(transcriptOpenedMsg{transcript: tr})
	m = updated.(Model)

	if m.state != StateReading {
		t.Errorf("state = %v, want StateReading", m.state)
	}
	if m.current != tr {
		t.Error("current transcript not set")
	}

	// Esc returns to the list.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.state != StateList {
		t.Errorf("state after esc = %v, want StateList", m.state)
	}
}

func TestErrMsgShowsInStatusBar(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(errMsg{err: storage.ErrTranscriptNotFound})
	m = updated.(Model)

	if m.errText == "" {
		t.Error("errText not set after errMsg")
	}
}

func TestSearchCmdFallsBackToStoreScan(t *testing.T) {
	store, err := storage.NewTranscriptStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewTranscriptStoreWithDir() error = %v", err)
	}

	tr := model.NewTranscript()
	tr.AddMessage(model.NewMessage(model.RoleUser, "find the needle here"))
	if _, err := store.Save(tr); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	msg := searchCmd(store, nil, "needle")()
	results, ok := msg.(searchResultsMsg)
	if !ok {
		t.Fatalf("searchCmd returned %T, want searchResultsMsg", msg)
	}
	if len(results.hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(results.hits))
	}
	if results.hits[0].TranscriptID != tr.ID {
		t.Errorf("hit ID = %q, want %q", results.hits[0].TranscriptID, tr.ID)
	}
}
