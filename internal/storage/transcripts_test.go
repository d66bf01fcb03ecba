// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"testing"

	"github.com/jeranaias/transcript-tui/internal/content"
	"github.com/jeranaias/transcript-tui/internal/model"
)

// =============================================================================
// TRANSCRIPT STORE TESTS
// =============================================================================

func newTestTranscript(t *testing.T, userText string) *model.Transcript {
	t.Helper()
	tr := model.NewTranscript()
	tr.Model = "test-model"
	tr.AddMessage(model.NewUserMessage(userText))
	tr.AddMessage(model.NewMessage(model.RoleAssistant, "reply"))
	return tr
}

func TestNewTranscriptStoreWithDir(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewTranscriptStoreWithDir(tempDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	if store.BaseDir != tempDir {
		t.Errorf("BaseDir = %q, want %q", store.BaseDir, tempDir)
	}
	if store.MaxTranscripts != 200 {
		t.Errorf("MaxTranscripts = %d, want 200", store.MaxTranscripts)
	}
}

func TestTranscriptStore_SaveAndLoad(t *testing.T) {
	store, err := NewTranscriptStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	key := int64(1)
	tr := newTestTranscript(t, "Hello")
	tr.Messages[1].ToolCalls = []content.ToolCallRecord{
		{ID: "t1", Name: "search", Status: content.ToolCompleted, SequenceKey: &key},
	}

	id, err := store.Save(tr)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == "" {
		t.Error("Expected non-empty ID")
	}

	loaded, err := store.Load(id)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ID != id {
		t.Errorf("Loaded ID = %q, want %q", loaded.ID, id)
	}
	if loaded.Model != "test-model" {
		t.Errorf("Loaded Model = %q, want %q", loaded.Model, "test-model")
	}
	if len(loaded.Messages) != 2 {
		t.Fatalf("Loaded Messages count = %d, want 2", len(loaded.Messages))
	}

	// Sequence keys must survive the round trip as optionals, not zeros.
	calls := loaded.Messages[1].ToolCalls
	if len(calls) != 1 || calls[0].SequenceKey == nil || *calls[0].SequenceKey != 1 {
		t.Errorf("tool call sequence key not preserved: %+v", calls)
	}
	if loaded.Messages[0].Fragments[0].SequenceKey != nil {
		t.Error("absent sequence key should load as nil, not zero")
	}
}

func TestTranscriptStore_LoadNotFound(t *testing.T) {
	store, err := NewTranscriptStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	_, err = store.Load("missing")
	if !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("Load error = %v, want ErrTranscriptNotFound", err)
	}
}

func TestTranscriptStore_ListOrder(t *testing.T) {
	store, err := NewTranscriptStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	firstID, err := store.Save(newTestTranscript(t, "older"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	secondID, err := store.Save(newTestTranscript(t, "newer"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	metas, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("List count = %d, want 2", len(metas))
	}
	if metas[0].ID != secondID || metas[1].ID != firstID {
		t.Errorf("List order = [%s, %s], want most recent first", metas[0].ID, metas[1].ID)
	}
	if metas[0].Preview != "newer" {
		t.Errorf("Preview = %q, want %q", metas[0].Preview, "newer")
	}
}

func TestTranscriptStore_SearchMessages(t *testing.T) {
	store, err := NewTranscriptStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	matchID, err := store.Save(newTestTranscript(t, "tell me about goroutines"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.Save(newTestTranscript(t, "unrelated")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	results, err := store.SearchMessages("GOROUTINES")
	if err != nil {
		t.Fatalf("SearchMessages failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != matchID {
		t.Errorf("SearchMessages = %+v, want single hit %s", results, matchID)
	}
}

func TestTranscriptStore_Delete(t *testing.T) {
	store, err := NewTranscriptStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	id, err := store.Save(newTestTranscript(t, "bye"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load(id); !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("Load after delete = %v, want ErrTranscriptNotFound", err)
	}
	if err := store.Delete(id); !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("second Delete = %v, want ErrTranscriptNotFound", err)
	}
}

func TestTranscriptStore_EnforceLimit(t *testing.T) {
	store, err := NewTranscriptStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	store.MaxTranscripts = 3

	for i := 0; i < 5; i++ {
		if _, err := store.Save(newTestTranscript(t, "m")); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	metas, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 3 {
		t.Errorf("List count after pruning = %d, want 3", len(metas))
	}
}
