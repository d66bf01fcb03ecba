// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/transcript-tui/internal/model"
	"github.com/jeranaias/transcript-tui/internal/storage"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrIndexing      = errors.New("indexing in progress")
	ErrDatabaseError = errors.New("database error")
)

// =============================================================================
// SCHEMA
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS transcripts (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL DEFAULT '',
	model       TEXT NOT NULL DEFAULT '',
	updated_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id             TEXT PRIMARY KEY,
	transcript_id  TEXT NOT NULL REFERENCES transcripts(id) ON DELETE CASCADE,
	role           TEXT NOT NULL,
	body           TEXT NOT NULL,
	ts             INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_transcript ON messages(transcript_id);
CREATE INDEX IF NOT EXISTS idx_messages_body ON messages(body);
`

// =============================================================================
// MESSAGE INDEX
// =============================================================================

// MessageIndex indexes transcript message bodies for fast search.
type MessageIndex struct {
	db      *sql.DB
	watcher StoreWatcher
	mu      sync.RWMutex

	// Indexing state
	indexing   bool
	indexingMu sync.Mutex
	lastIndex  time.Time
}

// SearchHit is one message matching a search query.
type SearchHit struct {
	TranscriptID string
	Title        string
	MessageID    string
	Role         string
	Body         string
	Timestamp    time.Time
}

// NewMessageIndex opens (or creates) the index database at dbPath.
func NewMessageIndex(dbPath string) (*MessageIndex, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &MessageIndex{db: db}, nil
}

// Close closes the index and stops any watcher.
func (idx *MessageIndex) Close() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.watcher != nil {
		idx.watcher.Close()
	}
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// LastIndexed returns when the last full index completed.
func (idx *MessageIndex) LastIndexed() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.lastIndex
}

// =============================================================================
// INDEXING
// =============================================================================

// IndexStore performs a full re-index of every transcript in the store.
// Only one full index runs at a time; a concurrent call returns
// ErrIndexing.
func (idx *MessageIndex) IndexStore(ctx context.Context, store *storage.TranscriptStore) error {
	idx.indexingMu.Lock()
	if idx.indexing {
		idx.indexingMu.Unlock()
		return ErrIndexing
	}
	idx.indexing = true
	idx.indexingMu.Unlock()

	defer func() {
		idx.indexingMu.Lock()
		idx.indexing = false
		idx.indexingMu.Unlock()
	}()

	metas, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list transcripts: %w", err)
	}

	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages"); err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM transcripts"); err != nil {
		return fmt.Errorf("failed to clear transcripts: %w", err)
	}

	for _, meta := range metas {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tr, err := store.Load(meta.ID)
		if err != nil {
			continue // skip corrupted files
		}
		if err := insertTranscript(tx, tr); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	idx.mu.Lock()
	idx.lastIndex = time.Now()
	idx.mu.Unlock()
	return nil
}

// IndexTranscript upserts a single transcript and its messages.
func (idx *MessageIndex) IndexTranscript(tr *model.Transcript) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages WHERE transcript_id = ?", tr.ID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM transcripts WHERE id = ?", tr.ID); err != nil {
		return err
	}
	if err := insertTranscript(tx, tr); err != nil {
		return err
	}
	return tx.Commit()
}

// RemoveTranscript deletes a transcript and its messages from the index.
func (idx *MessageIndex) RemoveTranscript(id string) error {
	if _, err := idx.db.Exec("DELETE FROM messages WHERE transcript_id = ?", id); err != nil {
		return err
	}
	_, err := idx.db.Exec("DELETE FROM transcripts WHERE id = ?", id)
	return err
}

// insertTranscript writes one transcript and its messages inside tx.
func insertTranscript(tx *sql.Tx, tr *model.Transcript) error {
	if _, err := tx.Exec(
		"INSERT INTO transcripts (id, title, model, updated_at) VALUES (?, ?, ?, ?)",
		tr.ID, tr.Title, tr.Model, tr.UpdatedAt.Unix(),
	); err != nil {
		return err
	}

	for _, msg := range tr.Messages {
		body := msg.Body()
		if body == "" {
			continue
		}
		if _, err := tx.Exec(
			"INSERT INTO messages (id, transcript_id, role, body, ts) VALUES (?, ?, ?, ?, ?)",
			msg.ID, tr.ID, string(msg.Role), body, msg.Timestamp.Unix(),
		); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// SEARCH
// =============================================================================

// Search returns up to limit messages whose body contains the query,
// case-insensitively, newest first.
func (idx *MessageIndex) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := idx.db.QueryContext(ctx, `
		SELECT m.id, m.transcript_id, t.title, m.role, m.body, m.ts
		FROM messages m
		JOIN transcripts t ON t.id = m.transcript_id
		WHERE m.body LIKE '%' || ? || '%'
		ORDER BY m.ts DESC
		LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var hit SearchHit
		var ts int64
		if err := rows.Scan(&hit.MessageID, &hit.TranscriptID, &hit.Title, &hit.Role, &hit.Body, &ts); err != nil {
			return nil, err
		}
		hit.Timestamp = time.Unix(ts, 0)
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}
