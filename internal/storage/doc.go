// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides transcript persistence for transcript-tui.
//
// This package handles saving and loading transcripts to/from disk, with
// support for search, listing, and pruning.
//
// # Key Types
//
//   - TranscriptStore: File-backed store for transcripts
//   - TranscriptMeta: Lightweight metadata for listing
//
// # Usage
//
// Create a store and save a transcript:
//
//	store, err := storage.NewTranscriptStoreWithDir(dataDir)
//	id, err := store.Save(transcript)
//
// List and load transcripts:
//
//	metas, err := store.List()
//	tr, err := store.Load(metas[0].ID)
//
// Search transcript message bodies:
//
//	results, err := store.SearchMessages("query text")
//
// # Storage Location
//
// Transcripts are stored in ~/.transcript-tui/transcripts/ as JSON files.
package storage
