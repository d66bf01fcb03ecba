// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jeranaias/transcript-tui/internal/config"
	"github.com/jeranaias/transcript-tui/internal/export"
	"github.com/jeranaias/transcript-tui/internal/index"
	"github.com/jeranaias/transcript-tui/internal/model"
	"github.com/jeranaias/transcript-tui/internal/storage"
)

// =============================================================================
// STORE ACCESS
// =============================================================================

// openStore creates the transcript store from config.
func openStore(cfg *config.Config) (*storage.TranscriptStore, error) {
	var store *storage.TranscriptStore
	var err error

	if cfg.Storage.Dir != "" {
		store, err = storage.NewTranscriptStoreWithDir(cfg.Storage.Dir)
	} else {
		store, err = storage.NewTranscriptStore()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript store: %w", err)
	}

	if cfg.Storage.MaxTranscripts > 0 {
		store.MaxTranscripts = cfg.Storage.MaxTranscripts
	}
	return store, nil
}

// resolveTranscript loads a transcript by 1-based list position or by
// ID.
func resolveTranscript(store *storage.TranscriptStore, target string) (*model.Transcript, error) {
	if target == "" {
		return nil, fmt.Errorf("missing transcript number or ID")
	}

	if n, err := strconv.Atoi(target); err == nil {
		tr, err := store.LoadByIndex(n - 1)
		if err != nil {
			return nil, fmt.Errorf("no transcript at position %d: %w", n, err)
		}
		return tr, nil
	}

	return store.Load(target)
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleList prints the saved transcripts, newest first.
func HandleList(cfg *config.Config, args Args) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	metas, err := store.List()
	if err != nil {
		return err
	}

	if args.JSON {
		return printJSON(metas)
	}

	if len(metas) == 0 {
		if !args.Quiet {
			fmt.Println("no transcripts saved")
		}
		return nil
	}

	for i, meta := range metas {
		title := meta.Title
		if title == "" {
			title = "untitled"
		}
		fmt.Printf("%3d  %s  %-40s  %d messages\n",
			i+1, meta.UpdatedAt.Format("2006-01-02 15:04"), title, meta.MessageCount)
	}
	return nil
}

// HandleShow prints one transcript as markdown.
func HandleShow(cfg *config.Config, args Args) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	tr, err := resolveTranscript(store, args.Target)
	if err != nil {
		return err
	}

	if args.JSON {
		return printJSON(tr)
	}

	data, err := export.NewMarkdownExporter(nil).Export(tr)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// HandleSearch searches message bodies and prints the hits.
func HandleSearch(cfg *config.Config, args Args) error {
	if args.Query == "" {
		return fmt.Errorf("missing search query")
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	hits, err := runSearch(cfg, store, args)
	if err != nil {
		return err
	}

	if args.JSON {
		return printJSON(hits)
	}

	if len(hits) == 0 {
		if !args.Quiet {
			fmt.Println("no matches")
		}
		return nil
	}

	for _, hit := range hits {
		title := hit.Title
		if title == "" {
			title = "untitled"
		}
		fmt.Printf("%s  [%s] %s: %s\n",
			hit.Timestamp.Format("2006-01-02"), title, hit.Role, firstLine(hit.Body))
	}
	return nil
}

// runSearch prefers the index and falls back to scanning the store.
func runSearch(cfg *config.Config, store *storage.TranscriptStore, args Args) ([]index.SearchHit, error) {
	if cfg.Index.Enabled && !args.NoIndex {
		idx, err := openIndex(cfg)
		if err == nil {
			defer idx.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			// Make sure new transcripts are searchable.
			if err := idx.IndexStore(ctx, store); err != nil {
				return nil, err
			}
			return idx.Search(ctx, args.Query, 100)
		}
		// Index unavailable: degrade to the scan below.
	}

	metas, err := store.SearchMessages(args.Query)
	if err != nil {
		return nil, err
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
	return hits, nil
}

// HandleExport writes one transcript to a file.
func HandleExport(cfg *config.Config, args Args) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	tr, err := resolveTranscript(store, args.Target)
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	opts.OutputDir = args.Output

	var path string
	switch args.Format {
	case "json":
		path, err = export.ExportJSON(tr, opts)
	case "markdown", "md", "":
		path, err = export.ExportMarkdown(tr, opts)
	default:
		return fmt.Errorf("unknown export format: %s", args.Format)
	}
	if err != nil {
		return err
	}

	if !args.Quiet {
		fmt.Printf("exported to %s\n", path)
	}
	return nil
}

// HandleDelete deletes one transcript.
func HandleDelete(cfg *config.Config, args Args) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	tr, err := resolveTranscript(store, args.Target)
	if err != nil {
		return err
	}

	if err := store.Delete(tr.ID); err != nil {
		return err
	}

	if cfg.Index.Enabled {
		if idx, err := openIndex(cfg); err == nil {
			idx.RemoveTranscript(tr.ID)
			idx.Close()
		}
	}

	if !args.Quiet {
		fmt.Printf("deleted %s\n", tr.ID)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// openIndex opens the message index at its configured path.
func openIndex(cfg *config.Config) (*index.MessageIndex, error) {
	path := cfg.Index.Path
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = dir + "/index.db"
	}
	return index.NewMessageIndex(path)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// firstLine returns the first non-empty line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			return line
		}
	}
	return ""
}
