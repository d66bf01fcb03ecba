// transcript-tui - A terminal browser for saved chat transcripts.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/transcript-tui/internal/cli"
	"github.com/jeranaias/transcript-tui/internal/config"
	"github.com/jeranaias/transcript-tui/internal/index"
	"github.com/jeranaias/transcript-tui/internal/storage"
	"github.com/jeranaias/transcript-tui/internal/ui/chat"
	"github.com/jeranaias/transcript-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch cmd {
	case cli.CmdTUI:
		err = runTUI(cfg, args)
	case cli.CmdList:
		err = cli.HandleList(cfg, args)
	case cli.CmdShow:
		err = cli.HandleShow(cfg, args)
	case cli.CmdSearch:
		err = cli.HandleSearch(cfg, args)
	case cli.CmdExport:
		err = cli.HandleExport(cfg, args)
	case cli.CmdDelete:
		err = cli.HandleDelete(cfg, args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the interactive transcript browser.
func runTUI(cfg *config.Config, args cli.Args) error {
	if err := cli.RequiresTTY("the TUI"); err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	idx, err := openIndex(cfg, store, args)
	if err != nil {
		// The index is an accelerator; the browser works without it.
		fmt.Fprintf(os.Stderr, "warning: search index unavailable: %v\n", err)
		idx = nil
	}
	if idx != nil {
		defer idx.Close()
	}

	theme := styles.NewTheme()
	m := chat.New(cfg, store, idx, theme)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

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
		return nil, err
	}

	if cfg.Storage.MaxTranscripts > 0 {
		store.MaxTranscripts = cfg.Storage.MaxTranscripts
	}
	return store, nil
}

// openIndex opens the message index, fills it, and attaches the store
// watcher when configured.
func openIndex(cfg *config.Config, store *storage.TranscriptStore, args cli.Args) (*index.MessageIndex, error) {
	if !cfg.Index.Enabled || args.NoIndex {
		return nil, nil
	}

	path := cfg.Index.Path
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "index.db")
	}

	idx, err := index.NewMessageIndex(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := idx.IndexStore(ctx, store); err != nil {
		idx.Close()
		return nil, err
	}

	if cfg.Index.Watch {
		debounce := time.Duration(cfg.Index.WatchDebounceMs) * time.Millisecond
		if err := idx.WatchStore(store, debounce); err != nil {
			// Watching is best effort; search still works on the
			// startup snapshot.
			fmt.Fprintf(os.Stderr, "warning: store watcher unavailable: %v\n", err)
		}
	}

	return idx, nil
}
