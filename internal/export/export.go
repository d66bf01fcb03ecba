// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes transcripts to files in portable formats.
// Markdown preserves the message structure for reading; JSON preserves
// the full records, sequence keys included, for re-import elsewhere.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/transcript-tui/internal/model"
	"github.com/jeranaias/transcript-tui/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter converts a transcript to one output format.
type Exporter interface {
	// Export renders the transcript and returns the file content.
	Export(tr *model.Transcript) ([]byte, error)

	// FileExtension returns the extension for the format (e.g. ".md").
	FileExtension() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is where files are written. Default: current directory.
	OutputDir string

	// IncludeTimestamps includes per-message timestamps.
	IncludeTimestamps bool

	// IncludeToolCalls includes tool call records in the output.
	IncludeToolCalls bool
}

// DefaultOptions returns the default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:         ".",
		IncludeTimestamps: true,
		IncludeToolCalls:  true,
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile exports a transcript using the given exporter and
// returns the output path.
func ExportToFile(tr *model.Transcript, exporter Exporter, opts *Options) (string, error) {
	if tr == nil || len(tr.Messages) == 0 {
		return "", fmt.Errorf("transcript is empty")
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	data, err := exporter.Export(tr)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	name := sanitizeFilename(tr.Title)
	if name == "" {
		name = "transcript"
	}
	filename := fmt.Sprintf("%s-%s%s",
		name, time.Now().Format("20060102-150405"), exporter.FileExtension())
	path := filepath.Join(opts.OutputDir, filename)

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// ExportMarkdown is a convenience wrapper for markdown export.
func ExportMarkdown(tr *model.Transcript, opts *Options) (string, error) {
	return ExportToFile(tr, NewMarkdownExporter(opts), opts)
}

// ExportJSON is a convenience wrapper for JSON export.
func ExportJSON(tr *model.Transcript, opts *Options) (string, error) {
	return ExportToFile(tr, NewJSONExporter(), opts)
}

// sanitizeFilename strips characters that are unsafe in file names and
// caps the length.
func sanitizeFilename(s string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			builder.WriteRune('-')
		}
	}

	name := strings.Trim(builder.String(), "-")
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	return util.TruncateRunesNoEllipsis(name, 60)
}
