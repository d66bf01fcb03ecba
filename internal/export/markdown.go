// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/jeranaias/transcript-tui/internal/content"
	"github.com/jeranaias/transcript-tui/internal/model"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter renders a transcript as a markdown document.
type MarkdownExporter struct {
	opts *Options
}

// NewMarkdownExporter creates a markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{opts: opts}
}

// Export renders the transcript. Message bodies are already markdown,
// so they pass through verbatim; structure is added around them.
func (e *MarkdownExporter) Export(tr *model.Transcript) ([]byte, error) {
	var builder strings.Builder

	title := tr.Title
	if title == "" {
		title = "Transcript"
	}
	builder.WriteString("# " + title + "\n\n")

	if e.opts.IncludeTimestamps {
		builder.WriteString("_Exported " + tr.UpdatedAt.Format("2006-01-02 15:04") + "_\n\n")
	}

	for _, msg := range tr.Messages {
		builder.WriteString("## " + msg.Role.DisplayName())
		if e.opts.IncludeTimestamps && !msg.Timestamp.IsZero() {
			builder.WriteString(" (" + msg.Timestamp.Format("15:04:05") + ")")
		}
		builder.WriteString("\n\n")

		for _, item := range msg.DisplayItems() {
			switch it := item.(type) {
			case content.TextItem:
				builder.WriteString(it.Text)
				builder.WriteString("\n\n")
			case content.ToolCallItem:
				if e.opts.IncludeToolCalls {
					builder.WriteString(e.formatToolCall(it.Call))
				}
			}
		}
	}

	return []byte(builder.String()), nil
}

// FileExtension returns ".md".
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// formatToolCall renders a tool call as a labeled code block.
func (e *MarkdownExporter) formatToolCall(call content.ToolCallRecord) string {
	var builder strings.Builder

	builder.WriteString("**Tool: " + call.Name + "** (" + string(call.Status) + ")\n\n")

	if call.Arguments != "" {
		builder.WriteString("```json\n" + call.Arguments + "\n```\n\n")
	}
	if call.Result != nil && *call.Result != "" {
		builder.WriteString("```\n" + *call.Result + "\n```\n\n")
	}
	return builder.String()
}
