// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/jeranaias/transcript-tui/internal/content"
	"github.com/jeranaias/transcript-tui/internal/model"
)

func testTranscript() *model.Transcript {
	tr := model.NewTranscript()
	tr.AddMessage(model.NewMessage(model.RoleUser, "how do I sort a slice?"))

	reply := model.NewMessage(model.RoleAssistant, "use `sort.Slice`")
	result := "done"
	reply.ToolCalls = []content.ToolCallRecord{
		{ID: "tc-1", Name: "search_docs", Status: content.ToolCompleted, Arguments: `{"q":"sort"}`, Result: &result},
	}
	tr.Messages = append(tr.Messages, reply)
	return tr
}

func TestMarkdownExport(t *testing.T) {
	data, err := NewMarkdownExporter(nil).Export(testTranscript())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{"## You", "## Assistant", "sort.Slice", "search_docs", "```json"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown export missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownExportSkipsToolCalls(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeToolCalls = false

	data, err := NewMarkdownExporter(opts).Export(testTranscript())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if strings.Contains(string(data), "search_docs") {
		t.Error("tool calls should be omitted when IncludeToolCalls is false")
	}
}

func TestJSONExportRoundTrips(t *testing.T) {
	tr := testTranscript()

	data, err := NewJSONExporter().Export(tr)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded model.Transcript
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if decoded.ID != tr.ID {
		t.Errorf("decoded ID = %q, want %q", decoded.ID, tr.ID)
	}
	if len(decoded.Messages) != len(tr.Messages) {
		t.Errorf("decoded %d messages, want %d", len(decoded.Messages), len(tr.Messages))
	}
}

func TestExportToFile(t *testing.T) {
	opts := DefaultOptions()
	opts.OutputDir = t.TempDir()

	tr := testTranscript()
	tr.Title = "Sorting / Slices?"

	path, err := ExportMarkdown(tr, opts)
	if err != nil {
		t.Fatalf("ExportMarkdown() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if !strings.HasSuffix(path, ".md") {
		t.Errorf("path = %q, want .md extension", path)
	}
	if strings.Contains(path, "?") {
		t.Errorf("unsanitized filename: %q", path)
	}
}

func TestExportEmptyTranscriptFails(t *testing.T) {
	if _, err := ExportToFile(model.NewTranscript(), NewJSONExporter(), nil); err == nil {
		t.Error("expected error for empty transcript")
	}
}
