// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// blocks.go - Block-level segmentation of a transcript document.
package markdown

import "strings"

// =============================================================================
// BLOCK TYPES
// =============================================================================

// Block is one structurally distinct unit of a parsed document.
// It is a closed set: only the types in this package implement it,
// so consumers can switch exhaustively over the concrete types.
type Block interface {
	block()
}

// Paragraph is a run of plain text lines joined with newlines.
// A paragraph is never emitted empty.
type Paragraph struct {
	Text string
}

// Heading is a heading of any level. The level is not preserved: the
// renderer draws every heading the same way, so `#` through `######`
// all collapse into this one kind.
type Heading struct {
	Text string
}

// CodeBlock is a fenced code block. Language is nil when the opening
// fence carried no language tag.
type CodeBlock struct {
	Language *string
	Code     string
}

// Table is a pipe table. Column count is fixed by the header row; body
// rows may carry fewer or more cells, and padding or truncating them
// for display is the renderer's job, not the parser's.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (Paragraph) block() {}
func (Heading) block()   {}
func (CodeBlock) block() {}
func (Table) block()     {}

// =============================================================================
// BLOCK PARSER
// =============================================================================

// ParseBlocks segments a complete document into an ordered sequence of
// blocks. Line endings are normalized before scanning, and the scan uses
// a single forward cursor: fences and tables consume a variable run of
// following lines, but no already-classified line is revisited.
//
// Malformed input never fails. An unterminated fence consumes to the end
// of the document, and a table-looking line whose separator row does not
// validate falls through to paragraph accumulation.
func ParseBlocks(document string) []Block {
	document = strings.ReplaceAll(document, "\r\n", "\n")
	lines := strings.Split(document, "\n")

	var blocks []Block
	var paragraph []string

	// flush joins buffered paragraph lines and emits them if non-empty.
	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(paragraph, "\n"))
		paragraph = paragraph[:0]
		if text != "" {
			blocks = append(blocks, Paragraph{Text: text})
		}
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		// Rule 1: blank line terminates any buffered paragraph.
		if trimmed == "" {
			flush()
			i++
			continue
		}

		// Rule 2: heading. One or more leading '#' followed by at least
		// one non-'#', non-whitespace character. A line of only '#'
		// characters is dropped silently.
		if strings.HasPrefix(trimmed, "#") {
			rest := strings.TrimLeft(trimmed, "#")
			flush()
			if text := strings.TrimSpace(rest); text != "" {
				blocks = append(blocks, Heading{Text: text})
			}
			i++
			continue
		}

		// Rule 3: fence open. Consumes verbatim lines until a closing
		// fence or end of document; the closing line itself is dropped.
		if strings.HasPrefix(trimmed, "```") {
			flush()
			var language *string
			if tag := strings.TrimSpace(trimmed[3:]); tag != "" {
				language = &tag
			}

			var code []string
			i++
			for i < len(lines) {
				if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
					i++
					break
				}
				code = append(code, lines[i])
				i++
			}
			blocks = append(blocks, CodeBlock{
				Language: language,
				Code:     strings.Join(code, "\n"),
			})
			continue
		}

		// Rule 4: table. Requires a pipe in the current line and a valid
		// separator row immediately below it.
		if strings.Contains(line, "|") && i+1 < len(lines) {
			headers := splitTableRow(line)
			if isTableSeparator(lines[i+1], len(headers)) {
				flush()
				var rows [][]string
				i += 2
				for i < len(lines) {
					row := lines[i]
					if strings.TrimSpace(row) == "" || !strings.Contains(row, "|") {
						break // re-evaluated from rule 1
					}
					rows = append(rows, splitTableRow(row))
					i++
				}
				blocks = append(blocks, Table{Headers: headers, Rows: rows})
				continue
			}
		}

		// Rule 5: default. Buffer the raw, untrimmed line.
		paragraph = append(paragraph, line)
		i++
	}

	flush()
	return blocks
}

// =============================================================================
// TABLE HELPERS
// =============================================================================

// splitTableRow splits a table line on '|' into trimmed cells, dropping
// the empty boundary cells produced by leading/trailing pipes.
func splitTableRow(line string) []string {
	cells := strings.Split(line, "|")
	if len(cells) > 0 && strings.TrimSpace(cells[0]) == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// isTableSeparator reports whether line is a valid separator row for a
// header with the given column count: same number of cells, every cell
// non-empty and made only of '-' and ':' with at least one '-'.
//
// A cell of only ':' characters is rejected. Some markdown dialects use
// alignment-only separator cells; this parser does not, and renders such
// tables as plain paragraphs instead.
func isTableSeparator(line string, columns int) bool {
	cells := splitTableRow(line)
	if len(cells) != columns || columns == 0 {
		return false
	}
	for _, cell := range cells {
		if cell == "" {
			return false
		}
		dash := false
		for _, r := range cell {
			switch r {
			case '-':
				dash = true
			case ':':
			default:
				return false
			}
		}
		if !dash {
			return false
		}
	}
	return true
}
