// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/jeranaias/transcript-tui/internal/markdown"
	"github.com/jeranaias/transcript-tui/internal/policy"
	"github.com/jeranaias/transcript-tui/internal/ui/styles"
	"github.com/jeranaias/transcript-tui/internal/util"
)

// =============================================================================
// DOCUMENT RENDERER
// =============================================================================

// DocumentRenderer turns markdown text into styled terminal output.
// Links and images pass through the content policy before rendering:
// a disallowed link renders as its label only, and images render
// according to the configured image mode.
type DocumentRenderer struct {
	theme  *styles.Theme
	links  policy.LinkPolicy
	images policy.ImagePolicy

	width      int
	hyperlinks bool

	// URLs the user has revealed in tap-to-load mode.
	revealed map[string]bool
}

// NewDocumentRenderer creates a renderer with the given policies.
func NewDocumentRenderer(theme *styles.Theme, links policy.LinkPolicy, images policy.ImagePolicy) *DocumentRenderer {
	return &DocumentRenderer{
		theme:      theme,
		links:      links,
		images:     images,
		width:      80,
		hyperlinks: theme.ColorProfile != termenv.Ascii,
		revealed:   make(map[string]bool),
	}
}

// SetWidth sets the rendering width.
func (r *DocumentRenderer) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	r.width = width
}

// RevealImage marks an image URL as revealed for tap-to-load mode.
func (r *DocumentRenderer) RevealImage(url string) {
	r.revealed[url] = true
}

// IsRevealed reports whether an image URL has been revealed.
func (r *DocumentRenderer) IsRevealed(url string) bool {
	return r.revealed[url]
}

// Render parses text as markdown and renders every block. Input that
// fits no block form still renders: unrecognized lines degrade to
// styled paragraphs, never to an error.
func (r *DocumentRenderer) Render(text string) string {
	blocks := markdown.ParseBlocks(text)

	rendered := make([]string, 0, len(blocks))
	for _, block := range blocks {
		switch b := block.(type) {
		case markdown.Paragraph:
			rendered = append(rendered, r.renderParagraph(b))
		case markdown.Heading:
			rendered = append(rendered, r.renderHeading(b))
		case markdown.CodeBlock:
			rendered = append(rendered, r.renderCodeBlock(b))
		case markdown.Table:
			rendered = append(rendered, r.renderTable(b))
		}
	}

	return strings.Join(rendered, "\n\n")
}

// =============================================================================
// BLOCK RENDERING
// =============================================================================

func (r *DocumentRenderer) renderParagraph(p markdown.Paragraph) string {
	return r.theme.Paragraph.Render(r.RenderInline(p.Text))
}

func (r *DocumentRenderer) renderHeading(h markdown.Heading) string {
	return r.theme.Heading.Render(r.RenderInline(h.Text))
}

func (r *DocumentRenderer) renderCodeBlock(b markdown.CodeBlock) string {
	language := ""
	if b.Language != nil {
		language = *b.Language
	}

	cb := NewCodeBlock(language, b.Code)
	cb.SetMaxWidth(r.width)
	return cb.Render()
}

// renderTable renders a pipe table with padded columns. Body rows are
// padded or truncated to the header's column count so ragged input
// still lines up.
func (r *DocumentRenderer) renderTable(t markdown.Table) string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	// Normalize rows to the header width.
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		normalized := make([]string, cols)
		for j := 0; j < cols && j < len(row); j++ {
			normalized[j] = row[j]
		}
		rows[i] = normalized
	}

	// Column widths from the widest cell, headers included.
	widths := make([]int, cols)
	for j, h := range t.Headers {
		widths[j] = util.StringWidth(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if w := util.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	border := r.theme.TableBorder.Render("|")
	var builder strings.Builder

	renderRow := func(cells []string, style func(...string) string) {
		builder.WriteString(border)
		for j, cell := range cells {
			builder.WriteString(" ")
			builder.WriteString(style(util.PadRight(cell, widths[j])))
			builder.WriteString(" ")
			builder.WriteString(border)
		}
		builder.WriteString("\n")
	}

	renderRow(t.Headers, r.theme.TableHeader.Render)

	// Separator rule
	builder.WriteString(border)
	for j := range widths {
		builder.WriteString(r.theme.TableBorder.Render(strings.Repeat("-", widths[j]+2)))
		if j < cols-1 {
			builder.WriteString(border)
		}
	}
	builder.WriteString(border)
	builder.WriteString("\n")

	for _, row := range rows {
		renderRow(row, r.theme.TableCell.Render)
	}

	return strings.TrimRight(builder.String(), "\n")
}

// =============================================================================
// INLINE RENDERING
// =============================================================================

// RenderInline tokenizes text and renders each inline token with the
// content policy applied.
func (r *DocumentRenderer) RenderInline(text string) string {
	tokens := markdown.ParseInline(text)

	var builder strings.Builder
	for _, token := range tokens {
		switch tok := token.(type) {
		case markdown.Text:
			builder.WriteString(tok.Content)
		case markdown.InlineCode:
			builder.WriteString(r.theme.InlineCode.Render(tok.Content))
		case markdown.Link:
			builder.WriteString(r.renderLink(tok))
		case markdown.Image:
			builder.WriteString(r.renderImage(tok))
		}
	}
	return builder.String()
}

// renderLink renders an allowed link as an underlined hyperlink and a
// disallowed one as its label only, so no forbidden target survives
// into the output.
func (r *DocumentRenderer) renderLink(tok markdown.Link) string {
	if !r.links.Allows(tok.URL) {
		label := tok.Label
		if label == "" {
			label = "[link blocked]"
		}
		return r.theme.BlockedLink.Render(label)
	}

	label := tok.Label
	if label == "" {
		label = tok.URL
	}
	return r.hyperlink(label, tok.URL)
}

// hyperlink emits an OSC 8 hyperlink when the terminal supports it.
// Callers must have policy-checked the URL already.
func (r *DocumentRenderer) hyperlink(label, url string) string {
	styled := r.theme.Link.Render(label)
	if r.hyperlinks {
		return termenv.Hyperlink(url, styled)
	}
	return styled
}

// imageURLs extracts image URLs from markdown text, in document order.
// Used to drive the reveal keybinding in tap-to-load mode.
func imageURLs(text string) []string {
	var urls []string

	collect := func(inline string) {
		for _, token := range markdown.ParseInline(inline) {
			if img, ok := token.(markdown.Image); ok {
				urls = append(urls, img.URL)
			}
		}
	}

	for _, block := range markdown.ParseBlocks(text) {
		switch b := block.(type) {
		case markdown.Paragraph:
			collect(b.Text)
		case markdown.Heading:
			collect(b.Text)
		}
	}
	return urls
}

// renderImage renders an image token per the image mode. The terminal
// cannot show pixels, so an allowed image renders as a labeled link to
// its source.
func (r *DocumentRenderer) renderImage(tok markdown.Image) string {
	alt := tok.Alt
	if alt == "" {
		alt = "image"
	}

	switch mode := r.images.(type) {
	case policy.ImagesDisabled:
		return r.theme.ImageNotice.Render("[image: " + alt + "]")

	case policy.ImagesTapToLoad:
		if !mode.Allows(tok.URL) {
			return r.theme.BlockedLink.Render("[image blocked: " + alt + "]")
		}
		if !r.revealed[tok.URL] {
			return r.theme.ImageNotice.Render("[image: " + alt + " - press o to open]")
		}
		return r.hyperlink(alt, tok.URL)

	case policy.ImagesAllow:
		if !mode.Allows(tok.URL) {
			return r.theme.BlockedLink.Render("[image blocked: " + alt + "]")
		}
		return r.hyperlink(alt, tok.URL)

	default:
		return r.theme.ImageNotice.Render("[image: " + alt + "]")
	}
}
