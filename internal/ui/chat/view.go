// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/transcript-tui/internal/util"
)

// View renders the full screen.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var body string
	switch m.state {
	case StateReading:
		body = m.viewport.View()
	case StateSearching:
		body = m.viewSearch()
	default:
		body = m.viewList()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewStatusBar(),
	)
}

// =============================================================================
// HEADER
// =============================================================================

func (m Model) viewHeader() string {
	title := "transcripts"
	if m.state == StateReading && m.current != nil {
		title = m.current.Title
		if title == "" {
			title = "untitled"
		}
	}

	header := m.theme.HeaderTitle.Render("transcript-tui") + "  " +
		m.theme.Header.Render(util.TruncateWidth(title, m.width-20))
	return lipgloss.NewStyle().Width(m.width).Render(header)
}

// =============================================================================
// LIST VIEW
// =============================================================================

func (m Model) viewList() string {
	if len(m.metas) == 0 {
		empty := m.theme.HintText.Render("no transcripts saved yet")
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, empty)
	}

	visible := m.bodyHeight()
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}

	var lines []string
	for i := start; i < len(m.metas) && i-start < visible; i++ {
		meta := m.metas[i]

		title := meta.Title
		if title == "" {
			title = "untitled"
		}

		line := fmt.Sprintf("%s  %s  %s",
			m.theme.ListTimestamp.Render(meta.UpdatedAt.Format("Jan 02 15:04")),
			m.theme.ListTitle.Render(util.TruncateWidth(title, m.width/2)),
			m.theme.ListPreview.Render(util.TruncateWidth(meta.Preview, m.width/3)),
		)

		if i == m.selected {
			lines = append(lines, m.theme.ListItemSelected.Render(line))
		} else {
			lines = append(lines, m.theme.ListItem.Render(line))
		}
	}

	return lipgloss.NewStyle().Height(m.bodyHeight()).Render(strings.Join(lines, "\n"))
}

// =============================================================================
// SEARCH VIEW
// =============================================================================

func (m Model) viewSearch() string {
	var builder strings.Builder

	builder.WriteString(m.searchInput.View())
	builder.WriteString("\n\n")

	if len(m.hits) == 0 {
		if !m.searchInput.Focused() {
			builder.WriteString(m.theme.HintText.Render("no matches"))
		}
	}

	visible := m.bodyHeight() - 3
	for i, hit := range m.hits {
		if i >= visible {
			builder.WriteString(m.theme.HintText.Render(
				fmt.Sprintf("... %d more", len(m.hits)-visible)))
			break
		}

		role := hit.Role
		if role == "" {
			role = "-"
		}

		line := fmt.Sprintf("%s %s: %s",
			m.theme.ListTitle.Render(util.TruncateWidth(hit.Title, m.width/4)),
			m.theme.SearchRole.Render(role),
			m.theme.SearchHit.Render(util.TruncateWidth(oneLineBody(hit.Body), m.width/2)),
		)

		if i == m.hitSelected && !m.searchInput.Focused() {
			builder.WriteString(m.theme.ListItemSelected.Render(line))
		} else {
			builder.WriteString(m.theme.ListItem.Render(line))
		}
		builder.WriteString("\n")
	}

	return lipgloss.NewStyle().Height(m.bodyHeight()).Render(builder.String())
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) viewStatusBar() string {
	if m.errText != "" {
		return m.theme.ErrorText.Render(util.TruncateWidth(m.errText, m.width))
	}

	var shortcuts []string
	add := func(k, desc string) {
		shortcuts = append(shortcuts,
			m.theme.ShortcutKey.Render(k)+" "+m.theme.ShortcutDesc.Render(desc))
	}

	switch m.state {
	case StateReading:
		add("esc", "back")
		add("t", "tools")
		add("o", "image")
		add("g/G", "top/bottom")
		shortcuts = append(shortcuts, m.theme.ShortcutDesc.Render(m.viewport.ScrollPosition()))
	case StateSearching:
		add("enter", "search/open")
		add("esc", "back")
	default:
		add("enter", "open")
		add("/", "search")
		add("d", "delete")
		add("q", "quit")
	}

	bar := strings.Join(shortcuts, "  ")
	return m.theme.StatusBar.Width(m.width).Render(util.TruncateWidth(bar, m.width-2))
}

// =============================================================================
// HELPERS
// =============================================================================

// bodyHeight is the space left after the header and status bar.
func (m Model) bodyHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// oneLineBody collapses a message body onto one line for hit display.
func oneLineBody(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
