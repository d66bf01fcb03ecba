// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case transcriptsLoadedMsg:
		m.metas = msg.metas
		if m.selected >= len(m.metas) {
			m.selected = len(m.metas) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil

	case transcriptOpenedMsg:
		m.openTranscript(msg.transcript)
		return m, nil

	case transcriptDeletedMsg:
		return m, loadTranscriptsCmd(m.store)

	case searchResultsMsg:
		m.hits = msg.hits
		m.hitSelected = 0
		return m, nil

	case errMsg:
		m.errText = msg.err.Error()
		return m, nil
	}

	return m, nil
}

// handleResize propagates the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.theme.SetSize(msg.Width, msg.Height)
	// Header and status bar each take one line.
	m.viewport.SetSize(msg.Width, msg.Height-2)
	m.searchInput.Width = msg.Width - 4

	return m, nil
}

// handleKey routes key presses by state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search prompt captures most keys while typing.
	if m.state == StateSearching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.state = StateSearching
		m.searchInput.SetValue("")
		m.hits = nil
		m.hitSelected = 0
		m.errText = ""
		return m, m.searchInput.Focus()
	}

	if m.state == StateReading {
		return m.handleReadingKey(msg)
	}
	return m.handleListKey(msg)
}

// handleListKey handles keys in the transcript list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.metas)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Top):
		m.selected = 0

	case key.Matches(msg, m.keys.Bottom):
		if len(m.metas) > 0 {
			m.selected = len(m.metas) - 1
		}

	case key.Matches(msg, m.keys.Open):
		if meta, ok := m.SelectedMeta(); ok {
			return m, openTranscriptCmd(m.store, meta.ID)
		}

	case key.Matches(msg, m.keys.Delete):
		if meta, ok := m.SelectedMeta(); ok {
			return m, deleteTranscriptCmd(m.store, m.index, meta.ID)
		}
	}

	return m, nil
}

// handleReadingKey handles keys while reading a transcript.
func (m Model) handleReadingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = StateList
		m.current = nil
		return m, nil

	case key.Matches(msg, m.keys.ToggleTool):
		m.toggleTools()
		return m, nil

	case key.Matches(msg, m.keys.RevealImg):
		m.revealNextImage()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.ScrollToTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.ScrollToBottom()
		return m, nil
	}

	// Remaining keys scroll the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleSearchKey handles keys at the search prompt.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateList
		m.searchInput.Blur()
		return m, nil

	case "enter":
		if m.searchInput.Focused() {
			// Run the query; focus moves to the hit list.
			m.searchInput.Blur()
			return m, searchCmd(m.store, m.index, m.searchInput.Value())
		}
		if m.hitSelected >= 0 && m.hitSelected < len(m.hits) {
			return m, openTranscriptCmd(m.store, m.hits[m.hitSelected].TranscriptID)
		}
		return m, nil

	case "up", "ctrl+p":
		if !m.searchInput.Focused() && m.hitSelected > 0 {
			m.hitSelected--
		}
		return m, nil

	case "down", "ctrl+n":
		if !m.searchInput.Focused() && m.hitSelected < len(m.hits)-1 {
			m.hitSelected++
		}
		return m, nil

	case "/":
		if !m.searchInput.Focused() {
			return m, m.searchInput.Focus()
		}
	}

	if m.searchInput.Focused() {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}
