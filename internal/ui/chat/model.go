// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/transcript-tui/internal/config"
	"github.com/jeranaias/transcript-tui/internal/index"
	"github.com/jeranaias/transcript-tui/internal/model"
	"github.com/jeranaias/transcript-tui/internal/storage"
	"github.com/jeranaias/transcript-tui/internal/ui/components"
	"github.com/jeranaias/transcript-tui/internal/ui/styles"
)

// =============================================================================
// STATE
// =============================================================================

// State is the browser's current interaction state.
type State int

const (
	// StateList shows the saved transcripts.
	StateList State = iota
	// StateReading shows one transcript's messages.
	StateReading
	// StateSearching shows the search prompt and hits.
	StateSearching
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the transcript browser.
type Model struct {
	state State
	keys  KeyMap
	theme *styles.Theme
	cfg   *config.Config

	store *storage.TranscriptStore
	index *index.MessageIndex // nil when indexing is disabled

	// List state
	metas    []storage.TranscriptMeta
	selected int

	// Reading state
	current      *model.Transcript
	viewport     *components.TranscriptViewport
	renderer     *components.DocumentRenderer
	toolIDs      []string
	toolsOpen    bool
	imageURLs    []string
	nextReveal   int

	// Search state
	searchInput textinput.Model
	hits        []index.SearchHit
	hitSelected int

	// Feedback
	errText string

	width  int
	height int
	ready  bool
}

// New creates the browser model.
func New(cfg *config.Config, store *storage.TranscriptStore, idx *index.MessageIndex, theme *styles.Theme) Model {
	renderer := components.NewDocumentRenderer(theme, cfg.LinkPolicy(), cfg.ImagePolicy())
	list := components.NewMessageList(renderer, theme)

	input := textinput.New()
	input.Placeholder = "search messages..."
	input.CharLimit = 200
	input.Prompt = "/ "

	return Model{
		state:       StateList,
		keys:        DefaultKeyMap(),
		theme:       theme,
		cfg:         cfg,
		store:       store,
		index:       idx,
		viewport:    components.NewTranscriptViewport(list, theme),
		renderer:    renderer,
		searchInput: input,
	}
}

// Init loads the transcript list.
func (m Model) Init() tea.Cmd {
	return loadTranscriptsCmd(m.store)
}

// SelectedMeta returns the currently selected list entry.
func (m Model) SelectedMeta() (storage.TranscriptMeta, bool) {
	if m.selected < 0 || m.selected >= len(m.metas) {
		return storage.TranscriptMeta{}, false
	}
	return m.metas[m.selected], true
}

// openTranscript switches to reading state for a loaded transcript.
func (m *Model) openTranscript(tr *model.Transcript) {
	m.current = tr
	m.state = StateReading
	m.toolsOpen = false
	m.nextReveal = 0
	m.errText = ""

	list := m.viewport.List()
	m.viewport.SetMessages(tr.Messages)
	m.toolIDs = list.ToolCallIDs()
	m.imageURLs = list.ImageURLs()
}

// toggleTools expands or collapses every tool call result in the open
// transcript.
func (m *Model) toggleTools() {
	m.toolsOpen = !m.toolsOpen
	list := m.viewport.List()
	for _, id := range m.toolIDs {
		list.ToggleTool(id)
	}
	m.viewport.Refresh()
}

// revealNextImage reveals the next unrevealed image, if any.
func (m *Model) revealNextImage() {
	for m.nextReveal < len(m.imageURLs) {
		url := m.imageURLs[m.nextReveal]
		m.nextReveal++
		if !m.renderer.IsRevealed(url) {
			m.renderer.RevealImage(url)
			m.viewport.Refresh()
			return
		}
	}
}
