// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the transcript
// TUI. All colors use Lip Gloss AdaptiveColor so the same palette works
// on light and dark terminals without configuration.
//
// The package has two layers:
//
//   - colors.go defines the raw palette: accent colors, surfaces, text
//     tones, message bubble colors, and the markdown rendering colors
//     (headings, inline code, links, image placeholders, tables).
//
//   - theme.go assembles the palette into a Theme of ready-to-use
//     lipgloss.Style values, sized to the terminal. Components never
//     construct styles from raw colors; they take a *Theme.
//
// Usage:
//
//	theme := styles.NewTheme()
//	theme.SetSize(width, height)
//	fmt.Print(theme.Heading.Render("Section"))
package styles
