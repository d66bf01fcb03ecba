// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses command-line arguments and implements the
// non-interactive commands.
//
// Running with no arguments starts the TUI. The remaining commands
// work on the transcript store directly and print to stdout, so they
// compose with shell pipelines:
//
//	transcript-tui list          all transcripts, newest first
//	transcript-tui show <n>      print transcript n as markdown
//	transcript-tui search <q>    search message bodies
//	transcript-tui export <n>    write transcript n to a file
//	transcript-tui delete <n>    delete transcript n
//
// Output respects NO_COLOR and falls back to plain text when stdout is
// not a terminal.
package cli
