// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"strings"
)

// Build-time version information, set via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdList
	CmdShow
	CmdSearch
	CmdExport
	CmdDelete
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON    bool // Output in JSON format
	Quiet   bool
	NoIndex bool // Disable the search index for this run

	// Command-specific
	Query  string // search query
	Target string // transcript index or ID for show/export/delete
	Format string // export format: "markdown" or "json"
	Output string // export output directory

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `transcript-tui - chat transcript browser for the terminal

Browse saved chat transcripts with markdown rendering, policy-gated
links and images, and full-text search.

Usage:
  transcript-tui                 Start the TUI (default)
  transcript-tui list            List saved transcripts, newest first
  transcript-tui show <n>        Print transcript n as markdown
  transcript-tui search <query>  Search message bodies
  transcript-tui export <n>      Export transcript n to a file
  transcript-tui delete <n>      Delete transcript n
  transcript-tui version         Show version information
  transcript-tui help            Show this help

Flags:
  --json             JSON output for list/search/show
  --quiet            Suppress non-essential output
  --no-index         Skip the search index, scan transcript files
  --format <fmt>     Export format: markdown (default) or json
  --output <dir>     Export directory (default: current directory)

Environment:
  NO_COLOR                     Disable colored output
  TRANSCRIPT_TUI_LINK_SCHEMES  Override allowed link schemes
  TRANSCRIPT_TUI_LINK_HOSTS    Override allowed link hosts
  TRANSCRIPT_TUI_IMAGE_MODE    disabled | tap_to_load | allow
  TRANSCRIPT_TUI_STORAGE_DIR   Override the transcript directory

Version: %s
`

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("transcript-tui version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(argv []string) (Command, Args) {
	parser := NewArgParser(argv)

	args := Args{
		JSON:    parser.BoolFlag("json"),
		Quiet:   parser.BoolFlag("quiet") || parser.BoolFlag("q"),
		NoIndex: parser.BoolFlag("no-index"),
		Format:  parser.FlagOr("format", "markdown"),
		Output:  parser.FlagOr("output", "."),
		Raw:     argv,
	}

	cmd := strings.ToLower(parser.Subcommand())
	switch cmd {
	case "", "tui":
		return CmdTUI, args

	case "list", "ls":
		return CmdList, args

	case "show", "cat":
		args.Target = parser.Positional(1)
		return CmdShow, args

	case "search", "find":
		args.Query = strings.Join(parser.positional[1:], " ")
		return CmdSearch, args

	case "export":
		args.Target = parser.Positional(1)
		return CmdExport, args

	case "delete", "rm":
		args.Target = parser.Positional(1)
		return CmdDelete, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		// Unknown command: show help rather than guessing.
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}
