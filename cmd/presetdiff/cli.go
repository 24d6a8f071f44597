package main

import (
	"context"
	"io"

	"github.com/presettools/presetdiff"
	"github.com/presettools/presetdiff/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Parser presetdiff.Parser
	Writer *fs.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool       `short:"v" help:"Enable parser logging"`
	Convert ConvertCmd `cmd:"" help:"Render launcher preset files to plain text"`
	Diff    DiffCmd    `cmd:"" help:"Compare two launcher preset files"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Paths       []string `arg:"" help:"Preset HTML files"`
	Stdout      bool     `help:"Print rendered presets instead of writing files"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent file limit"`
}

// DiffCmd is the "diff" subcommand.
type DiffCmd struct {
	Path1  string `arg:"" help:"First preset HTML file"`
	Path2  string `arg:"" help:"Second preset HTML file"`
	Output string `short:"o" default:"out.txt" help:"Report file path"`
	Stdout bool   `help:"Print the report instead of writing a file"`
}
