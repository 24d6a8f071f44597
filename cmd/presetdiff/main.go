package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/presettools/presetdiff"
	"github.com/presettools/presetdiff/fs"
	"github.com/presettools/presetdiff/goquery"
	presetslog "github.com/presettools/presetdiff/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Parser overrides the default document parser. Set before calling
	// Run(); used by end-to-end tests.
	Parser presetdiff.Parser
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("presetdiff"),
		kong.Description("Convert and compare Arma 3 / DayZ launcher preset exports."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'presetdiff --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Parser: m.Parser,
		Writer: fs.NewWriter(),
	}
	if deps.Parser == nil {
		deps.Parser = goquery.NewParser()
	}
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Parser = presetslog.NewParser(deps.Parser, logger)
	}

	return kongCtx.Run(deps)
}
