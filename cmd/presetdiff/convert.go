package main

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/presettools/presetdiff"
	"github.com/presettools/presetdiff/fs"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if c.Stdout {
		// Keep stdout output in argument order.
		for _, path := range c.Paths {
			preset, err := parseFile(deps, path)
			if err != nil {
				return err
			}
			fmt.Fprint(deps.Stdout, preset.String())
		}
		return nil
	}

	g, _ := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for _, path := range c.Paths {
		g.Go(func() error {
			preset, err := parseFile(deps, path)
			if err != nil {
				return err
			}
			outPath := fs.TextPath(path)
			if err := deps.Writer.WriteText(outPath, preset.String()); err != nil {
				return fmt.Errorf("failed to write to %s: %w", outPath, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// parseFile reads and parses one preset document, wrapping errors with the
// file path.
func parseFile(deps *Dependencies, path string) (*presetdiff.Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file %s: %w", path, err)
	}
	preset, err := deps.Parser.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse preset file %s: %w", path, err)
	}
	return preset, nil
}
