package main

import (
	"fmt"
	"strings"

	"github.com/presettools/presetdiff"
	"github.com/presettools/presetdiff/fs"
)

// Run executes the diff command.
func (c *DiffCmd) Run(deps *Dependencies) error {
	preset1, err := parseFile(deps, c.Path1)
	if err != nil {
		return err
	}
	preset2, err := parseFile(deps, c.Path2)
	if err != nil {
		return err
	}

	label1, label2 := presetLabels(preset1, c.Path1, preset2, c.Path2)
	report := presetdiff.Compare(preset1, label1, preset2, label2)

	if c.Stdout {
		fmt.Fprintln(deps.Stdout, report)
		return nil
	}

	if err := deps.Writer.WriteText(c.Output, report); err != nil {
		return fmt.Errorf("failed to write to %s: %w", c.Output, err)
	}
	fmt.Fprintf(deps.Stdout, "Wrote report to %s\n", c.Output)
	return nil
}

// presetLabels resolves the report labels for two presets: the preset's own
// name when present, else the input file stem, else a positional fallback.
// Labels double as report section titles, so a case-insensitive collision is
// disambiguated with " (1)" / " (2)".
func presetLabels(p1 *presetdiff.Preset, path1 string, p2 *presetdiff.Preset, path2 string) (string, string) {
	label1 := presetLabel(p1, path1, "Preset 1")
	label2 := presetLabel(p2, path2, "Preset 2")
	if strings.EqualFold(label1, label2) {
		label1 += " (1)"
		label2 += " (2)"
	}
	return label1, label2
}

func presetLabel(p *presetdiff.Preset, path string, fallback string) string {
	if p.PresetName != "" {
		return p.PresetName
	}
	if stem := fs.Stem(path); stem != "" {
		return stem
	}
	return fallback
}
