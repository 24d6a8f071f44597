// Package slog provides logging decorators for presetdiff interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/presettools/presetdiff"
)

// Ensure Parser implements presetdiff.Parser.
var _ presetdiff.Parser = (*Parser)(nil)

// Parser wraps a presetdiff.Parser with logging.
type Parser struct {
	next   presetdiff.Parser
	logger *slog.Logger
}

// NewParser creates a new logging Parser.
func NewParser(next presetdiff.Parser, logger *slog.Logger) *Parser {
	return &Parser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *Parser) Parse(documentText string) (*presetdiff.Preset, error) {
	begin := time.Now()
	preset, err := p.next.Parse(documentText)
	if err != nil {
		p.logger.Error("preset parse failed",
			"code", presetdiff.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	p.logger.Info("preset parsed",
		"game", preset.Game.String(),
		"steam_mods", len(preset.SteamMods),
		"local_mods", len(preset.LocalMods),
		"dlcs", len(preset.Dlcs),
		"duration", time.Since(begin),
	)
	return preset, nil
}
