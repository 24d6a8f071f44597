package mock

import "github.com/presettools/presetdiff"

var _ presetdiff.Parser = (*Parser)(nil)

// Parser is a mock implementation of presetdiff.Parser.
type Parser struct {
	ParseFn func(documentText string) (*presetdiff.Preset, error)
}

func (p *Parser) Parse(documentText string) (*presetdiff.Preset, error) {
	return p.ParseFn(documentText)
}
