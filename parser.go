package presetdiff

// Parser turns the text of a launcher preset document into a Preset.
// Implementations hide the HTML parsing and selector machinery.
type Parser interface {
	// Parse builds a Preset from a full preset document. It returns either
	// a complete Preset or a single *Error describing the first failure;
	// there is no partial success.
	Parse(documentText string) (*Preset, error)
}
