// Package presetdiff parses Arma 3 and DayZ launcher preset exports (the
// HTML documents produced by the launchers' "export preset" feature) and
// supports two operations on the parsed model: rendering a preset as plain
// text and diffing two presets.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, slog/).
package presetdiff
