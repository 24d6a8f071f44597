package presetdiff

import (
	"slices"
	"strconv"
	"strings"
)

// Game identifies which launcher produced a preset document.
type Game string

// Supported games.
const (
	GameArma Game = "arma"
	GameDayZ Game = "dayz"
)

// String returns the human-readable game name used in rendered output.
func (g Game) String() string {
	switch g {
	case GameArma:
		return "Arma 3"
	case GameDayZ:
		return "DayZ"
	}
	return string(g)
}

// PresetSteamMod is a mod sourced from the Steam Workshop.
// Identity is ID; DisplayName is informational.
type PresetSteamMod struct {
	DisplayName string
	ID          uint64
}

// URL returns the canonical Steam Workshop URL for the mod.
func (m PresetSteamMod) URL() string {
	return "https://" + steamWorkshopPrefix + strconv.FormatUint(m.ID, 10)
}

func (m PresetSteamMod) String() string {
	return m.URL() + ": " + m.DisplayName
}

// PresetLocalMod is a mod installed from local files. Local mods carry no
// stable identifier; equality is by display name.
type PresetLocalMod struct {
	DisplayName string
}

func (m PresetLocalMod) String() string {
	return m.DisplayName
}

// PresetDlc is a DLC entry. Identity is ID, the Steam store app id.
type PresetDlc struct {
	DisplayName string
	ID          uint64
}

// URL returns the canonical Steam store URL for the DLC.
func (d PresetDlc) URL() string {
	return "https://" + steamAppPrefix + strconv.FormatUint(d.ID, 10)
}

func (d PresetDlc) String() string {
	return d.URL() + ": " + d.DisplayName
}

// Preset is the fully parsed content of one launcher preset document.
// It is built in a single parse pass and not modified afterwards. All items
// belong to the preset's Game. Duplicate ids are legal; the sequences
// preserve document order.
type Preset struct {
	Game Game

	// PresetName is empty when the document carries no name marker.
	PresetName string

	SteamMods []PresetSteamMod
	LocalMods []PresetLocalMod
	Dlcs      []PresetDlc
}

// String renders the preset as line-oriented plain text: a header naming the
// game (and preset name, if any), then one line per Steam mod, local mod and
// DLC, each section in document order.
func (p *Preset) String() string {
	var b strings.Builder
	if p.PresetName != "" {
		b.WriteString(p.Game.String() + " Preset: " + p.PresetName + "\n")
	} else {
		b.WriteString(p.Game.String() + " Preset\n")
	}
	for _, m := range p.SteamMods {
		b.WriteString("Steam: " + m.String() + "\n")
	}
	for _, m := range p.LocalMods {
		b.WriteString("Local: " + m.String() + "\n")
	}
	for _, d := range p.Dlcs {
		b.WriteString("DLC: " + d.String() + "\n")
	}
	return b.String()
}

// Equal reports whether two presets have identical contents: the same game
// and element-wise equal mod and DLC sequences, order and duplicates
// included. Preset names are not part of the contents and are ignored.
func (p *Preset) Equal(other *Preset) bool {
	return p.Game == other.Game &&
		slices.Equal(p.SteamMods, other.SteamMods) &&
		slices.Equal(p.LocalMods, other.LocalMods) &&
		slices.Equal(p.Dlcs, other.Dlcs)
}
