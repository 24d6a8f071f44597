package presetdiff

import (
	"fmt"
	"maps"
	"strings"
)

// Compare renders a human-readable report of the differences between two
// parsed presets. Labels double as report section titles; callers must
// disambiguate colliding labels before calling (see cmd/presetdiff).
//
// Presets for different games are not compared beyond the game check. Steam
// mods and DLCs are compared by id; local mods have no stable id and are
// listed verbatim per preset instead.
func Compare(p1 *Preset, label1 string, p2 *Preset, label2 string) string {
	if p1.Game != p2.Game {
		return fmt.Sprintf("Presets '%s' and '%s' do not belong to the same game", label1, label2)
	}
	if p1.Equal(p2) {
		return fmt.Sprintf("Presets '%s' and '%s' have identical contents", label1, label2)
	}

	var b strings.Builder

	writeIDSection(&b, "Steam Mods", label1, p1.SteamMods, label2, p2.SteamMods,
		func(m PresetSteamMod) uint64 { return m.ID })
	writeIDSection(&b, "DLCs", label1, p1.Dlcs, label2, p2.Dlcs,
		func(d PresetDlc) uint64 { return d.ID })

	writeList(&b, fmt.Sprintf("Local mods in '%s'", label1), p1.LocalMods)
	writeList(&b, fmt.Sprintf("Local mods in '%s'", label2), p2.LocalMods)

	return b.String()
}

// writeIDSection writes the report section for one id-comparable category.
// When the id sets differ it emits three labeled lists: items only in preset
// 1, items only in preset 2, and items in both, rendered from preset 1's
// copies.
func writeIDSection[T fmt.Stringer](b *strings.Builder, category string, label1 string, items1 []T, label2 string, items2 []T, id func(T) uint64) {
	ids1 := idSet(items1, id)
	ids2 := idSet(items2, id)

	switch {
	case len(ids1) == 0 && len(ids2) == 0:
		fmt.Fprintf(b, "'%s' and '%s' have no %s\n\n", label1, label2, category)
	case maps.Equal(ids1, ids2):
		fmt.Fprintf(b, "'%s' and '%s' have the same %s\n\n", label1, label2, category)
	default:
		writeList(b, fmt.Sprintf("%s only in '%s'", category, label1),
			filterByID(items1, ids2, id, false))
		writeList(b, fmt.Sprintf("%s only in '%s'", category, label2),
			filterByID(items2, ids1, id, false))
		writeList(b, fmt.Sprintf("%s in '%s' and '%s'", category, label1, label2),
			filterByID(items1, ids2, id, true))
	}
}

// writeList writes a labeled list followed by a blank line separator. Empty
// lists are omitted entirely: no header, no blank line.
func writeList[T fmt.Stringer](b *strings.Builder, header string, items []T) {
	if len(items) == 0 {
		return
	}
	b.WriteString(header + "\n")
	for _, item := range items {
		b.WriteString("- " + item.String() + "\n")
	}
	b.WriteString("\n")
}

// filterByID returns the items whose id membership in the other preset's id
// set matches wantMember, preserving order and duplicates.
func filterByID[T any](items []T, other map[uint64]struct{}, id func(T) uint64, wantMember bool) []T {
	var out []T
	for _, item := range items {
		if _, ok := other[id(item)]; ok == wantMember {
			out = append(out, item)
		}
	}
	return out
}

func idSet[T any](items []T, id func(T) uint64) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(items))
	for _, item := range items {
		set[id(item)] = struct{}{}
	}
	return set
}
