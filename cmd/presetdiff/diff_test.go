package main

import (
	"testing"

	"github.com/presettools/presetdiff"
	"github.com/stretchr/testify/assert"
)

func TestPresetLabels(t *testing.T) {
	t.Parallel()

	t.Run("prefers preset names", func(t *testing.T) {
		t.Parallel()

		p1 := &presetdiff.Preset{PresetName: "Alpha"}
		p2 := &presetdiff.Preset{PresetName: "Bravo"}

		label1, label2 := presetLabels(p1, "one.html", p2, "two.html")
		assert.Equal(t, "Alpha", label1)
		assert.Equal(t, "Bravo", label2)
	})

	t.Run("falls back to file stems", func(t *testing.T) {
		t.Parallel()

		p1 := &presetdiff.Preset{}
		p2 := &presetdiff.Preset{PresetName: "Bravo"}

		label1, label2 := presetLabels(p1, "exports/weekend.html", p2, "two.html")
		assert.Equal(t, "weekend", label1)
		assert.Equal(t, "Bravo", label2)
	})

	t.Run("disambiguates case-insensitive collisions", func(t *testing.T) {
		t.Parallel()

		p1 := &presetdiff.Preset{PresetName: "Ops"}
		p2 := &presetdiff.Preset{PresetName: "OPS"}

		label1, label2 := presetLabels(p1, "one.html", p2, "two.html")
		assert.Equal(t, "Ops (1)", label1)
		assert.Equal(t, "OPS (2)", label2)
	})

	t.Run("stem collisions are also disambiguated", func(t *testing.T) {
		t.Parallel()

		p1 := &presetdiff.Preset{}
		p2 := &presetdiff.Preset{}

		label1, label2 := presetLabels(p1, "a/preset.html", p2, "b/preset.html")
		assert.Equal(t, "preset (1)", label1)
		assert.Equal(t, "preset (2)", label2)
	})
}
