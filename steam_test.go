package presetdiff_test

import (
	"testing"

	"github.com/presettools/presetdiff"
	"github.com/stretchr/testify/assert"
)

func TestWorkshopID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		link   string
		wantID uint64
		wantOK bool
	}{
		{
			name:   "https workshop link",
			link:   "https://steamcommunity.com/sharedfiles/filedetails/?id=123",
			wantID: 123,
			wantOK: true,
		},
		{
			name:   "http workshop link",
			link:   "http://steamcommunity.com/sharedfiles/filedetails/?id=450814997",
			wantID: 450814997,
			wantOK: true,
		},
		{
			name:   "surrounding whitespace is trimmed",
			link:   "  https://steamcommunity.com/sharedfiles/filedetails/?id=42\n",
			wantID: 42,
			wantOK: true,
		},
		{
			name: "unsupported scheme",
			link: "ftp://steamcommunity.com/sharedfiles/filedetails/?id=123",
		},
		{
			name: "scheme-less link",
			link: "steamcommunity.com/sharedfiles/filedetails/?id=123",
		},
		{
			name: "trailing characters after the id",
			link: "https://steamcommunity.com/sharedfiles/filedetails/?id=123&searchtext=",
		},
		{
			name: "missing id",
			link: "https://steamcommunity.com/sharedfiles/filedetails/?id=",
		},
		{
			name: "negative id",
			link: "https://steamcommunity.com/sharedfiles/filedetails/?id=-1",
		},
		{
			name: "wrong host",
			link: "https://example.com/sharedfiles/filedetails/?id=123",
		},
		{
			name: "store link is not a workshop link",
			link: "https://store.steampowered.com/app/123",
		},
		{
			name: "empty link",
			link: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, ok := presetdiff.WorkshopID(tt.link)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestAppID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		link   string
		wantID uint64
		wantOK bool
	}{
		{
			name:   "https store link",
			link:   "https://store.steampowered.com/app/395180",
			wantID: 395180,
			wantOK: true,
		},
		{
			name:   "http store link",
			link:   "http://store.steampowered.com/app/456",
			wantID: 456,
			wantOK: true,
		},
		{
			name: "trailing path after the id",
			link: "https://store.steampowered.com/app/395180/Arma_3_Apex/",
		},
		{
			name: "scheme-less link",
			link: "store.steampowered.com/app/456",
		},
		{
			name: "workshop link is not a store link",
			link: "https://steamcommunity.com/sharedfiles/filedetails/?id=456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, ok := presetdiff.AppID(tt.link)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
