package presetdiff

import (
	"strconv"
	"strings"
)

// Steam link prefixes shared by the link decoder and canonical URL
// rendering.
const (
	steamWorkshopPrefix = "steamcommunity.com/sharedfiles/filedetails/?id="
	steamAppPrefix      = "store.steampowered.com/app/"
)

// WorkshopID extracts the numeric item id from a Steam Workshop link.
// The link must use an http or https scheme, match the workshop host and
// path exactly, and end in a base-10 id with no trailing characters.
func WorkshopID(link string) (uint64, bool) {
	return steamLinkID(link, steamWorkshopPrefix)
}

// AppID extracts the numeric app id from a Steam store link. Same rules as
// WorkshopID, with the store host and path.
func AppID(link string) (uint64, bool) {
	return steamLinkID(link, steamAppPrefix)
}

func steamLinkID(link, prefix string) (uint64, bool) {
	rest, ok := stripScheme(strings.TrimSpace(link))
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutPrefix(rest, prefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// stripScheme removes a leading https:// or http://. Scheme-less links are
// invalid.
func stripScheme(link string) (string, bool) {
	if rest, ok := strings.CutPrefix(link, "https://"); ok {
		return rest, true
	}
	return strings.CutPrefix(link, "http://")
}
