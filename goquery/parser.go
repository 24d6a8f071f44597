// Package goquery implements preset document parsing with
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/presettools/presetdiff"
	"golang.org/x/net/html"
)

// Selectors are compiled once at package init and shared by every Parse
// call; they are never mutated.
var (
	presetTypeArma = cascadia.MustCompile(`head > meta[name="arma:Type"][content]`)
	presetNameArma = cascadia.MustCompile(`head > meta[name="arma:PresetName"][content]`)
	presetTypeDayZ = cascadia.MustCompile(`head > meta[name="dayz:Type"][content]`)
	presetNameDayZ = cascadia.MustCompile(`head > meta[name="dayz:PresetName"][content]`)
	modContainer   = cascadia.MustCompile(`body > div.mod-list > table tr[data-type="ModContainer"]`)
	dlcContainer   = cascadia.MustCompile(`body > div.dlc-list > table tr[data-type="DlcContainer"]`)
	itemName       = cascadia.MustCompile(`td[data-type="DisplayName"]`)
	itemLink       = cascadia.MustCompile(`td > a[data-type="Link"]`)
	itemOrigin     = cascadia.MustCompile(`td > span[class]`)
)

// Item origin class tokens used by the launcher export format.
const (
	originLocal = "from-local"
	originSteam = "from-steam"
)

// Accepted preset type marker values. The value only proves the marker
// belongs to the expected game; which marker name matched decides the game.
var presetTypeValues = []string{"preset", "list"}

// Ensure Parser implements presetdiff.Parser at compile time.
var _ presetdiff.Parser = (*Parser)(nil)

// Parser extracts a Preset from a launcher preset HTML document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements presetdiff.Parser. Malformed HTML is not an error: the
// document degrades per standard HTML parsing rules and the selectors simply
// match or miss on the resulting tree.
func (p *Parser) Parse(documentText string) (*presetdiff.Preset, error) {
	root, err := html.Parse(strings.NewReader(documentText))
	if err != nil {
		// html.Parse only fails on reader errors, which strings.Reader
		// cannot produce.
		return nil, presetdiff.Errorf(presetdiff.EINTERNAL, "failed to parse document: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	game, err := selectPresetType(doc)
	if err != nil {
		return nil, err
	}

	preset := &presetdiff.Preset{
		Game:       game,
		PresetName: selectPresetName(doc, game),
	}

	var parseErr error
	doc.FindMatcher(modContainer).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		parseErr = p.parseModRow(row, preset)
		return parseErr == nil
	})
	if parseErr != nil {
		return nil, parseErr
	}

	doc.FindMatcher(dlcContainer).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		parseErr = p.parseDlcRow(row, preset)
		return parseErr == nil
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return preset, nil
}

// parseModRow classifies one mod container row by origin and appends it to
// the preset's local or Steam mod sequence.
func (p *Parser) parseModRow(row *goquery.Selection, preset *presetdiff.Preset) error {
	displayName, err := selectItemName(row)
	if err != nil {
		return err
	}

	origin, err := selectItemOrigin(row)
	if err != nil {
		return err
	}

	switch origin {
	case originLocal:
		preset.LocalMods = append(preset.LocalMods, presetdiff.PresetLocalMod{
			DisplayName: displayName,
		})
	case originSteam:
		link, err := selectItemLink(row)
		if err != nil {
			return err
		}
		id, ok := presetdiff.WorkshopID(link)
		if !ok {
			return presetdiff.Errorf(presetdiff.EWORKSHOPLINK,
				"invalid item link value %q, failed to extract steam workshop item id", link)
		}
		preset.SteamMods = append(preset.SteamMods, presetdiff.PresetSteamMod{
			DisplayName: displayName,
			ID:          id,
		})
	default:
		return presetdiff.Errorf(presetdiff.EITEMORIGINVALUE,
			"invalid item origin value %q, expected one of 'from-local' or 'from-steam'", origin)
	}

	return nil
}

// parseDlcRow appends one DLC container row to the preset's DLC sequence.
// Every DLC row requires a store link.
func (p *Parser) parseDlcRow(row *goquery.Selection, preset *presetdiff.Preset) error {
	displayName, err := selectItemName(row)
	if err != nil {
		return err
	}

	link, err := selectItemLink(row)
	if err != nil {
		return err
	}
	id, ok := presetdiff.AppID(link)
	if !ok {
		return presetdiff.Errorf(presetdiff.EAPPLINK,
			"invalid item link value %q, failed to extract steam app item id", link)
	}

	preset.Dlcs = append(preset.Dlcs, presetdiff.PresetDlc{
		DisplayName: displayName,
		ID:          id,
	})
	return nil
}

// selectPresetType determines the game from the head metadata markers. The
// marker name decides the game; the marker value is only validated against
// the accepted vocabulary.
func selectPresetType(doc *goquery.Document) (presetdiff.Game, error) {
	markers := []struct {
		matcher goquery.Matcher
		game    presetdiff.Game
	}{
		{presetTypeArma, presetdiff.GameArma},
		{presetTypeDayZ, presetdiff.GameDayZ},
	}

	for _, marker := range markers {
		content, exists := doc.FindMatcher(marker.matcher).Attr("content")
		if !exists {
			continue
		}
		valid := false
		for _, value := range presetTypeValues {
			if content == value {
				valid = true
				break
			}
		}
		if !valid {
			return "", presetdiff.Errorf(presetdiff.EPRESETTYPEVALUE,
				"invalid preset type value %q, expected one of 'preset' or 'list'", content)
		}
		return marker.game, nil
	}

	serialized, _ := doc.Html()
	return "", presetdiff.Errorf(presetdiff.EPRESETTYPESELECTOR,
		"preset type selector failed on html: %s", serialized)
}

// selectPresetName extracts the optional preset display name from the
// game-specific head marker. Absence is not an error.
func selectPresetName(doc *goquery.Document, game presetdiff.Game) string {
	matcher := presetNameArma
	if game == presetdiff.GameDayZ {
		matcher = presetNameDayZ
	}
	name, _ := doc.FindMatcher(matcher).Attr("content")
	return name
}

func selectItemName(row *goquery.Selection) (string, error) {
	name := row.FindMatcher(itemName).First().Text()
	if name == "" {
		return "", selectorError(presetdiff.EITEMNAMESELECTOR, "item name", row)
	}
	return name, nil
}

func selectItemLink(row *goquery.Selection) (string, error) {
	href, exists := row.FindMatcher(itemLink).Attr("href")
	if !exists {
		return "", selectorError(presetdiff.EITEMLINKSELECTOR, "item link", row)
	}
	return href, nil
}

func selectItemOrigin(row *goquery.Selection) (string, error) {
	class, exists := row.FindMatcher(itemOrigin).Attr("class")
	if !exists {
		return "", selectorError(presetdiff.EITEMORIGINSELECTOR, "item origin", row)
	}
	return class, nil
}

// selectorError builds a selector-miss error carrying the serialized inner
// HTML of the element the selector was scoped to.
func selectorError(code string, what string, sel *goquery.Selection) *presetdiff.Error {
	serialized, _ := sel.Html()
	return presetdiff.Errorf(code, "%s selector failed on html: %s", what, serialized)
}
