package presets

import (
	_ "embed"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/toolstack/addressit/internal/model"
)

//go:embed catalog.toml
var catalogTOML []byte

type catalogFile struct {
	Categories []categoryDef `toml:"category"`
}

type categoryDef struct {
	Key           string              `toml:"key"`
	Countries     []string            `toml:"countries"`
	Recommended   bool                `toml:"recommended"`
	RecommendedIn []string            `toml:"recommended_in"`
	Names         map[string]string   `toml:"names"`
	Items         map[string][]string `toml:"items"`
}

var categories = mustLoad(catalogTOML)

func mustLoad(data []byte) []categoryDef {
	defs, err := parseCatalog(data)
	if err != nil {
		panic(err)
	}
	return defs
}

func parseCatalog(data []byte) ([]categoryDef, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse preset catalog: %w", err)
	}
	seen := make(map[string]bool, len(file.Categories))
	for _, c := range file.Categories {
		if c.Key == "" {
			return nil, fmt.Errorf("preset catalog: category without key")
		}
		if seen[c.Key] {
			return nil, fmt.Errorf("preset catalog: duplicate key %q", c.Key)
		}
		seen[c.Key] = true
	}
	return file.Categories, nil
}

// For returns the preset sections for a language and country. The result is
// freshly allocated and always in catalog order.
func For(lang model.Lang, country model.Country) []model.PresetSection {
	lang = model.ParseLang(string(lang))
	country = model.ParseCountry(string(country))

	out := make([]model.PresetSection, 0, len(categories))
	for _, c := range categories {
		if !c.availableIn(country) {
			continue
		}
		items := c.itemsFor(lang, country)
		copied := make([]string, len(items))
		copy(copied, items)
		out = append(out, model.PresetSection{
			Key:         c.Key,
			Name:        c.nameFor(lang),
			Recommended: c.recommendedIn(country),
			Items:       copied,
		})
	}
	return out
}

func Find(list []model.PresetSection, key string) (model.PresetSection, bool) {
	for _, p := range list {
		if p.Key == key {
			return p, true
		}
	}
	return model.PresetSection{}, false
}

func (c categoryDef) availableIn(country model.Country) bool {
	if len(c.Countries) == 0 {
		return true
	}
	return contains(c.Countries, string(country))
}

func (c categoryDef) recommendedIn(country model.Country) bool {
	return c.Recommended || contains(c.RecommendedIn, string(country))
}

func (c categoryDef) nameFor(lang model.Lang) string {
	if n, ok := c.Names[string(lang)]; ok && n != "" {
		return n
	}
	if n, ok := c.Names[string(model.LangEN)]; ok && n != "" {
		return n
	}
	return c.Key
}

func (c categoryDef) itemsFor(lang model.Lang, country model.Country) []string {
	for _, k := range []string{
		string(lang) + "@" + string(country),
		"@" + string(country),
		string(lang),
		string(model.LangEN),
	} {
		if items, ok := c.Items[k]; ok {
			return items
		}
	}
	return nil
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
