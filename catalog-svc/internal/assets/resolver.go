// Package assets maps a food's textual fields to a display asset via an
// ordered cascade of substring rules over a static registry. Matching is
// deliberately substring-based; a cuisine name embedded in an unrelated word
// does match, and that is accepted behavior.
package assets

import "strings"

type rule func(category, name, description string) (Asset, bool)

// Rules run in priority order; the first hit wins.
var rules = []rule{
	matchCategory,
	matchKeyword,
	matchCuisine,
	matchVariantAnywhere,
}

// Resolve returns the asset for a food. It is pure: identical inputs always
// produce identical output.
func Resolve(category, name, description string) Asset {
	category = strings.ToLower(category)
	name = strings.ToLower(name)
	description = strings.ToLower(description)

	for _, match := range rules {
		if asset, ok := match(category, name, description); ok {
			return asset
		}
	}
	return defaultAsset
}

// Default returns the fallback asset used when no rule matches.
func Default() Asset {
	return defaultAsset
}

func matchCategory(category, name, description string) (Asset, bool) {
	e, ok := lookup(category)
	if !ok {
		return Asset{}, false
	}
	return resolveEntry(e, name, description), true
}

func matchKeyword(_, name, description string) (Asset, bool) {
	for _, keyword := range keywords {
		if !strings.Contains(name, keyword) {
			continue
		}
		if e, ok := lookup(keyword); ok {
			return resolveEntry(e, name, description), true
		}
	}
	return Asset{}, false
}

func matchCuisine(category, name, description string) (Asset, bool) {
	for _, cuisine := range cuisines {
		if !strings.Contains(name, cuisine) &&
			!strings.Contains(category, cuisine) &&
			!strings.Contains(description, cuisine) {
			continue
		}
		if e, ok := lookup(cuisine); ok {
			return resolveEntry(e, name, description), true
		}
	}
	return Asset{}, false
}

// matchVariantAnywhere finds the first variant keyword present in the name or
// description and takes the first registry entry carrying that variant. Only
// the first keyword found in the text is considered; if no entry carries it,
// the cascade proceeds to the fallback rather than trying later keywords.
func matchVariantAnywhere(_, name, description string) (Asset, bool) {
	for _, keyword := range variants {
		if !strings.Contains(name, keyword) && !strings.Contains(description, keyword) {
			continue
		}
		for _, e := range registry {
			for _, v := range e.variants {
				if v.keyword == keyword {
					return Asset{Emoji: e.emoji, Image: v.image}, true
				}
			}
		}
		return Asset{}, false
	}
	return Asset{}, false
}

// resolveEntry substitutes a variant image when the name or description
// mentions one of the entry's variant keywords, in declared order.
func resolveEntry(e entry, name, description string) Asset {
	for _, v := range e.variants {
		if strings.Contains(name, v.keyword) || strings.Contains(description, v.keyword) {
			return Asset{Emoji: e.emoji, Image: v.image}
		}
	}
	return Asset{Emoji: e.emoji, Image: e.image}
}
