package fnformat

import (
	"strings"

	"golang.org/x/text/language"
)

func languageParentTag(lang string) string {
	if lang == "" {
		return ""
	}

	tag, err := language.Parse(lang)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(lang, "-"); idx > 0 {
		return lang[:idx]
	}

	return ""
}

// languageParentChain returns the parents of lang from closest to root, e.g.
// "es-MX" -> ["es-419", "es"].
func languageParentChain(lang string) []string {
	if lang == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(lang); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := languageParentTag(lang); current != ""; current = languageParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// normalizeLanguage returns the canonical BCP 47 form of lang, so "EN", "en_US " and
// "en-us" match the "en" and "en-US" tables. Tags that do not parse are only trimmed
// and hyphenated.
func normalizeLanguage(lang string) string {
	lang = strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	return tag.String()
}

// languageTag parses lang for casing rules, falling back to English.
func languageTag(lang string) language.Tag {
	tag, err := language.Parse(normalizeLanguage(lang))
	if err != nil {
		return language.English
	}
	return tag
}
