package fnformat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLanguageParentChain(t *testing.T) {
	cases := map[string][]string{
		"":      nil,
		"en":    nil,
		"pt-BR": {"pt"},
		"es-MX": {"es-419", "es"},
	}
	for lang, want := range cases {
		if diff := cmp.Diff(want, languageParentChain(lang)); diff != "" {
			t.Fatalf("languageParentChain(%q) mismatch (-want +got):\n%s", lang, diff)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		" en_US ": "en-US",
		"EN":      "en",
		"pt-br":   "pt-BR",
		"DE_at":   "de-AT",
		"":        "",
	}
	for in, want := range cases {
		if got := normalizeLanguage(in); got != want {
			t.Fatalf("normalizeLanguage(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("pt_BR", "pt", "pt-BR", "", "es")

	if diff := cmp.Diff([]string{"pt", "es"}, resolver.Resolve("pt-BR")); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}

	chain := resolver.Resolve("pt-BR")
	chain[0] = "mutated"
	if got := resolver.Resolve("pt-BR")[0]; got != "pt" {
		t.Fatalf("Resolve leaked internal slice: got %q", got)
	}

	if got := resolver.Resolve("fr"); got != nil {
		t.Fatalf("expected nil chain for unknown language, got %v", got)
	}

	var nilResolver *StaticFallbackResolver
	if got := nilResolver.Resolve("en"); got != nil {
		t.Fatalf("nil resolver returned %v", got)
	}
}
