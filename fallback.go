package fnformat

import "sync"

// FallbackResolver resolves fallback language chains
type FallbackResolver interface {
	Resolve(language string) []string
}

// StaticFallbackResolver holds explicit fallback chains, e.g. "pt-BR" -> "pt", "es".
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

var _ FallbackResolver = &StaticFallbackResolver{}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the fallback chain for language.
func (s *StaticFallbackResolver) Set(language string, fallbacks ...string) {
	language = normalizeLanguage(language)
	if s == nil || language == "" {
		return
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fb := range fallbacks {
		if fb = normalizeLanguage(fb); fb != "" && fb != language {
			chain = append(chain, fb)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[language] = chain
}

func (s *StaticFallbackResolver) Resolve(language string) []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	chain, ok := s.chains[normalizeLanguage(language)]
	if !ok {
		return nil
	}
	return append([]string(nil), chain...)
}
