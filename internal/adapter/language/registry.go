package language

import (
	"sort"
	"strings"

	"stemcount/internal/port"
)

// Registry maps ISO 639-1 codes to language providers. Lookup normalizes
// case and strips region subtags, so "EN" and "en-US" both resolve the "en"
// provider.
type Registry struct {
	providers map[string]port.LanguageProvider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]port.LanguageProvider)}
}

// DefaultRegistry returns a registry with every supported language
// registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewProvider("en", "English", "english", englishStopwords))
	r.Register(NewProvider("es", "Spanish", "spanish", spanishStopwords))
	r.Register(NewProvider("fr", "French", "french", frenchStopwords))
	r.Register(NewProvider("hu", "Hungarian", "hungarian", hungarianStopwords))
	r.Register(NewProvider("no", "Norwegian", "norwegian", norwegianStopwords))
	r.Register(NewProvider("ru", "Russian", "russian", russianStopwords))
	r.Register(NewProvider("sv", "Swedish", "swedish", swedishStopwords))
	return r
}

// Register adds or replaces the provider for its code.
func (r *Registry) Register(p port.LanguageProvider) {
	r.providers[normalizeCode(p.Code())] = p
}

// Provider returns the provider registered for code. The second return is
// false when the code is unknown.
func (r *Registry) Provider(code string) (port.LanguageProvider, bool) {
	p, ok := r.providers[normalizeCode(code)]
	return p, ok
}

// Codes returns the registered codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.providers))
	for code := range r.providers {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// normalizeCode lowercases a language tag and strips any region subtag.
func normalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	return code
}
