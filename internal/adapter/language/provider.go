package language

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Provider implements port.LanguageProvider backed by a Snowball stemming
// algorithm and a static stopword list.
type Provider struct {
	code      string
	name      string
	algorithm string
	stopwords map[string]struct{}
}

// NewProvider creates a provider. algorithm is the Snowball algorithm name,
// e.g. "english". words is the lowercase stopword list.
func NewProvider(code, name, algorithm string, words []string) *Provider {
	return &Provider{
		code:      code,
		name:      name,
		algorithm: algorithm,
		stopwords: buildSet(words),
	}
}

// Code returns the ISO 639-1 code of the language.
func (p *Provider) Code() string {
	return p.code
}

// Name returns the English name of the language.
func (p *Provider) Name() string {
	return p.name
}

// Tokenize splits text into surface-form tokens.
func (p *Provider) Tokenize(text string) []string {
	return Tokenize(text)
}

// Stem reduces each token with the language's Snowball algorithm. Snowball
// lowercases its output, so stems compare case-insensitively even though
// surface tokens keep their case. A token the stemmer rejects is kept
// lowercased to preserve alignment with the input.
func (p *Provider) Stem(tokens []string) []string {
	stems := make([]string, len(tokens))
	for i, token := range tokens {
		stem, err := snowball.Stem(token, p.algorithm, true)
		if err != nil {
			stems[i] = strings.ToLower(token)
			continue
		}
		stems[i] = stem
	}
	return stems
}

// Stopwords returns the language's lowercase stopword set. The map is shared
// and must not be modified.
func (p *Provider) Stopwords() map[string]struct{} {
	return p.stopwords
}
