package counter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"stemcount/internal/domain"
	"stemcount/internal/port"
)

// maxSentenceRunes caps how much of a sentence is counted. Longer inputs are
// truncated before tokenization.
const maxSentenceRunes = 1024

var urlPattern = regexp.MustCompile(`https?://\S+`)

// WordCounter turns language-tagged sentences into stemmed n-gram frequency
// tables. Configuration changes apply to subsequent CountStems calls only;
// no state is carried between calls.
//
// A WordCounter is not safe for concurrent mutation. Separate instances may
// count concurrently, and a single instance may be shared as long as its
// configuration is not changed while a call is in flight.
type WordCounter struct {
	languages        port.ProviderResolver
	ngramSize        int
	includeStopwords bool
}

// NewWordCounter creates a counter with ngram size 1 and stopword filtering
// enabled.
func NewWordCounter(languages port.ProviderResolver) *WordCounter {
	return &WordCounter{
		languages: languages,
		ngramSize: 1,
	}
}

// SetNgramSize sets the window width for subsequent calls. Values below 1
// are rejected.
func (c *WordCounter) SetNgramSize(n int) error {
	if n < 1 {
		return &InvalidConfigurationError{
			Setting: "ngram size",
			Reason:  "must be at least 1",
		}
	}
	c.ngramSize = n
	return nil
}

// NgramSize returns the current window width.
func (c *WordCounter) NgramSize() int {
	return c.ngramSize
}

// SetIncludeStopwords controls whether stopwords survive filtering in
// subsequent calls.
func (c *WordCounter) SetIncludeStopwords(include bool) {
	c.includeStopwords = include
}

// IncludeStopwords reports whether stopwords are currently counted.
func (c *WordCounter) IncludeStopwords() bool {
	return c.includeStopwords
}

// Languages returns the provider resolver the counter dispatches on.
func (c *WordCounter) Languages() port.ProviderResolver {
	return c.languages
}

// CountStems aggregates all records into a single frequency table. Each
// stem key maps to its total count and the surface forms that produced it.
// An error on any record aborts the call with no partial result.
func (c *WordCounter) CountStems(records []domain.SentenceRecord) (domain.WordCounts, error) {
	counts := make(domain.WordCounts)
	for i, record := range records {
		provider, ok := c.languages.Provider(record.Language)
		if !ok {
			return nil, &UnsupportedLanguageError{Code: record.Language}
		}
		if err := c.countSentence(counts, provider, record.Text); err != nil {
			return nil, &ProcessingError{Index: i, Err: err}
		}
	}
	return counts, nil
}

// countSentence runs the per-sentence pipeline: clean, tokenize, filter
// stopwords, stem, then window the aligned token sequences into counts.
func (c *WordCounter) countSentence(counts domain.WordCounts, provider port.LanguageProvider, text string) error {
	if !utf8.ValidString(text) {
		return errors.New("text is not valid UTF-8")
	}
	text = truncate(text, maxSentenceRunes)
	text = urlPattern.ReplaceAllString(text, " ")

	surface := provider.Tokenize(text)
	if !c.includeStopwords {
		surface = removeStopwords(surface, provider.Stopwords())
	}
	stems := provider.Stem(surface)
	if len(stems) != len(surface) {
		return fmt.Errorf("stemmer returned %d stems for %d tokens", len(stems), len(surface))
	}

	n := c.ngramSize
	for start := 0; start+n <= len(surface); start++ {
		stem := strings.Join(stems[start:start+n], " ")
		term := strings.Join(surface[start:start+n], " ")
		counts.Add(stem, term)
	}
	return nil
}

// removeStopwords drops tokens found in the stopword set. Comparison is
// case-insensitive; kept tokens retain their surface form.
func removeStopwords(tokens []string, stopwords map[string]struct{}) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, isStop := stopwords[strings.ToLower(token)]; isStop {
			continue
		}
		kept = append(kept, token)
	}
	return kept
}

// truncate cuts text after limit runes without splitting a rune.
func truncate(text string, limit int) string {
	count := 0
	for i := range text {
		if count == limit {
			return text[:i]
		}
		count++
	}
	return text
}
