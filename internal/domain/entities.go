package domain

import (
	"sort"
	"time"
)

// SentenceRecord is one sentence of input text tagged with its ISO 639-1
// language code.
type SentenceRecord struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// TermBucket holds every occurrence of one stem: the total count plus the
// surface forms that produced it. Count equals the sum of Terms values.
type TermBucket struct {
	Count int            `json:"count"`
	Terms map[string]int `json:"terms"`
}

// WordCounts maps a stem key (stemmed tokens joined by single spaces for
// n-grams) to its bucket.
type WordCounts map[string]*TermBucket

// Add records one occurrence of term under stem.
func (w WordCounts) Add(stem, term string) {
	bucket := w[stem]
	if bucket == nil {
		bucket = &TermBucket{Terms: make(map[string]int)}
		w[stem] = bucket
	}
	bucket.Count++
	bucket.Terms[term]++
}

// Merge folds other into w.
func (w WordCounts) Merge(other WordCounts) {
	for stem, bucket := range other {
		dst := w[stem]
		if dst == nil {
			dst = &TermBucket{Terms: make(map[string]int, len(bucket.Terms))}
			w[stem] = dst
		}
		dst.Count += bucket.Count
		for term, n := range bucket.Terms {
			dst.Terms[term] += n
		}
	}
}

// Total returns the number of n-gram occurrences across all stems.
func (w WordCounts) Total() int {
	total := 0
	for _, bucket := range w {
		total += bucket.Count
	}
	return total
}

// StemCount is one row of a ranked report.
type StemCount struct {
	Stem  string `json:"stem"`
	Count int    `json:"count"`
}

// TopStems returns stems ordered by descending count, ties broken
// lexicographically. n <= 0 returns all stems.
func (w WordCounts) TopStems(n int) []StemCount {
	ranked := make([]StemCount, 0, len(w))
	for stem, bucket := range w {
		ranked = append(ranked, StemCount{Stem: stem, Count: bucket.Count})
	}
	sortRanked(ranked)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopTerms returns the bucket's surface forms ordered by descending count,
// ties broken lexicographically. n <= 0 returns all terms.
func (b *TermBucket) TopTerms(n int) []StemCount {
	ranked := make([]StemCount, 0, len(b.Terms))
	for term, count := range b.Terms {
		ranked = append(ranked, StemCount{Stem: term, Count: count})
	}
	sortRanked(ranked)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func sortRanked(ranked []StemCount) {
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Stem < ranked[j].Stem
	})
}

// CorpusMeta describes one saved count snapshot.
type CorpusMeta struct {
	ID               string    `json:"id"`
	Label            string    `json:"label"`
	CreatedAt        time.Time `json:"created_at"`
	NgramSize        int       `json:"ngram_size"`
	IncludeStopwords bool      `json:"include_stopwords"`
	Sentences        int       `json:"sentences"`
	Grams            int       `json:"grams"`
	Stems            int       `json:"stems"`
	Languages        []string  `json:"languages"`
}
