package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"stemcount/internal/adapter/language"
	"stemcount/internal/counter"
	"stemcount/internal/domain"
)

var englishPool = []string{
	"kardashian", "jenner", "celebrated", "birthday", "television", "family",
	"special", "featured", "fashion", "beauty", "brand", "expanded", "photos",
	"shared", "reunion", "attended", "gala", "praised", "fans", "the", "and",
	"with", "her", "of", "on", "into", "a",
}

var spanishPool = []string{
	"boda", "hermanas", "revista", "moda", "espectacular", "posaron",
	"celebraron", "fiesta", "familia", "fotos", "la", "de", "y", "para",
	"una", "las", "fue",
}

func main() {
	sentences := flag.Int("sentences", 50000, "Number of synthetic sentences")
	ngram := flag.Int("ngram", 1, "N-gram size")
	stopwords := flag.Bool("stopwords", false, "Include stopwords")
	seed := flag.Int64("seed", 42, "Random seed")
	flag.Parse()

	records := generate(*sentences, *seed)

	wc := counter.NewWordCounter(language.DefaultRegistry())
	if err := wc.SetNgramSize(*ngram); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	wc.SetIncludeStopwords(*stopwords)

	fmt.Println("STEM COUNTING BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Sentences: %s (en + es)\n", humanize.Comma(int64(len(records))))
	fmt.Printf("N-gram size: %d\n", *ngram)
	fmt.Printf("Stopwords: %v\n", *stopwords)
	fmt.Println()

	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	start := time.Now()
	counts, err := wc.CountStems(records)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Counting failed: %v\n", err)
		os.Exit(1)
	}

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	perSecond := float64(len(records)) / elapsed.Seconds()

	fmt.Println(strings.Repeat("-", 70))
	fmt.Printf("Elapsed:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("Throughput:     %s sentences/sec\n", humanize.Comma(int64(perSecond)))
	fmt.Printf("Grams counted:  %s\n", humanize.Comma(int64(counts.Total())))
	fmt.Printf("Distinct stems: %s\n", humanize.Comma(int64(len(counts))))
	fmt.Printf("Allocated:      %s\n", humanize.Bytes(after.TotalAlloc-before.TotalAlloc))
	fmt.Println()

	fmt.Println("Top stems:")
	for i, sc := range counts.TopStems(10) {
		fmt.Printf("%2d. %-20s %s\n", i+1, sc.Stem, humanize.Comma(int64(sc.Count)))
	}
}

// generate builds a deterministic mixed-language corpus, roughly three
// English sentences for every Spanish one.
func generate(n int, seed int64) []domain.SentenceRecord {
	rng := rand.New(rand.NewSource(seed))
	records := make([]domain.SentenceRecord, 0, n)

	for i := 0; i < n; i++ {
		pool := englishPool
		code := "en"
		if i%4 == 3 {
			pool = spanishPool
			code = "es"
		}

		length := 8 + rng.Intn(7)
		words := make([]string, length)
		for j := range words {
			words[j] = pool[rng.Intn(len(pool))]
		}

		records = append(records, domain.SentenceRecord{
			Text:     strings.Join(words, " "),
			Language: code,
		})
	}
	return records
}
