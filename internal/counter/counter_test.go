package counter

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"stemcount/internal/adapter/language"
	"stemcount/internal/domain"
	"stemcount/internal/port"
)

func fixtureSentences() []domain.SentenceRecord {
	return []domain.SentenceRecord{
		{Text: "kim kardashian celebrated her birthday with kanye west", Language: "en"},
		{Text: "kim kardashian and kylie jenner attended the met gala", Language: "en"},
		{Text: "kris jenner praised kendall jenner on live television", Language: "en"},
		{Text: "a kardashian family special featured kim and kylie jenner", Language: "en"},
		{Text: "fans of kardashian west shared photos of the reunion", Language: "en"},
		{Text: "the kardashian brand expanded into beauty and fashion", Language: "en"},
		{Text: "la boda de kim y kanye fue espectacular", Language: "es"},
		{Text: "las hermanas posaron para una revista de moda", Language: "es"},
	}
}

func assertConsistent(t *testing.T, counts domain.WordCounts) {
	t.Helper()
	for stem, bucket := range counts {
		sum := 0
		for _, n := range bucket.Terms {
			sum += n
		}
		if bucket.Count != sum {
			t.Errorf("stem %q: count %d does not match term sum %d", stem, bucket.Count, sum)
		}
	}
}

func TestWordCounter_CountStems_Unigrams(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())

	counts, err := wc.CountStems(fixtureSentences())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertConsistent(t, counts)

	kardashian := counts["kardashian"]
	if kardashian == nil {
		t.Fatal("expected stem 'kardashian' in result")
	}
	if kardashian.Count != 5 {
		t.Errorf("expected kardashian count=5, got %d", kardashian.Count)
	}
	if len(kardashian.Terms) != 1 || kardashian.Terms["kardashian"] != 5 {
		t.Errorf("expected terms {kardashian: 5}, got %v", kardashian.Terms)
	}

	jenner := counts["jenner"]
	if jenner == nil {
		t.Fatal("expected stem 'jenner' in result")
	}
	if jenner.Count != 4 {
		t.Errorf("expected jenner count=4, got %d", jenner.Count)
	}

	if counts["kim"] == nil || counts["kim"].Count != 4 {
		t.Errorf("expected kim count=4, got %+v", counts["kim"])
	}

	// "kanye" stems the same in English and Spanish, so the counts from
	// both languages land in one bucket.
	if counts["kany"] == nil || counts["kany"].Count != 2 {
		t.Errorf("expected kany count=2, got %+v", counts["kany"])
	}

	if total := counts.Total(); total != 46 {
		t.Errorf("expected 46 grams, got %d", total)
	}
	if len(counts) != 33 {
		t.Errorf("expected 33 distinct stems, got %d", len(counts))
	}
}

func TestWordCounter_CountStems_Bigrams(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())
	if err := wc.SetNgramSize(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts, err := wc.CountStems(fixtureSentences())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertConsistent(t, counts)

	kk := counts["kim kardashian"]
	if kk == nil {
		t.Fatal("expected bigram stem 'kim kardashian' in result")
	}
	if kk.Count != 2 {
		t.Errorf("expected 'kim kardashian' count=2, got %d", kk.Count)
	}
	if len(kk.Terms) != 1 || kk.Terms["kim kardashian"] != 2 {
		t.Errorf("expected terms {kim kardashian: 2}, got %v", kk.Terms)
	}

	if counts["kyli jenner"] == nil || counts["kyli jenner"].Count != 2 {
		t.Errorf("expected 'kyli jenner' count=2, got %+v", counts["kyli jenner"])
	}

	// One bigram fewer than tokens per sentence
	if total := counts.Total(); total != 38 {
		t.Errorf("expected 38 bigrams, got %d", total)
	}
}

func TestWordCounter_CountStems_Idempotent(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())

	first, err := wc.CountStems(fixtureSentences())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := wc.CountStems(fixtureSentences())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical results for identical input")
	}
}

func TestWordCounter_CountStems_WindowCount(t *testing.T) {
	records := []domain.SentenceRecord{
		{Text: "british queen visited scottish parliament yesterday", Language: "en"},
	}

	// Six tokens survive filtering, so ngram size n emits max(0, 6-n+1)
	// windows.
	for n := 1; n <= 7; n++ {
		wc := NewWordCounter(language.DefaultRegistry())
		if err := wc.SetNgramSize(n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts, err := wc.CountStems(records)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := 6 - n + 1
		if want < 0 {
			want = 0
		}
		if total := counts.Total(); total != want {
			t.Errorf("ngram=%d: expected %d grams, got %d", n, want, total)
		}
	}
}

func TestWordCounter_CountStems_WindowsSpanRemovedStopwords(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())
	if err := wc.SetNgramSize(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts, err := wc.CountStems([]domain.SentenceRecord{
		{Text: "the queen of england", Language: "en"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Stopword removal happens before windowing, so the surviving tokens
	// form one bigram.
	if counts["queen england"] == nil || counts["queen england"].Count != 1 {
		t.Errorf("expected bigram 'queen england', got %v", counts)
	}
	if counts.Total() != 1 {
		t.Errorf("expected 1 bigram, got %d", counts.Total())
	}
}

func TestWordCounter_SetIncludeStopwords(t *testing.T) {
	records := []domain.SentenceRecord{
		{Text: "the cat sat on the mat", Language: "en"},
	}

	wc := NewWordCounter(language.DefaultRegistry())
	filtered, err := wc.CountStems(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wc.SetIncludeStopwords(true)
	included, err := wc.CountStems(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filtered.Total() != 3 {
		t.Errorf("expected 3 grams with stopwords filtered, got %d", filtered.Total())
	}
	if included.Total() != 6 {
		t.Errorf("expected 6 grams with stopwords included, got %d", included.Total())
	}
	if included.Total() < filtered.Total() {
		t.Error("including stopwords must not reduce the gram count")
	}

	if filtered["the"] != nil {
		t.Error("expected 'the' to be filtered")
	}
	if included["the"] == nil || included["the"].Count != 2 {
		t.Errorf("expected 'the' count=2 when included, got %+v", included["the"])
	}
}

func TestWordCounter_CountStems_UnsupportedLanguage(t *testing.T) {
	for _, code := range []string{"zz", ""} {
		wc := NewWordCounter(language.DefaultRegistry())
		records := []domain.SentenceRecord{
			{Text: "kim kardashian celebrated her birthday", Language: "en"},
			{Text: "some text in an unknown language", Language: code},
		}

		counts, err := wc.CountStems(records)
		if err == nil {
			t.Fatalf("code %q: expected error", code)
		}
		var unsupported *UnsupportedLanguageError
		if !errors.As(err, &unsupported) {
			t.Fatalf("code %q: expected UnsupportedLanguageError, got %T", code, err)
		}
		if unsupported.Code != code {
			t.Errorf("expected code %q in error, got %q", code, unsupported.Code)
		}
		if counts != nil {
			t.Error("expected no partial result on error")
		}
	}
}

func TestWordCounter_SetNgramSize_Invalid(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())

	for _, n := range []int{0, -1} {
		err := wc.SetNgramSize(n)
		if err == nil {
			t.Fatalf("expected error for ngram size %d", n)
		}
		var invalid *InvalidConfigurationError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidConfigurationError, got %T", err)
		}
	}
	if wc.NgramSize() != 1 {
		t.Errorf("rejected values must leave the size unchanged, got %d", wc.NgramSize())
	}

	if err := wc.SetNgramSize(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wc.NgramSize() != 3 {
		t.Errorf("expected ngram size 3, got %d", wc.NgramSize())
	}
}

func TestWordCounter_CountStems_InvalidUTF8(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())
	records := []domain.SentenceRecord{
		{Text: "a perfectly fine sentence", Language: "en"},
		{Text: "broken \xff\xfe bytes", Language: "en"},
	}

	counts, err := wc.CountStems(records)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	var processing *ProcessingError
	if !errors.As(err, &processing) {
		t.Fatalf("expected ProcessingError, got %T", err)
	}
	if processing.Index != 1 {
		t.Errorf("expected failing record index 1, got %d", processing.Index)
	}
	if counts != nil {
		t.Error("expected no partial result on error")
	}
}

func TestWordCounter_CountStems_SurfaceCasePreserved(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())
	counts, err := wc.CountStems([]domain.SentenceRecord{
		{Text: "Obama visited Berlin", Language: "en"},
		{Text: "obama visited Berlin", Language: "en"},
		{Text: "OBAMA visited Berlin", Language: "en"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertConsistent(t, counts)

	obama := counts["obama"]
	if obama == nil {
		t.Fatal("expected lowercase stem key 'obama'")
	}
	if obama.Count != 3 {
		t.Errorf("expected obama count=3, got %d", obama.Count)
	}
	want := map[string]int{"Obama": 1, "obama": 1, "OBAMA": 1}
	if !reflect.DeepEqual(obama.Terms, want) {
		t.Errorf("expected terms %v, got %v", want, obama.Terms)
	}

	berlin := counts["berlin"]
	if berlin == nil || berlin.Terms["Berlin"] != 3 {
		t.Errorf("expected surface form 'Berlin' kept, got %+v", berlin)
	}
}

func TestWordCounter_CountStems_StripsURLs(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())
	counts, err := wc.CountStems([]domain.SentenceRecord{
		{Text: "read the report at https://example.com/report today", Language: "en"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counts.Total() != 3 {
		t.Errorf("expected 3 grams after URL removal, got %d: %v", counts.Total(), counts)
	}
	for stem := range counts {
		if strings.Contains(stem, "http") || strings.Contains(stem, "exampl") {
			t.Errorf("URL fragment leaked into counts: %q", stem)
		}
	}
}

func TestWordCounter_CountStems_TruncatesLongInput(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())

	// 300 repetitions exceed the cap; the text is cut at 1024 runes,
	// leaving 170 full words and one clipped "alph".
	text := strings.Repeat("alpha ", 300)
	counts, err := wc.CountStems([]domain.SentenceRecord{{Text: text, Language: "en"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counts["alpha"] == nil || counts["alpha"].Count != 170 {
		t.Errorf("expected alpha count=170, got %+v", counts["alpha"])
	}
	if counts["alph"] == nil || counts["alph"].Count != 1 {
		t.Errorf("expected clipped token counted once, got %+v", counts["alph"])
	}
}

func TestWordCounter_CountStems_EmptyInput(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())

	counts, err := wc.CountStems(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("expected empty result, got %v", counts)
	}

	counts, err = wc.CountStems([]domain.SentenceRecord{
		{Text: "the of and", Language: "en"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.Total() != 0 {
		t.Errorf("expected no grams for stopword-only input, got %d", counts.Total())
	}
}

func TestWordCounter_CountStems_LanguageDispatch(t *testing.T) {
	wc := NewWordCounter(language.DefaultRegistry())
	counts, err := wc.CountStems([]domain.SentenceRecord{
		{Text: "las hermanas", Language: "es"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The Spanish stemmer reduces "hermanas" to "herman"
	if counts["herman"] == nil {
		t.Errorf("expected Spanish stem 'herman', got %v", counts)
	}
	if counts["hermanas"] != nil {
		t.Error("expected surface form not to be used as stem key")
	}
}

type staticProvider struct {
	stems []string
}

func (p *staticProvider) Code() string { return "xx" }
func (p *staticProvider) Name() string { return "Static" }
func (p *staticProvider) Tokenize(text string) []string {
	return strings.Fields(text)
}
func (p *staticProvider) Stem(tokens []string) []string { return p.stems }
func (p *staticProvider) Stopwords() map[string]struct{} {
	return map[string]struct{}{}
}

type staticResolver struct {
	provider port.LanguageProvider
}

func (r *staticResolver) Provider(code string) (port.LanguageProvider, bool) {
	return r.provider, true
}
func (r *staticResolver) Codes() []string { return []string{"xx"} }

func TestWordCounter_CountStems_MisalignedStemmer(t *testing.T) {
	resolver := &staticResolver{provider: &staticProvider{stems: []string{"only-one"}}}
	wc := NewWordCounter(resolver)

	_, err := wc.CountStems([]domain.SentenceRecord{
		{Text: "two tokens", Language: "xx"},
	})
	if err == nil {
		t.Fatal("expected error for misaligned stemmer output")
	}
	var processing *ProcessingError
	if !errors.As(err, &processing) {
		t.Fatalf("expected ProcessingError, got %T", err)
	}
	if processing.Index != 0 {
		t.Errorf("expected failing record index 0, got %d", processing.Index)
	}
}
