package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"time"
	"unicode/utf8"

	"stemcount/internal/adapter/input"
	"stemcount/internal/counter"
	"stemcount/internal/domain"
	"stemcount/internal/port"
)

// ProgressFunc reports files processed so far. It is called before each
// input file and a final time when processing is done.
type ProgressFunc func(processed, total int, currentFile string)

// CountUseCase runs the file-to-snapshot pipeline: discover input files,
// parse them into sentence records, resolve missing language tags, count
// stems and optionally persist the result.
type CountUseCase struct {
	counter  *counter.WordCounter
	walker   port.FileWalker
	detector port.LanguageDetector
	store    port.CountStore

	defaultLanguage string
}

// NewCountUseCase creates a count use case. detector and store may be nil;
// without a detector untagged records are skipped unless a default language
// is set, and without a store results cannot be persisted.
func NewCountUseCase(
	wc *counter.WordCounter,
	walker port.FileWalker,
	detector port.LanguageDetector,
	store port.CountStore,
) *CountUseCase {
	return &CountUseCase{
		counter:  wc,
		walker:   walker,
		detector: detector,
		store:    store,
	}
}

// SetDefaultLanguage sets the code assumed for untagged records. An empty
// code restores detect-or-skip behavior.
func (u *CountUseCase) SetDefaultLanguage(code string) {
	u.defaultLanguage = code
}

// CountResult contains the outcome of one counting run.
type CountResult struct {
	Meta      domain.CorpusMeta
	Counts    domain.WordCounts
	FilesRead int
	Sentences int
	Detected  int
	Skipped   int
	Errors    []string
}

// Count processes every input file under root. A non-empty label persists
// the result as a corpus snapshot named by it.
func (u *CountUseCase) Count(root, label string, progress ProgressFunc) (*CountResult, error) {
	if label != "" && u.store == nil {
		return nil, fmt.Errorf("no store configured to save corpus %q", label)
	}

	// Discover input files
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk input path: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files found under %s", root)
	}

	result := &CountResult{}

	// Parse each file into sentence records
	var records []domain.SentenceRecord
	for i, file := range files {
		if progress != nil {
			progress(i, len(files), file.Path)
		}

		parsed, err := u.readFile(file.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read %s: %v", file.Path, err))
			continue
		}
		result.FilesRead++
		records = append(records, parsed...)
	}
	if progress != nil {
		progress(len(files), len(files), "")
	}

	// Resolve language tags and drop records the counter would reject
	counted, languages := u.prepare(records, result)
	result.Sentences = len(counted)

	counts, err := u.counter.CountStems(counted)
	if err != nil {
		return nil, fmt.Errorf("failed to count stems: %w", err)
	}
	result.Counts = counts

	meta := domain.CorpusMeta{
		Label:            label,
		CreatedAt:        time.Now().UTC(),
		NgramSize:        u.counter.NgramSize(),
		IncludeStopwords: u.counter.IncludeStopwords(),
		Sentences:        result.Sentences,
		Grams:            counts.Total(),
		Stems:            len(counts),
		Languages:        languages,
	}
	if label != "" {
		meta.ID = corpusID(label)
		if err := u.store.SaveCorpus(meta, counts); err != nil {
			return nil, fmt.Errorf("failed to save corpus: %w", err)
		}
	}
	result.Meta = meta

	return result, nil
}

// readFile parses a single input file with the reader matching its
// extension.
func (u *CountUseCase) readFile(path string) ([]domain.SentenceRecord, error) {
	reader, ok := input.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("no reader for file format")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return reader.Read(f)
}

// prepare fills missing language tags and skips records the counter would
// reject, so one stray record cannot abort the whole run. It returns the
// surviving records and the sorted set of language codes they cover.
func (u *CountUseCase) prepare(records []domain.SentenceRecord, result *CountResult) ([]domain.SentenceRecord, []string) {
	resolver := u.counter.Languages()

	kept := make([]domain.SentenceRecord, 0, len(records))
	languages := make(map[string]struct{})
	unknown := make(map[string]int)
	untagged := 0
	invalid := 0

	for _, record := range records {
		if !utf8.ValidString(record.Text) {
			invalid++
			continue
		}

		code := record.Language
		if code == "" {
			code = u.resolveLanguage(record.Text, result)
			if code == "" {
				untagged++
				continue
			}
		}

		provider, ok := resolver.Provider(code)
		if !ok {
			unknown[code]++
			continue
		}

		record.Language = provider.Code()
		languages[provider.Code()] = struct{}{}
		kept = append(kept, record)
	}

	result.Skipped = len(records) - len(kept)
	if invalid > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("skipped %d records with invalid UTF-8", invalid))
	}
	if untagged > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("skipped %d records with no detectable language", untagged))
	}
	codes := make([]string, 0, len(unknown))
	for code := range unknown {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		result.Errors = append(result.Errors, fmt.Sprintf("skipped %d records with unsupported language %q", unknown[code], code))
	}

	covered := make([]string, 0, len(languages))
	for code := range languages {
		covered = append(covered, code)
	}
	sort.Strings(covered)

	return kept, covered
}

// resolveLanguage picks a code for an untagged record. An explicit default
// language wins over detection.
func (u *CountUseCase) resolveLanguage(text string, result *CountResult) string {
	if u.defaultLanguage != "" {
		return u.defaultLanguage
	}
	if u.detector == nil {
		return ""
	}
	code, ok := u.detector.Detect(text)
	if !ok {
		return ""
	}
	result.Detected++
	return code
}

// corpusID derives a stable ID from the corpus label.
func corpusID(label string) string {
	hash := sha256.Sum256([]byte(label))
	return hex.EncodeToString(hash[:8])
}
