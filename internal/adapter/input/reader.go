package input

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"stemcount/internal/port"
)

// maxLineBytes caps a single input line. Lines beyond this are a parse
// error, not silently truncated.
const maxLineBytes = 1 << 20

// ForPath returns the sentence reader matching a file extension. The second
// return is false for unknown extensions.
func ForPath(path string) (port.SentenceReader, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return &JSONLReader{}, true
	case ".csv":
		return &CSVReader{}, true
	case ".txt", ".text":
		return &PlainReader{}, true
	}
	return nil, false
}

// normalizeText puts text into NFC form and trims surrounding whitespace,
// so "café" reads the same whether the source encoded it precomposed or
// decomposed.
func normalizeText(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}
