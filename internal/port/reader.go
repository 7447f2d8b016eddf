package port

import (
	"io"

	"stemcount/internal/domain"
)

// SentenceReader parses one input format into sentence records.
type SentenceReader interface {
	// Read parses r into sentence records. Records without a language tag
	// are returned with an empty Language field.
	Read(r io.Reader) ([]domain.SentenceRecord, error)
}

// LanguageDetector guesses the language of a text.
type LanguageDetector interface {
	// Detect returns the ISO 639-1 code of the detected language. The
	// second return is false when no confident detection could be made.
	Detect(text string) (string, bool)
}
