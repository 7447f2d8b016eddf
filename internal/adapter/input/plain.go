package input

import (
	"fmt"
	"io"

	"github.com/rivo/uniseg"

	"stemcount/internal/domain"
)

// PlainReader splits free text into sentences along Unicode sentence
// boundaries. The records carry no language tag; detection happens
// downstream.
type PlainReader struct{}

func (r *PlainReader) Read(src io.Reader) ([]domain.SentenceRecord, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var records []domain.SentenceRecord
	rest := string(data)
	var sentence string
	state := -1
	for rest != "" {
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		text := normalizeText(sentence)
		if text == "" {
			continue
		}
		records = append(records, domain.SentenceRecord{Text: text})
	}

	return records, nil
}
