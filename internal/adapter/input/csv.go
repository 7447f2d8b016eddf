package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"stemcount/internal/domain"
)

// CSVReader parses rows of text,language. The language column is optional,
// and a leading header row naming the text column is skipped.
type CSVReader struct{}

func (r *CSVReader) Read(src io.Reader) ([]domain.SentenceRecord, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	var records []domain.SentenceRecord
	row := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse row %d: %w", row+1, err)
		}
		row++
		if len(fields) == 0 {
			continue
		}
		if row == 1 && isHeader(fields) {
			continue
		}
		record := domain.SentenceRecord{Text: normalizeText(fields[0])}
		if len(fields) > 1 {
			record.Language = strings.TrimSpace(fields[1])
		}
		if record.Text == "" {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func isHeader(fields []string) bool {
	return strings.EqualFold(strings.TrimSpace(fields[0]), "text")
}
