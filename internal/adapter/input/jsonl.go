package input

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"stemcount/internal/domain"
)

// JSONLReader parses one JSON object per line with a "text" field and an
// optional "language" field. Blank lines are skipped.
type JSONLReader struct{}

func (r *JSONLReader) Read(src io.Reader) ([]domain.SentenceRecord, error) {
	var records []domain.SentenceRecord

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var record domain.SentenceRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to parse line %d: %w", line, err)
		}
		record.Text = normalizeText(record.Text)
		record.Language = strings.TrimSpace(record.Language)
		if record.Text == "" {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return records, nil
}
