package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// delimiterCandidates orders the separators tried during inference. Earlier
// entries win ties.
var delimiterCandidates = []rune{',', ';', '\t'}

// DetectDelimiter infers the field separator from the first non-empty line by
// picking the candidate that splits it into the most fields.
func DetectDelimiter(text string) rune {
	line := firstContentLine(text)
	best := delimiterCandidates[0]
	bestFields := countFields(line, best)
	for _, candidate := range delimiterCandidates[1:] {
		if fields := countFields(line, candidate); fields > bestFields {
			best = candidate
			bestFields = fields
		}
	}
	return best
}

// Load parses delimited text into a Document. A zero delimiter asks for
// inference. The first record supplies the column set; remaining records
// become rows, padded or truncated to the column count.
func Load(text string, delimiter rune) (*Document, error) {
	text = strings.TrimPrefix(text, "\uFEFF")
	if delimiter == 0 {
		delimiter = DetectDelimiter(text)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrParse)
	}
	return NewDocument(records[0], records[1:], delimiter)
}

// LoadFile reads and parses the file at path. A zero delimiter asks for
// inference.
func LoadFile(path string, delimiter rune) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Load(string(data), delimiter)
}

func firstContentLine(text string) string {
	for text != "" {
		line, rest, _ := strings.Cut(text, "\n")
		text = rest
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

// countFields splits a single line on the candidate delimiter, honoring
// double-quoted sections so a quoted delimiter does not inflate the count.
func countFields(line string, delimiter rune) int {
	fields := 1
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delimiter && !inQuotes:
			fields++
		}
	}
	return fields
}
