package tabular

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse marks structural failures while reading a delimited file.
var ErrParse = errors.New("parse error")

// Document is an in-memory delimited file: an ordered column set, an ordered
// sequence of rows, and the separator the file used. Every row holds exactly
// one cell per column; newly appended columns land after all originals.
type Document struct {
	columns   []string
	rows      [][]string
	delimiter rune
}

// NewDocument assembles a document from already-split parts. Rows shorter
// than the column set are padded with blank cells and longer rows are
// truncated. Duplicate column names (compared case-insensitively) and an
// empty column set are rejected.
func NewDocument(columns []string, rows [][]string, delimiter rune) (*Document, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrParse)
	}
	seen := make(map[string]string, len(columns))
	for _, name := range columns {
		key := strings.ToLower(strings.TrimSpace(name))
		if prior, exists := seen[key]; exists {
			return nil, fmt.Errorf("%w: column %q collides with %q", ErrParse, name, prior)
		}
		seen[key] = name
	}

	doc := &Document{
		columns:   append([]string(nil), columns...),
		rows:      make([][]string, 0, len(rows)),
		delimiter: delimiter,
	}
	for _, row := range rows {
		aligned := make([]string, len(columns))
		copy(aligned, row)
		doc.rows = append(doc.rows, aligned)
	}
	return doc, nil
}

// Columns returns the header names in order.
func (d *Document) Columns() []string {
	return append([]string(nil), d.columns...)
}

// ColumnCount returns the number of columns.
func (d *Document) ColumnCount() int {
	return len(d.columns)
}

// RowCount returns the number of data rows.
func (d *Document) RowCount() int {
	return len(d.rows)
}

// Delimiter returns the field separator the document was loaded with.
func (d *Document) Delimiter() rune {
	return d.delimiter
}

// Cell returns the value at row and column. Indexes must be in range.
func (d *Document) Cell(row, col int) string {
	return d.rows[row][col]
}

// SetCell overwrites the value at row and column unconditionally. Callers
// gate writes on eligibility; this method does not. Indexes must be in range.
func (d *Document) SetCell(row, col int, value string) {
	d.rows[row][col] = value
}

// AppendColumn adds a header after all existing columns and extends every row
// with a blank cell, returning the new column's index. A name that collides
// case-insensitively with an existing header is an error.
func (d *Document) AppendColumn(name string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, existing := range d.columns {
		if strings.ToLower(strings.TrimSpace(existing)) == key {
			return 0, fmt.Errorf("column %q already exists as %q", name, existing)
		}
	}
	d.columns = append(d.columns, name)
	for i := range d.rows {
		d.rows[i] = append(d.rows[i], "")
	}
	return len(d.columns) - 1, nil
}
