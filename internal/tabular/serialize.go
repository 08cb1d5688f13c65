package tabular

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Serialize renders the document back to delimited text with a trailing
// newline. Cells pass through byte-for-byte unless they contain the
// delimiter, a double quote, or a line break, in which case standard CSV
// quoting applies. encoding/csv's writer is avoided here: it also quotes
// cells with leading whitespace, which would break the byte-for-byte
// guarantee for untouched columns.
func (d *Document) Serialize() string {
	var b strings.Builder
	d.writeRecord(&b, d.columns)
	for _, row := range d.rows {
		d.writeRecord(&b, row)
	}
	return b.String()
}

func (d *Document) writeRecord(b *strings.Builder, record []string) {
	for i, cell := range record {
		if i > 0 {
			b.WriteRune(d.delimiter)
		}
		if cellNeedsQuoting(cell, d.delimiter) {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		} else {
			b.WriteString(cell)
		}
	}
	b.WriteByte('\n')
}

func cellNeedsQuoting(cell string, delimiter rune) bool {
	return strings.ContainsRune(cell, delimiter) || strings.ContainsAny(cell, "\"\r\n")
}

// SaveFile writes the serialized document over path atomically: the content
// goes to a synced temp file in the same directory which is then renamed
// into place, so an interrupted save leaves the original untouched. The
// target's existing permissions are preserved when it already exists.
func (d *Document) SaveFile(path string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmpPath := path + ".tmp"
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.WriteString(d.Serialize()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
