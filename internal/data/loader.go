// Package data turns uploaded files into model.Documents. Tabular formats
// (CSV, Excel) become labelled rows; PDFs yield raw text only.
package data

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"financial-health/internal/model"
)

var (
	// ErrUnsupportedFormat is returned for extensions other than csv, xlsx and pdf.
	// Legacy .xls (BIFF) workbooks are rejected: excelize reads OOXML only.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyDocument is returned when a tabular file has no header or no data rows.
	ErrEmptyDocument = errors.New("document contains no data")
)

// DefaultRawTextLimit caps the text kept from a PDF, in characters.
const DefaultRawTextLimit = 500

// Loader dispatches on file extension.
type Loader struct {
	RawTextLimit int
	Cache        *DocumentCache
}

// NewLoader returns a Loader. A nil cache disables caching.
func NewLoader(rawTextLimit int, cache *DocumentCache) *Loader {
	if rawTextLimit <= 0 {
		rawTextLimit = DefaultRawTextLimit
	}
	return &Loader{RawTextLimit: rawTextLimit, Cache: cache}
}

// Format returns the lower-cased extension of filename without the dot.
func Format(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

// Supported reports whether filename has an extension Load understands.
func Supported(filename string) bool {
	switch Format(filename) {
	case "csv", "xlsx", "pdf":
		return true
	}
	return false
}

// Load reads content according to the extension of filename.
func (l *Loader) Load(ctx context.Context, filename string, content []byte) (model.Document, error) {
	format := Format(filename)
	if !Supported(filename) {
		return model.Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	key := CacheKey(format, content)
	if doc, ok := l.Cache.Get(key); ok {
		doc.Source = filename
		return doc, nil
	}

	var (
		doc model.Document
		err error
	)
	switch format {
	case "csv":
		doc, err = LoadCSV(content)
	case "xlsx":
		doc, err = LoadExcel(content)
	case "pdf":
		doc, err = LoadPDF(ctx, content, l.RawTextLimit)
	}
	if err != nil {
		return model.Document{}, fmt.Errorf("load %s: %w", format, err)
	}
	doc.Source = filename
	l.Cache.Set(key, doc)
	return doc, nil
}

// rowsFromTable turns a header row plus data rows into labelled Rows.
// Cells beyond the header are dropped; missing trailing cells are blank.
func rowsFromTable(header []string, records [][]string) ([]model.Row, error) {
	if len(header) == 0 || len(records) == 0 {
		return nil, ErrEmptyDocument
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	rows := make([]model.Row, 0, len(records))
	for _, rec := range records {
		row := make(model.Row, 0, len(header))
		for i, label := range header {
			var v any
			if i < len(rec) && strings.TrimSpace(rec[i]) != "" {
				v = rec[i]
			}
			row = append(row, model.Cell{Label: label, Value: v})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
