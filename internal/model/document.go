package model

import "sort"

// Cell is one labelled value of an uploaded row.
// Value is a string, a number (float64/int/int64) or nil for a blank cell.
type Cell struct {
	Label string
	Value any
}

// Row is an ordered set of cells; order follows the source columns.
type Row []Cell

// RowFromMap builds a Row with cells sorted by label so iteration is deterministic.
func RowFromMap(in map[string]any) Row {
	labels := make([]string, 0, len(in))
	for k := range in {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	row := make(Row, 0, len(labels))
	for _, l := range labels {
		row = append(row, Cell{Label: l, Value: in[l]})
	}
	return row
}

// DocumentKind is the shape a loader managed to extract from an upload.
type DocumentKind string

const (
	// DocumentTabular carries labelled rows that can be normalized.
	DocumentTabular DocumentKind = "tabular"
	// DocumentRawText carries extracted text only; no numeric extraction is possible.
	DocumentRawText DocumentKind = "raw_text"
)

// Document is what a loader produced from an uploaded file.
type Document struct {
	Kind    DocumentKind `json:"kind"`
	Source  string       `json:"source"`
	Rows    []Row        `json:"-"`
	RawText string       `json:"raw_text,omitempty"`
}
