package data

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"financial-health/internal/model"
)

// LoadCSV parses a comma-separated file whose first line is the header.
func LoadCSV(content []byte) (model.Document, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return model.Document{}, ErrEmptyDocument
	}
	if err != nil {
		return model.Document{}, err
	}
	records, err := r.ReadAll()
	if err != nil {
		return model.Document{}, err
	}
	rows, err := rowsFromTable(header, records)
	if err != nil {
		return model.Document{}, err
	}
	return model.Document{Kind: model.DocumentTabular, Rows: rows}, nil
}
