package data

import (
	"bytes"

	"financial-health/internal/model"

	"github.com/xuri/excelize/v2"
)

// LoadExcel reads the first worksheet of a workbook; its first row is the header.
func LoadExcel(content []byte) (model.Document, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return model.Document{}, err
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return model.Document{}, ErrEmptyDocument
	}
	all, err := wb.GetRows(sheets[0])
	if err != nil {
		return model.Document{}, err
	}
	if len(all) == 0 {
		return model.Document{}, ErrEmptyDocument
	}
	rows, err := rowsFromTable(all[0], all[1:])
	if err != nil {
		return model.Document{}, err
	}
	return model.Document{Kind: model.DocumentTabular, Rows: rows}, nil
}
