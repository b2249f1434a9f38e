// Package dataset loads checklist submissions from xlsx exports, the
// offline alternative to the live spreadsheet endpoints.
package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"brewdash/internal/model"
)

// LoadWorkbook reads submissions from the first sheet of an xlsx export.
// The header row provides the field names; empty cells are omitted from
// the record so scoring treats them as unanswered.
func LoadWorkbook(path string) ([]model.SubmissionRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return loadSheet(f, sheets[0])
}

func loadSheet(f *excelize.File, sheet string) ([]model.SubmissionRecord, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return []model.SubmissionRecord{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	subs := make([]model.SubmissionRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := model.SubmissionRecord{}
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if value := strings.TrimSpace(cell); value != "" {
				record[header[i]] = value
			}
		}
		if len(record) > 0 {
			subs = append(subs, record)
		}
	}
	return subs, nil
}
