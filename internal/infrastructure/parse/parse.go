// Package parse extracts ordered rows from uploaded spreadsheet files.
// Cell values are returned exactly as the file carries them, artifacts
// included; repairing them is the import pipeline's job.
package parse

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

var (
	ErrMalformedFile     = errors.New("malformed import file")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Rows picks the parser for the file's extension and returns the data rows
// in file order plus the header list as seen.
func Rows(filename string, r io.Reader) ([]domain.RawRow, []string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return CSV(r)
	case ".xlsx", ".xls":
		return XLSX(r)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// assembleRows zips headers and records into RawRows, skipping rows where
// every cell is blank. Short records leave trailing headers unset; extra
// cells beyond the header count are dropped.
func assembleRows(headers []string, records [][]string) []domain.RawRow {
	rows := make([]domain.RawRow, 0, len(records))
	for _, record := range records {
		row := make(domain.RawRow, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" || i >= len(record) {
				continue
			}
			row[header] = record[i]
			if strings.TrimSpace(record[i]) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
