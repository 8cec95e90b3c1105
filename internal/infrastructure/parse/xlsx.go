package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

// XLSX reads the first sheet of a workbook. Raw cell values are requested
// on purpose: numeric phone cells come back in their stored form (including
// scientific notation) rather than Excel's display formatting, which is
// exactly what the phone normalizer is built to repair.
func XLSX(r io.Reader) ([]domain.RawRow, []string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open workbook: %v", ErrMalformedFile, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, nil
	}

	allRows, err := workbook.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read sheet %q: %v", ErrMalformedFile, sheets[0], err)
	}
	if len(allRows) == 0 {
		return nil, nil, nil
	}

	headers := make([]string, len(allRows[0]))
	for i, header := range allRows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	return assembleRows(headers, allRows[1:]), headers, nil
}
