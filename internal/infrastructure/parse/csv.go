package parse

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

// CSV reads header-first CSV data. Quoting is lax and field counts may vary
// between rows; exported sheets are rarely tidy.
func CSV(r io.Reader) ([]domain.RawRow, []string, error) {
	reader := csv.NewReader(stripBOM(r))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rawHeaders, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: read headers: %v", ErrMalformedFile, err)
	}

	headers := make([]string, len(rawHeaders))
	for i, header := range rawHeaders {
		headers[i] = strings.TrimSpace(header)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: read row: %v", ErrMalformedFile, err)
		}
		records = append(records, record)
	}

	return assembleRows(headers, records), headers, nil
}

// stripBOM drops the UTF-8 byte order mark Excel prepends to CSV exports.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	prefix, err := br.Peek(3)
	if err == nil && prefix[0] == 0xef && prefix[1] == 0xbb && prefix[2] == 0xbf {
		_, _ = br.Discard(3)
	}
	return br
}
