package lead

import (
	"regexp"
	"strconv"
	"strings"
)

// Spreadsheet exports render long numbers as e.g. "9.87E+09".
var scientificNotation = regexp.MustCompile(`(?i)^[0-9.]+E\+[0-9]+$`)

// CleanPhone repairs phone values that spreadsheet tools commonly corrupt:
// a leading apostrophe from Excel's store-as-text mode, scientific notation
// from numeric cells, and a trailing ".0" from float coercion. It is total;
// anything it cannot repair comes back trimmed but otherwise untouched, and
// it is idempotent on its own output.
func CleanPhone(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	value = strings.TrimPrefix(value, "'")

	if scientificNotation.MatchString(value) {
		if number, err := strconv.ParseFloat(value, 64); err == nil {
			value = strconv.FormatFloat(number, 'f', 0, 64)
		}
	}

	// Strip exactly one coercion artifact layer; "1.0.0" becomes "1.0".
	value = strings.TrimSuffix(value, ".0")

	return value
}
