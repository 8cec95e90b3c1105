package lead

import (
	"strings"

	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

// Header synonyms accepted per target field, in priority order. Comparison
// happens on normalized headers, so "Company Name", "company-name" and
// "COMPANYNAME" all count as the same synonym.
var (
	nameAliases       = []string{"name", "full name", "fullname", "contact name", "contact", "person"}
	emailAliases      = []string{"email", "e-mail", "email address"}
	phoneAliases      = []string{"phone", "phone number", "mobile", "cell", "contact number", "whatsapp"}
	companyAliases    = []string{"company", "company name", "organization", "business name"}
	countryAliases    = []string{"country", "region"}
	cityAliases       = []string{"city", "location", "town"}
	professionAliases = []string{"profession", "job title", "job", "position", "role", "designation", "occupation"}
	sourceAliases     = []string{"source", "lead source"}
	notesAliases      = []string{"notes", "note", "comments", "description", "remarks", "details", "info"}
	productAliases    = []string{"product", "interest", "category"}
)

// MapRow converts one raw spreadsheet row into a candidate lead, applying
// the documented defaults for fields no column maps to. Pure function of
// the row; audit fields are stamped later by the orchestrator.
func MapRow(row domain.RawRow) domain.CandidateLead {
	index := indexRow(row)

	name := lookup(index, nameAliases)
	if name == "" {
		name = domain.DefaultName
	}
	source := lookup(index, sourceAliases)
	if source == "" {
		source = domain.DefaultSource
	}
	product := lookup(index, productAliases)
	if product == "" {
		product = domain.DefaultProductInterest
	}

	return domain.CandidateLead{
		Name:            name,
		Email:           lookup(index, emailAliases),
		Phone:           CleanPhone(lookup(index, phoneAliases)),
		Company:         lookup(index, companyAliases),
		Country:         lookup(index, countryAliases),
		City:            lookup(index, cityAliases),
		Profession:      lookup(index, professionAliases),
		Notes:           lookup(index, notesAliases),
		Source:          source,
		Status:          domain.DefaultStatus,
		ProductInterest: product,
	}
}

// indexRow maps each normalized header to its trimmed cell value. Blank
// cells are skipped so a later synonym with a real value can still win.
func indexRow(row domain.RawRow) map[string]string {
	index := make(map[string]string, len(row))
	for header, value := range row {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := normalizeHeader(header)
		if key == "" {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = trimmed
		}
	}
	return index
}

func lookup(index map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if value, ok := index[normalizeHeader(alias)]; ok {
			return value
		}
	}
	return ""
}

// normalizeHeader lowercases and drops everything but letters and digits.
func normalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(header) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
