package lead

// RawRow is one parsed spreadsheet row keyed by the raw header strings as
// they appeared in the uploaded file. Headers are uncontrolled user input.
type RawRow map[string]string

// CandidateLead is the normalized target shape one RawRow maps into before
// deduplication and insert. Audit fields (creator, assignee) are stamped by
// the orchestrator, not the mapper.
type CandidateLead struct {
	Name             string
	Email            string
	Phone            string
	Company          string
	Country          string
	City             string
	Profession       string
	Notes            string
	Source           string
	Status           string
	ProductInterest  string
	BootcampAttendee bool
	DaysAttended     int
}

// HasIdentity reports whether the candidate carries any usable identity
// signal. Rows where the name fell back to the sentinel and both email and
// phone are empty are discarded before dedupe.
func (c CandidateLead) HasIdentity() bool {
	return c.Name != DefaultName || c.Email != "" || c.Phone != ""
}
