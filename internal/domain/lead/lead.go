package lead

import "time"

// Lead is a persisted lead record.
type Lead struct {
	ID               string
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
	AssignedTo       string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LeadWithAssignee is the read model returned by query operations: the lead
// plus its assignee's display name, assembled by the repository so callers
// never stitch profiles onto leads themselves.
type LeadWithAssignee struct {
	Lead
	AssigneeName string
}

// Values every imported lead falls back to when the source file carries no
// usable column for the field.
const (
	DefaultName            = "Unknown"
	DefaultStatus          = "Fresh Untouched"
	DefaultSource          = "Manual Import"
	DefaultProductInterest = "Bra"
)
