package lead

import "context"

// LeadStore is the write-side port the import pipeline runs against.
type LeadStore interface {
	// FindExisting returns which of the given values are already present on
	// existing leads for the field. Callers chunk values to respect backend
	// query-size limits; a single call never exceeds one chunk.
	FindExisting(ctx context.Context, field LookupField, values []string) (map[string]struct{}, error)

	// InsertMany inserts the leads as one logical batch, stamping creator and
	// assignee to userID, and returns the number of rows written.
	InsertMany(ctx context.Context, leads []CandidateLead, userID string) (int64, error)
}

// LeadFilter narrows List results.
type LeadFilter struct {
	Status     string
	AssignedTo string
}

type LeadQueryRepository interface {
	GetByID(ctx context.Context, leadID string) (*LeadWithAssignee, error)
	List(ctx context.Context, filter LeadFilter) ([]LeadWithAssignee, error)
}
