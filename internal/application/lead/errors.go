package lead

import "errors"

var (
	ErrNoAuthenticatedUser = errors.New("no authenticated user")
	ErrEmptyImport         = errors.New("no rows to import")
	ErrNoUsableRows        = errors.New("no usable rows in import")
	ErrDuplicateLookup     = errors.New("duplicate lookup failed")
	ErrInsertLeads         = errors.New("failed to insert leads")
	ErrInvalidLeadID       = errors.New("invalid lead id")
	ErrLeadNotFound        = errors.New("lead not found")
	ErrGetLeadByID         = errors.New("failed to get lead by id")
	ErrListLeads           = errors.New("failed to list leads")
)
