package lead

// LookupField names a column the store can look existing values up by.
type LookupField string

const (
	LookupEmail LookupField = "email"
	LookupPhone LookupField = "phone"
)

// ImportResult summarizes one import run.
type ImportResult struct {
	TotalRows           int   `json:"total_rows"`
	InsertedCount       int64 `json:"inserted_count"`
	DuplicateEmailCount int   `json:"duplicate_email_count"`
	DuplicatePhoneCount int   `json:"duplicate_phone_count"`
}
