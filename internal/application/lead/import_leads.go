package lead

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

type ImportLeadsInput struct {
	Rows   []domain.RawRow
	UserID string
}

type ImportLeads interface {
	Execute(ctx context.Context, in ImportLeadsInput) (domain.ImportResult, error)
}

type importLeads struct {
	store    domain.LeadStore
	resolver *DuplicateResolver
	log      logrus.FieldLogger
}

func NewImportLeads(store domain.LeadStore, log logrus.FieldLogger) ImportLeads {
	return &importLeads{
		store:    store,
		resolver: NewDuplicateResolver(store),
		log:      log,
	}
}

// Execute runs the import end to end: map every row, drop rows with no
// identity signal, resolve duplicates against the store, insert the
// survivors stamped with the importing user, and report counts. Zero
// survivors after dedupe is a valid result, not an error.
func (uc *importLeads) Execute(ctx context.Context, in ImportLeadsInput) (domain.ImportResult, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return domain.ImportResult{}, ErrNoAuthenticatedUser
	}
	if len(in.Rows) == 0 {
		return domain.ImportResult{}, ErrEmptyImport
	}

	candidates := make([]domain.CandidateLead, 0, len(in.Rows))
	for _, row := range in.Rows {
		candidate := MapRow(row)
		if !candidate.HasIdentity() {
			continue
		}
		candidates = append(candidates, candidate)
	}
	if len(candidates) == 0 {
		return domain.ImportResult{}, ErrNoUsableRows
	}

	resolved, err := uc.resolver.Resolve(ctx, candidates)
	if err != nil {
		uc.log.WithError(err).Warn("lead import aborted before insert")
		return domain.ImportResult{}, fmt.Errorf("%w: %v", ErrDuplicateLookup, err)
	}

	result := domain.ImportResult{
		TotalRows:           len(in.Rows),
		DuplicateEmailCount: resolved.DuplicateEmailCount,
		DuplicatePhoneCount: resolved.DuplicatePhoneCount,
	}

	if len(resolved.Survivors) == 0 {
		return result, nil
	}

	inserted, err := uc.store.InsertMany(ctx, resolved.Survivors, userID)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("%w: %v", ErrInsertLeads, err)
	}
	result.InsertedCount = inserted

	uc.log.WithFields(logrus.Fields{
		"total_rows":       result.TotalRows,
		"inserted":         result.InsertedCount,
		"duplicate_emails": result.DuplicateEmailCount,
		"duplicate_phones": result.DuplicatePhoneCount,
	}).Info("lead import completed")

	return result, nil
}
