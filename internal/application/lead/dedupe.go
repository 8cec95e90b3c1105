package lead

import (
	"context"
	"fmt"

	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

// lookupBatchSize caps how many values one FindExisting call may carry.
// Backends with a smaller IN-clause limit need this constant adjusted.
const lookupBatchSize = 1000

// DuplicateResolver partitions candidate leads into insertable and
// duplicate against the store's existing records, using bounded batch
// lookups. A failed lookup aborts the whole resolution; it is never treated
// as "no duplicates found".
type DuplicateResolver struct {
	store domain.LeadStore
}

func NewDuplicateResolver(store domain.LeadStore) *DuplicateResolver {
	return &DuplicateResolver{store: store}
}

type DedupeResult struct {
	Survivors           []domain.CandidateLead
	DuplicateEmailCount int
	DuplicatePhoneCount int
}

// Resolve classifies candidates in their original order. A candidate is an
// email-duplicate when its non-empty email already exists; it is a
// phone-duplicate only when it is not an email-duplicate and its non-empty
// phone already exists, so one lead is never counted under both reasons.
func (r *DuplicateResolver) Resolve(ctx context.Context, candidates []domain.CandidateLead) (DedupeResult, error) {
	existingEmails, err := r.findExisting(ctx, domain.LookupEmail, distinctValues(candidates, func(c domain.CandidateLead) string { return c.Email }))
	if err != nil {
		return DedupeResult{}, fmt.Errorf("lookup existing emails: %w", err)
	}

	existingPhones, err := r.findExisting(ctx, domain.LookupPhone, distinctValues(candidates, func(c domain.CandidateLead) string { return c.Phone }))
	if err != nil {
		return DedupeResult{}, fmt.Errorf("lookup existing phones: %w", err)
	}

	result := DedupeResult{Survivors: make([]domain.CandidateLead, 0, len(candidates))}
	for _, candidate := range candidates {
		emailDup := candidate.Email != "" && contains(existingEmails, candidate.Email)
		phoneDup := !emailDup && candidate.Phone != "" && contains(existingPhones, candidate.Phone)

		switch {
		case emailDup:
			result.DuplicateEmailCount++
		case phoneDup:
			result.DuplicatePhoneCount++
		default:
			result.Survivors = append(result.Survivors, candidate)
		}
	}

	return result, nil
}

func (r *DuplicateResolver) findExisting(ctx context.Context, field domain.LookupField, values []string) (map[string]struct{}, error) {
	found := make(map[string]struct{})
	for start := 0; start < len(values); start += lookupBatchSize {
		end := start + lookupBatchSize
		if end > len(values) {
			end = len(values)
		}

		batch, err := r.store.FindExisting(ctx, field, values[start:end])
		if err != nil {
			return nil, err
		}
		for value := range batch {
			found[value] = struct{}{}
		}
	}
	return found, nil
}

func distinctValues(candidates []domain.CandidateLead, value func(domain.CandidateLead) string) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		v := value(candidate)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func contains(set map[string]struct{}, value string) bool {
	_, ok := set[value]
	return ok
}
