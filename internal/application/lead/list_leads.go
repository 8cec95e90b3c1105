package lead

import (
	"context"
	"fmt"

	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

type ListLeadsInput struct {
	Status     string
	AssignedTo string
}

type ListLeadsOutput struct {
	Leads []LeadOutput `json:"leads"`
}

type ListLeads interface {
	Execute(ctx context.Context, in ListLeadsInput) (ListLeadsOutput, error)
}

type listLeads struct {
	repo domain.LeadQueryRepository
}

func NewListLeads(repo domain.LeadQueryRepository) ListLeads {
	return &listLeads{repo: repo}
}

func (uc *listLeads) Execute(ctx context.Context, in ListLeadsInput) (ListLeadsOutput, error) {
	records, err := uc.repo.List(ctx, domain.LeadFilter{
		Status:     in.Status,
		AssignedTo: in.AssignedTo,
	})
	if err != nil {
		return ListLeadsOutput{}, fmt.Errorf("%w: %v", ErrListLeads, err)
	}

	out := ListLeadsOutput{Leads: make([]LeadOutput, 0, len(records))}
	for _, record := range records {
		out.Leads = append(out.Leads, toLeadOutput(record))
	}
	return out, nil
}
