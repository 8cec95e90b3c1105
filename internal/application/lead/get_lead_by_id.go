package lead

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

var leadIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

type GetLeadByIDInput struct {
	ID string
}

type LeadOutput struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Company          string    `json:"company"`
	Country          string    `json:"country"`
	City             string    `json:"city"`
	Profession       string    `json:"profession"`
	Notes            string    `json:"notes"`
	Source           string    `json:"source"`
	Status           string    `json:"status"`
	ProductInterest  string    `json:"product_interest"`
	BootcampAttendee bool      `json:"bootcamp_attendee"`
	DaysAttended     int       `json:"days_attended"`
	AssignedTo       string    `json:"assigned_to"`
	AssigneeName     string    `json:"assignee_name"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
}

type GetLeadByID interface {
	Execute(ctx context.Context, in GetLeadByIDInput) (LeadOutput, error)
}

type getLeadByID struct {
	repo domain.LeadQueryRepository
}

func NewGetLeadByID(repo domain.LeadQueryRepository) GetLeadByID {
	return &getLeadByID{repo: repo}
}

func (uc *getLeadByID) Execute(ctx context.Context, in GetLeadByIDInput) (LeadOutput, error) {
	if !leadIDPattern.MatchString(in.ID) {
		return LeadOutput{}, ErrInvalidLeadID
	}

	record, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			return LeadOutput{}, ErrLeadNotFound
		}
		return LeadOutput{}, fmt.Errorf("%w: %v", ErrGetLeadByID, err)
	}

	return toLeadOutput(*record), nil
}

func toLeadOutput(record domain.LeadWithAssignee) LeadOutput {
	return LeadOutput{
		ID:               record.ID,
		Name:             record.Name,
		Email:            record.Email,
		Phone:            record.Phone,
		Company:          record.Company,
		Country:          record.Country,
		City:             record.City,
		Profession:       record.Profession,
		Notes:            record.Notes,
		Source:           record.Source,
		Status:           record.Status,
		ProductInterest:  record.ProductInterest,
		BootcampAttendee: record.BootcampAttendee,
		DaysAttended:     record.DaysAttended,
		AssignedTo:       record.AssignedTo,
		AssigneeName:     record.AssigneeName,
		CreatedBy:        record.CreatedBy,
		CreatedAt:        record.CreatedAt,
	}
}
