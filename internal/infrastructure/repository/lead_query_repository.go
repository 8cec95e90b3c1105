package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

type LeadQueryRepository struct {
	db *gorm.DB
}

func NewLeadQueryRepository(db *gorm.DB) *LeadQueryRepository {
	return &LeadQueryRepository{db: db}
}

// leadRow is the joined shape query operations scan into; the assignee name
// comes back already stitched so callers never join profiles themselves.
type leadRow struct {
	ID               string
	Name             string
	Email            *string
	Phone            *string
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
	AssignedTo       *string
	CreatedBy        *string
	AssigneeName     *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const leadSelect = `leads.id, leads.name, leads.email, leads.phone, leads.company,
leads.country, leads.city, leads.profession, leads.notes, leads.source,
leads.status, leads.product_interest, leads.bootcamp_attendee,
leads.days_attended, leads.assigned_to, leads.created_by,
leads.created_at, leads.updated_at, profiles.full_name AS assignee_name`

func (r *LeadQueryRepository) GetByID(ctx context.Context, leadID string) (*domain.LeadWithAssignee, error) {
	var row leadRow

	err := r.db.WithContext(ctx).
		Table("leads").
		Select(leadSelect).
		Joins("LEFT JOIN profiles ON profiles.id = leads.assigned_to").
		Where("leads.id = ?", leadID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("get lead by id: %w", err)
	}

	record := toDomain(row)
	return &record, nil
}

func (r *LeadQueryRepository) List(ctx context.Context, filter domain.LeadFilter) ([]domain.LeadWithAssignee, error) {
	query := r.db.WithContext(ctx).
		Table("leads").
		Select(leadSelect).
		Joins("LEFT JOIN profiles ON profiles.id = leads.assigned_to").
		Order("leads.created_at DESC")

	if filter.Status != "" {
		query = query.Where("leads.status = ?", filter.Status)
	}
	if filter.AssignedTo != "" {
		query = query.Where("leads.assigned_to = ?", filter.AssignedTo)
	}

	var rows []leadRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	records := make([]domain.LeadWithAssignee, 0, len(rows))
	for _, row := range rows {
		records = append(records, toDomain(row))
	}
	return records, nil
}

func toDomain(row leadRow) domain.LeadWithAssignee {
	return domain.LeadWithAssignee{
		Lead: domain.Lead{
			ID:               row.ID,
			Name:             row.Name,
			Email:            fromNullable(row.Email),
			Phone:            fromNullable(row.Phone),
			Company:          row.Company,
			Country:          row.Country,
			City:             row.City,
			Profession:       row.Profession,
			Notes:            row.Notes,
			Source:           row.Source,
			Status:           row.Status,
			ProductInterest:  row.ProductInterest,
			BootcampAttendee: row.BootcampAttendee,
			DaysAttended:     row.DaysAttended,
			AssignedTo:       fromNullable(row.AssignedTo),
			CreatedBy:        fromNullable(row.CreatedBy),
			CreatedAt:        row.CreatedAt,
			UpdatedAt:        row.UpdatedAt,
		},
		AssigneeName: fromNullable(row.AssigneeName),
	}
}

func fromNullable(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
