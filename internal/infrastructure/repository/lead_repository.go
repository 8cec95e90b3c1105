package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	domain "github.com/miestilo/leadcrm/internal/domain/lead"
	"github.com/miestilo/leadcrm/internal/infrastructure/db/models"
)

// LeadRepository is the store the import pipeline runs against: gorm for
// the existence lookups, pgx COPY for the bulk insert path.
type LeadRepository struct {
	db   *gorm.DB
	pool *pgxpool.Pool
}

func NewLeadRepository(db *gorm.DB, pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{db: db, pool: pool}
}

func (r *LeadRepository) FindExisting(ctx context.Context, field domain.LookupField, values []string) (map[string]struct{}, error) {
	found := make(map[string]struct{}, len(values))
	if len(values) == 0 {
		return found, nil
	}

	column, err := lookupColumn(field)
	if err != nil {
		return nil, err
	}

	var existing []string
	if err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Where(column+" IN ?", values).
		Pluck(column, &existing).Error; err != nil {
		return nil, fmt.Errorf("find existing %s values: %w", column, err)
	}

	for _, value := range existing {
		found[value] = struct{}{}
	}
	return found, nil
}

func (r *LeadRepository) InsertMany(ctx context.Context, leads []domain.CandidateLead, userID string) (int64, error) {
	if len(leads) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, []any{
			l.Name,
			nullableText(l.Email),
			nullableText(l.Phone),
			l.Company,
			l.Country,
			l.City,
			l.Profession,
			l.Notes,
			l.Source,
			l.Status,
			l.ProductInterest,
			l.BootcampAttendee,
			l.DaysAttended,
			userID,
			userID,
		})
	}

	inserted, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"leads"},
		[]string{
			"name", "email", "phone", "company", "country", "city",
			"profession", "notes", "source", "status", "product_interest",
			"bootcamp_attendee", "days_attended", "assigned_to", "created_by",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy leads: %w", err)
	}

	return inserted, nil
}

// lookupColumn whitelists the columns existence checks may touch; field
// names come from the domain, never from request input.
func lookupColumn(field domain.LookupField) (string, error) {
	switch field {
	case domain.LookupEmail:
		return "email", nil
	case domain.LookupPhone:
		return "phone", nil
	default:
		return "", fmt.Errorf("unsupported lookup field %q", field)
	}
}

func nullableText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
