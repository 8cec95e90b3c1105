package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/miestilo/leadcrm/internal/infrastructure/db/models"
)

// EnsureSeedData inserts the default admin profile when the profiles table
// is empty. It is called once from process bootstrap; the existence check
// makes the call a no-op on every later start.
func EnsureSeedData(ctx context.Context, db *gorm.DB, log logrus.FieldLogger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Profile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count profiles: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin := models.Profile{
		ID:       uuid.NewString(),
		Email:    "admin@miestilo.com",
		FullName: "Admin User",
		Role:     "admin",
		Status:   "active",
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin profile: %w", err)
	}

	log.WithField("profile_id", admin.ID).Info("seeded default admin profile")
	return nil
}
