// Repository functions for financial services and applications.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agrilink/agrifinance-backend/internal/domain"
)

// CreateApplication inserts a pending application for a financial service.
func CreateApplication(ctx context.Context, db *gorm.DB, userID, serviceID string, amount float64, purpose string) (*domain.FinancialApplication, error) {
	a := &domain.FinancialApplication{
		ID:        uuid.NewString(),
		UserID:    userID,
		ServiceID: serviceID,
		Amount:    amount,
		Purpose:   purpose,
		Status:    domain.ApplicationPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// ListApplications returns a user's applications, most recent first.
func ListApplications(ctx context.Context, db *gorm.DB, userID string) ([]domain.FinancialApplication, error) {
	var out []domain.FinancialApplication
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// UpdateApplicationStatus moves an application to approved or rejected.
// Returns ErrNotFound when the application does not exist.
func UpdateApplicationStatus(ctx context.Context, db *gorm.DB, id, status string) error {
	res := db.WithContext(ctx).
		Model(&domain.FinancialApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
