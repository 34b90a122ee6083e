// Repository functions for product listings and their transactions.
//
// These are the create/read/update operations the action layer will
// delegate to once listings stop being simulated. All functions are
// context-aware, accept a *gorm.DB handle, and follow the thin-repository
// approach: no business logic, only CRUD and query composition.
//
// Error semantics: missing records surface as gorm.ErrRecordNotFound
// (re-exported here as ErrNotFound); other DB errors propagate raw.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agrilink/agrifinance-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across layers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateListing inserts a new active listing for sellerID. The listing ID
// is a generated UUID and CreatedAt is set to UTC.
func CreateListing(ctx context.Context, db *gorm.DB, sellerID, productID string, quantity float64, unit string, pricePerUnit float64, location, description string) (*domain.ProductListing, error) {
	l := &domain.ProductListing{
		ID:           uuid.NewString(),
		SellerID:     sellerID,
		ProductID:    productID,
		Quantity:     quantity,
		Unit:         unit,
		PricePerUnit: pricePerUnit,
		Description:  description,
		Location:     location,
		Status:       domain.ListingActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// GetListing fetches a listing by ID, or ErrNotFound.
func GetListing(ctx context.Context, db *gorm.DB, id string) (*domain.ProductListing, error) {
	var l domain.ProductListing
	if err := db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// ListActiveListings returns active listings, most recent first.
func ListActiveListings(ctx context.Context, db *gorm.DB) ([]domain.ProductListing, error) {
	var out []domain.ProductListing
	err := db.WithContext(ctx).
		Where("status = ?", domain.ListingActive).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// MarkListingSold flips a listing to sold. Returns ErrNotFound when the
// listing does not exist or is not active.
func MarkListingSold(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Model(&domain.ProductListing{}).
		Where("id = ? AND status = ?", id, domain.ListingActive).
		Update("status", domain.ListingSold)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateTransaction records a purchase of a listing.
func CreateTransaction(ctx context.Context, db *gorm.DB, listingID, buyerID, sellerID string, quantity, unitPrice float64) (*domain.Transaction, error) {
	t := &domain.Transaction{
		ID:          uuid.NewString(),
		ListingID:   listingID,
		BuyerID:     buyerID,
		SellerID:    sellerID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalAmount: quantity * unitPrice,
		Status:      domain.TransactionPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}
