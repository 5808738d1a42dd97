package ownershiprepo

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOwnershipRepository implements OwnershipRepository using GORM.
// Grants are plain rows, not aggregates, so there is no tracking here.
type GormOwnershipRepository struct {
	db *gorm.DB
}

// NewGormOwnershipRepository creates a new GORM ownership repository.
func NewGormOwnershipRepository(db *gorm.DB) *GormOwnershipRepository {
	return &GormOwnershipRepository{db: db}
}

// Grant records that a session placed an order. Granting the same pair
// twice is a no-op.
func (r *GormOwnershipRepository) Grant(ctx context.Context, sessionID string, orderID kernel.UUID) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	dto := GrantDTO{
		SessionID: sessionID,
		OrderID:   orderID.Bytes(),
		GrantedAt: time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// Owns reports whether the session holds a grant for the order.
func (r *GormOwnershipRepository) Owns(ctx context.Context, sessionID string, orderID kernel.UUID) (bool, error) {
	if sessionID == "" {
		return false, errs.NewValueIsRequiredError("sessionID")
	}
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&GrantDTO{}).
		Where("session_id = ? AND order_id = ?", sessionID, orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetOrderIDs retrieves the order IDs granted to a session, most recent first.
func (r *GormOwnershipRepository) GetOrderIDs(ctx context.Context, sessionID string) ([]kernel.UUID, error) {
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("sessionID")
	}

	var dtos []GrantDTO
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("granted_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
