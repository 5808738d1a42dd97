package withdrawalrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWithdrawalRepository implements WithdrawalRepository using GORM.
type GormWithdrawalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWithdrawalRepository creates a new GORM withdrawal repository.
func NewGormWithdrawalRepository(db *gorm.DB, tracker aggregateTracker) *GormWithdrawalRepository {
	return &GormWithdrawalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new withdrawal request to the database.
func (r *GormWithdrawalRepository) Add(ctx context.Context, request *courier.WithdrawalRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Update saves an existing withdrawal request to the database.
func (r *GormWithdrawalRepository) Update(ctx context.Context, request *courier.WithdrawalRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	result := r.db.WithContext(ctx).
		Model(&WithdrawalDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("withdrawal", request.ID().String())
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Get retrieves a withdrawal request by ID.
func (r *GormWithdrawalRepository) Get(ctx context.Context, id kernel.UUID) (*courier.WithdrawalRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WithdrawalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("withdrawal", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
