package tenantrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/tenant"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTenantRepository implements TenantRepository using GORM.
type GormTenantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTenantRepository creates a new GORM tenant repository.
func NewGormTenantRepository(db *gorm.DB, tracker aggregateTracker) *GormTenantRepository {
	return &GormTenantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tenant to the database.
func (r *GormTenantRepository) Add(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing tenant to the database.
func (r *GormTenantRepository) Update(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TenantDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tenant", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a tenant by ID. Excluded tenants are never returned.
func (r *GormTenantRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TenantDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND excluded = false", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tenant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySlug retrieves a tenant by its storefront slug. Excluded tenants are
// never returned.
func (r *GormTenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	if slug == "" {
		return nil, errs.NewValueIsRequiredError("slug")
	}

	var dto TenantDTO
	err := r.db.WithContext(ctx).
		First(&dto, "slug = ? AND excluded = false", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tenant", slug)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllBillingOverdue retrieves active tenants whose next billing date has
// passed, for the subscription expiry sweep.
func (r *GormTenantRepository) GetAllBillingOverdue(ctx context.Context, now time.Time) ([]*tenant.Tenant, error) {
	var dtos []TenantDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND excluded = false AND next_billing_date < ?",
			int(tenant.SubscriptionActive), now).Error
	if err != nil {
		return nil, err
	}

	tenants := make([]*tenant.Tenant, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}

	return tenants, nil
}
