package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/tenant"
	"storefront/internal/pkg/errs"
)

// ErrSlugIsTaken is returned when another tenant already owns the requested
// slug. It belongs to the conflict class: two onboardings raced for one name.
var ErrSlugIsTaken = fmt.Errorf("slug is already taken: %w", errs.ErrVersionConflict)

// CreateTenantCommandHandler handles storefront onboarding.
// New tenants start in pending status and are not reachable by customers
// until approved.
type CreateTenantCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewCreateTenantCommandHandler creates a handler for tenant onboarding.
// Requires a TenantUoWFactory for transactional persistence.
func NewCreateTenantCommandHandler(uowFactory TenantUoWFactory) CreateTenantCommandHandler {
	return CreateTenantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tenant creation command.
// The slug must be unique across all tenants; a collision aborts the
// onboarding with ErrSlugIsTaken.
func (h CreateTenantCommandHandler) Handle(ctx context.Context, cmd CreateTenantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TenantRepository()

	_, err := repo.GetBySlug(ctx, cmd.Slug())
	if err == nil {
		return ErrSlugIsTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := tenant.NewTenant(cmd.TenantID(), cmd.Name(), cmd.Slug(), cmd.DeliveryFee())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
