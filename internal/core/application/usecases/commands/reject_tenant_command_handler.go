package commands

import (
	"context"
)

// RejectTenantCommandHandler declines a pending storefront application,
// moving the tenant to canceled.
type RejectTenantCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewRejectTenantCommandHandler creates a handler for tenant rejection.
func NewRejectTenantCommandHandler(uowFactory TenantUoWFactory) RejectTenantCommandHandler {
	return RejectTenantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h RejectTenantCommandHandler) Handle(ctx context.Context, cmd RejectTenantCommand) error {
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

	aggregate, err := repo.Get(ctx, cmd.TenantID())
	if err != nil {
		return err
	}

	if err = aggregate.Reject(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
