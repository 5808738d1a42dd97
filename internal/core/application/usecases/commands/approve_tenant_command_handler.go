package commands

import (
	"context"
	"time"
)

// ApproveTenantCommandHandler activates a pending storefront.
// Approval opens the first billing cycle one month out.
type ApproveTenantCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewApproveTenantCommandHandler creates a handler for tenant approval.
func NewApproveTenantCommandHandler(uowFactory TenantUoWFactory) ApproveTenantCommandHandler {
	return ApproveTenantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// Only pending tenants can be approved; anything else is a state transition error.
func (h ApproveTenantCommandHandler) Handle(ctx context.Context, cmd ApproveTenantCommand) error {
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

	if err = aggregate.Approve(time.Now()); err != nil {
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
