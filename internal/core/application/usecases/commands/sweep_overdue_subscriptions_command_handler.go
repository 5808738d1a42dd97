package commands

import (
	"context"
	"time"
)

// SweepOverdueSubscriptionsCommandHandler suspends active storefronts whose
// next billing date has passed. All suspensions land in one transaction.
type SweepOverdueSubscriptionsCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewSweepOverdueSubscriptionsCommandHandler creates a handler for the
// subscription sweep.
func NewSweepOverdueSubscriptionsCommandHandler(uowFactory TenantUoWFactory) SweepOverdueSubscriptionsCommandHandler {
	return SweepOverdueSubscriptionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
func (h SweepOverdueSubscriptionsCommandHandler) Handle(ctx context.Context, cmd SweepOverdueSubscriptionsCommand) error {
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

	overdue, err := repo.GetAllBillingOverdue(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, aggregate := range overdue {
		if err = aggregate.Suspend(); err != nil {
			return err
		}

		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
