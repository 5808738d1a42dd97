package commands

import (
	"context"
)

// ResetDailyCountersCommandHandler resets the deliveriesToday counter of
// every courier in one transaction. Lifetime counters are untouched.
type ResetDailyCountersCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewResetDailyCountersCommandHandler creates a handler for the daily reset.
func NewResetDailyCountersCommandHandler(uowFactory CourierUoWFactory) ResetDailyCountersCommandHandler {
	return ResetDailyCountersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset command across all couriers.
func (h ResetDailyCountersCommandHandler) Handle(ctx context.Context, cmd ResetDailyCountersCommand) error {
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

	repo := uow.CourierRepository()

	couriers, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range couriers {
		aggregate.ResetDailyCount()

		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
