package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// RequestWithdrawalCommandHandler handles courier payout requests.
// The courier debit and the request row are written in one transaction, so a
// failed request never touches the balance.
type RequestWithdrawalCommandHandler struct {
	uowFactory WithdrawalUoWFactory
	minimum    kernel.Money
}

// NewRequestWithdrawalCommandHandler creates a handler for withdrawal requests.
// The minimum is the smallest payout the platform accepts, taken from configuration.
func NewRequestWithdrawalCommandHandler(uowFactory WithdrawalUoWFactory, minimum kernel.Money) RequestWithdrawalCommandHandler {
	return RequestWithdrawalCommandHandler{
		uowFactory: uowFactory,
		minimum:    minimum,
	}
}

// Handle processes the withdrawal request command.
// Requests below the minimum or above the courier balance are rejected and
// nothing is written.
func (h RequestWithdrawalCommandHandler) Handle(ctx context.Context, cmd RequestWithdrawalCommand) error {
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

	aggregate, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	request, err := aggregate.RequestWithdrawal(cmd.WithdrawalID(), cmd.Amount(), h.minimum, time.Now())
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.WithdrawalRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
