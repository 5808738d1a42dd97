package commands

import (
	"context"
)

// ResolveWithdrawalCommandHandler settles pending withdrawal requests.
// Approval finalizes the payout; rejection refunds the debited amount to the
// courier balance in the same transaction. Resolved requests are immutable.
type ResolveWithdrawalCommandHandler struct {
	uowFactory WithdrawalUoWFactory
}

// NewResolveWithdrawalCommandHandler creates a handler for withdrawal resolution.
func NewResolveWithdrawalCommandHandler(uowFactory WithdrawalUoWFactory) ResolveWithdrawalCommandHandler {
	return ResolveWithdrawalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
func (h ResolveWithdrawalCommandHandler) Handle(ctx context.Context, cmd ResolveWithdrawalCommand) error {
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

	request, err := uow.WithdrawalRepository().Get(ctx, cmd.WithdrawalID())
	if err != nil {
		return err
	}

	if cmd.Approve() {
		if err = request.Approve(); err != nil {
			return err
		}
	} else {
		if err = request.Reject(); err != nil {
			return err
		}

		aggregate, err := uow.CourierRepository().Get(ctx, request.CourierID())
		if err != nil {
			return err
		}

		aggregate.RefundWithdrawal(request.Amount())

		if err = uow.CourierRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.WithdrawalRepository().Update(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
