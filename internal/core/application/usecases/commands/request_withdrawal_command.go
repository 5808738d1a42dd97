package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRequestWithdrawalCommandIsNotConstructed = errors.New(
	"RequestWithdrawalCommand must be created via NewRequestWithdrawalCommand constructor",
)

// RequestWithdrawalCommand represents a courier asking to cash out part of
// their accumulated balance. The amount is debited the moment the request is
// accepted so the same funds cannot be requested twice.
type RequestWithdrawalCommand struct { //nolint:recvcheck //using for validation
	withdrawalID kernel.UUID
	courierID    kernel.UUID
	amount       kernel.Money

	guard guard.ConstructorGuard
}

// NewRequestWithdrawalCommand creates a command to request a withdrawal.
// Validates both identifiers; the amount floor and the balance check live in
// the courier aggregate.
func NewRequestWithdrawalCommand(withdrawalID, courierID kernel.UUID, amount kernel.Money) (RequestWithdrawalCommand, error) {
	cmd := RequestWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWithdrawalID(withdrawalID),
		cmd.setCourierID(courierID),
	); err != nil {
		return RequestWithdrawalCommand{}, err
	}

	cmd.amount = amount

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestWithdrawalCommandIsNotConstructed if validation fails.
func (c RequestWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrRequestWithdrawalCommandIsNotConstructed)
}

// WithdrawalID returns the identifier assigned to the new request.
func (c RequestWithdrawalCommand) WithdrawalID() kernel.UUID {
	return c.withdrawalID
}

// CourierID returns the courier requesting the payout.
func (c RequestWithdrawalCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Amount returns the requested payout amount.
func (c RequestWithdrawalCommand) Amount() kernel.Money {
	return c.amount
}

func (c *RequestWithdrawalCommand) setWithdrawalID(withdrawalID kernel.UUID) error {
	if err := withdrawalID.Validate(); err != nil {
		return err
	}

	c.withdrawalID = withdrawalID
	return nil
}

func (c *RequestWithdrawalCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
