package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrResolveWithdrawalCommandIsNotConstructed = errors.New(
	"ResolveWithdrawalCommand must be created via NewResolveWithdrawalCommand constructor",
)

// ResolveWithdrawalCommand represents an operator decision on a pending
// withdrawal request. Rejection returns the debited amount to the courier.
type ResolveWithdrawalCommand struct { //nolint:recvcheck //using for validation
	withdrawalID kernel.UUID
	approve      bool

	guard guard.ConstructorGuard
}

// NewResolveWithdrawalCommand creates a command to resolve a withdrawal request.
func NewResolveWithdrawalCommand(withdrawalID kernel.UUID, approve bool) (ResolveWithdrawalCommand, error) {
	cmd := ResolveWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWithdrawalID(withdrawalID); err != nil {
		return ResolveWithdrawalCommand{}, err
	}

	cmd.approve = approve

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveWithdrawalCommandIsNotConstructed if validation fails.
func (c ResolveWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrResolveWithdrawalCommandIsNotConstructed)
}

// WithdrawalID returns the identifier of the request being resolved.
func (c ResolveWithdrawalCommand) WithdrawalID() kernel.UUID {
	return c.withdrawalID
}

// Approve reports whether the request is approved or rejected.
func (c ResolveWithdrawalCommand) Approve() bool {
	return c.approve
}

func (c *ResolveWithdrawalCommand) setWithdrawalID(withdrawalID kernel.UUID) error {
	if err := withdrawalID.Validate(); err != nil {
		return err
	}

	c.withdrawalID = withdrawalID
	return nil
}
