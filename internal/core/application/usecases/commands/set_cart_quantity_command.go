package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSetCartQuantityCommandIsNotConstructed = errors.New(
	"SetCartQuantityCommand must be created via NewSetCartQuantityCommand constructor",
)

// SetCartQuantityCommand represents a request to set the quantity of a cart
// line to an absolute value. Values below one leave the cart untouched.
type SetCartQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	productID kernel.UUID
	qty       int

	guard guard.ConstructorGuard
}

// NewSetCartQuantityCommand creates a command to set a cart line quantity.
// The quantity itself is not validated here; out of range values are ignored
// by the cart rules.
func NewSetCartQuantityCommand(sessionID string, productID kernel.UUID, qty int) (SetCartQuantityCommand, error) {
	cmd := SetCartQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
	); err != nil {
		return SetCartQuantityCommand{}, err
	}

	cmd.qty = qty

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetCartQuantityCommandIsNotConstructed if validation fails.
func (c SetCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartQuantityCommandIsNotConstructed)
}

// SessionID returns the browsing session identifier.
func (c SetCartQuantityCommand) SessionID() string {
	return c.sessionID
}

// ProductID returns the product identifier of the cart line.
func (c SetCartQuantityCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the requested absolute quantity.
func (c SetCartQuantityCommand) Qty() int {
	return c.qty
}

func (c *SetCartQuantityCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *SetCartQuantityCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
