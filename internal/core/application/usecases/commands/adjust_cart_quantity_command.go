package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrAdjustCartQuantityCommandIsNotConstructed = errors.New(
		"AdjustCartQuantityCommand must be created via NewAdjustCartQuantityCommand constructor",
	)
	ErrDeltaIsRequired = errors.New("delta must not be zero")
)

// AdjustCartQuantityCommand represents a request to change the quantity of a
// cart line by a signed delta. A delta that drives the quantity to zero
// removes the line.
type AdjustCartQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	productID kernel.UUID
	delta     int

	guard guard.ConstructorGuard
}

// NewAdjustCartQuantityCommand creates a command to adjust a cart line quantity.
// Validates that the session identifier is present, the product identifier is
// valid, and the delta is non-zero.
func NewAdjustCartQuantityCommand(sessionID string, productID kernel.UUID, delta int) (AdjustCartQuantityCommand, error) {
	cmd := AdjustCartQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
		cmd.setDelta(delta),
	); err != nil {
		return AdjustCartQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdjustCartQuantityCommandIsNotConstructed if validation fails.
func (c AdjustCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAdjustCartQuantityCommandIsNotConstructed)
}

// SessionID returns the browsing session identifier.
func (c AdjustCartQuantityCommand) SessionID() string {
	return c.sessionID
}

// ProductID returns the product identifier of the cart line.
func (c AdjustCartQuantityCommand) ProductID() kernel.UUID {
	return c.productID
}

// Delta returns the signed quantity change.
func (c AdjustCartQuantityCommand) Delta() int {
	return c.delta
}

func (c *AdjustCartQuantityCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *AdjustCartQuantityCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AdjustCartQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsRequired
	}

	c.delta = delta
	return nil
}
