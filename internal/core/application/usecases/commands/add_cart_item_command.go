package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrSessionIDIsRequired = errors.New("session id is required")
)

// AddCartItemCommand represents a request to add one unit of a product to the
// working cart of a browsing session.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(sessionID, tenantID, productID)
//	if err != nil {
//	    return fmt.Errorf("invalid cart data: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(cartStore, uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add cart item: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	tenantID  kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a product to a session cart.
// Validates that the session identifier is present and both identifiers are valid.
func NewAddCartItemCommand(sessionID string, tenantID, productID kernel.UUID) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setTenantID(tenantID),
		cmd.setProductID(productID),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCartItemCommandIsNotConstructed if validation fails.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// SessionID returns the browsing session identifier.
func (c AddCartItemCommand) SessionID() string {
	return c.sessionID
}

// TenantID returns the storefront tenant identifier.
func (c AddCartItemCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ProductID returns the product identifier.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *AddCartItemCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *AddCartItemCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
