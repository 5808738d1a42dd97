package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDispatchCourierCommandIsNotConstructed = errors.New(
	"DispatchCourierCommand must be created via NewDispatchCourierCommand constructor",
)

// DispatchCourierCommand represents a staff request to hand a ready delivery
// order to a named courier.
type DispatchCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	tenantID  kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchCourierCommand creates a command to dispatch an order to a courier.
// Validates all three identifiers.
func NewDispatchCourierCommand(orderID, tenantID, courierID kernel.UUID) (DispatchCourierCommand, error) {
	cmd := DispatchCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTenantID(tenantID),
		cmd.setCourierID(courierID),
	); err != nil {
		return DispatchCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchCourierCommandIsNotConstructed if validation fails.
func (c DispatchCourierCommand) Validate() error {
	return c.guard.Validate(ErrDispatchCourierCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c DispatchCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the tenant acting on the order.
func (c DispatchCourierCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// CourierID returns the courier chosen to carry the order.
func (c DispatchCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *DispatchCourierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DispatchCourierCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *DispatchCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
