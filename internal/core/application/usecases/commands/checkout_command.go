package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCustomerIsRequired = errors.New("customer name is required")
	ErrPhoneIsRequired    = errors.New("customer phone is required")
)

// CheckoutCommand represents a request to convert the working cart of a
// session into a placed order. Carries the customer contact fields, the
// fulfillment choice, and the payment intent; the cart contents and the
// prices come from the stores at handling time.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(orderID, sessionID, "Dana", "+5511999990000",
//	    order.FulfillmentDelivery, "12 Main St", order.PaymentCash, &changeFor)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(cartStore, uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	sessionID   string
	customer    string
	phone       string
	fulfillment order.FulfillmentType
	address     string
	method      order.PaymentMethod
	changeFor   *kernel.Money

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command.
// Validates identifiers, the contact fields, and the fulfillment and payment
// choices. The address requirement for delivery orders and the cash change
// amount are enforced by the order itself during handling.
func NewCheckoutCommand(
	orderID kernel.UUID,
	sessionID, customer, phone string,
	fulfillment order.FulfillmentType,
	address string,
	method order.PaymentMethod,
	changeFor *kernel.Money,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSessionID(sessionID),
		cmd.setCustomer(customer, phone),
		fulfillment.Validate(),
		method.Validate(),
	); err != nil {
		return CheckoutCommand{}, err
	}

	cmd.fulfillment = fulfillment
	cmd.address = address
	cmd.method = method
	cmd.changeFor = changeFor

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the order being placed.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SessionID returns the browsing session identifier.
func (c CheckoutCommand) SessionID() string {
	return c.sessionID
}

// Customer returns the customer display name.
func (c CheckoutCommand) Customer() string {
	return c.customer
}

// Phone returns the customer contact phone.
func (c CheckoutCommand) Phone() string {
	return c.phone
}

// Fulfillment returns the chosen fulfillment type.
func (c CheckoutCommand) Fulfillment() order.FulfillmentType {
	return c.fulfillment
}

// Address returns the delivery address. Empty for pickup orders.
func (c CheckoutCommand) Address() string {
	return c.address
}

// Method returns the chosen payment method.
func (c CheckoutCommand) Method() order.PaymentMethod {
	return c.method
}

// ChangeFor returns the cash amount the customer will pay with, or nil.
func (c CheckoutCommand) ChangeFor() *kernel.Money {
	return c.changeFor
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *CheckoutCommand) setCustomer(customer, phone string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.customer = customer
	c.phone = phone
	return nil
}
