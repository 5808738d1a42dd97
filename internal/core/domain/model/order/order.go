package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrEmptyOrder is returned when checkout is submitted with no items.
	ErrEmptyOrder = errs.NewValueIsRequiredError("order items")
	// ErrCustomerNameIsRequired is returned when the customer name is missing.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrCustomerPhoneIsRequired is returned when the customer phone is missing.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customer phone")
	// ErrAddressIsRequired is returned when a delivery order lacks an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	// ErrPickupTakesNoCourier is returned when dispatching a pickup order.
	ErrPickupTakesNoCourier = errs.NewValueIsInvalidError("pickup orders are not dispatched")
)

// Order represents a customer's finalized purchase. It is the aggregate root
// tracking the purchase from checkout submission through fulfillment.
//
// Order follows these invariants:
//   - Exists fully formed in Pending status or not at all
//   - Items are a denormalized snapshot; the total is computed once at
//     creation (sum of line subtotals plus the delivery fee, zero for pickup)
//     and never recomputed from catalog state
//   - Status transitions follow the lifecycle table in Status
//   - A courier is bound only on dispatch of a delivery order in Ready status
//   - The version field supports optimistic concurrency in persistence;
//     it never changes domain behavior
//
// Orders are never deleted. Together they form the permanent ledger of the
// tenant's sales.
type Order struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	version     int
	customer    string
	phone       string
	fulfillment FulfillmentType
	address     string
	payment     Payment
	items       []Item
	deliveryFee kernel.Money
	total       kernel.Money
	status      Status
	createdAt   time.Time
	courierID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrder creates an order from a checkout submission.
//
// Validation covers the identifiers, required contact fields, the address for
// delivery orders, a non-empty item snapshot, and the cash change amount
// against the computed total. Any failure aborts creation entirely; there is
// no partially constructed order.
//
// The delivery fee is forced to zero for pickup orders. The resulting total is
// immutable for the order's lifetime.
func NewOrder(
	id, tenantID kernel.UUID,
	customer, phone string,
	fulfillment FulfillmentType,
	address string,
	payment Payment,
	items []Item,
	deliveryFee kernel.Money,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:  StatusPending,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setCustomer(customer, phone),
		o.setFulfillment(fulfillment, address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if fulfillment.IsPickup() {
		deliveryFee = kernel.Zero()
	}
	o.deliveryFee = deliveryFee
	o.total = o.subtotal().Add(deliveryFee)

	if err := payment.validateAgainstTotal(o.total); err != nil {
		return nil, err
	}
	o.payment = payment
	o.createdAt = now

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving the snapshot, lifecycle state, courier binding, and version.
// The persisted total is trusted as-is; it reflects the price agreed at
// checkout and must not be re-derived.
func RestoreOrder(
	id, tenantID kernel.UUID,
	version int,
	customer, phone string,
	fulfillment FulfillmentType,
	address string,
	payment Payment,
	items []Item,
	deliveryFee, total kernel.Money,
	status Status,
	createdAt time.Time,
	courierID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setCustomer(customer, phone),
		o.setFulfillment(fulfillment, address),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	o.version = version
	o.payment = payment
	o.deliveryFee = deliveryFee
	o.total = total
	o.status = status
	o.createdAt = createdAt
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		bound := *courierID
		o.courierID = &bound
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TenantID returns the identifier of the tenant that sold the order.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// Version returns the optimistic-concurrency version loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// Customer returns the customer's name.
func (o *Order) Customer() string {
	return o.customer
}

// Phone returns the customer's contact phone.
func (o *Order) Phone() string {
	return o.phone
}

// Fulfillment returns the fulfillment type.
func (o *Order) Fulfillment() FulfillmentType {
	return o.fulfillment
}

// Address returns the delivery address; empty for pickup orders.
func (o *Order) Address() string {
	return o.address
}

// Payment returns the payment label agreed at checkout.
func (o *Order) Payment() Payment {
	return o.payment
}

// Items returns a copy of the line snapshot.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// DeliveryFee returns the fee snapshotted at creation; zero for pickup.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Total returns the immutable total agreed at checkout.
func (o *Order) Total() kernel.Money {
	return o.total
}

// ChangeDue returns the change owed for a cash payment, or nil.
func (o *Order) ChangeDue() *kernel.Money {
	return o.payment.ChangeDue(o.total)
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the checkout submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Courier returns the assigned courier's ID, or nil before dispatch.
func (o *Order) Courier() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// Accept moves the order from Pending to Preparing (staff accepted it).
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order from Pending to Canceled (staff rejected it).
// Canceled is terminal; the order stays in the ledger.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady moves the order from Preparing to Ready.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch binds a courier and moves a delivery order from Ready to
// InTransit. Pickup orders are never dispatched; the attempt fails without
// touching the order.
func (o *Order) Dispatch(courierID kernel.UUID) error {
	if o.fulfillment.IsPickup() {
		return ErrPickupTakesNoCourier
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Complete moves the order to Completed: from InTransit for delivery orders,
// from Ready for pickup orders. Completed is terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete(o.fulfillment.IsPickup())
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) subtotal() kernel.Money {
	sum := kernel.Zero()
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	o.tenantID = tenantID
	return nil
}

func (o *Order) setCustomer(customer, phone string) error {
	if customer == "" {
		return ErrCustomerNameIsRequired
	}
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}
	o.customer = customer
	o.phone = phone
	return nil
}

func (o *Order) setFulfillment(fulfillment FulfillmentType, address string) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}
	if fulfillment == FulfillmentDelivery && address == "" {
		return ErrAddressIsRequired
	}
	o.fulfillment = fulfillment
	if fulfillment.IsPickup() {
		address = ""
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
