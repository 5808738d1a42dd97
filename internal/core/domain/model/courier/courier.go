package courier

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierHasActiveDelivery is returned when dispatching a courier who is
	// already carrying an order. One in-flight delivery per courier.
	ErrCourierHasActiveDelivery = errs.NewValueIsInvalidError("courier already has an active delivery")
	// ErrNoActiveDelivery is returned when completing a delivery the courier
	// does not carry.
	ErrNoActiveDelivery = errs.NewValueIsInvalidError("courier has no matching active delivery")
)

// Courier represents a delivery agent on one tenant's roster. It is an
// aggregate root tracking availability, the single in-flight delivery, the
// running delivery counters, and the accrued payout balance.
//
// Business rules:
//   - Courier must have a valid UUID, a valid tenant UUID, and a non-empty name
//   - Only an Available courier with no active delivery can be dispatched
//   - Completing a delivery clears the binding, bumps deliveriesToday and
//     lifetimeDeliveries, and credits the payout to the balance
//   - deliveriesToday resets at the start of each day
//   - Withdrawals debit the balance immediately at request time
type Courier struct {
	id                 kernel.UUID
	tenantID           kernel.UUID
	name               string
	status             Status
	deliveriesToday    int
	lifetimeDeliveries int
	balance            kernel.Money
	activeOrderID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCourier creates a courier joining a tenant's roster.
// The courier starts Available with zero counters and a zero balance.
func NewCourier(id, tenantID kernel.UUID, name string) (*Courier, error) {
	c := &Courier{
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setTenantID(tenantID),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving availability, counters, balance, and any in-flight delivery.
func RestoreCourier(
	id, tenantID kernel.UUID,
	name string,
	status Status,
	deliveriesToday, lifetimeDeliveries int,
	balance kernel.Money,
	activeOrderID *kernel.UUID,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setTenantID(tenantID),
		c.setName(name),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	c.status = status
	c.deliveriesToday = deliveriesToday
	c.lifetimeDeliveries = lifetimeDeliveries
	c.balance = balance
	if activeOrderID != nil {
		if err := activeOrderID.Validate(); err != nil {
			return nil, err
		}
		bound := *activeOrderID
		c.activeOrderID = &bound
	}

	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// TenantID returns the identifier of the tenant owning the roster slot.
func (c *Courier) TenantID() kernel.UUID {
	return c.tenantID
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Status returns the current availability status.
func (c *Courier) Status() Status {
	return c.status
}

// DeliveriesToday returns the running daily delivery counter.
func (c *Courier) DeliveriesToday() int {
	return c.deliveriesToday
}

// LifetimeDeliveries returns the all-time delivery counter.
func (c *Courier) LifetimeDeliveries() int {
	return c.lifetimeDeliveries
}

// Balance returns the accrued payout balance owed to the courier.
func (c *Courier) Balance() kernel.Money {
	return c.balance
}

// ActiveOrder returns the in-flight order's ID, or nil when idle.
func (c *Courier) ActiveOrder() *kernel.UUID {
	if c.activeOrderID == nil {
		return nil
	}
	id := *c.activeOrderID
	return &id
}

// IsDispatchable reports whether the courier can take a new delivery:
// Available status and no active delivery.
func (c *Courier) IsDispatchable() bool {
	return c.status == StatusAvailable && c.activeOrderID == nil
}

// BeginDelivery binds an order to the courier. Fails for couriers that are
// not Available or already carry a delivery; nothing is mutated on failure.
func (c *Courier) BeginDelivery(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if c.status != StatusAvailable {
		return errs.NewInvalidStateTransitionError("courier", c.status.String(), "delivering")
	}
	if c.activeOrderID != nil {
		return ErrCourierHasActiveDelivery
	}

	bound := orderID
	c.activeOrderID = &bound
	return nil
}

// CompleteDelivery settles the in-flight order: clears the binding, bumps
// both delivery counters, and credits the payout to the balance. The order
// must match the active binding.
func (c *Courier) CompleteDelivery(orderID kernel.UUID, payout kernel.Money) error {
	if c.activeOrderID == nil || !c.activeOrderID.IsEqual(orderID) {
		return ErrNoActiveDelivery
	}

	c.activeOrderID = nil
	c.deliveriesToday++
	c.lifetimeDeliveries++
	c.balance = c.balance.Add(payout)
	return nil
}

// Pause takes the courier off dispatch for a break.
func (c *Courier) Pause() error {
	newStatus, err := c.status.Pause()
	if err != nil {
		return err
	}
	c.status = newStatus
	return nil
}

// Resume returns a paused courier to dispatch.
func (c *Courier) Resume() error {
	newStatus, err := c.status.Resume()
	if err != nil {
		return err
	}
	c.status = newStatus
	return nil
}

// Suspend blocks the courier administratively. An in-flight delivery still
// completes; the courier just takes no new ones.
func (c *Courier) Suspend() error {
	newStatus, err := c.status.Suspend()
	if err != nil {
		return err
	}
	c.status = newStatus
	return nil
}

// Reinstate lifts an administrative suspension.
func (c *Courier) Reinstate() error {
	newStatus, err := c.status.Reinstate()
	if err != nil {
		return err
	}
	c.status = newStatus
	return nil
}

// ResetDailyCount zeroes deliveriesToday. Run by the daily reset job.
func (c *Courier) ResetDailyCount() {
	c.deliveriesToday = 0
}

// RequestWithdrawal debits amount from the balance and returns the payout
// request awaiting review. The debit happens here, at request time, so two
// concurrent requests can never spend the same funds.
//
// Fails with a range error when amount is below the platform minimum and
// with an insufficient-funds error when it exceeds the balance; the balance
// is untouched on failure.
func (c *Courier) RequestWithdrawal(id kernel.UUID, amount, minimum kernel.Money, now time.Time) (*WithdrawalRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !amount.GreaterOrEqual(minimum) {
		return nil, errs.NewValueIsOutOfRangeError("withdrawal amount", amount.String(), minimum.String(), c.balance.String())
	}

	debited, err := c.balance.Sub(amount)
	if err != nil {
		return nil, err
	}

	c.balance = debited
	return &WithdrawalRequest{
		id:          id,
		courierID:   c.id,
		amount:      amount,
		status:      WithdrawalRequested,
		requestedAt: now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RefundWithdrawal credits a rejected withdrawal's amount back to the balance.
func (c *Courier) RefundWithdrawal(amount kernel.Money) {
	c.balance = c.balance.Add(amount)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
