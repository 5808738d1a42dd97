package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// ErrInsufficientFunds is returned when a subtraction would drive a Money
// value below zero, e.g. a withdrawal exceeding a courier's balance.
var ErrInsufficientFunds = errs.NewValueIsInvalidError("amount exceeds available funds")

// Money is a value object representing a non-negative monetary amount in
// cents. Storing cents as an integer keeps order totals exact: the total
// agreed at checkout is snapshotted and must never drift through floating
// point arithmetic or catalog repricing.
//
// The zero value is a valid zero amount, so Money can be embedded in
// aggregates without a constructor guard.
type Money struct {
	cents int64
}

// NewMoney creates a Money from an amount in cents.
// Negative amounts are rejected; the domain has no concept of negative prices,
// fees, or balances.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// MustNewMoney is a test and constant helper that panics on a negative amount.
func MustNewMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns m minus other. Returns ErrInsufficientFunds when the result
// would be negative; the caller decides whether that is a validation failure
// or a business rejection.
func (m Money) Sub(other Money) (Money, error) {
	if other.cents > m.cents {
		return Money{}, ErrInsufficientFunds
	}
	return Money{cents: m.cents - other.cents}, nil
}

// MulQty returns the amount multiplied by a non-negative quantity.
// Used for line subtotals (unit price × qty).
func (m Money) MulQty(qty int) Money {
	if qty < 0 {
		qty = 0
	}
	return Money{cents: m.cents * int64(qty)}
}

// GreaterOrEqual reports whether m covers other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.cents >= other.cents
}

// IsEqual reports whether two amounts are equal.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "29.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
