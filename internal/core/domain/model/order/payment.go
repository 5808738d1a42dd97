package order

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrInsufficientChange is returned when a cash payment supplies a change
// amount smaller than the order total.
var ErrInsufficientChange = errs.NewValueIsInvalidError("change amount does not cover the total")

// PaymentMethod is the closed set of payment labels the storefront accepts.
// Payment here is a label agreed at checkout, not a processed transaction.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is paid on handoff and may carry a change-for amount.
	PaymentCash

	// PaymentCard is paid by card on handoff.
	PaymentCard

	// PaymentPix is paid by instant bank transfer.
	PaymentPix
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown: "Unknown",
		PaymentCash:    "Cash",
		PaymentCard:    "Card",
		PaymentPix:     "Pix",
	}
}

// PaymentMethodFromString parses a payment method name as used on the wire.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch s {
	case "Cash":
		return PaymentCash, nil
	case "Card":
		return PaymentCard, nil
	case "Pix":
		return PaymentPix, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not a valid payment method", s))
	}
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok || m == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Payment is the value object describing how the customer pays on handoff.
// Cash payments may carry a change-for amount (the bill the customer will
// hand over); the order constructor validates it against the total.
type Payment struct {
	method    PaymentMethod
	changeFor *kernel.Money
}

// NewPayment creates a payment for card or Pix. Cash with change goes through
// NewCashPayment; plain cash without change is accepted here too.
func NewPayment(method PaymentMethod) (Payment, error) {
	if err := method.Validate(); err != nil {
		return Payment{}, err
	}
	return Payment{method: method}, nil
}

// NewCashPayment creates a cash payment, optionally carrying the amount the
// customer will pay with so staff can prepare change. A nil changeFor means
// exact payment.
func NewCashPayment(changeFor *kernel.Money) Payment {
	p := Payment{method: PaymentCash}
	if changeFor != nil {
		c := *changeFor
		p.changeFor = &c
	}
	return p
}

// Method returns the payment method label.
func (p Payment) Method() PaymentMethod {
	return p.method
}

// ChangeFor returns the amount the customer pays with, or nil when no change
// handling was requested (or the method is not cash).
func (p Payment) ChangeFor() *kernel.Money {
	if p.changeFor == nil {
		return nil
	}
	c := *p.changeFor
	return &c
}

// validateAgainstTotal rejects a cash change amount smaller than the total.
// Methods other than cash never carry a change amount.
func (p Payment) validateAgainstTotal(total kernel.Money) error {
	if p.changeFor == nil {
		return nil
	}
	if p.method != PaymentCash {
		return errs.NewValueIsInvalidError("change amount is only valid for cash payments")
	}
	if !p.changeFor.GreaterOrEqual(total) {
		return ErrInsufficientChange
	}
	return nil
}

// ChangeDue returns the change owed to the customer for a cash payment with
// a change-for amount, or nil otherwise.
func (p Payment) ChangeDue(total kernel.Money) *kernel.Money {
	if p.method != PaymentCash || p.changeFor == nil {
		return nil
	}
	due, err := p.changeFor.Sub(total)
	if err != nil {
		return nil
	}
	return &due
}
