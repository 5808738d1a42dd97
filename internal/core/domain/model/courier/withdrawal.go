package courier

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrWithdrawalIsNotConstructed is returned when using an improperly
// initialized WithdrawalRequest.
var ErrWithdrawalIsNotConstructed = errors.New(
	"WithdrawalRequest must be created via Courier.RequestWithdrawal or RestoreWithdrawalRequest",
)

// WithdrawalStatus represents the review state of a payout request.
// Requested is the only non-terminal state.
type WithdrawalStatus int

const (
	// WithdrawalUnknown represents an invalid or undefined status.
	WithdrawalUnknown WithdrawalStatus = iota

	// WithdrawalRequested awaits staff review. The balance is already debited.
	WithdrawalRequested

	// WithdrawalApproved confirms the payout; the debit stands.
	WithdrawalApproved

	// WithdrawalRejected declines the payout; the amount is refunded.
	WithdrawalRejected
)

func getWithdrawalStatusStrings() map[WithdrawalStatus]string {
	return map[WithdrawalStatus]string{
		WithdrawalUnknown:   "Unknown",
		WithdrawalRequested: "Requested",
		WithdrawalApproved:  "Approved",
		WithdrawalRejected:  "Rejected",
	}
}

// Validate checks if the WithdrawalStatus value is valid.
func (s WithdrawalStatus) Validate() error {
	if s != WithdrawalRequested && s != WithdrawalApproved && s != WithdrawalRejected {
		return errs.NewValueIsInvalidErrorWithCause("withdrawal status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s WithdrawalStatus) String() string {
	if str, ok := getWithdrawalStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// WithdrawalRequest is a courier's request to pay out part of the accrued
// balance. The requested amount is debited from the courier's balance the
// moment the request is created, so the same funds can never back two
// concurrent requests; a rejection refunds the courier.
type WithdrawalRequest struct {
	id          kernel.UUID
	courierID   kernel.UUID
	amount      kernel.Money
	status      WithdrawalStatus
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// RestoreWithdrawalRequest reconstructs a WithdrawalRequest from persistent
// storage. New requests are created through Courier.RequestWithdrawal so the
// balance debit can never be skipped.
func RestoreWithdrawalRequest(
	id, courierID kernel.UUID,
	amount kernel.Money,
	status WithdrawalStatus,
	requestedAt time.Time,
) (*WithdrawalRequest, error) {
	if err := errors.Join(id.Validate(), courierID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &WithdrawalRequest{
		id:          id,
		courierID:   courierID,
		amount:      amount,
		status:      status,
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the WithdrawalRequest instance was properly constructed.
func (w *WithdrawalRequest) Validate() error {
	if w == nil {
		return ErrWithdrawalIsNotConstructed
	}
	return w.guard.Validate(ErrWithdrawalIsNotConstructed)
}

// ID returns the request's unique identifier.
func (w *WithdrawalRequest) ID() kernel.UUID {
	return w.id
}

// CourierID returns the requesting courier's identifier.
func (w *WithdrawalRequest) CourierID() kernel.UUID {
	return w.courierID
}

// Amount returns the requested payout amount.
func (w *WithdrawalRequest) Amount() kernel.Money {
	return w.amount
}

// Status returns the review state.
func (w *WithdrawalRequest) Status() WithdrawalStatus {
	return w.status
}

// RequestedAt returns when the request was created.
func (w *WithdrawalRequest) RequestedAt() time.Time {
	return w.requestedAt
}

// Approve confirms the payout. Only Requested withdrawals can be approved;
// the debit taken at request time stands.
func (w *WithdrawalRequest) Approve() error {
	if w.status != WithdrawalRequested {
		return errs.NewInvalidStateTransitionError("withdrawal", w.status.String(), WithdrawalApproved.String())
	}
	w.status = WithdrawalApproved
	return nil
}

// Reject declines the payout. The caller must refund the courier via
// Courier.RefundWithdrawal in the same transaction.
func (w *WithdrawalRequest) Reject() error {
	if w.status != WithdrawalRequested {
		return errs.NewInvalidStateTransitionError("withdrawal", w.status.String(), WithdrawalRejected.String())
	}
	w.status = WithdrawalRejected
	return nil
}
