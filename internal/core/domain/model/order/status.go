package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the operational workflow:
//
//	Pending ──> Preparing ──> Ready ──> InTransit ──> Completed
//	   │                        │                         ^
//	   v                        └──────(pickup only)──────┘
//	Canceled
//
// Completed and Canceled are terminal; no transition leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status after checkout submission.
	// The order awaits staff triage.
	StatusPending

	// StatusPreparing indicates staff accepted the order and the kitchen
	// is working on it.
	StatusPreparing

	// StatusReady indicates the order awaits handoff: courier dispatch for
	// delivery orders, customer pickup otherwise.
	StatusReady

	// StatusInTransit indicates a courier is carrying the order.
	// Pickup orders never enter this status.
	StatusInTransit

	// StatusCompleted indicates the order was handed to the customer.
	// Terminal.
	StatusCompleted

	// StatusCanceled indicates staff rejected the order before preparation.
	// Terminal, reachable only from Pending.
	StatusCanceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusPreparing: "Preparing",
		StatusReady:     "Ready",
		StatusInTransit: "InTransit",
		StatusCompleted: "Completed",
		StatusCanceled:  "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusPreparing: "Preparing",
		StatusReady:     "Ready",
		StatusInTransit: "InTransit",
		StatusCompleted: "Completed",
		StatusCanceled:  "Canceled",
	}
}

// StatusFromString parses a status name as used on the wire
// (case-sensitive, matching String()).
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Accept transitions Pending to Preparing (staff accepted the order).
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidStateTransitionError("order", s.String(), StatusPreparing.String())
	}
	return StatusPreparing, nil
}

// Cancel transitions Pending to Canceled (staff rejected the order).
// Cancellation from any later status is rejected; the ledger keeps orders
// that entered preparation.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidStateTransitionError("order", s.String(), StatusCanceled.String())
	}
	return StatusCanceled, nil
}

// MarkReady transitions Preparing to Ready.
func (s Status) MarkReady() (Status, error) {
	if s != StatusPreparing {
		return 0, errs.NewInvalidStateTransitionError("order", s.String(), StatusReady.String())
	}
	return StatusReady, nil
}

// Dispatch transitions Ready to InTransit (courier handoff).
// Only meaningful for delivery orders; the aggregate enforces that side.
func (s Status) Dispatch() (Status, error) {
	if s != StatusReady {
		return 0, errs.NewInvalidStateTransitionError("order", s.String(), StatusInTransit.String())
	}
	return StatusInTransit, nil
}

// Complete transitions to Completed: from InTransit for delivery orders, or
// directly from Ready when pickup is true (pickup orders skip InTransit).
func (s Status) Complete(pickup bool) (Status, error) {
	if s == StatusInTransit && !pickup {
		return StatusCompleted, nil
	}
	if s == StatusReady && pickup {
		return StatusCompleted, nil
	}
	return 0, errs.NewInvalidStateTransitionError("order", s.String(), StatusCompleted.String())
}
