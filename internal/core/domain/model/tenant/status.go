package tenant

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// SubscriptionStatus represents the lifecycle state of a tenant's platform
// subscription. It implements a small state machine:
//
//	Pending ──┬──> Active ──> Canceled
//	          │                  ^
//	          └──────────────────┘
//
// Only Active tenants are operational; Pending and Canceled tenants accept no
// new orders and expose no fulfillment operations.
type SubscriptionStatus int

const (
	// SubscriptionUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized SubscriptionStatus values.
	SubscriptionUnknown SubscriptionStatus = iota

	// SubscriptionPending is the initial status after onboarding.
	// The tenant awaits administrative approval.
	SubscriptionPending

	// SubscriptionActive marks an approved, billable tenant.
	// This is the only operational status.
	SubscriptionActive

	// SubscriptionCanceled marks a rejected or suspended tenant.
	// This is a terminal status; reactivation requires re-onboarding.
	SubscriptionCanceled
)

func getSubscriptionStatusStrings() map[SubscriptionStatus]string {
	return map[SubscriptionStatus]string{
		SubscriptionUnknown:  "Unknown",
		SubscriptionPending:  "Pending",
		SubscriptionActive:   "Active",
		SubscriptionCanceled: "Canceled",
	}
}

func getValidSubscriptionStatusStrings() map[SubscriptionStatus]string {
	//nolint:exhaustive // SubscriptionUnknown is intentionally excluded as it's invalid
	return map[SubscriptionStatus]string{
		SubscriptionPending:  "Pending",
		SubscriptionActive:   "Active",
		SubscriptionCanceled: "Canceled",
	}
}

// Validate checks if the SubscriptionStatus value is valid.
// Valid statuses are Pending, Active, and Canceled.
func (s SubscriptionStatus) Validate() error {
	if _, ok := getValidSubscriptionStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("subscription status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s SubscriptionStatus) String() string {
	if str, ok := getSubscriptionStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Activate transitions the status to Active.
// Only Pending subscriptions can be activated; anything else is rejected
// as an invalid state transition with no mutation.
func (s SubscriptionStatus) Activate() (SubscriptionStatus, error) {
	if s != SubscriptionPending {
		return 0, errs.NewInvalidStateTransitionError("tenant subscription", s.String(), SubscriptionActive.String())
	}
	return SubscriptionActive, nil
}

// Cancel transitions the status to Canceled.
// Valid from Pending (administrative rejection) and Active (suspension for
// an expired subscription). Canceled is terminal.
func (s SubscriptionStatus) Cancel() (SubscriptionStatus, error) {
	if s != SubscriptionPending && s != SubscriptionActive {
		return 0, errs.NewInvalidStateTransitionError("tenant subscription", s.String(), SubscriptionCanceled.String())
	}
	return SubscriptionCanceled, nil
}
