package courier

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents a courier's availability for dispatch.
//
//	Available <──> Paused
//	     │            │
//	     └──> Suspended <──┘   (Reinstate returns to Available)
//
// Only Available couriers are dispatchable. Paused is self-service (a break);
// Suspended is administrative.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable marks a courier ready to take a delivery.
	StatusAvailable

	// StatusPaused marks a courier on a self-service break.
	StatusPaused

	// StatusSuspended marks a courier blocked by store staff.
	StatusSuspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusAvailable: "Available",
		StatusPaused:    "Paused",
		StatusSuspended: "Suspended",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != StatusAvailable && s != StatusPaused && s != StatusSuspended {
		return errs.NewValueIsInvalidErrorWithCause("courier status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pause transitions Available to Paused.
func (s Status) Pause() (Status, error) {
	if s != StatusAvailable {
		return 0, errs.NewInvalidStateTransitionError("courier", s.String(), StatusPaused.String())
	}
	return StatusPaused, nil
}

// Resume transitions Paused back to Available.
func (s Status) Resume() (Status, error) {
	if s != StatusPaused {
		return 0, errs.NewInvalidStateTransitionError("courier", s.String(), StatusAvailable.String())
	}
	return StatusAvailable, nil
}

// Suspend transitions Available or Paused to Suspended.
func (s Status) Suspend() (Status, error) {
	if s != StatusAvailable && s != StatusPaused {
		return 0, errs.NewInvalidStateTransitionError("courier", s.String(), StatusSuspended.String())
	}
	return StatusSuspended, nil
}

// Reinstate transitions Suspended back to Available.
func (s Status) Reinstate() (Status, error) {
	if s != StatusSuspended {
		return 0, errs.NewInvalidStateTransitionError("courier", s.String(), StatusAvailable.String())
	}
	return StatusAvailable, nil
}
