package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// FulfillmentType distinguishes delivery orders from pickup orders.
// Pickup orders carry no delivery fee, require no address, involve no courier,
// and complete directly from Ready.
type FulfillmentType int

const (
	// FulfillmentUnknown represents an invalid or undefined type.
	FulfillmentUnknown FulfillmentType = iota

	// FulfillmentDelivery routes the order through courier dispatch.
	FulfillmentDelivery

	// FulfillmentPickup hands the order to the customer at the store.
	FulfillmentPickup
)

func getFulfillmentTypeStrings() map[FulfillmentType]string {
	return map[FulfillmentType]string{
		FulfillmentUnknown:  "Unknown",
		FulfillmentDelivery: "Delivery",
		FulfillmentPickup:   "Pickup",
	}
}

// FulfillmentTypeFromString parses a fulfillment type name as used on the wire.
func FulfillmentTypeFromString(s string) (FulfillmentType, error) {
	switch s {
	case "Delivery":
		return FulfillmentDelivery, nil
	case "Pickup":
		return FulfillmentPickup, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("fulfillment type", fmt.Errorf("%q is not a valid fulfillment type", s))
	}
}

// Validate checks if the FulfillmentType value is valid.
func (f FulfillmentType) Validate() error {
	if f != FulfillmentDelivery && f != FulfillmentPickup {
		return errs.NewValueIsInvalidErrorWithCause("fulfillment type", fmt.Errorf("%d is not a valid fulfillment type", f))
	}
	return nil
}

// String returns the human-readable name of the fulfillment type.
func (f FulfillmentType) String() string {
	if str, ok := getFulfillmentTypeStrings()[f]; ok {
		return str
	}
	return "Unknown"
}

// IsPickup reports whether the type is pickup.
func (f FulfillmentType) IsPickup() bool {
	return f == FulfillmentPickup
}
