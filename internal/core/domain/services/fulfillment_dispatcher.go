package services

import (
	"errors"

	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no suitable courier is available for order dispatch.
// This occurs when either no couriers are provided or none of the provided couriers
// belong to the order's tenant and are free to take a new delivery.
var ErrCourierNotFound = errors.New("courier not found")

// FulfillmentDispatcher is a domain service responsible for finding and assigning a courier
// for a ready delivery order.
//
// Key responsibilities:
//   - Validating orders before dispatch
//   - Selecting a free courier of the order's tenant
//   - Ensuring atomic order assignment workflow
//
// Business rules:
//   - Orders must be valid and ready before dispatch
//   - Pickup orders are never dispatched
//   - Couriers must be available and carry no active delivery
//   - Selection prioritizes the courier with the fewest deliveries today
//   - Order assignment is atomic
//
// Example usage:
//
//	dispatcher := NewFulfillmentDispatcher()
//	couriers := []*courier.Courier{courier1, courier2, courier3}
//
//	assignedCourier, err := dispatcher.Dispatch(readyOrder, couriers)
//	if errors.Is(err, ErrCourierNotFound) {
//	    // No available couriers for this order
//	    return
//	}
//	if err != nil {
//	    // Handle dispatch failure
//	    return
//	}
//	// Order successfully assigned to assignedCourier
type FulfillmentDispatcher struct{}

// NewFulfillmentDispatcher creates a new FulfillmentDispatcher instance.
//
// Returns:
//   - FulfillmentDispatcher: A new instance ready for dispatch operations
func NewFulfillmentDispatcher() FulfillmentDispatcher {
	return FulfillmentDispatcher{}
}

// Dispatch finds a free courier for a given order and executes the assignment workflow.
//
// Parameters:
//   - ord: The order to be dispatched (must be a ready delivery order)
//   - couriers: Slice of candidate couriers to consider
//
// Returns:
//   - *courier.Courier: The courier assigned to the order
//   - error: ErrCourierNotFound if no suitable courier exists, or other validation/assignment errors
//
// Selection algorithm:
//   - Validates the order and each courier
//   - Skips couriers of other tenants, unavailable couriers and busy couriers
//   - Selects the courier with the fewest deliveries today
//   - Assigns the order to the selected courier atomically
func (d FulfillmentDispatcher) Dispatch(ord *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	bestCourier, err := d.findFreeCourier(ord, couriers)
	if err != nil {
		return nil, err
	}

	if err = ord.Dispatch(bestCourier.ID()); err != nil {
		return nil, err
	}

	if err = bestCourier.BeginDelivery(ord.ID()); err != nil {
		return nil, err
	}

	return bestCourier, nil
}

// findFreeCourier searches through the provided couriers for one that can take the order.
//
// Parameters:
//   - ord: The order for which to find a courier
//   - couriers: Slice of candidate couriers to evaluate
//
// Returns:
//   - *courier.Courier: The free courier with the fewest deliveries today
//   - error: ErrCourierNotFound if no suitable courier exists, or validation errors
//
// Selection criteria:
//   - Validates courier construction
//   - Skips couriers of other tenants
//   - Skips unavailable couriers and couriers with an active delivery
//   - Returns the first courier in case of ties
func (d FulfillmentDispatcher) findFreeCourier(ord *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	var bestCourier *courier.Courier

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.TenantID().IsEqual(ord.TenantID()) {
			continue
		}

		if !c.IsDispatchable() {
			continue
		}

		if bestCourier == nil || c.DeliveriesToday() < bestCourier.DeliveriesToday() {
			bestCourier = c
		}
	}

	if bestCourier == nil {
		return nil, ErrCourierNotFound
	}

	return bestCourier, nil
}
