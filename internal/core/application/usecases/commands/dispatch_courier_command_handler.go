package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// ErrCourierNotAvailable is returned when the named courier cannot take the
// order: paused, suspended, or already carrying a delivery. It belongs to
// the state transition class.
var ErrCourierNotAvailable = fmt.Errorf("courier is not available for dispatch: %w", errs.ErrInvalidStateTransition)

// DispatchCourierCommandHandler binds a ready delivery order to a courier.
// Updates both aggregates within a single transaction so the order's courier
// reference and the courier's active binding never diverge.
//
// Example:
//
//	handler := NewDispatchCourierCommandHandler(uowFactory)
//	cmd, _ := NewDispatchCourierCommand(orderID, tenantID, courierID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrCourierNotAvailable):
//	    log.Println("Courier is busy or off shift")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Println("Order is on its way")
//	}
type DispatchCourierCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDispatchCourierCommandHandler creates a handler for dispatch operations.
// Requires an OrderUoWFactory for coordinating transactional updates across repositories.
func NewDispatchCourierCommandHandler(uowFactory OrderUoWFactory) DispatchCourierCommandHandler {
	return DispatchCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// The tenant must be operational and must own both the order and the courier.
// The order must be ready and a delivery order; the courier must be available
// with no active delivery. On success the order moves to in transit.
func (h DispatchCourierCommandHandler) Handle(ctx context.Context, cmd DispatchCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenant, err := uow.TenantRepository().Get(ctx, cmd.TenantID())
	if err != nil {
		return err
	}
	if err = tenant.EnsureOperational(); err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !ord.TenantID().IsEqual(cmd.TenantID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	chosen, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	_, err = services.NewFulfillmentDispatcher().Dispatch(ord, []*courier.Courier{chosen})
	if errors.Is(err, services.ErrCourierNotFound) {
		return ErrCourierNotAvailable
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.CourierRepository().Update(ctx, chosen); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
