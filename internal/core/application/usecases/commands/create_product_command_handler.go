package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// ErrUnknownCategory is returned when the product names a category that is
// not part of the tenant's category vocabulary. It belongs to the validation
// class.
var ErrUnknownCategory = fmt.Errorf("category is not defined by the tenant: %w", errs.ErrValueIsInvalid)

// CreateProductCommandHandler handles catalog additions.
// A product may only file under a category the tenant has defined.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
// Requires a CatalogUoWFactory for transactional persistence.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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
	if !tenant.HasCategory(cmd.Category()) {
		return ErrUnknownCategory
	}

	aggregate, err := product.NewProduct(cmd.ProductID(), cmd.TenantID(), cmd.Name(), cmd.Price(), cmd.Category())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
