package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrCategoryIsRequired    = errors.New("category is required")
)

// CreateProductCommand represents a request to add a product to a tenant catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	tenantID  kernel.UUID
	name      string
	price     kernel.Money
	category  string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// Validates the identifiers and that name and category are present.
func NewCreateProductCommand(
	productID, tenantID kernel.UUID,
	name string,
	price kernel.Money,
	category string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setTenantID(tenantID),
		cmd.setName(name),
		cmd.setCategory(category),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.price = price

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being added.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// TenantID returns the catalog owner.
func (c CreateProductCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Name returns the product display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Category returns the catalog category the product files under.
func (c CreateProductCommand) Category() string {
	return c.category
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}
