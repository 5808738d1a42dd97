package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateTenantCommandIsNotConstructed = errors.New(
		"CreateTenantCommand must be created via NewCreateTenantCommand constructor",
	)
	ErrTenantNameIsRequired = errors.New("tenant name is required")
	ErrSlugIsRequired       = errors.New("slug is required")
)

// CreateTenantCommand represents a request to onboard a new storefront.
// The tenant starts pending and stays invisible until an operator approves it.
//
// Example:
//
//	tenantID := kernel.NewUUID()
//	fee := kernel.MustNewMoney(500)
//	cmd, err := NewCreateTenantCommand(tenantID, "Mario's Pizza", "marios-pizza", fee)
//	if err != nil {
//	    return fmt.Errorf("invalid tenant data: %w", err)
//	}
//
//	handler := NewCreateTenantCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create tenant: %w", err)
//	}
type CreateTenantCommand struct { //nolint:recvcheck //using for validation
	tenantID    kernel.UUID
	name        string
	slug        string
	deliveryFee kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateTenantCommand creates a command to onboard a tenant.
// Validates the identifier and that name and slug are present. The slug
// format itself is enforced by the tenant aggregate.
func NewCreateTenantCommand(tenantID kernel.UUID, name, slug string, deliveryFee kernel.Money) (CreateTenantCommand, error) {
	cmd := CreateTenantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setName(name),
		cmd.setSlug(slug),
	); err != nil {
		return CreateTenantCommand{}, err
	}

	cmd.deliveryFee = deliveryFee

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTenantCommandIsNotConstructed if validation fails.
func (c CreateTenantCommand) Validate() error {
	return c.guard.Validate(ErrCreateTenantCommandIsNotConstructed)
}

// TenantID returns the identifier of the tenant being onboarded.
func (c CreateTenantCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Name returns the tenant display name.
func (c CreateTenantCommand) Name() string {
	return c.name
}

// Slug returns the storefront slug.
func (c CreateTenantCommand) Slug() string {
	return c.slug
}

// DeliveryFee returns the flat delivery fee of the storefront.
func (c CreateTenantCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

func (c *CreateTenantCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateTenantCommand) setName(name string) error {
	if name == "" {
		return ErrTenantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateTenantCommand) setSlug(slug string) error {
	if slug == "" {
		return ErrSlugIsRequired
	}

	c.slug = slug
	return nil
}
