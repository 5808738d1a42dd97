package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrApproveTenantCommandIsNotConstructed = errors.New(
	"ApproveTenantCommand must be created via NewApproveTenantCommand constructor",
)

// ApproveTenantCommand represents an operator decision to activate a pending
// storefront and open its first billing cycle.
type ApproveTenantCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveTenantCommand creates a command to approve a pending tenant.
func NewApproveTenantCommand(tenantID kernel.UUID) (ApproveTenantCommand, error) {
	cmd := ApproveTenantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTenantID(tenantID); err != nil {
		return ApproveTenantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApproveTenantCommandIsNotConstructed if validation fails.
func (c ApproveTenantCommand) Validate() error {
	return c.guard.Validate(ErrApproveTenantCommandIsNotConstructed)
}

// TenantID returns the identifier of the tenant being approved.
func (c ApproveTenantCommand) TenantID() kernel.UUID {
	return c.tenantID
}

func (c *ApproveTenantCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}
