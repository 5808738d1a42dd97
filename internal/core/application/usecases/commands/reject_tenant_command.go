package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRejectTenantCommandIsNotConstructed = errors.New(
	"RejectTenantCommand must be created via NewRejectTenantCommand constructor",
)

// RejectTenantCommand represents an operator decision to decline a pending
// storefront application.
type RejectTenantCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectTenantCommand creates a command to reject a pending tenant.
func NewRejectTenantCommand(tenantID kernel.UUID) (RejectTenantCommand, error) {
	cmd := RejectTenantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTenantID(tenantID); err != nil {
		return RejectTenantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectTenantCommandIsNotConstructed if validation fails.
func (c RejectTenantCommand) Validate() error {
	return c.guard.Validate(ErrRejectTenantCommandIsNotConstructed)
}

// TenantID returns the identifier of the tenant being rejected.
func (c RejectTenantCommand) TenantID() kernel.UUID {
	return c.tenantID
}

func (c *RejectTenantCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}
