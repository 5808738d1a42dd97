package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrSweepOverdueSubscriptionsCommandIsNotConstructed = errors.New(
	"SweepOverdueSubscriptionsCommand must be created via NewSweepOverdueSubscriptionsCommand constructor",
)

// SweepOverdueSubscriptionsCommand suspends every active storefront whose
// billing date has passed. A parameterless batch command, run hourly.
type SweepOverdueSubscriptionsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepOverdueSubscriptionsCommand creates the subscription sweep command.
func NewSweepOverdueSubscriptionsCommand() SweepOverdueSubscriptionsCommand {
	return SweepOverdueSubscriptionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepOverdueSubscriptionsCommandIsNotConstructed if validation fails.
func (c SweepOverdueSubscriptionsCommand) Validate() error {
	return c.guard.Validate(ErrSweepOverdueSubscriptionsCommandIsNotConstructed)
}
