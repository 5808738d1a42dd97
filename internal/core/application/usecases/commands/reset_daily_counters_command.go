package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrResetDailyCountersCommandIsNotConstructed = errors.New(
	"ResetDailyCountersCommand must be created via NewResetDailyCountersCommand constructor",
)

// ResetDailyCountersCommand zeroes every courier's per-day delivery counter.
// A parameterless batch command, run by the midnight scheduler.
type ResetDailyCountersCommand struct {
	guard guard.ConstructorGuard
}

// NewResetDailyCountersCommand creates the daily counter reset command.
func NewResetDailyCountersCommand() ResetDailyCountersCommand {
	return ResetDailyCountersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetDailyCountersCommandIsNotConstructed if validation fails.
func (c ResetDailyCountersCommand) Validate() error {
	return c.guard.Validate(ErrResetDailyCountersCommandIsNotConstructed)
}
