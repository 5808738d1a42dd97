package tenant_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/tenant"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	validID := kernel.NewUUID()
	fee := kernel.MustNewMoney(400)

	t.Run("should create pending tenant with valid parameters", func(t *testing.T) {
		tn, err := tenant.NewTenant(validID, "Burger Point", "burger-point", fee)

		require.NoError(t, err)
		require.NoError(t, tn.Validate())
		assert.True(t, tn.ID().IsEqual(validID))
		assert.Equal(t, "Burger Point", tn.Name())
		assert.Equal(t, "burger-point", tn.Slug())
		assert.Equal(t, tenant.SubscriptionPending, tn.Status())
		assert.True(t, tn.DeliveryFee().IsEqual(fee))
		assert.False(t, tn.IsOperational())
		assert.True(t, tn.NextBillingDate().IsZero())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		tn, err := tenant.NewTenant(invalidID, "Burger Point", "burger-point", fee)

		require.Error(t, err)
		assert.Nil(t, tn)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		tn, err := tenant.NewTenant(validID, "", "burger-point", fee)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, tn)
	})

	t.Run("should fail with malformed slug", func(t *testing.T) {
		for _, slug := range []string{"", "Burger Point", "burger--point", "-burger", "burger-", "Büro"} {
			tn, err := tenant.NewTenant(validID, "Burger Point", slug, fee)

			require.Error(t, err, "slug %q", slug)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, tn)
		}
	})
}

func TestTenant_SubscriptionLifecycle(t *testing.T) {
	fee := kernel.MustNewMoney(400)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	newPending := func(t *testing.T) *tenant.Tenant {
		t.Helper()
		tn, err := tenant.NewTenant(kernel.NewUUID(), "Burger Point", "burger-point", fee)
		require.NoError(t, err)
		return tn
	}

	t.Run("approve activates and extends billing date", func(t *testing.T) {
		tn := newPending(t)

		require.NoError(t, tn.Approve(now))

		assert.Equal(t, tenant.SubscriptionActive, tn.Status())
		assert.True(t, tn.IsOperational())
		assert.Equal(t, now.AddDate(0, 1, 0), tn.NextBillingDate())
	})

	t.Run("reject cancels a pending tenant", func(t *testing.T) {
		tn := newPending(t)

		require.NoError(t, tn.Reject())

		assert.Equal(t, tenant.SubscriptionCanceled, tn.Status())
		assert.False(t, tn.IsOperational())
	})

	t.Run("approve fails for canceled tenant without mutation", func(t *testing.T) {
		tn := newPending(t)
		require.NoError(t, tn.Reject())

		err := tn.Approve(now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, tenant.SubscriptionCanceled, tn.Status())
	})

	t.Run("reject fails for active tenant", func(t *testing.T) {
		tn := newPending(t)
		require.NoError(t, tn.Approve(now))

		err := tn.Reject()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, tenant.SubscriptionActive, tn.Status())
	})

	t.Run("suspend cancels an overdue active tenant", func(t *testing.T) {
		tn := newPending(t)
		require.NoError(t, tn.Approve(now))

		assert.False(t, tn.IsBillingOverdue(now.AddDate(0, 0, 20)))
		assert.True(t, tn.IsBillingOverdue(now.AddDate(0, 2, 0)))

		require.NoError(t, tn.Suspend())
		assert.Equal(t, tenant.SubscriptionCanceled, tn.Status())
	})

	t.Run("pending tenant fails the operational gate", func(t *testing.T) {
		tn := newPending(t)

		err := tn.EnsureOperational()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("excluded tenant is not operational even when active", func(t *testing.T) {
		tn := newPending(t)
		require.NoError(t, tn.Approve(now))

		tn.Exclude()

		assert.True(t, tn.IsExcluded())
		assert.False(t, tn.IsOperational())
	})
}

func TestTenant_Categories(t *testing.T) {
	tn, err := tenant.NewTenant(kernel.NewUUID(), "Burger Point", "burger-point", kernel.Zero())
	require.NoError(t, err)

	t.Run("adds categories in order", func(t *testing.T) {
		require.NoError(t, tn.AddCategory("Burgers"))
		require.NoError(t, tn.AddCategory("Drinks"))

		assert.Equal(t, []string{"Burgers", "Drinks"}, tn.Categories())
	})

	t.Run("rejects duplicates case-insensitively", func(t *testing.T) {
		err := tn.AddCategory("burgers")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, []string{"Burgers", "Drinks"}, tn.Categories())
	})

	t.Run("rejects empty names", func(t *testing.T) {
		err := tn.AddCategory("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("removes categories and tolerates absent names", func(t *testing.T) {
		tn.RemoveCategory("Drinks")
		tn.RemoveCategory("Desserts")

		assert.Equal(t, []string{"Burgers"}, tn.Categories())
		assert.False(t, tn.HasCategory("Drinks"))
	})
}

func TestTenant_OperatingHours(t *testing.T) {
	tn, err := tenant.NewTenant(kernel.NewUUID(), "Burger Point", "burger-point", kernel.Zero())
	require.NoError(t, err)

	// Tuesday 2026-03-10
	lunch := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)
	lateNight := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	t.Run("unconfigured schedule is always open", func(t *testing.T) {
		assert.True(t, tn.IsOpenAt(lunch))
		assert.True(t, tn.IsOpenAt(lateNight))
	})

	t.Run("configured window bounds opening", func(t *testing.T) {
		window, err := tenant.NewDayHours(11*60, 22*60)
		require.NoError(t, err)
		tn.SetOperatingHours(time.Tuesday, window)

		assert.True(t, tn.IsOpenAt(lunch))
		assert.False(t, tn.IsOpenAt(lateNight))
	})

	t.Run("holiday override closes the day", func(t *testing.T) {
		tn.AddHoliday(lunch)

		assert.False(t, tn.IsOpenAt(lunch))
	})

	t.Run("closed day rejects any minute", func(t *testing.T) {
		tn.SetOperatingHours(time.Wednesday, tenant.ClosedDay())

		wednesday := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
		assert.False(t, tn.IsOpenAt(wednesday))
	})

	t.Run("invalid window is rejected", func(t *testing.T) {
		_, err := tenant.NewDayHours(22*60, 11*60)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
