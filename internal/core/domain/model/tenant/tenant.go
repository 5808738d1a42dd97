package tenant

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for tenant operations.
var (
	// ErrNameIsRequired is returned when attempting to create a tenant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSlugIsInvalid is returned when the slug is empty or not URL-safe.
	ErrSlugIsInvalid = errs.NewValueIsInvalidError("slug")
	// ErrCategoryIsRequired is returned when adding an empty category name.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
	// ErrDuplicateCategory is returned when adding a category name that already
	// exists in the tenant's vocabulary.
	ErrDuplicateCategory = errs.NewValueIsInvalidError("category already exists")
	// ErrTenantIsNotConstructed is returned when using an improperly initialized Tenant.
	ErrTenantIsNotConstructed = errors.New("Tenant must be created via NewTenant constructor")
	// ErrTenantNotOperational is the access-gate error for tenants whose
	// subscription is not active. The presentation layer renders it as a
	// blocking "pending approval" state rather than a generic failure.
	ErrTenantNotOperational = errs.NewAccessDeniedError("tenant is not operational")
)

// slugPattern accepts lowercase URL-safe slugs: alphanumeric runs separated
// by single hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// holidayKeyLayout normalizes holiday overrides to calendar dates.
const holidayKeyLayout = "2006-01-02"

// Tenant represents a store operating its own catalog, staff, and courier
// roster on the shared platform. It is the aggregate root gating every
// store-scoped operation through its subscription status.
//
// Tenant follows these invariants:
//   - Must have a valid unique identifier, non-empty name, and URL-safe slug
//   - Subscription transitions are limited to Pending->Active,
//     Pending->Canceled, and Active->Canceled
//   - Only an Active, non-excluded tenant is operational
//   - Category names are unique within the tenant (insertion-ordered)
//   - A tenant owning historical orders is excluded, never deleted
type Tenant struct {
	id              kernel.UUID
	name            string
	slug            string
	status          SubscriptionStatus
	deliveryFee     kernel.Money
	nextBillingDate time.Time
	categories      []string
	hours           OperatingHours
	holidays        map[string]struct{}
	excluded        bool

	guard guard.ConstructorGuard
}

// NewTenant creates a tenant entering the onboarding workflow.
// The tenant starts in Pending status with no categories, an always-open
// schedule, and a zero next billing date; approval sets the billing cycle.
//
// Parameters:
//   - id: Unique identifier for the tenant (must be valid UUID)
//   - name: Human-readable store name (must be non-empty)
//   - slug: Unique URL-safe identifier (lowercase alphanumerics and hyphens)
//   - deliveryFee: Fee added to delivery orders (zero is allowed)
func NewTenant(id kernel.UUID, name, slug string, deliveryFee kernel.Money) (*Tenant, error) {
	t := &Tenant{
		status:   SubscriptionPending,
		holidays: make(map[string]struct{}),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSlug(slug),
	); err != nil {
		return nil, err
	}

	t.deliveryFee = deliveryFee
	return t, nil
}

// RestoreTenant reconstructs a Tenant aggregate from persistent storage,
// preserving its subscription state, vocabulary, schedule, and exclusion flag.
func RestoreTenant(
	id kernel.UUID,
	name, slug string,
	status SubscriptionStatus,
	deliveryFee kernel.Money,
	nextBillingDate time.Time,
	categories []string,
	hours OperatingHours,
	holidays []time.Time,
	excluded bool,
) (*Tenant, error) {
	t := &Tenant{
		holidays: make(map[string]struct{}),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSlug(slug),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	t.status = status
	t.deliveryFee = deliveryFee
	t.nextBillingDate = nextBillingDate
	t.categories = append(t.categories, categories...)
	t.hours = hours
	for _, h := range holidays {
		t.holidays[h.Format(holidayKeyLayout)] = struct{}{}
	}
	t.excluded = excluded
	return t, nil
}

// Validate ensures the Tenant instance was properly constructed.
func (t *Tenant) Validate() error {
	if t == nil {
		return ErrTenantIsNotConstructed
	}
	return t.guard.Validate(ErrTenantIsNotConstructed)
}

// IsEqual compares two tenants by their unique identifiers.
func (t *Tenant) IsEqual(other *Tenant) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tenant's unique identifier.
func (t *Tenant) ID() kernel.UUID {
	return t.id
}

// Name returns the human-readable store name.
func (t *Tenant) Name() string {
	return t.name
}

// Slug returns the unique URL-safe identifier.
func (t *Tenant) Slug() string {
	return t.slug
}

// Status returns the current subscription status.
func (t *Tenant) Status() SubscriptionStatus {
	return t.status
}

// DeliveryFee returns the fee applied to delivery orders.
func (t *Tenant) DeliveryFee() kernel.Money {
	return t.deliveryFee
}

// NextBillingDate returns the end of the current billing cycle.
// Zero until the tenant is approved.
func (t *Tenant) NextBillingDate() time.Time {
	return t.nextBillingDate
}

// Categories returns the tenant-scoped category vocabulary in insertion order.
func (t *Tenant) Categories() []string {
	out := make([]string, len(t.categories))
	copy(out, t.categories)
	return out
}

// Hours returns the weekly operating schedule.
func (t *Tenant) Hours() OperatingHours {
	return t.hours
}

// Holidays returns the holiday override dates in normalized form.
func (t *Tenant) Holidays() []time.Time {
	out := make([]time.Time, 0, len(t.holidays))
	for key := range t.holidays {
		day, err := time.Parse(holidayKeyLayout, key)
		if err != nil {
			continue
		}
		out = append(out, day)
	}
	return out
}

// IsExcluded reports whether the tenant has been soft-excluded.
func (t *Tenant) IsExcluded() bool {
	return t.excluded
}

// IsOperational reports whether the tenant may accept orders and expose
// fulfillment operations. True only for an Active, non-excluded tenant.
// Every order-mutating operation consults this gate first.
func (t *Tenant) IsOperational() bool {
	return t.status == SubscriptionActive && !t.excluded
}

// EnsureOperational returns ErrTenantNotOperational when the gate is closed.
// Convenience for command handlers that reject rather than branch.
func (t *Tenant) EnsureOperational() error {
	if !t.IsOperational() {
		return ErrTenantNotOperational
	}
	return nil
}

// Approve activates a pending subscription and extends the billing cycle
// one month past the approval instant. Rejected for any other status.
func (t *Tenant) Approve(now time.Time) error {
	newStatus, err := t.status.Activate()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.nextBillingDate = now.AddDate(0, 1, 0)
	return nil
}

// Reject cancels a pending subscription. Administrative counterpart of Approve.
func (t *Tenant) Reject() error {
	if t.status != SubscriptionPending {
		return errs.NewInvalidStateTransitionError("tenant subscription", t.status.String(), SubscriptionCanceled.String())
	}

	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Suspend cancels an active subscription whose billing cycle has lapsed.
func (t *Tenant) Suspend() error {
	if t.status != SubscriptionActive {
		return errs.NewInvalidStateTransitionError("tenant subscription", t.status.String(), SubscriptionCanceled.String())
	}

	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// IsBillingOverdue reports whether the current billing cycle has lapsed.
// Only meaningful for active tenants; pending tenants are never overdue.
func (t *Tenant) IsBillingOverdue(now time.Time) bool {
	return t.status == SubscriptionActive && !t.nextBillingDate.IsZero() && now.After(t.nextBillingDate)
}

// Exclude soft-excludes the tenant from the platform. The aggregate and its
// historical orders remain in storage as the permanent ledger.
func (t *Tenant) Exclude() {
	t.excluded = true
}

// AddCategory appends a category name to the tenant's vocabulary.
// Names are trimmed; empty names and duplicates (case-insensitive) are
// rejected with validation errors.
func (t *Tenant) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCategoryIsRequired
	}

	if t.HasCategory(name) {
		return ErrDuplicateCategory
	}

	t.categories = append(t.categories, name)
	return nil
}

// RemoveCategory deletes a category name from the vocabulary.
// Removing an absent category is a no-op.
func (t *Tenant) RemoveCategory(name string) {
	for i, c := range t.categories {
		if strings.EqualFold(c, name) {
			t.categories = append(t.categories[:i], t.categories[i+1:]...)
			return
		}
	}
}

// HasCategory reports whether the vocabulary contains the name,
// compared case-insensitively.
func (t *Tenant) HasCategory(name string) bool {
	for _, c := range t.categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// SetOperatingHours configures the opening window for one weekday.
func (t *Tenant) SetOperatingHours(day time.Weekday, hours DayHours) {
	t.hours.SetDay(day, hours)
}

// AddHoliday marks a calendar date as closed regardless of weekday schedule.
func (t *Tenant) AddHoliday(day time.Time) {
	t.holidays[day.Format(holidayKeyLayout)] = struct{}{}
}

// IsOpenAt reports whether the store is open at the given instant, taking
// holiday overrides into account. This is informational storefront state;
// order acceptance is gated only by IsOperational.
func (t *Tenant) IsOpenAt(at time.Time) bool {
	if _, holiday := t.holidays[at.Format(holidayKeyLayout)]; holiday {
		return false
	}
	return t.hours.IsOpenAt(at)
}

func (t *Tenant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tenant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	t.name = name
	return nil
}

func (t *Tenant) setSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidErrorWithCause("slug", fmt.Errorf("%q is not a URL-safe slug", slug))
	}
	t.slug = slug
	return nil
}
