// Package tenant provides domain entities and business logic for store management
// in the storefront system. It implements the Tenant aggregate root with
// subscription lifecycle, catalog vocabulary, and operating schedule handling.
//
// The package includes:
//   - Tenant: The aggregate root for a store operating on the shared platform
//   - SubscriptionStatus: A state machine gating all order-mutating operations
//   - OperatingHours: The weekly open/close schedule with holiday overrides
//
// Key business rules:
//   - A tenant starts in Pending status and accepts no orders until approved
//   - Approval activates the subscription and extends the next billing date
//   - Rejection and suspension move the subscription to Canceled
//   - Category names are a tenant-scoped ordered vocabulary without duplicates
//   - Tenants owning historical orders are soft-excluded, never deleted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package tenant
