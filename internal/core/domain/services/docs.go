// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the storefront system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - FulfillmentDispatcher: A domain service binding a courier to a ready
//     delivery order while keeping both aggregates consistent
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
