// Package order provides domain entities and business logic for order management
// in the storefront system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root holding the checkout snapshot and lifecycle state
//   - Status: A state machine that enforces valid order status transitions
//   - Item: The denormalized line snapshot (name, unit price, quantity, note)
//   - Payment: The payment label with optional cash change handling
//   - FulfillmentType: Delivery versus pickup handling
//
// Key business rules:
//   - Orders exist fully formed in Pending or not at all; there is no partial state
//   - The total is computed once at creation from the item snapshot plus the
//     delivery fee and is immutable afterwards; catalog repricing never touches it
//   - Status follows Pending -> Preparing -> Ready -> InTransit -> Completed,
//     with Canceled reachable only from Pending
//   - Pickup orders skip InTransit and complete directly from Ready
//   - Completed and Canceled are terminal; transitions out of them are rejected
//     without mutation
//   - Orders are never deleted; they are the permanent ledger
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
