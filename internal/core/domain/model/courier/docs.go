// Package courier provides domain entities and business logic for courier management
// in the storefront system. It implements the Courier aggregate root with
// availability handling, delivery accounting, and payout balance management.
//
// The package includes:
//   - Courier: The aggregate root bound to one tenant's roster
//   - Status: The availability state machine (Available, Paused, Suspended)
//   - WithdrawalRequest: A payout request that debits the balance immediately
//
// Key business rules:
//   - A courier belongs to exactly one tenant and never appears in another
//     tenant's dispatch candidates
//   - A courier carries at most one in-flight delivery at a time
//   - Completing a delivery increments the daily and lifetime counters and
//     credits the payout to the balance
//   - Withdrawals debit the balance at request time, preventing the same
//     funds from backing two concurrent requests; rejection refunds
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
