// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the food-court system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderRollup: A domain service deriving an order's aggregate status
//     from the statuses of its child items
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
