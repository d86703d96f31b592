// Package order provides domain entities and business logic for order management
// in the food-court system. It implements the Order aggregate root with lifecycle
// management and the standard line Item entity.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Item: One purchased line within an order, carrying its own preparation status
//   - Status: The aggregate status derived from child item statuses by the rollup engine
//
// Key business rules:
//   - Orders must have valid identifiers, a table reference, and a constructed total price
//   - Aggregate status is fixed to Pending at creation and mutated only by rollup
//   - Items must have a positive quantity and start in the Incoming status
//   - Once an item is Served or Cancelled its status is terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
