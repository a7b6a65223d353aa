// Package order provides domain entities and business logic for order management
// in the kitchen system. It implements the Order aggregate root with lifecycle
// management and type-gated state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items and lifecycle
//   - LineItem: A menu selection with a price snapshot taken at order time
//   - Type: The order kind (takeout, delivery, eat-in), fixed at creation
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, a type and at least one line item
//   - Delivery orders carry a delivery address; eat-in orders reference a table
//   - Order status follows a defined workflow:
//     Waiting -> Accepted -> Served -> Completed, with delivery orders passing
//     through Delivering and Delivered before completion
//   - Completed is a final state; transitions never move backwards
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
