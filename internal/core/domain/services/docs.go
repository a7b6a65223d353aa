// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the kitchen system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderValidator: A domain service that checks order line items against
//     the menu catalog at creation time
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
