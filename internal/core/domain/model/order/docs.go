// Package order contains the Order aggregate and its Status value object.
//
// Order is the only aggregate in the order tracker. It is created in
// Pending status and moves through the lifecycle exclusively via
// UpdateStatus, which enforces enum membership (there is no transition
// graph) and refreshes the update timestamp on every call.
//
// Aggregates can only be created through the NewOrder constructor or,
// for storage adapters, through RestoreOrder. Both validate all field
// invariants so an Order in circulation is always well-formed.
package order
