// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: a validated command object
// built through its constructor, and a handler that coordinates the
// domain model with the order repository.
package commands
