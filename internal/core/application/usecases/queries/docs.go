// Package queries contains read operations over the order store.
// Queries never modify state; they read through the order repository,
// which for the in-memory store is both the read and the write model.
// Each query is a validated object built through its constructor, paired
// with a handler returning a response type that carries the result count
// alongside the orders.
package queries
