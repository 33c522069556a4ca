package order

import (
	"fmt"

	"ordertracker/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Any valid status may replace any other: the lifecycle enforces
// membership in the enum, not a transition graph. Status is a value
// object that provides validation, parsing, and string representations
// for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to every newly created order.
	Pending

	// Processing indicates the order is being prepared.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order has reached the customer.
	Delivered

	// Cancelled indicates the order was cancelled.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// ValidStatuses returns all valid statuses in lifecycle order.
//
// The slice is freshly allocated on each call, so callers may modify it.
func ValidStatuses() []Status {
	return []Status{Pending, Processing, Shipped, Delivered, Cancelled}
}

// StatusFromString parses a status name as it appears on the wire
// (lowercase, e.g. "pending") into a Status value.
//
// Returns:
//   - the matching Status if the name is one of the five valid statuses
//   - a ValueIsInvalidError otherwise
//
// This is the entry point for status values arriving from external
// sources such as the HTTP API.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status name", name))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status.
//
// Returns "unknown" for invalid status values. This method implements
// the fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
