package order

import (
	"errors"
	"fmt"
	"time"

	"ordertracker/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order tracked through a status lifecycle.
// It is the aggregate root for the order tracker.
//
// Order follows these invariants:
//   - Must have a non-empty identifier, item name, and customer identifier
//   - Quantity must be positive (greater than 0)
//   - Status is always one of the valid lifecycle statuses
//   - UpdatedAt is never earlier than CreatedAt
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. The identifier and creation
// timestamp are immutable after construction; only the status (and with it
// the update timestamp) changes during the order's lifetime.
type Order struct {
	// id is the caller-supplied unique identifier for the order
	id string

	// itemName is the name of the ordered item
	itemName string

	// quantity is the number of units ordered (must be positive)
	quantity int

	// customerID identifies the customer who placed the order
	customerID string

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set once at construction and never changes
	createdAt time.Time

	// updatedAt is refreshed on every mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts
// in Pending status with createdAt and updatedAt set to the same instant
// (UTC).
//
// Parameters:
//   - id: Unique identifier for the order (must be non-empty)
//   - itemName: Name of the ordered item (must be non-empty)
//   - quantity: Number of units (must be positive)
//   - customerID: Identifier of the ordering customer (must be non-empty)
//
// Returns the created order, or a validation error if any parameter is
// invalid. Uniqueness of the identifier across the store is enforced by
// the create use case, not here.
func NewOrder(id string, itemName string, quantity int, customerID string) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItemName(itemName),
		order.setQuantity(quantity),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from previously stored state.
// It validates the same field invariants as NewOrder plus the status and
// timestamp relationship, and is intended for use by storage adapters.
func RestoreOrder(
	id string,
	itemName string,
	quantity int,
	customerID string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItemName(itemName),
		order.setQuantity(quantity),
		order.setCustomerID(customerID),
		order.setStatus(status),
		order.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// ItemName returns the name of the ordered item.
func (o *Order) ItemName() string {
	return o.itemName
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-mutation timestamp (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// UpdateStatus moves the order to newStatus and refreshes the update
// timestamp.
//
// Business rules:
//   - newStatus must be a valid lifecycle status
//   - any valid status may replace any other; there is no transition graph
//   - setting the current status again still refreshes updatedAt
//
// Returns a validation error if newStatus is not a valid status, in which
// case the order is left unchanged.
func (o *Order) UpdateStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order_id")
	}
	o.id = id
	return nil
}

// setItemName validates and sets the ordered item's name.
// This is a private method used only during construction.
func (o *Order) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("item_name")
	}
	o.itemName = itemName
	return nil
}

// setQuantity validates and sets the ordered quantity.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

// setCustomerID validates and sets the customer identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer_id")
	}
	o.customerID = customerID
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setTimestamps validates and sets both timestamps during restoration.
// updatedAt must not precede createdAt.
func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updated_at")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("updated_at",
			fmt.Errorf("updated_at %s precedes created_at %s", updatedAt, createdAt))
	}
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}
