package commands

import (
	"errors"
	"fmt"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order.
// Encapsulates the caller-supplied order identifier, the ordered item,
// the quantity, and the ordering customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORDER001", "Laptop", 1, "CUST001")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	itemName   string
	quantity   int
	customerID string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID, item name, and customer ID are non-empty
// and that the quantity is positive. Returns an error if any validation
// fails.
func NewCreateOrderCommand(orderID, itemName string, quantity int, customerID string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItemName(itemName),
		orderCommand.setQuantity(quantity),
		orderCommand.setCustomerID(customerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// ItemName returns the name of the ordered item.
func (c CreateOrderCommand) ItemName() string {
	return c.itemName
}

// Quantity returns the number of units ordered.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order_id")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("item_name")
	}

	c.itemName = itemName
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer_id")
	}

	c.customerID = customerID
	return nil
}
