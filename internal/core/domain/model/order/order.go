package order

import (
	"errors"
	"fmt"
	"time"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/pkg/errs"
)

// deliveryDateLayout is the day-month-year format delivery dates arrive in.
const deliveryDateLayout = "02-01-2006"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAddressIsRequired is returned when an order is created without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	// ErrLineItemsAreRequired is returned when an order is created with no line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")

	// ErrDriverNotAssigned is returned when delivery is attempted on an order
	// that has no assigned driver.
	ErrDriverNotAssigned = errors.New("order has no assigned driver")
)

// Order is the aggregate root for a purchase.
// It is created once, atomically, after stock validation succeeds, and is
// mutated only through the status-transition methods thereafter (status and
// assignedTo fields). Orders are never deleted.
//
// Invariants:
//   - at least one line item, in the order submitted by the purchaser
//   - delivery address is non-empty
//   - assignedTo is set iff status has reached the Assigned state
//   - status transitions follow the Status state machine
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the purchaser
	customerID kernel.UUID

	// address is the delivery destination
	address string

	// lineItems are the purchased product snapshots, insertion order significant
	lineItems []LineItem

	// pricing holds the monetary fields captured at checkout
	pricing Pricing

	// deliveryDate is the requested delivery day in day-month-year form, optional
	deliveryDate string

	// status is the current state in the order lifecycle
	status Status

	// assignedTo is the assigned driver's ID (nil until assignment)
	assignedTo *kernel.UUID

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the initial Created ("New_Order") status with
// no driver assigned. This is the only way to create a valid new order;
// RestoreOrder exists for reconstructing persisted state.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address string,
	lineItems []LineItem,
	pricing Pricing,
	deliveryDate string,
) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setLineItems(lineItems),
		o.setPricing(pricing),
		o.setDeliveryDate(deliveryDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state, including its
// status and driver assignment. The status/assignment consistency invariant
// is re-checked so corrupted rows cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address string,
	lineItems []LineItem,
	pricing Pricing,
	deliveryDate string,
	status Status,
	assignedTo *kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, customerID, address, lineItems, pricing, deliveryDate)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if assignedTo != nil {
		if err = assignedTo.Validate(); err != nil {
			return nil, err
		}
	}

	if err = validateAssignment(status, assignedTo != nil); err != nil {
		return nil, err
	}

	o.status = status
	o.assignedTo = assignedTo
	return o, nil
}

// validateAssignment checks the consistency between status and driver assignment:
// an order at or past Assigned must have a driver, an order before it must not.
func validateAssignment(status Status, hasDriver bool) error {
	requiresDriver := status == Assigned || status == Delivered
	if requiresDriver && !hasDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignedTo",
			fmt.Errorf("%s order must have an assigned driver", status),
		)
	}
	if !requiresDriver && hasDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignedTo",
			fmt.Errorf("%s order must not have an assigned driver", status),
		)
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchaser reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// LineItems returns the purchased product snapshots in submission order.
func (o *Order) LineItems() []LineItem {
	return o.lineItems
}

// Pricing returns the monetary fields captured at checkout.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// DeliveryDate returns the requested delivery day, empty when none was given.
func (o *Order) DeliveryDate() string {
	return o.deliveryDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedTo returns the assigned driver's ID.
// Returns nil if no driver is assigned.
func (o *Order) AssignedTo() *kernel.UUID {
	return o.assignedTo
}

// Assign assigns the order to a driver and moves the status to Assigned.
// Reassignment of an already assigned order is allowed; delivered orders
// cannot be reassigned.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedTo = &driverID
	return nil
}

// Deliver marks the order as delivered.
// Requires a driver to be assigned; an order with no driver cannot be marked
// delivered. Delivered is terminal, so a repeated call fails.
func (o *Order) Deliver() error {
	if o.assignedTo == nil {
		return ErrDriverNotAssigned
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeStatus moves the order to an arbitrary valid status without extra
// preconditions. Assigned and Delivered targets are rejected here; they carry
// preconditions and must go through Assign/Deliver. The remaining targets all
// precede Assigned, so the driver assignment is released to keep status and
// assignment consistent.
func (o *Order) ChangeStatus(target Status) error {
	if target == Assigned || target == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s requires its dedicated transition", target),
		)
	}

	newStatus, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedTo = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = lineItems
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate string) error {
	if deliveryDate == "" {
		return nil
	}
	if _, err := time.Parse(deliveryDateLayout, deliveryDate); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate", err)
	}
	o.deliveryDate = deliveryDate
	return nil
}
