package order

import (
	"errors"
	"fmt"

	"supermarket/internal/pkg/errs"
	"supermarket/internal/pkg/guard"
)

// ErrPricingIsNotConstructed is returned when using an improperly initialized Pricing.
var ErrPricingIsNotConstructed = errors.New("Pricing must be created via NewPricing constructor")

// Pricing groups the monetary fields of an order as computed at checkout:
// subtotal of the line items, an optional discount, the delivery charge and the
// resulting total. The values are captured as submitted and are immutable.
type Pricing struct {
	subtotal       float64
	hasDiscount    bool
	discount       float64
	deliveryCharge float64
	totalPrice     float64

	guard guard.ConstructorGuard
}

// NewPricing creates the pricing snapshot for an order.
// Subtotal and total must be positive; discount and delivery charge must not
// be negative. A non-zero discount requires the discount flag to be set.
func NewPricing(subtotal float64, hasDiscount bool, discount, deliveryCharge, totalPrice float64) (Pricing, error) {
	p := Pricing{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setSubtotal(subtotal),
		p.setDiscount(hasDiscount, discount),
		p.setDeliveryCharge(deliveryCharge),
		p.setTotalPrice(totalPrice),
	); err != nil {
		return Pricing{}, err
	}

	return p, nil
}

// Validate ensures the Pricing was created through the constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// Subtotal returns the sum of the line item prices.
func (p Pricing) Subtotal() float64 {
	return p.subtotal
}

// HasDiscount reports whether a discount was applied to the order.
func (p Pricing) HasDiscount() bool {
	return p.hasDiscount
}

// Discount returns the discount amount applied to the order.
func (p Pricing) Discount() float64 {
	return p.discount
}

// DeliveryCharge returns the delivery charge for the order.
func (p Pricing) DeliveryCharge() float64 {
	return p.deliveryCharge
}

// TotalPrice returns the total the purchaser pays.
func (p Pricing) TotalPrice() float64 {
	return p.totalPrice
}

func (p *Pricing) setSubtotal(subtotal float64) error {
	if subtotal <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("%v is not greater than 0", subtotal),
		)
	}
	p.subtotal = subtotal
	return nil
}

func (p *Pricing) setDiscount(hasDiscount bool, discount float64) error {
	if discount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%v is negative", discount),
		)
	}
	if discount > 0 && !hasDiscount {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("discount of %v supplied without discount flag", discount),
		)
	}
	p.hasDiscount = hasDiscount
	p.discount = discount
	return nil
}

func (p *Pricing) setDeliveryCharge(deliveryCharge float64) error {
	if deliveryCharge < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryCharge",
			fmt.Errorf("%v is negative", deliveryCharge),
		)
	}
	p.deliveryCharge = deliveryCharge
	return nil
}

func (p *Pricing) setTotalPrice(totalPrice float64) error {
	if totalPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalPrice",
			fmt.Errorf("%v is not greater than 0", totalPrice),
		)
	}
	p.totalPrice = totalPrice
	return nil
}
