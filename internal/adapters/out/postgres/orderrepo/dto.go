// Package orderrepo provides data transfer objects and mapping functions for order
// persistence. This package implements the repository pattern for the order domain
// aggregate, handling the conversion between domain entities and database rows.
// Line items are denormalized snapshots and are stored as a JSONB document on the
// order row, preserving their insertion order.
package orderrepo

import (
	"encoding/json"
	"time"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"
	"supermarket/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Only status and assigned_to ever change after insertion.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index"`
	Address        string
	LineItems      []byte `gorm:"type:jsonb"`
	Subtotal       float64
	HasDiscount    bool
	Discount       float64
	DeliveryCharge float64
	TotalPrice     float64
	DeliveryDate   string
	Status         int        `gorm:"index"`
	AssignedTo     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the JSON shape of one purchased product snapshot inside the
// line_items document.
type LineItemDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitType  string    `json:"unit_type"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, LineItemDTO{
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			UnitType:  item.UnitType().String(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	var assignedTo *uuid.UUID
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		Address:        aggregate.Address(),
		LineItems:      rawItems,
		Subtotal:       aggregate.Pricing().Subtotal(),
		HasDiscount:    aggregate.Pricing().HasDiscount(),
		Discount:       aggregate.Pricing().Discount(),
		DeliveryCharge: aggregate.Pricing().DeliveryCharge(),
		TotalPrice:     aggregate.Pricing().TotalPrice(),
		DeliveryDate:   aggregate.DeliveryDate(),
		Status:         int(aggregate.Status()),
		AssignedTo:     assignedTo,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and driver assignment.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var itemDTOs []LineItemDTO
	if err = json.Unmarshal(dto.LineItems, &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitType, itemErr := product.UnitTypeFromString(itemDTO.UnitType)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(productID, itemDTO.Name, unitType, itemDTO.Price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	pricing, err := order.NewPricing(dto.Subtotal, dto.HasDiscount, dto.Discount, dto.DeliveryCharge, dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		driverID, driverErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		assignedTo = &driverID
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Address,
		items,
		pricing,
		dto.DeliveryDate,
		order.Status(dto.Status),
		assignedTo,
	)
}
