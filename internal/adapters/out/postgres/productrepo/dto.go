// Package productrepo provides data transfer objects and mapping functions for
// product persistence. It implements the repository pattern for the product
// aggregate and doubles as the stock ledger: the check-and-decrement and
// increment operations execute as single conditional SQL writes.
package productrepo

import (
	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
// The in_stock column is derived from stock_count and recomputed by every write
// that touches the stock, mirroring the save hook of the legacy system.
type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Price      float64
	UnitType   string
	UnitValue  float64
	StockCount int
	InStock    bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Price:      aggregate.Price(),
		UnitType:   aggregate.UnitType().String(),
		UnitValue:  aggregate.UnitValue(),
		StockCount: aggregate.StockCount(),
		InStock:    aggregate.InStock(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitType, err := product.UnitTypeFromString(dto.UnitType)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price, unitType, dto.UnitValue, dto.StockCount)
}
