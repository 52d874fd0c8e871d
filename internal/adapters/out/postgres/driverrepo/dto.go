// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence. Drivers are soft-deleted: the is_deleted flag excludes a
// row from every lookup while keeping it resolvable for historical orders.
package driverrepo

import (
	"supermarket/internal/core/domain/model/driver"
	"supermarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Email         string `gorm:"uniqueIndex"`
	Phone         string
	LicenseNumber string
	VehicleNumber string
	Address       string
	CNICNumber    string `gorm:"column:cnic_number"`
	Status        int
	Deliveries    int
	IsDeleted     bool `gorm:"index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	details := aggregate.Details()
	return DriverDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          details.Name,
		Email:         details.Email,
		Phone:         details.Phone,
		LicenseNumber: details.LicenseNumber,
		VehicleNumber: details.VehicleNumber,
		Address:       details.Address,
		CNICNumber:    details.CNICNumber,
		Status:        int(aggregate.Status()),
		Deliveries:    aggregate.Deliveries(),
		IsDeleted:     aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	details := driver.Details{
		Name:          dto.Name,
		Email:         dto.Email,
		Phone:         dto.Phone,
		LicenseNumber: dto.LicenseNumber,
		VehicleNumber: dto.VehicleNumber,
		Address:       dto.Address,
		CNICNumber:    dto.CNICNumber,
	}

	return driver.RestoreDriver(id, details, driver.Status(dto.Status), dto.Deliveries, dto.IsDeleted)
}
