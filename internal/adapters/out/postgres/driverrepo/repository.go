package driverrepo

import (
	"context"
	"errors"

	"supermarket/internal/core/domain/model/driver"
	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
// A duplicate email is reported as a validation error on the email field.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("email", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
// The map form is used so that zero values (inactive status, cleared flags)
// are written rather than skipped.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":           dto.Name,
		"email":          dto.Email,
		"phone":          dto.Phone,
		"license_number": dto.LicenseNumber,
		"vehicle_number": dto.VehicleNumber,
		"address":        dto.Address,
		"cnic_number":    dto.CNICNumber,
		"status":         dto.Status,
		"deliveries":     dto.Deliveries,
		"is_deleted":     dto.IsDeleted,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID. Soft-deleted drivers resolve as not found.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND is_deleted = ?", id.Bytes(), false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all active, non-deleted drivers, least-loaded first.
func (r *GormDriverRepository) GetAllActive(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_deleted = ?", int(driver.Active), false).
		Order("deliveries").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// IncrementDeliveries atomically adds one to the driver's delivery counter.
// A single UPDATE with an expression rather than read-modify-write, so
// concurrent delivery completions for the same driver cannot lose updates.
func (r *GormDriverRepository) IncrementDeliveries(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ? AND is_deleted = ?", id.Bytes(), false).
		Update("deliveries", gorm.Expr("deliveries + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id.String())
	}

	return nil
}
