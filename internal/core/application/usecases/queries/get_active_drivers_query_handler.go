package queries

import (
	"context"

	"supermarket/internal/core/domain/model/driver"
	"supermarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDriversQueryHandler retrieves active driver information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetActiveDriversQueryHandler(db)
//	query := NewGetActiveDriversQuery()
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get drivers: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d active drivers\n", len(drivers))
type GetActiveDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDriversQueryHandler creates a handler for active driver queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDriversQueryHandler(db *gorm.DB) GetActiveDriversQueryHandler {
	return GetActiveDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all active drivers.
// Returns a slice of driver read models sorted least-loaded first.
func (h GetActiveDriversQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDriversQuery,
) ([]GetActiveDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetActiveDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			vehicle_number,
			deliveries
		FROM drivers
		WHERE status = ? AND is_deleted = false
		ORDER BY deliveries, name
	`, int(driver.Active)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDriversQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.Phone,
			&resp.VehicleNumber,
			&resp.Deliveries,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
