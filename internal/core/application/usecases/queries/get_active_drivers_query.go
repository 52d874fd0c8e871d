package queries

import (
	"errors"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/pkg/guard"
)

var ErrGetActiveDriversQueryIsNotConstructed = errors.New(
	"GetActiveDriversQuery must be created via NewGetActiveDriversQuery constructor",
)

// GetActiveDriversQuery retrieves information about all active drivers.
// Returns driver identities, contact details and delivery counters for
// monitoring and dispatch decisions. Soft-deleted drivers are excluded.
//
// Example:
//
//	query := NewGetActiveDriversQuery()
//	handler := NewGetActiveDriversQueryHandler(db)
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve drivers: %w", err)
//	}
//
//	for _, drv := range drivers {
//	    fmt.Printf("Driver %s has %d deliveries\n", drv.Name, drv.Deliveries)
//	}
type GetActiveDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDriversQuery creates a query to retrieve all active drivers.
// This is a parameterless query that fetches the complete active driver list.
func NewGetActiveDriversQuery() GetActiveDriversQuery {
	return GetActiveDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveDriversQueryIsNotConstructed if validation fails.
func (q GetActiveDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDriversQueryIsNotConstructed)
}

// GetActiveDriversQueryResponse represents driver information in the read model.
type GetActiveDriversQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Email         string
	Phone         string
	VehicleNumber string
	Deliveries    int
}
