package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMyOrdersQueryHandler retrieves a customer's order history from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The purchaser snapshot is joined from the externally owned customers table;
// only name and contact columns are ever selected.
//
// Example:
//
//	handler := NewGetMyOrdersQueryHandler(db)
//	query, _ := NewGetMyOrdersQuery(customerID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMyOrdersQueryHandler creates a handler for customer order history queries.
// Requires a GORM database connection for query execution.
func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db}
}

// lineItemRow is the JSON shape of one line item inside the order row's
// line_items document.
type lineItemRow struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitType  string    `json:"unit_type"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// Handle executes the query to retrieve the customer's orders.
// Returns orders newest first. An unknown customer yields an empty slice,
// with the purchaser snapshot fields left blank on any orphaned rows.
func (h GetMyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMyOrdersQuery,
) ([]GetMyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetMyOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.address,
			o.line_items,
			o.subtotal,
			o.has_discount,
			o.discount,
			o.delivery_charge,
			o.total_price,
			o.delivery_date,
			o.status,
			c.name,
			c.email,
			c.phone
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMyOrdersQueryResponse
		var id uuid.UUID
		var rawItems []byte
		var status int
		var name, email, phone sql.NullString

		err = rows.Scan(
			&id,
			&resp.Address,
			&rawItems,
			&resp.Subtotal,
			&resp.HasDiscount,
			&resp.Discount,
			&resp.DeliveryCharge,
			&resp.TotalPrice,
			&resp.DeliveryDate,
			&status,
			&name,
			&email,
			&phone,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.Purchaser = PurchaserResponse{
			Name:  name.String,
			Email: email.String,
			Phone: phone.String,
		}

		items, itemsErr := unmarshalLineItems(rawItems)
		if itemsErr != nil {
			return nil, itemsErr
		}
		resp.LineItems = items

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func unmarshalLineItems(raw []byte) ([]LineItemResponse, error) {
	var itemRows []lineItemRow
	if err := json.Unmarshal(raw, &itemRows); err != nil {
		return nil, err
	}

	items := make([]LineItemResponse, 0, len(itemRows))
	for _, row := range itemRows {
		productID, err := kernel.UUIDFromBytes(row.ProductID[:])
		if err != nil {
			return nil, err
		}

		items = append(items, LineItemResponse{
			ProductID: productID,
			Name:      row.Name,
			UnitType:  row.UnitType,
			Price:     row.Price,
			Quantity:  row.Quantity,
		})
	}

	return items, nil
}
