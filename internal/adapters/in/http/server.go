// Package http exposes the application's use cases over a REST API.
// Every response uses the {success, message, ...} envelope; domain errors are
// translated into HTTP status codes at this boundary and never crash the process.
package http

import (
	"errors"
	"net/http"

	"supermarket/internal/core/application/usecases/commands"
	"supermarket/internal/core/application/usecases/queries"
	"supermarket/internal/core/domain/model/driver"
	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"
	"supermarket/internal/core/domain/model/product"
	"supermarket/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler     commands.PlaceOrderCommandHandler
	setOrderStatusHandler commands.SetOrderStatusCommandHandler
	addProductHandler     commands.AddProductCommandHandler
	restockProductHandler commands.RestockProductCommandHandler
	createDriverHandler   commands.CreateDriverCommandHandler
	removeDriverHandler   commands.RemoveDriverCommandHandler

	// Query handlers
	getMyOrdersHandler      queries.GetMyOrdersQueryHandler
	getActiveDriversHandler queries.GetActiveDriversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	restockProductHandler commands.RestockProductCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	removeDriverHandler commands.RemoveDriverCommandHandler,
	getMyOrdersHandler queries.GetMyOrdersQueryHandler,
	getActiveDriversHandler queries.GetActiveDriversQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		setOrderStatusHandler:   setOrderStatusHandler,
		addProductHandler:       addProductHandler,
		restockProductHandler:   restockProductHandler,
		createDriverHandler:     createDriverHandler,
		removeDriverHandler:     removeDriverHandler,
		getMyOrdersHandler:      getMyOrdersHandler,
		getActiveDriversHandler: getActiveDriversHandler,
	}
}

// RequestValidator adapts go-playground/validator to echo's Validator interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the request DTO validator used by the server.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.PATCH("/orders/status", s.SetOrderStatus)
	api.GET("/orders/my", s.GetMyOrders)
	api.POST("/products", s.AddProduct)
	api.POST("/products/:id/restock", s.RestockProduct)
	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetActiveDrivers)
	api.DELETE("/drivers/:id", s.RemoveDriver)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "ok",
	})
}

type lineItemRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Name      string  `json:"name" validate:"required"`
	UnitType  string  `json:"unit_type" validate:"required"`
	Price     float64 `json:"price" validate:"gt=0"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
}

type pricingRequest struct {
	Subtotal       float64 `json:"subtotal" validate:"gt=0"`
	HasDiscount    bool    `json:"has_discount"`
	Discount       float64 `json:"discount" validate:"gte=0"`
	DeliveryCharge float64 `json:"delivery_charge" validate:"gte=0"`
	TotalPrice     float64 `json:"total_price" validate:"gt=0"`
}

type placeOrderRequest struct {
	CustomerID   string            `json:"customer_id" validate:"required,uuid"`
	Address      string            `json:"address" validate:"required"`
	DeliveryDate string            `json:"delivery_date"`
	LineItems    []lineItemRequest `json:"line_items" validate:"required,min=1,dive"`
	Pricing      pricingRequest    `json:"pricing" validate:"required"`
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	lineItems := make([]order.LineItem, 0, len(req.LineItems))
	for _, itemReq := range req.LineItems {
		productID, itemErr := kernel.UUIDFromString(itemReq.ProductID)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}

		unitType, itemErr := product.UnitTypeFromString(itemReq.UnitType)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}

		item, itemErr := order.NewLineItem(productID, itemReq.Name, unitType, itemReq.Price, itemReq.Quantity)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		lineItems = append(lineItems, item)
	}

	pricing, err := order.NewPricing(
		req.Pricing.Subtotal,
		req.Pricing.HasDiscount,
		req.Pricing.Discount,
		req.Pricing.DeliveryCharge,
		req.Pricing.TotalPrice,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		customerID,
		req.Address,
		lineItems,
		pricing,
		req.DeliveryDate,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Order placed successfully.",
		"order": echo.Map{
			"id":     placed.ID().String(),
			"status": placed.Status().String(),
		},
	})
}

type setOrderStatusRequest struct {
	OrderID    string `json:"order_id" validate:"required,uuid"`
	Status     string `json:"status" validate:"required"`
	AssignedTo string `json:"assigned_to" validate:"omitempty,uuid"`
}

// SetOrderStatus handles PATCH /api/v1/orders/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	var req setOrderStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	var assignedTo *kernel.UUID
	if req.AssignedTo != "" {
		driverID, idErr := kernel.UUIDFromString(req.AssignedTo)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		assignedTo = &driverID
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status, assignedTo)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	resp := echo.Map{
		"id":     updated.ID().String(),
		"status": updated.Status().String(),
	}
	if driverID := updated.AssignedTo(); driverID != nil {
		resp["assigned_to"] = driverID.String()
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Order status updated successfully.",
		"order":   resp,
	})
}

// GetMyOrders handles GET /api/v1/orders/my.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.QueryParam("customer_id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMyOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getMyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]echo.Map, 0, len(orders))
	for _, ord := range orders {
		items := make([]echo.Map, 0, len(ord.LineItems))
		for _, item := range ord.LineItems {
			items = append(items, echo.Map{
				"product_id": item.ProductID.String(),
				"name":       item.Name,
				"unit_type":  item.UnitType,
				"price":      item.Price,
				"quantity":   item.Quantity,
			})
		}

		response = append(response, echo.Map{
			"id":              ord.ID.String(),
			"address":         ord.Address,
			"line_items":      items,
			"subtotal":        ord.Subtotal,
			"has_discount":    ord.HasDiscount,
			"discount":        ord.Discount,
			"delivery_charge": ord.DeliveryCharge,
			"total_price":     ord.TotalPrice,
			"delivery_date":   ord.DeliveryDate,
			"status":          ord.Status,
			"purchaser": echo.Map{
				"name":  ord.Purchaser.Name,
				"email": ord.Purchaser.Email,
				"phone": ord.Purchaser.Phone,
			},
		})
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Orders retrieved successfully.",
		"orders":  response,
	})
}

type addProductRequest struct {
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"gt=0"`
	UnitType   string  `json:"unit_type" validate:"required"`
	UnitValue  float64 `json:"unit_value" validate:"gt=0"`
	StockCount int     `json:"stock_count" validate:"gte=0"`
}

// AddProduct handles POST /api/v1/products.
func (s *Server) AddProduct(ctx echo.Context) error {
	var req addProductRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	unitType, err := product.UnitTypeFromString(req.UnitType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddProductCommand(req.Name, req.Price, unitType, req.UnitValue, req.StockCount)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.addProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Product added successfully.",
		"product": echo.Map{
			"id":          created.ID().String(),
			"name":        created.Name(),
			"price":       created.Price(),
			"unit_type":   created.UnitType().String(),
			"unit_value":  created.UnitValue(),
			"stock_count": created.StockCount(),
			"in_stock":    created.InStock(),
		},
	})
}

type restockProductRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// RestockProduct handles POST /api/v1/products/:id/restock.
func (s *Server) RestockProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req restockProductRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRestockProductCommand(productID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.restockProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Product restocked successfully.",
	})
}

type createDriverRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	Address       string `json:"address" validate:"required"`
	CNICNumber    string `json:"cnic_number" validate:"required"`
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDriverCommand(driver.Details{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		VehicleNumber: req.VehicleNumber,
		Address:       req.Address,
		CNICNumber:    req.CNICNumber,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	registered, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Driver registered successfully.",
		"driver": echo.Map{
			"id":     registered.ID().String(),
			"name":   registered.Details().Name,
			"status": registered.Status().String(),
		},
	})
}

// RemoveDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) RemoveDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveDriverCommand(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Driver removed successfully.",
	})
}

// GetActiveDrivers handles GET /api/v1/drivers.
func (s *Server) GetActiveDrivers(ctx echo.Context) error {
	query := queries.NewGetActiveDriversQuery()

	drivers, err := s.getActiveDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]echo.Map, 0, len(drivers))
	for _, drv := range drivers {
		response = append(response, echo.Map{
			"id":             drv.ID.String(),
			"name":           drv.Name,
			"email":          drv.Email,
			"phone":          drv.Phone,
			"vehicle_number": drv.VehicleNumber,
			"deliveries":     drv.Deliveries,
		})
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Drivers retrieved successfully.",
		"drivers": response,
	})
}

// bindAndValidate decodes the request body into req and runs DTO validation,
// writing the error envelope itself on failure.
func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "Invalid request body.",
			"error":   err.Error(),
		})
	}

	if err := ctx.Validate(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "Request validation failed.",
			"error":   err.Error(),
		})
	}

	return nil
}

// respondError translates a use case error into the HTTP error envelope.
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusCodeFor(err), echo.Map{
		"success": false,
		"message": "Request failed.",
		"error":   err.Error(),
	})
}

// statusCodeFor maps domain and application errors onto HTTP status codes.
// Stock shortages and delivering an unassigned order are conflicts with
// current state rather than malformed requests, so they map to 409.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, product.ErrOutOfStock),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, order.ErrDriverNotAssigned):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
