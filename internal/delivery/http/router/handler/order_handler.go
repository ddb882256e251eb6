package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bizops/internal/delivery/http/response"
	"bizops/internal/domain/entity"
	"bizops/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers. Orders are addressed
// by their business key ("OD001"), never by the internal UUID.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// placeOrderRequest is the wire shape of the order placement request. The
// user ID always comes from the access token, never from the body. Lines
// may only be omitted when the order is placed from the cart.
type placeOrderRequest struct {
	Lines       []orderLineRequest `json:"lines" validate:"required_without=FromCart,dive"`
	FromCart    bool               `json:"fromCart"`
	OverdueDate *time.Time         `json:"overdueDate"`
}

type orderLineRequest struct {
	ManufacturingID string `json:"manufacturingID" validate:"required"`
	Quantity        int    `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrder handles the order placement request.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	lines := make([]usecase.OrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, usecase.OrderLineInput{
			ManufacturingID: line.ManufacturingID,
			Quantity:        line.Quantity,
		})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		UserID:      userID,
		Lines:       lines,
		FromCart:    req.FromCart,
		OverdueDate: req.OverdueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListOrders handles the full order listing request.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListMyOrders handles the authenticated user's order history request.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder handles a single order lookup by business key.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// updateOrderStatusRequest is the wire shape of the status update request.
type updateOrderStatusRequest struct {
	Status string
}

// UpdateOrderStatus handles the order status transition request.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), c.Param("key"), entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}
