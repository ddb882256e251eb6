package handler

import (
	"log/slog"
	"net/http"

	"bizops/internal/delivery/http/response"
	"bizops/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers. Payments are
// addressed by their business key ("PID00000001").
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// recordPaymentRequest is the wire shape of the payment recording request.
type recordPaymentRequest struct {
	OrderKey string  `json:"orderKey" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Method   string  `json:"method" validate:"required"`
	Remark   string  `json:"remark"`
}

// RecordPayment handles the payment recording request.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payment, err := h.uc.RecordPayment(c.Request().Context(), usecase.RecordPaymentInput{
		OrderKey: req.OrderKey,
		Amount:   req.Amount,
		Method:   req.Method,
		Remark:   req.Remark,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded successfully")
}

// ListPayments handles the full payment listing request.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.uc.ListPayments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}

// ListOrderPayments handles listing every payment recorded against an order.
func (h *PaymentHandler) ListOrderPayments(c echo.Context) error {
	payments, err := h.uc.ListOrderPayments(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}

// GetPayment handles a single payment lookup by business key.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	payment, err := h.uc.GetPayment(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment retrieved successfully")
}

// PaymentReceiptQR handles rendering a payment receipt as a PNG QR code.
func (h *PaymentHandler) PaymentReceiptQR(c echo.Context) error {
	png, err := h.uc.PaymentReceiptQR(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
