package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizops/internal/delivery/http/validator"
	"bizops/internal/domain/entity"
	mockUsecase "bizops/internal/mocks/usecase"
	"bizops/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an echo instance with the request validator wired,
// matching the server setup.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	handler := NewPaymentHandler(uc, newDiscardLogger())

	uc.EXPECT().
		RecordPayment(mock.Anything, usecase.RecordPaymentInput{
			OrderKey: "OD001",
			Amount:   40,
			Method:   "bank_transfer",
		}).
		Return(&entity.Payment{Key: "PID00000001", OrderKey: "OD001", Amount: 40}, nil)

	e := newTestEcho()
	body := `{"orderKey":"OD001","amount":40,"method":"bank_transfer"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.RecordPayment(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "PID00000001")
}

func TestPaymentHandler_RecordPayment_UsecaseErrorPropagates(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	handler := NewPaymentHandler(uc, newDiscardLogger())

	uc.EXPECT().
		RecordPayment(mock.Anything, mock.AnythingOfType("usecase.RecordPaymentInput")).
		Return(nil, assert.AnError)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(`{"orderKey":"OD001","amount":40,"method":"cash"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The error is returned for the central HTTPErrorHandler to translate.
	err := handler.RecordPayment(c)
	assert.Error(t, err)
}

func TestPaymentHandler_RecordPayment_MissingMethodRejected(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	handler := NewPaymentHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(`{"orderKey":"OD001","amount":40}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.RecordPayment(c))

	// Rejected at the validator, before the usecase is ever consulted.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "RecordPayment", mock.Anything, mock.Anything)
}

func TestPaymentHandler_PaymentReceiptQR_ServesPNG(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	handler := NewPaymentHandler(uc, newDiscardLogger())

	png := []byte{0x89, 'P', 'N', 'G'}
	uc.EXPECT().PaymentReceiptQR(mock.Anything, "PID00000001").Return(png, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/payments/PID00000001/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues("PID00000001")

	require.NoError(t, handler.PaymentReceiptQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
