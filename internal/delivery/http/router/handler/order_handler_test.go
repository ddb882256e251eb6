package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizops/internal/domain/entity"
	mockUsecase "bizops/internal/mocks/usecase"
	"bizops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_PlaceOrder_UsesAuthenticatedUser(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newDiscardLogger())

	userID := uuid.New()

	uc.EXPECT().
		PlaceOrder(mock.Anything, mock.AnythingOfType("usecase.PlaceOrderInput")).
		Run(func(ctx context.Context, input usecase.PlaceOrderInput) {
			// The user ID must come from the token, never the body.
			assert.Equal(t, userID, input.UserID)
			require.Len(t, input.Lines, 1)
		}).
		Return(&entity.Order{Key: "OD001", UserID: userID}, nil)

	e := newTestEcho()
	body := `{"lines":[{"manufacturingID":"MFG-001","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, handler.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "OD001")
}

func TestOrderHandler_PlaceOrder_MissingAuthContext(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PlaceOrder(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_PlaceOrder_EmptyLinesRejected(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"fromCart":false}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	require.NoError(t, handler.PlaceOrder(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newDiscardLogger())

	uc.EXPECT().
		GetOrder(mock.Anything, "OD001").
		Return(&entity.Order{Key: "OD001", Status: entity.OrderStatusProcessing}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/OD001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues("OD001")

	require.NoError(t, handler.GetOrder(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OD001")
}
