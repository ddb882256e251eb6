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

func registerBody() string {
	return `{
		"fullName": "Wang Xiaoming",
		"email": "xiaoming@example.com",
		"phone": "0912345678",
		"username": "xiaoming",
		"password": "Password123!",
		"passwordConfirm": "Password123!",
		"companyProfile": {"companyName": "Acme Trading Co."}
	}`
}

func TestUserHandler_RegisterUser(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, newDiscardLogger())

	uc.EXPECT().
		RegisterUser(mock.Anything, mock.AnythingOfType("usecase.RegisterUserInput")).
		Run(func(ctx context.Context, input usecase.RegisterUserInput) {
			assert.Equal(t, "0912345678", input.Phone)
			assert.Equal(t, "Acme Trading Co.", input.CompanyProfile.CompanyName)
		}).
		Return(&usecase.RegisterOutput{User: &entity.User{
			ID:       uuid.New(),
			Username: "xiaoming",
			FullName: "Wang Xiaoming",
			CompanyProfile: &entity.CompanyProfile{
				CompanyName: "Acme Trading Co.",
			},
		}}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(registerBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.RegisterUser(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "xiaoming")
	assert.NotContains(t, rec.Body.String(), "Password123!")
}

func TestUserHandler_RegisterUser_MissingPhoneRejected(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, newDiscardLogger())

	body := strings.Replace(registerBody(), `"phone": "0912345678",`, "", 1)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.RegisterUser(c))

	// Rejected at the validator, before the usecase is ever consulted.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
}
