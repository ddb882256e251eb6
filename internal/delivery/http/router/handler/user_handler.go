// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bizops/internal/delivery/http/response"
	"bizops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// registerUserRequest is the wire shape of the registration request.
type registerUserRequest struct {
	FullName         string                   `json:"fullName" validate:"required"`
	Email            string                   `json:"email" validate:"required,email"`
	Phone            string                   `json:"phone" validate:"required"`
	Username         string                   `json:"username" validate:"required"`
	Password         string                   `json:"password" validate:"required"`
	PasswordConfirm  string                   `json:"passwordConfirm" validate:"required"`
	SecurityQuestion string                   `json:"securityQuestion"`
	SecurityAnswer   string                   `json:"securityAnswer"`
	DateOfBirth      *time.Time               `json:"dateOfBirth"`
	Gender           string                   `json:"gender"`
	DeviceToken      string                   `json:"deviceToken"`
	CompanyProfile   companyProfileRequest    `json:"companyProfile"`
	SecondaryContact *secondaryContactRequest `json:"secondaryContact"`
}

type companyProfileRequest struct {
	CompanyName            string `json:"companyName" validate:"required"`
	BusinessRegistrationNo string `json:"businessRegistrationNo"`
	AddressLine1           string `json:"addressLine1"`
	AddressLine2           string `json:"addressLine2"`
	City                   string `json:"city"`
	Country                string `json:"country"`
	PostalCode             string `json:"postalCode"`
}

type secondaryContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RegisterUser handles the business account registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.RegisterUserInput{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		Username:         req.Username,
		Password:         req.Password,
		PasswordConfirm:  req.PasswordConfirm,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		DeviceToken:      req.DeviceToken,
		CompanyProfile: usecase.CompanyProfileInput{
			CompanyName:            req.CompanyProfile.CompanyName,
			BusinessRegistrationNo: req.CompanyProfile.BusinessRegistrationNo,
			AddressLine1:           req.CompanyProfile.AddressLine1,
			AddressLine2:           req.CompanyProfile.AddressLine2,
			City:                   req.CompanyProfile.City,
			Country:                req.CompanyProfile.Country,
			PostalCode:             req.CompanyProfile.PostalCode,
		},
	}
	if req.SecondaryContact != nil {
		input.SecondaryContact = &usecase.SecondaryContactInput{
			Name:  req.SecondaryContact.Name,
			Email: req.SecondaryContact.Email,
			Phone: req.SecondaryContact.Phone,
		}
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Credential fields stay server-side; the entity's hash is never serialized here.
	return response.Success(c, http.StatusCreated, map[string]any{
		"id":       output.User.ID,
		"username": output.User.Username,
		"fullName": output.User.FullName,
		"company":  output.User.CompanyName(),
	}, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
		"user": map[string]any{
			"id":       output.User.ID,
			"username": output.User.Username,
			"fullName": output.User.FullName,
			"company":  output.User.CompanyName(),
		},
	}, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var input usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout handles the user logout request.
func (h *UserHandler) Logout(c echo.Context) error {
	var input usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.uc.Logout(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// ListUsers handles the account listing request.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// GetUser handles the single account lookup request.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// UpdateUser handles the account update request.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser handles the account deletion request.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted"}, "User deleted successfully")
}

// GetProfile handles the request to get the current user's account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
