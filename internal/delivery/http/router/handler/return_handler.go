package handler

import (
	"log/slog"
	"net/http"

	"bizops/internal/delivery/http/response"
	"bizops/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReturnHandler holds dependencies for return handlers. Returns are
// addressed by their business key ("RID000042").
type ReturnHandler struct {
	uc     usecase.ReturnUsecase
	logger *slog.Logger
}

// NewReturnHandler is the constructor for ReturnHandler, injected by Fx.
func NewReturnHandler(uc usecase.ReturnUsecase, logger *slog.Logger) *ReturnHandler {
	return &ReturnHandler{
		uc:     uc,
		logger: logger,
	}
}

// requestReturnRequest is the wire shape of the return request. The user ID
// always comes from the access token.
type requestReturnRequest struct {
	Lines []returnLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type returnLineRequest struct {
	ManufacturingID string `json:"manufacturingID" validate:"required"`
	Quantity        int    `json:"quantity" validate:"required,gt=0"`
}

// RequestReturn handles the return creation request.
func (h *ReturnHandler) RequestReturn(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req requestReturnRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	lines := make([]usecase.ReturnLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, usecase.ReturnLineInput{
			ManufacturingID: line.ManufacturingID,
			Quantity:        line.Quantity,
		})
	}

	ret, err := h.uc.RequestReturn(c.Request().Context(), usecase.RequestReturnInput{
		UserID: userID,
		Lines:  lines,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ret, "Return requested successfully")
}

// ListReturns handles the full return listing request.
func (h *ReturnHandler) ListReturns(c echo.Context) error {
	returns, err := h.uc.ListReturns(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, returns, "Returns retrieved successfully")
}

// ListMyReturns handles the authenticated user's return history request.
func (h *ReturnHandler) ListMyReturns(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	returns, err := h.uc.ListUserReturns(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, returns, "Returns retrieved successfully")
}

// GetReturn handles a single return lookup by business key.
func (h *ReturnHandler) GetReturn(c echo.Context) error {
	ret, err := h.uc.GetReturn(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ret, "Return retrieved successfully")
}
