// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator instance for Echo.
type echoValidator struct {
	validate *playground.Validate
}

// New creates an Echo-compatible validator.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate validates the bound request struct against its tags. Callers
// turn the returned error into their 400 response.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
