package impl

import (
	"io"
	"log/slog"

	"bizops/config"
	"bizops/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

func serviceClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{
		UserID: userID,
		Roles:  []string{"user"},
		Type:   "refresh",
	}
}
