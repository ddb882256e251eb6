package impl

import (
	"context"
	"testing"
	"time"

	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	mockRepo "bizops/internal/mocks/repository"
	"bizops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Login_SessionLimitReached(t *testing.T) {
	fx := createTestUserService(t, 3)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "xiaoming",
		PasswordHash: "hashed_password",
		Status:       entity.UserStatusActive,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "xiaoming").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"user"}).Return("access_token", "refresh_token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(3, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrForbidden, "active session limit exceeded"))

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "xiaoming", Password: "Password123!"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_Login_SessionLimitUnderCap(t *testing.T) {
	fx := createTestUserService(t, 3)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "xiaoming",
		PasswordHash: "hashed_password",
		Status:       entity.UserStatusActive,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "xiaoming").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"user"}).Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("token_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(1, nil)
			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "xiaoming", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
}
