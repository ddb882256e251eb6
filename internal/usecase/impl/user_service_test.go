package impl

import (
	"context"
	"testing"
	"time"

	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	mockRepo "bizops/internal/mocks/repository"
	mockSvc "bizops/internal/mocks/service"
	"bizops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func validRegisterInput() usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		FullName:        "Wang Xiaoming",
		Email:           "xiaoming@example.com",
		Phone:           "0912345678",
		Username:        "xiaoming",
		Password:        "Password123!",
		PasswordConfirm: "Password123!",
		CompanyProfile: usecase.CompanyProfileInput{
			CompanyName:            "Acme Trading Co.",
			BusinessRegistrationNo: "12345678",
			City:                   "Taipei",
			Country:                "Taiwan",
		},
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByEmailOrUsername(ctx, input.Email, input.Username).
				Return(false, nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.UserStatusActive, output.User.Status)
	assert.Equal(t, "Acme Trading Co.", output.User.CompanyName())
}

func TestUserService_RegisterUser_DuplicateAccount(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByEmailOrUsername(ctx, input.Email, input.Username).
				Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "email or username already registered"))

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_PasswordMismatch(t *testing.T) {
	fx := createTestUserService(t, 0)

	input := validRegisterInput()
	input.PasswordConfirm = "Different123!"

	output, err := fx.service.RegisterUser(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestUserService_RegisterUser_MissingCompanyName(t *testing.T) {
	fx := createTestUserService(t, 0)

	input := validRegisterInput()
	input.CompanyProfile.CompanyName = ""

	output, err := fx.service.RegisterUser(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_RegisterUser_MissingPhone(t *testing.T) {
	fx := createTestUserService(t, 0)

	input := validRegisterInput()
	input.Phone = ""

	output, err := fx.service.RegisterUser(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	input := validRegisterInput()
	input.Password = "weak"
	input.PasswordConfirm = "weak"

	fx.hasher.EXPECT().ValidateStrength("weak").Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.RegisterUser(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

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
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Equal(t, "token_hash", token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "xiaoming", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "xiaoming",
		PasswordHash: "hashed_password",
		Status:       entity.UserStatusActive,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "xiaoming").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "xiaoming", Password: "wrong"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})

	assert.Error(t, err)
	assert.Nil(t, output)
	// Unknown username and wrong password are indistinguishable to the caller.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "xiaoming",
		PasswordHash: "hashed_password",
		Status:       entity.UserStatusInactive,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "xiaoming").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "xiaoming", Password: "Password123!"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Status: entity.UserStatusActive}
	claims := serviceClaims(user.ID)

	fx.tokenService.EXPECT().ValidateToken("refresh_token").Return(claims, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("token_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "token_hash").
		Return(&entity.RefreshToken{UserID: user.ID, TokenHash: "token_hash"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"user"}).Return("new_access", "unused_refresh", nil)

	output, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "refresh_token"})

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	// The refresh token itself is not rotated.
	assert.Equal(t, "refresh_token", output.RefreshToken)
}

func TestUserService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.tokenService.EXPECT().ValidateToken("bogus").Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshToken(context.Background(), usecase.RefreshTokenInput{RefreshToken: "bogus"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_SessionRevoked(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	claims := serviceClaims(userID)

	fx.tokenService.EXPECT().ValidateToken("refresh_token").Return(claims, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("token_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "token_hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "refresh_token"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	claims := serviceClaims(uuid.New())

	fx.tokenService.EXPECT().ValidateToken("refresh_token").Return(claims, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("token_hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "token_hash").Return(nil)

	err := fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: "refresh_token"})

	assert.NoError(t, err)
}

func TestUserService_Logout_IdempotentOnMissingSession(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()

	// An expired token still gets its stored session removed.
	fx.tokenService.EXPECT().ValidateToken("stale_token").Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().HashToken("stale_token").Return("stale_hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "stale_hash").Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: "stale_token"})

	assert.NoError(t, err)
}

func TestUserService_ListUsers_ProjectsCompanyName(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	users := []*entity.User{
		{
			ID:             uuid.New(),
			FullName:       "Wang Xiaoming",
			Status:         entity.UserStatusActive,
			CompanyProfile: &entity.CompanyProfile{CompanyName: "Acme Trading Co."},
		},
		{
			ID:       uuid.New(),
			FullName: "Chen Meiling",
			Status:   entity.UserStatusInactive,
		},
	}

	fx.userRepo.EXPECT().List(ctx).Return(users, nil)

	summaries, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Acme Trading Co.", summaries[0].CompanyName)
	assert.Empty(t, summaries[1].CompanyName)
}

func TestUserService_DeleteUser_RemovesSessions(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteUser(ctx, userID)

	assert.NoError(t, err)
}
