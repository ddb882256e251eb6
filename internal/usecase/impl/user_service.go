// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"bizops/config"
	deliverycontext "bizops/internal/delivery/context"
	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	"bizops/internal/domain/service"
	"bizops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete account registration process.
// Field presence and password confirmation are checked before any hashing,
// and the duplicate check plus insert run in one transaction so two
// concurrent registrations cannot both pass the check.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	if err := validateRegistrationInput(input); err != nil {
		srv.log(ctx).Warn("Registration input validation failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password strength validation failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	// Hash exactly once, before entering the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := buildNewUserEntity(input, hashedPassword)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		taken, err := userRepo.ExistsByEmailOrUsername(ctx, input.Email, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check for existing account")
		}
		if taken {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email or username already registered")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

func validateRegistrationInput(input usecase.RegisterUserInput) error {
	switch {
	case input.FullName == "":
		return domainerrors.ErrValidationFailed.WithDetails("full name is required")
	case input.Email == "":
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	case input.Phone == "":
		return domainerrors.ErrValidationFailed.WithDetails("phone is required")
	case input.Username == "":
		return domainerrors.ErrValidationFailed.WithDetails("username is required")
	case input.Password == "":
		return domainerrors.ErrValidationFailed.WithDetails("password is required")
	case input.CompanyProfile.CompanyName == "":
		return domainerrors.ErrValidationFailed.WithDetails("company name is required")
	}

	// Compare before hashing so a typo never costs a bcrypt round.
	if input.Password != input.PasswordConfirm {
		return domainerrors.ErrPasswordMismatch
	}

	return nil
}

func buildNewUserEntity(input usecase.RegisterUserInput, hashedPassword string) *entity.User {
	user := &entity.User{
		FullName:         input.FullName,
		Email:            input.Email,
		Phone:            input.Phone,
		Username:         input.Username,
		PasswordHash:     hashedPassword,
		SecurityQuestion: input.SecurityQuestion,
		SecurityAnswer:   input.SecurityAnswer,
		DateOfBirth:      input.DateOfBirth,
		Gender:           input.Gender,
		Status:           entity.UserStatusActive,
		DeviceToken:      input.DeviceToken,
		CompanyProfile: &entity.CompanyProfile{
			CompanyName:            input.CompanyProfile.CompanyName,
			BusinessRegistrationNo: input.CompanyProfile.BusinessRegistrationNo,
			AddressLine1:           input.CompanyProfile.AddressLine1,
			AddressLine2:           input.CompanyProfile.AddressLine2,
			City:                   input.CompanyProfile.City,
			Country:                input.CompanyProfile.Country,
			PostalCode:             input.CompanyProfile.PostalCode,
		},
	}

	if input.SecondaryContact != nil {
		user.SecondaryContact = &entity.SecondaryContact{
			Name:  input.SecondaryContact.Name,
			Email: input.SecondaryContact.Email,
			Phone: input.SecondaryContact.Phone,
		}
	}

	return user
}

// Login orchestrates the username/password login process.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if user.Status != entity.UserStatusActive {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "account is inactive")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, []string{"user"})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistLoginRefreshToken(ctx, user.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

func (srv *userService) persistLoginRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions > 0 {
		// When session limit is enabled, keep count/insert in one short transaction.
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			refreshRepo := repoFactory.NewRefreshTokenRepository()

			activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			if activeSessions >= srv.maxActiveSessions {
				return errors.Wrap(domainerrors.ErrForbidden, "active session limit exceeded")
			}

			return srv.storeRefreshToken(ctx, refreshRepo, userID, refreshTokenString)
		})
	}

	// No session limit: direct insert avoids unnecessary transaction overhead.
	return srv.storeRefreshToken(ctx, srv.refreshTokenRepo, userID, refreshTokenString)
}

func (srv *userService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	refreshTokenHash := srv.tokenService.HashToken(refreshTokenString)

	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: refreshTokenHash,
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken issues a new access token from a valid refresh token.
// The refresh token itself remains unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	// Verify the refresh token still exists in the database.
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for token refresh")
	}

	newAccessToken, _, err := srv.tokenService.GenerateTokens(user.ID, []string{"user"})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: input.RefreshToken,
	}, nil
}

// Logout invalidates a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	// Single operation - use direct repository instance
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// The session is already gone; logout is idempotent.
			return nil
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// ListUsers retrieves the account listing projection.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserSummary, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	summaries := make([]*usecase.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, &usecase.UserSummary{
			ID:          user.ID,
			FullName:    user.FullName,
			CompanyName: user.CompanyName(),
			Status:      user.Status,
		})
	}

	return summaries, nil
}

// GetUser retrieves a single account with its profile blocks.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of input to the stored account.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user", slog.Any("userID", id))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
			}

			return errors.Wrap(err, "failed to find user for update")
		}

		applyUserUpdate(user, input)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user update transaction", slog.Any("userID", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

func applyUserUpdate(user *entity.User, input usecase.UpdateUserInput) {
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Status != nil {
		user.Status = entity.UserStatus(*input.Status)
	}
	if input.DeviceToken != nil {
		user.DeviceToken = *input.DeviceToken
	}
	if input.CompanyProfile != nil {
		user.CompanyProfile = &entity.CompanyProfile{
			UserID:                 user.ID,
			CompanyName:            input.CompanyProfile.CompanyName,
			BusinessRegistrationNo: input.CompanyProfile.BusinessRegistrationNo,
			AddressLine1:           input.CompanyProfile.AddressLine1,
			AddressLine2:           input.CompanyProfile.AddressLine2,
			City:                   input.CompanyProfile.City,
			Country:                input.CompanyProfile.Country,
			PostalCode:             input.CompanyProfile.PostalCode,
		}
	}
	if input.SecondaryContact != nil {
		user.SecondaryContact = &entity.SecondaryContact{
			UserID: user.ID,
			Name:   input.SecondaryContact.Name,
			Email:  input.SecondaryContact.Email,
			Phone:  input.SecondaryContact.Phone,
		}
	}
}

// DeleteUser removes an account and terminates all of its sessions.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		if err := refreshRepo.DeleteRefreshTokensByUserID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete user sessions")
		}

		if err := userRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user delete transaction", slog.Any("userID", id), slog.Any("error", err))

		return err
	}
	srv.log(ctx).Info("Successfully deleted user", slog.Any("userID", id))

	return nil
}
