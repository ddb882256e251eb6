// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	"bizops/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by ID, with company profile and secondary contact.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("CompanyProfile").
		Preload("SecondaryContact").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a user by their login username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("CompanyProfile").
		Preload("SecondaryContact").
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmailOrUsername reports whether the email or the username is taken.
// A single combined query keeps registration to one round trip.
func (repo *userRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email or username existence")
	}

	return count > 0, nil
}

// List retrieves all users ordered by creation time.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("CompanyProfile").
		Order("created_at ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user with the attached profile rows.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.CompanyProfile != nil && userM.CompanyProfile != nil {
		user.CompanyProfile.UserID = userM.CompanyProfile.UserID
	}
	if user.SecondaryContact != nil && userM.SecondaryContact != nil {
		user.SecondaryContact.UserID = userM.SecondaryContact.UserID
	}

	return nil
}

// Update modifies an existing user and its profile rows.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"full_name":    userM.FullName,
			"email":        userM.Email,
			"phone":        userM.Phone,
			"status":       userM.Status,
			"device_token": userM.DeviceToken,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	if user.CompanyProfile != nil {
		profileM := fromCompanyProfileDomain(user.ID, user.CompanyProfile)
		if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update company profile")
		}
	}

	if user.SecondaryContact != nil {
		contactM := fromSecondaryContactDomain(user.ID, user.SecondaryContact)
		if err := repo.db.WithContext(ctx).Save(contactM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update secondary contact")
		}
	}

	return nil
}

// Delete removes a user. Profile rows cascade via foreign keys; the user
// row itself is soft-deleted through the DeletedAt column.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:               data.ID,
		FullName:         data.FullName,
		Email:            data.Email,
		Phone:            data.Phone,
		Username:         data.Username,
		PasswordHash:     data.PasswordHash,
		SecurityQuestion: data.SecurityQuestion,
		SecurityAnswer:   data.SecurityAnswer,
		DateOfBirth:      data.DateOfBirth,
		Gender:           data.Gender,
		Status:           entity.UserStatus(data.Status),
		DeviceToken:      data.DeviceToken,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.CompanyProfile != nil {
		user.CompanyProfile = &entity.CompanyProfile{
			UserID:                 data.CompanyProfile.UserID,
			CompanyName:            data.CompanyProfile.CompanyName,
			BusinessRegistrationNo: data.CompanyProfile.BusinessRegistrationNo,
			AddressLine1:           data.CompanyProfile.AddressLine1,
			AddressLine2:           data.CompanyProfile.AddressLine2,
			City:                   data.CompanyProfile.City,
			Country:                data.CompanyProfile.Country,
			PostalCode:             data.CompanyProfile.PostalCode,
			UpdatedAt:              data.CompanyProfile.UpdatedAt,
		}
	}

	if data.SecondaryContact != nil {
		user.SecondaryContact = &entity.SecondaryContact{
			UserID: data.SecondaryContact.UserID,
			Name:   data.SecondaryContact.Name,
			Email:  data.SecondaryContact.Email,
			Phone:  data.SecondaryContact.Phone,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:               data.ID,
		FullName:         data.FullName,
		Email:            data.Email,
		Phone:            data.Phone,
		Username:         data.Username,
		PasswordHash:     data.PasswordHash,
		SecurityQuestion: data.SecurityQuestion,
		SecurityAnswer:   data.SecurityAnswer,
		DateOfBirth:      data.DateOfBirth,
		Gender:           data.Gender,
		Status:           string(data.Status),
		DeviceToken:      data.DeviceToken,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.CompanyProfile != nil {
		userM.CompanyProfile = fromCompanyProfileDomain(data.ID, data.CompanyProfile)
	}
	if data.SecondaryContact != nil {
		userM.SecondaryContact = fromSecondaryContactDomain(data.ID, data.SecondaryContact)
	}

	return userM
}

func fromCompanyProfileDomain(userID uuid.UUID, data *entity.CompanyProfile) *model.CompanyProfileModel {
	return &model.CompanyProfileModel{
		UserID:                 userID,
		CompanyName:            data.CompanyName,
		BusinessRegistrationNo: data.BusinessRegistrationNo,
		AddressLine1:           data.AddressLine1,
		AddressLine2:           data.AddressLine2,
		City:                   data.City,
		Country:                data.Country,
		PostalCode:             data.PostalCode,
	}
}

func fromSecondaryContactDomain(userID uuid.UUID, data *entity.SecondaryContact) *model.SecondaryContactModel {
	return &model.SecondaryContactModel{
		UserID: userID,
		Name:   data.Name,
		Email:  data.Email,
		Phone:  data.Phone,
	}
}
