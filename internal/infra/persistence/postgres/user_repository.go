// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/errors"
	"evently/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find user by id")
}

// FindByEmail retrieves a single user by their normalized email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if email == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.first(repo.db.WithContext(ctx).Where("email = ?", email), "failed to find user by email")
}

// FindByGoogleID reads from the primary: identity resolution re-reads here
// right after losing a concurrent insert.
func (repo *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	if googleID == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.first(
		repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("google_id = ?", googleID),
		"failed to find user by google id",
	)
}

func (repo *userRepository) first(tx *gorm.DB, msg string) (*entity.User, error) {
	var userM model.UserModel
	if err := tx.First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, msg)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create persists a new user and fills in the generated ID and timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if !user.CanAuthenticate() {
		return domainerrors.ErrIdentityWithoutCredential
	}

	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WithCause(err)
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrIdentityWithoutCredential.WithCause(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// LinkGoogleID binds googleID to the user only while google_id is still NULL.
func (repo *userRepository) LinkGoogleID(ctx context.Context, id uuid.UUID, googleID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND google_id IS NULL", id).
		Update("google_id", googleID)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrGoogleIDAlreadyLinked, "google id belongs to another user")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to link google id")
	}

	if result.RowsAffected == 1 {
		return nil
	}

	// Nothing updated: the user is either gone or already linked.
	var count int64
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Model(&model.UserModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check user")
	}
	if count == 0 {
		return repository.ErrUserNotFound
	}

	return repository.ErrGoogleIDAlreadyLinked
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        derefString(data.Email),
		PasswordHash: derefString(data.PasswordHash),
		GoogleID:     derefString(data.GoogleID),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        nullableString(data.Email),
		PasswordHash: nullableString(data.PasswordHash),
		GoogleID:     nullableString(data.GoogleID),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
