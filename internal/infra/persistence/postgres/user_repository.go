package postgres

import (
	"context"

	"tripflow/internal/domain/entity"
	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/repository"
	"tripflow/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user. The unique index on username guarantees a
// duplicate registration can never create a second row.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := &model.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewStorageError(err, "failed to create user")
	}

	user.ID = row.ID
	user.CreatedAt = row.CreatedAt

	return nil
}

// FindByUsername retrieves a single user by their login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var row model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to find user by username")
	}

	return &entity.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, nil
}
