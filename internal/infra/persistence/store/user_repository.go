package store

import (
	"context"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var rows []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Select("id", "username", "role").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, &entity.User{ID: row.ID, Username: row.Username, Role: entity.Role(row.Role)})
	}

	return users, nil
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var rows []*model.UserModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).Limit(1).Find(&rows).Error; err != nil {
		return nil, translateError(err, "failed to find user")
	}
	if len(rows) == 0 {
		return nil, domainerrors.ErrUserNotFound
	}

	row := rows[0]

	return &entity.User{ID: row.ID, Username: row.Username, Password: row.Password, Role: entity.Role(row.Role)}, nil
}

func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, translateError(err, "failed to check username")
	}

	return count > 0, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := &model.UserModel{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
		Role:     user.Role.String(),
	}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken
		}

		return translateError(err, "failed to create user")
	}
	user.ID = row.ID

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{"password": user.Password, "role": user.Role.String()})
	if result.Error != nil {
		return translateError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}
