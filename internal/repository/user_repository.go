package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shareit-hub/service-shareit/internal/domain/user"
	"github.com/shareit-hub/service-shareit/internal/platform/database"
	"gorm.io/gorm"
)

// GormUserRepository is the GORM-based implementation of UserRepository.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID retrieves a user by id.
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserModel
	if err := database.Conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.NewNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return toDomainUser(&model), nil
}

// Exists reports whether a user with id is stored.
func (r *GormUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := database.Conn(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// ListAll retrieves every user ordered by id.
func (r *GormUserRepository) ListAll(ctx context.Context) ([]*user.User, error) {
	var models []UserModel
	if err := database.Conn(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, len(models))
	for i := range models {
		users[i] = toDomainUser(&models[i])
	}
	return users, nil
}

// Save persists a new user.
func (r *GormUserRepository) Save(ctx context.Context, u *user.User) (*user.User, error) {
	model := toUserModel(u)
	if err := database.Conn(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrEmailAlreadyExists.Withf("email %s is already registered", u.Email())
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return toDomainUser(model), nil
}

// Update persists name and email changes.
func (r *GormUserRepository) Update(ctx context.Context, u *user.User) error {
	result := database.Conn(ctx, r.db).
		Model(&UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"name":  u.Name(),
			"email": u.Email(),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return user.ErrEmailAlreadyExists.Withf("email %s is already registered", u.Email())
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.NewNotFoundError(u.ID())
	}
	return nil
}

// Delete removes a user together with their items, requests and bookings.
func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	result := database.Conn(ctx, r.db).Delete(&UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.NewNotFoundError(id)
	}
	return nil
}

// --- Conversion Helpers ---

func toUserModel(u *user.User) *UserModel {
	return &UserModel{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
	}
}

func toDomainUser(m *UserModel) *user.User {
	return user.ReconstructUser(m.ID, m.Name, m.Email)
}
