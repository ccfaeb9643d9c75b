package application

import (
	"context"

	"github.com/shareit-hub/service-shareit/internal/domain/user"
	"go.uber.org/zap"
)

// UserService implements use cases for user management.
type UserService struct {
	repo   user.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo user.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create registers a user. Emails are unique.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	u, err := user.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.Int64("user_id", saved.ID()))
	result := toUserDTO(saved)
	return &result, nil
}

// Update replaces the non-empty fields of req.
func (s *UserService) Update(ctx context.Context, userID int64, req UpdateUserRequest) (*UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.Rename(req.Name)
	u.ChangeEmail(req.Email)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", zap.Int64("user_id", userID))
	result := toUserDTO(u)
	return &result, nil
}

// GetByID returns a single user.
func (s *UserService) GetByID(ctx context.Context, userID int64) (*UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := toUserDTO(u)
	return &result, nil
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	return dtos, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", userID))
	return nil
}

func ensureUserExists(ctx context.Context, users user.UserRepository, userID int64) error {
	ok, err := users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return user.NewNotFoundError(userID)
	}
	return nil
}
