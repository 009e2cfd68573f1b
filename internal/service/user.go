package service

import (
	"context"
	"fmt"

	"orghub/internal/config"
	"orghub/internal/model"
	"orghub/internal/repository"
	"orghub/pkg/util"
)

// UserService handles user business logic
type UserService struct {
	repo repository.IUserRepository
	cfg  *config.Config
}

// NewUserService creates a new user service
func NewUserService(cfg *config.Config, repo repository.IUserRepository) *UserService {
	return &UserService{repo: repo, cfg: cfg}
}

// Create inserts a new user with an empty organizations list.
func (s *UserService) Create(ctx context.Context, name, email string) (*model.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: both name and email are required", ErrValidation)
	}
	return s.repo.Create(ctx, &model.User{Name: name, Email: email})
}

// List returns the filtered total count and one page of users.
func (s *UserService) List(ctx context.Context, nameFilter string, limit, offset int64) (int64, []*model.User, error) {
	return s.repo.List(ctx, nameFilter, limit, offset)
}

// Get looks up a user by id when key is a well-formed ObjectID, otherwise by
// exact email match. A well-formed id that matches nothing is not retried as
// an email.
func (s *UserService) Get(ctx context.Context, key string) (*model.User, error) {
	if id, err := util.ParseObjectID(key); err == nil {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.FindByEmail(ctx, key)
}
