package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/thspin/proyecto-1/internal/auth"
	"github.com/thspin/proyecto-1/internal/cache"
	apperrors "github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserCreate is the open-registration payload. Rol defaults to standard
// when omitted.
type UserCreate struct {
	Nombre   string
	Email    string
	Password string
	Rol      model.Role
}

// UserUpdate carries the fields of a partial user update. Nil means
// "leave untouched".
type UserUpdate struct {
	Nombre *string
	Email  *string
	Rol    *model.Role
}

// UserService exposes user management operations.
type UserService interface {
	Register(ctx context.Context, in UserCreate) (*model.User, error)
	Get(ctx context.Context, actor *model.User, id uint) (*model.User, error)
	List(ctx context.Context, actor *model.User, page repository.Page) ([]model.User, error)
	Update(ctx context.Context, actor *model.User, id uint, in UserUpdate) (*model.User, error)
	Delete(ctx context.Context, actor *model.User, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Register creates a new user with a hashed password. No authentication
// is required; duplicate emails are rejected.
func (s *userService) Register(ctx context.Context, in UserCreate) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	rol := in.Rol
	if rol == "" {
		rol = model.RoleStandard
	}

	user := &model.User{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: hash,
		Rol:          rol,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Get returns a single user, allowed to the user themselves or an admin.
func (s *userService) Get(ctx context.Context, actor *model.User, id uint) (*model.User, error) {
	if err := auth.CanManageUser(actor, id); err != nil {
		return nil, err
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrUserNotFound)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// List returns all users. Admin only.
func (s *userService) List(ctx context.Context, actor *model.User, page repository.Page) ([]model.User, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, page)
}

// Update applies a partial update, allowed to the user themselves or an
// admin. Omitted fields are left untouched.
func (s *userService) Update(ctx context.Context, actor *model.User, id uint, in UserUpdate) (*model.User, error) {
	if err := auth.CanManageUser(actor, id); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrUserNotFound)
	}

	if in.Email != nil && *in.Email != user.Email {
		if other, err := s.repo.FindByEmail(ctx, *in.Email); err == nil && other != nil && other.ID != id {
			return nil, apperrors.ErrEmailTaken
		}
	}

	updates := map[string]interface{}{}
	if in.Nombre != nil {
		updates["nombre"] = *in.Nombre
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Rol != nil {
		updates["rol"] = *in.Rol
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return s.repo.FindByID(ctx, id)
}

// Delete hard-deletes a user. Admin only. Returns the deleted record.
func (s *userService) Delete(ctx context.Context, actor *model.User, id uint) (*model.User, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrUserNotFound)
	}

	if err := s.repo.Delete(ctx, user); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return user, nil
}

// FindByEmail resolves a verified token subject to a live user record.
func (s *userService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}
