package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/thspin/proyecto-1/internal/auth"
	apperrors "github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/repository"
)

func TestUserService_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "nuevo@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.Register(context.Background(), UserCreate{
			Nombre:   "Nuevo Usuario",
			Email:    "nuevo@example.com",
			Password: "secreto123",
		})
		require.NoError(t, err)
		assert.Equal(t, "nuevo@example.com", user.Email)
		assert.Equal(t, model.RoleStandard, user.Rol)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "secreto123", user.PasswordHash)
		assert.True(t, auth.CheckPassword("secreto123", user.PasswordHash))

		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit admin role kept", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.Register(context.Background(), UserCreate{
			Nombre:   "Admin",
			Email:    "admin@example.com",
			Password: "secreto123",
			Rol:      model.RoleAdmin,
		})
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Rol)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{
			ID: 1, Email: "taken@example.com",
		}, nil)

		svc := NewUserService(mockRepo, nil)
		_, err := svc.Register(context.Background(), UserCreate{
			Nombre:   "Otro",
			Email:    "taken@example.com",
			Password: "secreto123",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}

func TestUserService_Get(t *testing.T) {
	standard := &model.User{ID: 1, Rol: model.RoleStandard}
	admin := &model.User{ID: 2, Rol: model.RoleAdmin}

	t.Run("self access", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "a@example.com"}, nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.Get(context.Background(), standard, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("admin access to others", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)

		svc := NewUserService(mockRepo, nil)
		_, err := svc.Get(context.Background(), admin, 1)
		assert.NoError(t, err)
	})

	t.Run("standard user denied others", func(t *testing.T) {
		// The guard fires before any repository access, so the
		// response does not reveal whether the target exists.
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, nil)
		_, err := svc.Get(context.Background(), standard, 2)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, nil)
		_, err := svc.Get(context.Background(), admin, 99)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_List(t *testing.T) {
	standard := &model.User{ID: 1, Rol: model.RoleStandard}
	admin := &model.User{ID: 2, Rol: model.RoleAdmin}

	t.Run("admin only", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, nil)
		_, err := svc.List(context.Background(), standard, repository.Page{Limit: 100})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("admin gets everyone", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("List", mock.Anything, repository.Page{Limit: 100}).Return([]model.User{{ID: 1}, {ID: 2}}, nil)

		svc := NewUserService(mockRepo, nil)
		users, err := svc.List(context.Background(), admin, repository.Page{Limit: 100})
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestUserService_Update(t *testing.T) {
	admin := &model.User{ID: 2, Rol: model.RoleAdmin}

	t.Run("partial update touches only provided columns", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Nombre: "Viejo", Email: "a@example.com"}, nil)
		mockRepo.On("Update", mock.Anything, uint(1), map[string]interface{}{"nombre": "Nuevo"}).Return(nil)

		svc := NewUserService(mockRepo, nil)
		nombre := "Nuevo"
		_, err := svc.Update(context.Background(), admin, 1, UserUpdate{Nombre: &nombre})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("email conflict rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "a@example.com"}, nil)
		mockRepo.On("FindByEmail", mock.Anything, "b@example.com").Return(&model.User{ID: 3, Email: "b@example.com"}, nil)

		svc := NewUserService(mockRepo, nil)
		email := "b@example.com"
		_, err := svc.Update(context.Background(), admin, 1, UserUpdate{Email: &email})
		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Nombre: "Igual"}, nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.Update(context.Background(), admin, 1, UserUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "Igual", user.Nombre)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_Delete(t *testing.T) {
	standard := &model.User{ID: 1, Rol: model.RoleStandard}
	admin := &model.User{ID: 2, Rol: model.RoleAdmin}

	t.Run("admin only, even for self", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, nil)
		_, err := svc.Delete(context.Background(), standard, 1)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("returns the deleted record", func(t *testing.T) {
		target := &model.User{ID: 1, Email: "gone@example.com"}
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(target, nil)
		mockRepo.On("Delete", mock.Anything, target).Return(nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.Delete(context.Background(), admin, 1)
		require.NoError(t, err)
		assert.Equal(t, "gone@example.com", user.Email)
		mockRepo.AssertExpectations(t)
	})
}
