package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/repository"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, page repository.Page) ([]model.Category, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountTransactions(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestCategoryService_Create(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)

	svc := NewCategoryService(mockRepo)
	category, err := svc.Create(context.Background(), CategoryCreate{
		Nombre: "Supermercado",
		Tipo:   model.MovementEgreso,
	})
	require.NoError(t, err)
	assert.Equal(t, "Supermercado", category.Nombre)
	assert.Equal(t, model.MovementEgreso, category.Tipo)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Category{ID: 1, Nombre: "Sueldo"}, nil)

		svc := NewCategoryService(mockRepo)
		category, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Sueldo", category.Nombre)
	})

	t.Run("missing", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCategoryService(mockRepo)
		_, err := svc.Get(context.Background(), 99)
		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})
}

func TestCategoryService_Update(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Category{ID: 1, Nombre: "Viejo", Tipo: model.MovementEgreso}, nil)
	mockRepo.On("Update", mock.Anything, uint(1), map[string]interface{}{"nombre": "Nuevo"}).Return(nil)

	svc := NewCategoryService(mockRepo)
	nombre := "Nuevo"
	_, err := svc.Update(context.Background(), 1, CategoryUpdate{Nombre: &nombre})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Delete(t *testing.T) {
	t.Run("referenced category cannot be deleted", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Category{ID: 1}, nil)
		mockRepo.On("CountTransactions", mock.Anything, uint(1)).Return(int64(3), nil)

		svc := NewCategoryService(mockRepo)
		_, err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, apperrors.ErrCategoryInUse)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unreferenced category deleted", func(t *testing.T) {
		target := &model.Category{ID: 2, Nombre: "Ocio"}
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, uint(2)).Return(target, nil)
		mockRepo.On("CountTransactions", mock.Anything, uint(2)).Return(int64(0), nil)
		mockRepo.On("Delete", mock.Anything, target).Return(nil)

		svc := NewCategoryService(mockRepo)
		category, err := svc.Delete(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, "Ocio", category.Nombre)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing category", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCategoryService(mockRepo)
		_, err := svc.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})
}
