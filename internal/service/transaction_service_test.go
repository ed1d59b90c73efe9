package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/repository"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByOwner(ctx context.Context, ownerID uint, filter repository.TransactionFilter) ([]model.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, transaction *model.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func TestTransactionService_Create(t *testing.T) {
	actor := &model.User{ID: 1, Rol: model.RoleStandard}

	validCreate := TransactionCreate{
		Fecha:       model.NewDate(2026, time.March, 10),
		Tipo:        model.MovementEgreso,
		CategoriaID: 5,
		Detalle:     "Compra semanal",
		Monto:       decimal.NewFromInt(15000),
		MedioDePago: "debito",
		UsuarioID:   1,
	}

	t.Run("successful create", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Category{ID: 5}, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(nil)

		svc := NewTransactionService(mockRepo, mockCategoryRepo)
		transaction, err := svc.Create(context.Background(), actor, validCreate)
		require.NoError(t, err)
		assert.Equal(t, uint(1), transaction.UsuarioID)
		assert.Equal(t, uint(5), transaction.CategoriaID)
		assert.True(t, transaction.Monto.Equal(decimal.NewFromInt(15000)))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing category rejected before ownership", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTransactionService(mockRepo, mockCategoryRepo)

		// Even a payload failing the ownership rule reports the
		// category problem first.
		in := validCreate
		in.UsuarioID = 99
		_, err := svc.Create(context.Background(), actor, in)
		assert.ErrorIs(t, err, apperrors.ErrCategoryRef)
	})

	t.Run("cannot create for another user", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Category{ID: 5}, nil)

		svc := NewTransactionService(mockRepo, mockCategoryRepo)
		in := validCreate
		in.UsuarioID = 2
		_, err := svc.Create(context.Background(), actor, in)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTransactionService_Get(t *testing.T) {
	owner := &model.User{ID: 1, Rol: model.RoleStandard}
	other := &model.User{ID: 2, Rol: model.RoleStandard}
	admin := &model.User{ID: 3, Rol: model.RoleAdmin}

	t.Run("owner reads own record", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Transaction{ID: 10, UsuarioID: 1}, nil)

		svc := NewTransactionService(mockRepo, new(MockCategoryRepository))
		transaction, err := svc.Get(context.Background(), owner, 10)
		require.NoError(t, err)
		assert.Equal(t, uint(10), transaction.ID)
	})

	t.Run("missing record is not found, not forbidden", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTransactionService(mockRepo, new(MockCategoryRepository))
		_, err := svc.Get(context.Background(), other, 99)
		assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
	})

	t.Run("someone else's record is forbidden", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Transaction{ID: 10, UsuarioID: 1}, nil)

		svc := NewTransactionService(mockRepo, new(MockCategoryRepository))
		_, err := svc.Get(context.Background(), other, 10)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("no admin override on owned records", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Transaction{ID: 10, UsuarioID: 1}, nil)

		svc := NewTransactionService(mockRepo, new(MockCategoryRepository))
		_, err := svc.Get(context.Background(), admin, 10)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestTransactionService_List(t *testing.T) {
	owner := &model.User{ID: 1, Rol: model.RoleStandard}

	mockRepo := new(MockTransactionRepository)
	filter := repository.TransactionFilter{
		Tipo: model.MovementEgreso,
		Page: repository.Page{Limit: 100},
	}
	mockRepo.On("ListByOwner", mock.Anything, uint(1), filter).Return([]model.Transaction{
		{ID: 2, UsuarioID: 1}, {ID: 1, UsuarioID: 1},
	}, nil)

	svc := NewTransactionService(mockRepo, new(MockCategoryRepository))
	transactions, err := svc.List(context.Background(), owner, filter)
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
	mockRepo.AssertExpectations(t)
}

func TestTransactionService_Update(t *testing.T) {
	owner := &model.User{ID: 1, Rol: model.RoleStandard}

	t.Run("partial update touches only provided columns", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Transaction{
			ID: 10, UsuarioID: 1, Detalle: "Viejo", CategoriaID: 5,
		}, nil)
		mockRepo.On("Update", mock.Anything, uint(10), map[string]interface{}{"detalle": "Nuevo"}).Return(nil)

		svc := NewTransactionService(mockRepo, new(MockCategoryRepository))
		detalle := "Nuevo"
		_, err := svc.Update(context.Background(), owner, 10, TransactionUpdate{Detalle: &detalle})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("category change revalidated", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Transaction{ID: 10, UsuarioID: 1}, nil)
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTransactionService(mockRepo, mockCategoryRepo)
		categoriaID := uint(7)
		_, err := svc.Update(context.Background(), owner, 10, TransactionUpdate{CategoriaID: &categoriaID})
		assert.ErrorIs(t, err, apperrors.ErrCategoryRef)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Transaction{ID: 10, UsuarioID: 1, Detalle: "Igual"}, nil)

		svc := NewTransactionService(mockRepo, new(MockCategoryRepository))
		transaction, err := svc.Update(context.Background(), owner, 10, TransactionUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "Igual", transaction.Detalle)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTransactionService_Delete(t *testing.T) {
	owner := &model.User{ID: 1, Rol: model.RoleStandard}
	other := &model.User{ID: 2, Rol: model.RoleStandard}

	t.Run("returns the deleted record", func(t *testing.T) {
		target := &model.Transaction{ID: 10, UsuarioID: 1, Detalle: "Borrar"}
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(target, nil)
		mockRepo.On("Delete", mock.Anything, target).Return(nil)

		svc := NewTransactionService(mockRepo, new(MockCategoryRepository))
		transaction, err := svc.Delete(context.Background(), owner, 10)
		require.NoError(t, err)
		assert.Equal(t, "Borrar", transaction.Detalle)
		mockRepo.AssertExpectations(t)
	})

	t.Run("someone else's record is forbidden", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(&model.Transaction{ID: 10, UsuarioID: 1}, nil)

		svc := NewTransactionService(mockRepo, new(MockCategoryRepository))
		_, err := svc.Delete(context.Background(), other, 10)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
