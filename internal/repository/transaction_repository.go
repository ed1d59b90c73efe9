package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/thspin/proyecto-1/internal/model"
)

// TransactionFilter narrows owner-scoped transaction listings.
// Zero values mean "no filter".
type TransactionFilter struct {
	Tipo        model.MovementType
	CategoriaID uint
	Page        Page
}

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction) error
	FindByID(ctx context.Context, id uint) (*model.Transaction, error)
	ListByOwner(ctx context.Context, ownerID uint, filter TransactionFilter) ([]model.Transaction, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, transaction *model.Transaction) error
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository builds a GORM-backed repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepository) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.WithContext(ctx).First(&transaction, id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// ListByOwner returns the owner's transactions ordered by occurrence
// date, newest first.
func (r *transactionRepository) ListByOwner(ctx context.Context, ownerID uint, filter TransactionFilter) ([]model.Transaction, error) {
	query := r.db.WithContext(ctx).Where("usuario_id = ?", ownerID)
	if filter.Tipo != "" {
		query = query.Where("tipo = ?", filter.Tipo)
	}
	if filter.CategoriaID != 0 {
		query = query.Where("categoria_id = ?", filter.CategoriaID)
	}

	transactions := make([]model.Transaction, 0)
	err := query.Order("fecha DESC").
		Offset(filter.Page.Skip).
		Limit(filter.Page.Limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *transactionRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Transaction{}).Where("id = ?", id).Updates(fields).Error
}

func (r *transactionRepository) Delete(ctx context.Context, transaction *model.Transaction) error {
	return r.db.WithContext(ctx).Delete(transaction).Error
}
