package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/thspin/proyecto-1/internal/model"
)

// CreditCardRepository defines persistence operations for credit cards.
type CreditCardRepository interface {
	Create(ctx context.Context, card *model.CreditCard) error
	FindByID(ctx context.Context, id uint) (*model.CreditCard, error)
	ListByOwner(ctx context.Context, ownerID uint, page Page) ([]model.CreditCard, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, card *model.CreditCard) error
}

type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository builds a GORM-backed repository.
func NewCreditCardRepository(db *gorm.DB) CreditCardRepository {
	return &creditCardRepository{db: db}
}

func (r *creditCardRepository) Create(ctx context.Context, card *model.CreditCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *creditCardRepository) FindByID(ctx context.Context, id uint) (*model.CreditCard, error) {
	var card model.CreditCard
	if err := r.db.WithContext(ctx).First(&card, id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// ListByOwner returns the owner's cards ordered by due date.
func (r *creditCardRepository) ListByOwner(ctx context.Context, ownerID uint, page Page) ([]model.CreditCard, error) {
	cards := make([]model.CreditCard, 0)
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", ownerID).
		Order("vencimiento").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *creditCardRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.CreditCard{}).Where("id = ?", id).Updates(fields).Error
}

func (r *creditCardRepository) Delete(ctx context.Context, card *model.CreditCard) error {
	return r.db.WithContext(ctx).Delete(card).Error
}
