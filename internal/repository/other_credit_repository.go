package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/thspin/proyecto-1/internal/model"
)

// OtherCreditRepository defines persistence operations for other credits.
type OtherCreditRepository interface {
	Create(ctx context.Context, credit *model.OtherCredit) error
	FindByID(ctx context.Context, id uint) (*model.OtherCredit, error)
	ListByOwner(ctx context.Context, ownerID uint, page Page) ([]model.OtherCredit, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, credit *model.OtherCredit) error
}

type otherCreditRepository struct {
	db *gorm.DB
}

// NewOtherCreditRepository builds a GORM-backed repository.
func NewOtherCreditRepository(db *gorm.DB) OtherCreditRepository {
	return &otherCreditRepository{db: db}
}

func (r *otherCreditRepository) Create(ctx context.Context, credit *model.OtherCredit) error {
	return r.db.WithContext(ctx).Create(credit).Error
}

func (r *otherCreditRepository) FindByID(ctx context.Context, id uint) (*model.OtherCredit, error) {
	var credit model.OtherCredit
	if err := r.db.WithContext(ctx).First(&credit, id).Error; err != nil {
		return nil, err
	}
	return &credit, nil
}

// ListByOwner returns the owner's credits ordered by due date.
func (r *otherCreditRepository) ListByOwner(ctx context.Context, ownerID uint, page Page) ([]model.OtherCredit, error) {
	credits := make([]model.OtherCredit, 0)
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", ownerID).
		Order("vencimiento").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&credits).Error
	if err != nil {
		return nil, err
	}
	return credits, nil
}

func (r *otherCreditRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.OtherCredit{}).Where("id = ?", id).Updates(fields).Error
}

func (r *otherCreditRepository) Delete(ctx context.Context, credit *model.OtherCredit) error {
	return r.db.WithContext(ctx).Delete(credit).Error
}
