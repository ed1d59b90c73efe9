package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/thspin/proyecto-1/internal/model"
)

// RentalRepository defines persistence operations for rentals.
type RentalRepository interface {
	Create(ctx context.Context, rental *model.Rental) error
	FindByID(ctx context.Context, id uint) (*model.Rental, error)
	ListByOwner(ctx context.Context, ownerID uint, page Page) ([]model.Rental, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, rental *model.Rental) error
}

type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository builds a GORM-backed repository.
func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rental *model.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *rentalRepository) FindByID(ctx context.Context, id uint) (*model.Rental, error) {
	var rental model.Rental
	if err := r.db.WithContext(ctx).First(&rental, id).Error; err != nil {
		return nil, err
	}
	return &rental, nil
}

// ListByOwner returns the owner's rentals ordered by due date, then tenant.
func (r *rentalRepository) ListByOwner(ctx context.Context, ownerID uint, page Page) ([]model.Rental, error) {
	rentals := make([]model.Rental, 0)
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", ownerID).
		Order("vencimiento, inquilino").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *rentalRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Rental{}).Where("id = ?", id).Updates(fields).Error
}

func (r *rentalRepository) Delete(ctx context.Context, rental *model.Rental) error {
	return r.db.WithContext(ctx).Delete(rental).Error
}
