package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/thspin/proyecto-1/internal/model"
)

// ServiceRepository defines persistence operations for service bills.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	FindByID(ctx context.Context, id uint) (*model.Service, error)
	ListByOwner(ctx context.Context, ownerID uint, page Page) ([]model.Service, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, service *model.Service) error
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository builds a GORM-backed repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) FindByID(ctx context.Context, id uint) (*model.Service, error) {
	var service model.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// ListByOwner returns the owner's service bills ordered by due date,
// then service name.
func (r *serviceRepository) ListByOwner(ctx context.Context, ownerID uint, page Page) ([]model.Service, error) {
	services := make([]model.Service, 0)
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", ownerID).
		Order("vencimiento, servicio").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Service{}).Where("id = ?", id).Updates(fields).Error
}

func (r *serviceRepository) Delete(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Delete(service).Error
}
