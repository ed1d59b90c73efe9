package service

import (
	"context"
	"fmt"

	apperrors "github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/repository"
)

// CategoryCreate is the creation payload for a shared category.
type CategoryCreate struct {
	Nombre string
	Tipo   model.MovementType
}

// CategoryUpdate carries the fields of a partial category update.
type CategoryUpdate struct {
	Nombre *string
	Tipo   *model.MovementType
}

// CategoryService exposes operations over the shared category set.
// Categories carry no owner, so any authenticated user may mutate them.
type CategoryService interface {
	Create(ctx context.Context, in CategoryCreate) (*model.Category, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	List(ctx context.Context, page repository.Page) ([]model.Category, error)
	Update(ctx context.Context, id uint, in CategoryUpdate) (*model.Category, error)
	Delete(ctx context.Context, id uint) (*model.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, in CategoryCreate) (*model.Category, error) {
	category := &model.Category{
		Nombre: in.Nombre,
		Tipo:   in.Tipo,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrCategoryNotFound)
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, page repository.Page) ([]model.Category, error) {
	return s.repo.List(ctx, page)
}

func (s *categoryService) Update(ctx context.Context, id uint, in CategoryUpdate) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrCategoryNotFound)
	}

	updates := map[string]interface{}{}
	if in.Nombre != nil {
		updates["nombre"] = *in.Nombre
	}
	if in.Tipo != nil {
		updates["tipo"] = *in.Tipo
	}
	if len(updates) == 0 {
		return category, nil
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return s.repo.FindByID(ctx, id)
}

// Delete removes a category only when no transaction references it.
func (s *categoryService) Delete(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrCategoryNotFound)
	}

	count, err := s.repo.CountTransactions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count category transactions: %w", err)
	}
	if count > 0 {
		return nil, apperrors.ErrCategoryInUse
	}

	if err := s.repo.Delete(ctx, category); err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	return category, nil
}
