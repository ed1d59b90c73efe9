package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/thspin/proyecto-1/internal/auth"
	apperrors "github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/repository"
)

// ServiceCreate is the creation payload for a recurring service bill.
type ServiceCreate struct {
	Vencimiento model.Date
	Servicio    string
	Detalle     string
	Cuenta      string
	MontoARS    decimal.Decimal
	MontoUSD    decimal.Decimal
	UsuarioID   uint
}

// ServiceUpdate carries the fields of a partial service bill update.
type ServiceUpdate struct {
	Vencimiento *model.Date
	Servicio    *string
	Detalle     *string
	Cuenta      *string
	MontoARS    *decimal.Decimal
	MontoUSD    *decimal.Decimal
}

// ServiceService exposes owner-scoped service bill operations.
type ServiceService interface {
	Create(ctx context.Context, actor *model.User, in ServiceCreate) (*model.Service, error)
	Get(ctx context.Context, actor *model.User, id uint) (*model.Service, error)
	List(ctx context.Context, actor *model.User, page repository.Page) ([]model.Service, error)
	Update(ctx context.Context, actor *model.User, id uint, in ServiceUpdate) (*model.Service, error)
	Delete(ctx context.Context, actor *model.User, id uint) (*model.Service, error)
}

type serviceService struct {
	repo repository.ServiceRepository
}

// NewServiceService builds a ServiceService.
func NewServiceService(repo repository.ServiceRepository) ServiceService {
	return &serviceService{repo: repo}
}

func (s *serviceService) Create(ctx context.Context, actor *model.User, in ServiceCreate) (*model.Service, error) {
	if err := auth.CanCreateOwned(actor, in.UsuarioID); err != nil {
		return nil, err
	}

	service := &model.Service{
		Vencimiento: in.Vencimiento,
		Servicio:    in.Servicio,
		Detalle:     in.Detalle,
		Cuenta:      in.Cuenta,
		MontoARS:    in.MontoARS,
		MontoUSD:    in.MontoUSD,
		UsuarioID:   in.UsuarioID,
	}
	if err := s.repo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return service, nil
}

func (s *serviceService) Get(ctx context.Context, actor *model.User, id uint) (*model.Service, error) {
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrServiceNotFound)
	}
	if err := auth.CanAccessOwned(actor, service.UsuarioID); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *serviceService) List(ctx context.Context, actor *model.User, page repository.Page) ([]model.Service, error) {
	return s.repo.ListByOwner(ctx, actor.ID, page)
}

func (s *serviceService) Update(ctx context.Context, actor *model.User, id uint, in ServiceUpdate) (*model.Service, error) {
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrServiceNotFound)
	}
	if err := auth.CanAccessOwned(actor, service.UsuarioID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Vencimiento != nil {
		updates["vencimiento"] = *in.Vencimiento
	}
	if in.Servicio != nil {
		updates["servicio"] = *in.Servicio
	}
	if in.Detalle != nil {
		updates["detalle"] = *in.Detalle
	}
	if in.Cuenta != nil {
		updates["cuenta"] = *in.Cuenta
	}
	if in.MontoARS != nil {
		updates["monto_ars"] = *in.MontoARS
	}
	if in.MontoUSD != nil {
		updates["monto_usd"] = *in.MontoUSD
	}
	if len(updates) == 0 {
		return service, nil
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *serviceService) Delete(ctx context.Context, actor *model.User, id uint) (*model.Service, error) {
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrServiceNotFound)
	}
	if err := auth.CanAccessOwned(actor, service.UsuarioID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, service); err != nil {
		return nil, fmt.Errorf("delete service: %w", err)
	}
	return service, nil
}
