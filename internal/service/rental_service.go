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

// RentalCreate is the creation payload for a rental payment period.
type RentalCreate struct {
	Cuota       int
	Vencimiento model.Date
	Inquilino   string
	Deuda       decimal.Decimal
	Pagado      decimal.Decimal
	Propiedad   string
	Recibo      string
	UsuarioID   uint
}

// RentalUpdate carries the fields of a partial rental update.
type RentalUpdate struct {
	Cuota       *int
	Vencimiento *model.Date
	Inquilino   *string
	Deuda       *decimal.Decimal
	Pagado      *decimal.Decimal
	Propiedad   *string
	Recibo      *string
}

// RentalService exposes owner-scoped rental operations.
type RentalService interface {
	Create(ctx context.Context, actor *model.User, in RentalCreate) (*model.Rental, error)
	Get(ctx context.Context, actor *model.User, id uint) (*model.Rental, error)
	List(ctx context.Context, actor *model.User, page repository.Page) ([]model.Rental, error)
	Update(ctx context.Context, actor *model.User, id uint, in RentalUpdate) (*model.Rental, error)
	Delete(ctx context.Context, actor *model.User, id uint) (*model.Rental, error)
}

type rentalService struct {
	repo repository.RentalRepository
}

// NewRentalService builds a RentalService.
func NewRentalService(repo repository.RentalRepository) RentalService {
	return &rentalService{repo: repo}
}

func (s *rentalService) Create(ctx context.Context, actor *model.User, in RentalCreate) (*model.Rental, error) {
	if err := auth.CanCreateOwned(actor, in.UsuarioID); err != nil {
		return nil, err
	}

	rental := &model.Rental{
		Cuota:       in.Cuota,
		Vencimiento: in.Vencimiento,
		Inquilino:   in.Inquilino,
		Deuda:       in.Deuda,
		Pagado:      in.Pagado,
		Propiedad:   in.Propiedad,
		Recibo:      in.Recibo,
		UsuarioID:   in.UsuarioID,
	}
	if err := s.repo.Create(ctx, rental); err != nil {
		return nil, fmt.Errorf("create rental: %w", err)
	}
	return rental, nil
}

func (s *rentalService) Get(ctx context.Context, actor *model.User, id uint) (*model.Rental, error) {
	rental, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrRentalNotFound)
	}
	if err := auth.CanAccessOwned(actor, rental.UsuarioID); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) List(ctx context.Context, actor *model.User, page repository.Page) ([]model.Rental, error) {
	return s.repo.ListByOwner(ctx, actor.ID, page)
}

func (s *rentalService) Update(ctx context.Context, actor *model.User, id uint, in RentalUpdate) (*model.Rental, error) {
	rental, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrRentalNotFound)
	}
	if err := auth.CanAccessOwned(actor, rental.UsuarioID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Cuota != nil {
		updates["cuota"] = *in.Cuota
	}
	if in.Vencimiento != nil {
		updates["vencimiento"] = *in.Vencimiento
	}
	if in.Inquilino != nil {
		updates["inquilino"] = *in.Inquilino
	}
	if in.Deuda != nil {
		updates["deuda"] = *in.Deuda
	}
	if in.Pagado != nil {
		updates["pagado"] = *in.Pagado
	}
	if in.Propiedad != nil {
		updates["propiedad"] = *in.Propiedad
	}
	if in.Recibo != nil {
		updates["recibo"] = *in.Recibo
	}
	if len(updates) == 0 {
		return rental, nil
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("update rental: %w", err)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *rentalService) Delete(ctx context.Context, actor *model.User, id uint) (*model.Rental, error) {
	rental, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrRentalNotFound)
	}
	if err := auth.CanAccessOwned(actor, rental.UsuarioID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, rental); err != nil {
		return nil, fmt.Errorf("delete rental: %w", err)
	}
	return rental, nil
}
