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

// OtherCreditCreate is the creation payload for a miscellaneous credit.
type OtherCreditCreate struct {
	Cuotas      int
	Vencimiento model.Date
	Detalle     string
	Deuda       decimal.Decimal
	Pago        decimal.Decimal
	MedioDePago string
	UsuarioID   uint
}

// OtherCreditUpdate carries the fields of a partial other-credit update.
type OtherCreditUpdate struct {
	Cuotas      *int
	Vencimiento *model.Date
	Detalle     *string
	Deuda       *decimal.Decimal
	Pago        *decimal.Decimal
	MedioDePago *string
}

// OtherCreditService exposes owner-scoped other-credit operations.
type OtherCreditService interface {
	Create(ctx context.Context, actor *model.User, in OtherCreditCreate) (*model.OtherCredit, error)
	Get(ctx context.Context, actor *model.User, id uint) (*model.OtherCredit, error)
	List(ctx context.Context, actor *model.User, page repository.Page) ([]model.OtherCredit, error)
	Update(ctx context.Context, actor *model.User, id uint, in OtherCreditUpdate) (*model.OtherCredit, error)
	Delete(ctx context.Context, actor *model.User, id uint) (*model.OtherCredit, error)
}

type otherCreditService struct {
	repo repository.OtherCreditRepository
}

// NewOtherCreditService builds an OtherCreditService.
func NewOtherCreditService(repo repository.OtherCreditRepository) OtherCreditService {
	return &otherCreditService{repo: repo}
}

func (s *otherCreditService) Create(ctx context.Context, actor *model.User, in OtherCreditCreate) (*model.OtherCredit, error) {
	if err := auth.CanCreateOwned(actor, in.UsuarioID); err != nil {
		return nil, err
	}

	credit := &model.OtherCredit{
		Cuotas:      in.Cuotas,
		Vencimiento: in.Vencimiento,
		Detalle:     in.Detalle,
		Deuda:       in.Deuda,
		Pago:        in.Pago,
		MedioDePago: in.MedioDePago,
		UsuarioID:   in.UsuarioID,
	}
	if err := s.repo.Create(ctx, credit); err != nil {
		return nil, fmt.Errorf("create other credit: %w", err)
	}
	return credit, nil
}

func (s *otherCreditService) Get(ctx context.Context, actor *model.User, id uint) (*model.OtherCredit, error) {
	credit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrOtherCreditNotFound)
	}
	if err := auth.CanAccessOwned(actor, credit.UsuarioID); err != nil {
		return nil, err
	}
	return credit, nil
}

func (s *otherCreditService) List(ctx context.Context, actor *model.User, page repository.Page) ([]model.OtherCredit, error) {
	return s.repo.ListByOwner(ctx, actor.ID, page)
}

func (s *otherCreditService) Update(ctx context.Context, actor *model.User, id uint, in OtherCreditUpdate) (*model.OtherCredit, error) {
	credit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrOtherCreditNotFound)
	}
	if err := auth.CanAccessOwned(actor, credit.UsuarioID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Cuotas != nil {
		updates["cuotas"] = *in.Cuotas
	}
	if in.Vencimiento != nil {
		updates["vencimiento"] = *in.Vencimiento
	}
	if in.Detalle != nil {
		updates["detalle"] = *in.Detalle
	}
	if in.Deuda != nil {
		updates["deuda"] = *in.Deuda
	}
	if in.Pago != nil {
		updates["pago"] = *in.Pago
	}
	if in.MedioDePago != nil {
		updates["medio_de_pago"] = *in.MedioDePago
	}
	if len(updates) == 0 {
		return credit, nil
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("update other credit: %w", err)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *otherCreditService) Delete(ctx context.Context, actor *model.User, id uint) (*model.OtherCredit, error) {
	credit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrOtherCreditNotFound)
	}
	if err := auth.CanAccessOwned(actor, credit.UsuarioID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, credit); err != nil {
		return nil, fmt.Errorf("delete other credit: %w", err)
	}
	return credit, nil
}
