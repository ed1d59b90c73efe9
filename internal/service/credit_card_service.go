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

// CreditCardCreate is the creation payload for a credit card statement.
type CreditCardCreate struct {
	Cuotas      int
	Vencimiento model.Date
	Detalle     string
	Deuda       decimal.Decimal
	Pago        decimal.Decimal
	MedioDePago string
	UsuarioID   uint
}

// CreditCardUpdate carries the fields of a partial credit card update.
type CreditCardUpdate struct {
	Cuotas      *int
	Vencimiento *model.Date
	Detalle     *string
	Deuda       *decimal.Decimal
	Pago        *decimal.Decimal
	MedioDePago *string
}

// CreditCardService exposes owner-scoped credit card operations.
type CreditCardService interface {
	Create(ctx context.Context, actor *model.User, in CreditCardCreate) (*model.CreditCard, error)
	Get(ctx context.Context, actor *model.User, id uint) (*model.CreditCard, error)
	List(ctx context.Context, actor *model.User, page repository.Page) ([]model.CreditCard, error)
	Update(ctx context.Context, actor *model.User, id uint, in CreditCardUpdate) (*model.CreditCard, error)
	Delete(ctx context.Context, actor *model.User, id uint) (*model.CreditCard, error)
}

type creditCardService struct {
	repo repository.CreditCardRepository
}

// NewCreditCardService builds a CreditCardService.
func NewCreditCardService(repo repository.CreditCardRepository) CreditCardService {
	return &creditCardService{repo: repo}
}

func (s *creditCardService) Create(ctx context.Context, actor *model.User, in CreditCardCreate) (*model.CreditCard, error) {
	if err := auth.CanCreateOwned(actor, in.UsuarioID); err != nil {
		return nil, err
	}

	card := &model.CreditCard{
		Cuotas:      in.Cuotas,
		Vencimiento: in.Vencimiento,
		Detalle:     in.Detalle,
		Deuda:       in.Deuda,
		Pago:        in.Pago,
		MedioDePago: in.MedioDePago,
		UsuarioID:   in.UsuarioID,
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("create credit card: %w", err)
	}
	return card, nil
}

func (s *creditCardService) Get(ctx context.Context, actor *model.User, id uint) (*model.CreditCard, error) {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrCreditCardNotFound)
	}
	if err := auth.CanAccessOwned(actor, card.UsuarioID); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *creditCardService) List(ctx context.Context, actor *model.User, page repository.Page) ([]model.CreditCard, error) {
	return s.repo.ListByOwner(ctx, actor.ID, page)
}

func (s *creditCardService) Update(ctx context.Context, actor *model.User, id uint, in CreditCardUpdate) (*model.CreditCard, error) {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrCreditCardNotFound)
	}
	if err := auth.CanAccessOwned(actor, card.UsuarioID); err != nil {
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
		return card, nil
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("update credit card: %w", err)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *creditCardService) Delete(ctx context.Context, actor *model.User, id uint) (*model.CreditCard, error) {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrCreditCardNotFound)
	}
	if err := auth.CanAccessOwned(actor, card.UsuarioID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, card); err != nil {
		return nil, fmt.Errorf("delete credit card: %w", err)
	}
	return card, nil
}
