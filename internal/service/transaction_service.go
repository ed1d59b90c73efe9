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

// TransactionCreate is the creation payload for a transaction. The
// declared owner must be the acting user.
type TransactionCreate struct {
	Fecha       model.Date
	Tipo        model.MovementType
	CategoriaID uint
	Detalle     string
	Monto       decimal.Decimal
	MedioDePago string
	UsuarioID   uint
}

// TransactionUpdate carries the fields of a partial transaction update.
// Nil means "leave untouched"; the owner is never client-settable here.
type TransactionUpdate struct {
	Fecha       *model.Date
	Tipo        *model.MovementType
	CategoriaID *uint
	Detalle     *string
	Monto       *decimal.Decimal
	MedioDePago *string
}

// TransactionService exposes owner-scoped transaction operations.
type TransactionService interface {
	Create(ctx context.Context, actor *model.User, in TransactionCreate) (*model.Transaction, error)
	Get(ctx context.Context, actor *model.User, id uint) (*model.Transaction, error)
	List(ctx context.Context, actor *model.User, filter repository.TransactionFilter) ([]model.Transaction, error)
	Update(ctx context.Context, actor *model.User, id uint, in TransactionUpdate) (*model.Transaction, error)
	Delete(ctx context.Context, actor *model.User, id uint) (*model.Transaction, error)
}

type transactionService struct {
	repo         repository.TransactionRepository
	categoryRepo repository.CategoryRepository
}

// NewTransactionService builds a TransactionService.
func NewTransactionService(repo repository.TransactionRepository, categoryRepo repository.CategoryRepository) TransactionService {
	return &transactionService{repo: repo, categoryRepo: categoryRepo}
}

func (s *transactionService) Create(ctx context.Context, actor *model.User, in TransactionCreate) (*model.Transaction, error) {
	if _, err := s.categoryRepo.FindByID(ctx, in.CategoriaID); err != nil {
		return nil, orNotFound(err, apperrors.ErrCategoryRef)
	}

	if err := auth.CanCreateOwned(actor, in.UsuarioID); err != nil {
		return nil, err
	}

	transaction := &model.Transaction{
		Fecha:       in.Fecha,
		Tipo:        in.Tipo,
		CategoriaID: in.CategoriaID,
		Detalle:     in.Detalle,
		Monto:       in.Monto,
		MedioDePago: in.MedioDePago,
		UsuarioID:   in.UsuarioID,
	}
	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return transaction, nil
}

func (s *transactionService) Get(ctx context.Context, actor *model.User, id uint) (*model.Transaction, error) {
	transaction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrTransactionNotFound)
	}
	if err := auth.CanAccessOwned(actor, transaction.UsuarioID); err != nil {
		return nil, err
	}
	return transaction, nil
}

// List always scopes to the actor's own rows.
func (s *transactionService) List(ctx context.Context, actor *model.User, filter repository.TransactionFilter) ([]model.Transaction, error) {
	return s.repo.ListByOwner(ctx, actor.ID, filter)
}

func (s *transactionService) Update(ctx context.Context, actor *model.User, id uint, in TransactionUpdate) (*model.Transaction, error) {
	transaction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrTransactionNotFound)
	}
	if err := auth.CanAccessOwned(actor, transaction.UsuarioID); err != nil {
		return nil, err
	}

	if in.CategoriaID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *in.CategoriaID); err != nil {
			return nil, orNotFound(err, apperrors.ErrCategoryRef)
		}
	}

	updates := map[string]interface{}{}
	if in.Fecha != nil {
		updates["fecha"] = *in.Fecha
	}
	if in.Tipo != nil {
		updates["tipo"] = *in.Tipo
	}
	if in.CategoriaID != nil {
		updates["categoria_id"] = *in.CategoriaID
	}
	if in.Detalle != nil {
		updates["detalle"] = *in.Detalle
	}
	if in.Monto != nil {
		updates["monto"] = *in.Monto
	}
	if in.MedioDePago != nil {
		updates["medio_de_pago"] = *in.MedioDePago
	}
	if len(updates) == 0 {
		return transaction, nil
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *transactionService) Delete(ctx context.Context, actor *model.User, id uint) (*model.Transaction, error) {
	transaction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, apperrors.ErrTransactionNotFound)
	}
	if err := auth.CanAccessOwned(actor, transaction.UsuarioID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, transaction); err != nil {
		return nil, fmt.Errorf("delete transaction: %w", err)
	}
	return transaction, nil
}
