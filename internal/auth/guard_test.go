package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
)

func TestCanAccessOwned(t *testing.T) {
	owner := &model.User{ID: 1, Rol: model.RoleStandard}
	admin := &model.User{ID: 2, Rol: model.RoleAdmin}

	assert.NoError(t, CanAccessOwned(owner, 1))
	assert.ErrorIs(t, CanAccessOwned(owner, 2), apperrors.ErrForbidden)

	// No admin override on owned records.
	assert.ErrorIs(t, CanAccessOwned(admin, 1), apperrors.ErrForbidden)
	assert.NoError(t, CanAccessOwned(admin, 2))
}

func TestCanCreateOwned(t *testing.T) {
	actor := &model.User{ID: 3, Rol: model.RoleStandard}
	admin := &model.User{ID: 4, Rol: model.RoleAdmin}

	assert.NoError(t, CanCreateOwned(actor, 3))
	assert.ErrorIs(t, CanCreateOwned(actor, 4), apperrors.ErrForbidden)

	// Admins cannot create records on someone else's behalf either.
	assert.ErrorIs(t, CanCreateOwned(admin, 3), apperrors.ErrForbidden)
}

func TestCanManageUser(t *testing.T) {
	standard := &model.User{ID: 1, Rol: model.RoleStandard}
	admin := &model.User{ID: 2, Rol: model.RoleAdmin}

	assert.NoError(t, CanManageUser(standard, 1))
	assert.ErrorIs(t, CanManageUser(standard, 2), apperrors.ErrForbidden)

	assert.NoError(t, CanManageUser(admin, 2))
	assert.NoError(t, CanManageUser(admin, 1))
}

func TestRequireAdmin(t *testing.T) {
	standard := &model.User{ID: 1, Rol: model.RoleStandard}
	admin := &model.User{ID: 2, Rol: model.RoleAdmin}

	assert.ErrorIs(t, RequireAdmin(standard), apperrors.ErrForbidden)
	assert.NoError(t, RequireAdmin(admin))
}
