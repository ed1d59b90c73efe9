package auth

import (
	apperrors "github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
)

// The access guard is a set of pure decisions over (actor, target
// ownership/role). A denial is terminal for the request.

// CanAccessOwned allows access to an owned record only to its owner.
// There is deliberately no admin override for owned resources: the role
// bypass exists for the user resource alone.
func CanAccessOwned(actor *model.User, ownerID uint) error {
	if actor.ID != ownerID {
		return apperrors.ErrForbidden
	}
	return nil
}

// CanCreateOwned requires the declared owner of a new record to be the
// acting user: records cannot be created on someone else's behalf.
func CanCreateOwned(actor *model.User, declaredOwnerID uint) error {
	if actor.ID != declaredOwnerID {
		return apperrors.ErrForbidden
	}
	return nil
}

// CanManageUser allows reading or updating a specific user record to the
// user themselves or to an admin.
func CanManageUser(actor *model.User, targetID uint) error {
	if actor.IsAdmin() || actor.ID == targetID {
		return nil
	}
	return apperrors.ErrForbidden
}

// RequireAdmin gates admin-only operations: listing all users and
// hard-deleting a user.
func RequireAdmin(actor *model.User) error {
	if !actor.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}
