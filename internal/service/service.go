// Package service implements the business rules over the repositories:
// access-guard enforcement, foreign-key validation and partial-update
// merging. Every check is evaluated once per request; a denial is
// terminal.
package service

import (
	"errors"

	"gorm.io/gorm"
)

// orNotFound translates a gorm missing-row error into the resource's
// NotFound sentinel. Existence is always checked before ownership so
// 404 stays distinguishable from 403.
func orNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
