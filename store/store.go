// Package store is the entity store: gorm-backed CRUD for accounts and
// trucks with the cascade rule that an account's trucks die with it.
package store

import (
	"errors"

	"fleetsecure-api/apperr"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// asNotFound converts gorm's missing-record error into the core's NotFound.
func asNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(msg)
	}
	return err
}
