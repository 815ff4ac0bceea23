// Package repository wraps gorm queries per aggregate. Repositories are
// cheap values bound to a *gorm.DB; workflows build them from the
// transaction handle so every statement shares the same transaction.
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate record")

// ErrInsufficientStock is returned when a conditional stock decrement
// affects no row.
var ErrInsufficientStock = errors.New("insufficient stock")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || strings.Contains(msg, "1062")
}

func duplicate(err error) error {
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}
