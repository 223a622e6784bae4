package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// translateError maps gorm/driver errors onto the repository
// sentinels. The duplicate-key string fallback covers drivers that do
// not go through gorm's error translator.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	msg := err.Error()
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}
