package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// notFound maps gorm's missing-row error onto the caller's domain sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// isDuplicateKey recognises unique-index violations. gorm.ErrDuplicatedKey is
// produced when the session runs with TranslateError; the string checks cover
// sessions opened without it.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
