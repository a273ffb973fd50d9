package postgres

import (
	"gorm.io/gorm"

	"evently/internal/errors"
)

// These rely on gorm.Config.TranslateError mapping driver codes onto gorm errors.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
