// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// Nullable columns are pointers so that absent values are stored as NULL and
// do not collide under the unique indexes.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash *string   `gorm:"type:text"`
	GoogleID     *string   `gorm:"column:google_id;type:varchar(255);uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
