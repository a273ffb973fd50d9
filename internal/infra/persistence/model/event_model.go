package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Date        time.Time `gorm:"column:date;type:date;not null"`
	Time        string    `gorm:"column:time;type:varchar(32);not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Category    string    `gorm:"type:varchar(32);not null;default:'other'"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
