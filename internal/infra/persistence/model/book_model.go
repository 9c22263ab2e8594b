package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. UserID is a nullable reference to the
// owning user; it is set by the service layer, never by client input.
type BookModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Author    string    `gorm:"type:varchar(255);not null"`
	Editorial string    `gorm:"type:varchar(255);not null"`
	Price     int       `gorm:"not null;check:price >= 0"`
	Category  string    `gorm:"type:varchar(32);not null"`
	Status    string    `gorm:"type:varchar(32);not null"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
