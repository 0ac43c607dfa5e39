package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is identified by its row id only. Name+phone act as a natural
// dedup key at invoice-creation time, but no uniqueness is enforced:
// duplicate customers are possible and accepted.
//
// Birthday and anniversary are free-form date strings ("2006-01-02") entered
// by the shop staff; absent optionals are stored as "" so the frontend can
// always edit them in place.
type Customer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Email       string    `gorm:"not null;default:''"`
	Phone       string    `gorm:"not null;default:''"`
	Address     string    `gorm:"not null;default:''"`
	Birthday    string    `gorm:"not null;default:''"`
	Anniversary string    `gorm:"not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
