package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an API account. The shop runs with a single seeded admin today,
// but nothing prevents inserting more rows.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
