package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"not null" json:"firstName"`
	LastName     string     `gorm:"not null" json:"lastName"`
	BirthDate    time.Time  `json:"birthDate"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}
