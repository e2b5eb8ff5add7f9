package note

import (
	"time"

	"github.com/google/uuid"

	"dental-tracker-api/internal/user"
)

type Note struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Description string     `gorm:"not null" json:"description"`
	ImagePath   *string    `json:"imagePath,omitempty"`
	UserID      uuid.UUID  `gorm:"column:user_id;not null;index" json:"userId"`
	User        user.User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}
