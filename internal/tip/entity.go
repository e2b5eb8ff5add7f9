package tip

import (
	"time"

	"github.com/google/uuid"
)

// Tip is a static piece of advice shown to all users; not owned by anyone.
type Tip struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string     `gorm:"not null" json:"content"`
	IsActive  bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}
