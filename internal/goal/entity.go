package goal

import (
	"time"

	"github.com/google/uuid"

	"dental-tracker-api/internal/user"
)

type Goal struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"not null" json:"description"`
	Period      GoalPeriod   `gorm:"not null" json:"period"`
	Priority    GoalPriority `gorm:"not null" json:"priority"`
	UserID      uuid.UUID    `gorm:"column:user_id;not null;index" json:"userId"`
	User        user.User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   *time.Time   `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}
