package activity

import (
	"time"

	"github.com/google/uuid"

	"dental-tracker-api/internal/goal"
	"dental-tracker-api/internal/user"
)

type Activity struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ActivityDate    time.Time  `gorm:"not null;index" json:"activityDate"`
	DurationMinutes int        `gorm:"column:duration_minutes;not null" json:"duration"`
	IsCompleted     bool       `json:"isCompleted"`
	UserID          uuid.UUID  `gorm:"column:user_id;not null;index" json:"userId"`
	User            user.User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	GoalID          uuid.UUID  `gorm:"column:goal_id;not null;index" json:"goalId"`
	Goal            goal.Goal  `gorm:"foreignKey:GoalID" json:"-"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}
