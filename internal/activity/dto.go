package activity

import (
	"time"

	"github.com/google/uuid"
)

type CreateActivityDTO struct {
	GoalID       uuid.UUID `json:"goalId"`
	ActivityDate time.Time `json:"activityDate"`
	Duration     int       `json:"duration"`
	IsCompleted  bool      `json:"isCompleted"`
}

type ActivityResponse struct {
	ID           uuid.UUID `json:"id"`
	GoalID       uuid.UUID `json:"goalId"`
	UserID       uuid.UUID `json:"userId"`
	ActivityDate time.Time `json:"activityDate"`
	Duration     int       `json:"duration"`
	IsCompleted  bool      `json:"isCompleted"`
	CreatedAt    time.Time `json:"createdAt"`
}
