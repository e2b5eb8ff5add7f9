package goal

import (
	"time"

	"github.com/google/uuid"
)

type CreateGoalDTO struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Period      GoalPeriod   `json:"period"`
	Priority    GoalPriority `json:"priority"`
}

// UpdateGoalDTO overwrites all mutable fields; partial updates are not part
// of the API.
type UpdateGoalDTO struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Period      GoalPeriod   `json:"period"`
	Priority    GoalPriority `json:"priority"`
}

type GoalResponse struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Period      GoalPeriod   `json:"period"`
	Priority    GoalPriority `json:"priority"`
	UserID      uuid.UUID    `json:"userId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
}

type DeleteBlockedResponse struct {
	Message       string `json:"message"`
	HasActivities bool   `json:"hasActivities"`
}
