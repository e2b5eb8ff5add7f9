package activity

import (
	"time"

	"github.com/google/uuid"

	"dental-tracker-api/internal/apperror"
	"dental-tracker-api/internal/goal"
)

// GoalStore is the slice of the goal repository used to re-validate goal
// ownership on every activity creation. Satisfied by goal.Repository.
type GoalStore interface {
	FindByIDAndUserID(id, userID uuid.UUID) (*goal.Goal, error)
}

type Service interface {
	ListLastNDays(userID uuid.UUID, days int) ([]ActivityResponse, error)
	ListByGoal(userID, goalID uuid.UUID) ([]ActivityResponse, error)
	Create(userID uuid.UUID, dto CreateActivityDTO) (*ActivityResponse, error)
}

type service struct {
	repo  Repository
	goals GoalStore
}

func NewService(repo Repository, goals GoalStore) Service {
	return &service{repo: repo, goals: goals}
}

func (s *service) ListLastNDays(userID uuid.UUID, days int) ([]ActivityResponse, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	activities, err := s.repo.FindSince(userID, since)
	if err != nil {
		return nil, apperror.Internal("failed to list activities", err)
	}
	return toResponses(activities), nil
}

func (s *service) ListByGoal(userID, goalID uuid.UUID) ([]ActivityResponse, error) {
	activities, err := s.repo.FindByGoalID(userID, goalID)
	if err != nil {
		return nil, apperror.Internal("failed to list activities", err)
	}
	return toResponses(activities), nil
}

func (s *service) Create(userID uuid.UUID, dto CreateActivityDTO) (*ActivityResponse, error) {
	if dto.GoalID == uuid.Nil {
		return nil, apperror.Validation("goalId is required")
	}
	if dto.ActivityDate.IsZero() {
		return nil, apperror.Validation("activityDate is required")
	}
	if dto.Duration <= 0 {
		return nil, apperror.Validation("duration must be positive")
	}

	// the goal is re-resolved against the authenticated owner; a goal owned
	// by someone else looks exactly like a missing one
	g, err := s.goals.FindByIDAndUserID(dto.GoalID, userID)
	if err != nil {
		return nil, apperror.Internal("failed to look up goal", err)
	}
	if g == nil {
		return nil, apperror.NotFound("goal not found")
	}

	a := Activity{
		ID:              uuid.New(),
		ActivityDate:    dto.ActivityDate.UTC(),
		DurationMinutes: dto.Duration,
		IsCompleted:     dto.IsCompleted,
		UserID:          userID,
		GoalID:          g.ID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(&a); err != nil {
		return nil, apperror.Internal("failed to create activity", err)
	}
	return toResponse(&a), nil
}

func toResponse(a *Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:           a.ID,
		GoalID:       a.GoalID,
		UserID:       a.UserID,
		ActivityDate: a.ActivityDate,
		Duration:     a.DurationMinutes,
		IsCompleted:  a.IsCompleted,
		CreatedAt:    a.CreatedAt,
	}
}

func toResponses(activities []Activity) []ActivityResponse {
	responses := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		responses = append(responses, *toResponse(&activities[i]))
	}
	return responses
}
