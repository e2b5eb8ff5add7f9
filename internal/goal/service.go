package goal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"dental-tracker-api/internal/apperror"
)

// ErrHasActivities blocks the unguarded delete of a goal with logged
// activities; callers retry with force-delete after confirmation.
var ErrHasActivities = apperror.Conflict("goal has logged activities")

type Service interface {
	List(userID uuid.UUID) ([]GoalResponse, error)
	Create(userID uuid.UUID, dto CreateGoalDTO) (*GoalResponse, error)
	Update(userID, goalID uuid.UUID, dto UpdateGoalDTO) (*GoalResponse, error)
	Delete(userID, goalID uuid.UUID) error
	ForceDelete(userID, goalID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(userID uuid.UUID) ([]GoalResponse, error) {
	goals, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return nil, apperror.Internal("failed to list goals", err)
	}

	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *toResponse(&goals[i]))
	}
	return responses, nil
}

func (s *service) Create(userID uuid.UUID, dto CreateGoalDTO) (*GoalResponse, error) {
	if err := validateFields(dto.Title, dto.Description, dto.Period, dto.Priority); err != nil {
		return nil, err
	}

	g := Goal{
		ID:          uuid.New(),
		Title:       dto.Title,
		Description: dto.Description,
		Period:      dto.Period,
		Priority:    dto.Priority,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(&g); err != nil {
		return nil, apperror.Internal("failed to create goal", err)
	}
	return toResponse(&g), nil
}

func (s *service) Update(userID, goalID uuid.UUID, dto UpdateGoalDTO) (*GoalResponse, error) {
	if err := validateFields(dto.Title, dto.Description, dto.Period, dto.Priority); err != nil {
		return nil, err
	}

	g, err := s.findOwned(userID, goalID)
	if err != nil {
		return nil, err
	}

	g.Title = dto.Title
	g.Description = dto.Description
	g.Period = dto.Period
	g.Priority = dto.Priority
	now := time.Now().UTC()
	g.UpdatedAt = &now

	if err := s.repo.Update(g); err != nil {
		return nil, apperror.Internal("failed to update goal", err)
	}
	return toResponse(g), nil
}

func (s *service) Delete(userID, goalID uuid.UUID) error {
	g, err := s.findOwned(userID, goalID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteIfUnreferenced(g.ID)
	if err != nil {
		return apperror.Internal("failed to delete goal", err)
	}
	if !deleted {
		return ErrHasActivities
	}
	return nil
}

func (s *service) ForceDelete(userID, goalID uuid.UUID) error {
	g, err := s.findOwned(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.repo.ForceDelete(g.ID); err != nil {
		return apperror.Internal("failed to delete goal", err)
	}
	return nil
}

func (s *service) findOwned(userID, goalID uuid.UUID) (*Goal, error) {
	g, err := s.repo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		return nil, apperror.Internal("failed to look up goal", err)
	}
	if g == nil {
		return nil, apperror.NotFound("goal not found")
	}
	return g, nil
}

func validateFields(title, description string, period GoalPeriod, priority GoalPriority) error {
	if strings.TrimSpace(title) == "" {
		return apperror.Validation("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return apperror.Validation("description is required")
	}
	if !period.IsValid() {
		return apperror.Validation("invalid period")
	}
	if !priority.IsValid() {
		return apperror.Validation("invalid priority")
	}
	return nil
}

func toResponse(g *Goal) *GoalResponse {
	return &GoalResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Period:      g.Period,
		Priority:    g.Priority,
		UserID:      g.UserID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
