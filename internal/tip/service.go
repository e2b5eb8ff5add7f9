package tip

import (
	"math/rand"

	"dental-tracker-api/internal/apperror"
)

type Service interface {
	Random() (*TipResponse, error)
	ListActive() ([]TipResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Random picks uniformly over the active set as it exists right now; the set
// is loaded per call because tips can be toggled between requests.
func (s *service) Random() (*TipResponse, error) {
	tips, err := s.repo.FindActive()
	if err != nil {
		return nil, apperror.Internal("failed to load tips", err)
	}
	if len(tips) == 0 {
		return nil, apperror.NotFound("no active tips")
	}
	return toResponse(&tips[rand.Intn(len(tips))]), nil
}

func (s *service) ListActive() ([]TipResponse, error) {
	tips, err := s.repo.FindActive()
	if err != nil {
		return nil, apperror.Internal("failed to load tips", err)
	}
	responses := make([]TipResponse, 0, len(tips))
	for i := range tips {
		responses = append(responses, *toResponse(&tips[i]))
	}
	return responses, nil
}

func toResponse(t *Tip) *TipResponse {
	return &TipResponse{
		ID:        t.ID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}
