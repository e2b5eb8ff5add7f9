package note

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"dental-tracker-api/internal/apperror"
)

// ImageStore persists an uploaded image and returns the reference path to
// keep on the note. The note store itself never does image I/O.
type ImageStore interface {
	Save(ownerID uuid.UUID, r io.Reader) (string, error)
}

type Service interface {
	Create(userID uuid.UUID, description string, image io.Reader) (*NoteResponse, error)
	List(userID uuid.UUID) ([]NoteResponse, error)
}

type service struct {
	repo   Repository
	images ImageStore
}

func NewService(repo Repository, images ImageStore) Service {
	return &service{repo: repo, images: images}
}

func (s *service) Create(userID uuid.UUID, description string, image io.Reader) (*NoteResponse, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperror.Validation("description is required")
	}

	var imagePath *string
	if image != nil {
		path, err := s.images.Save(userID, image)
		if err != nil {
			return nil, err
		}
		imagePath = &path
	}

	n := Note{
		ID:          uuid.New(),
		Description: description,
		ImagePath:   imagePath,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(&n); err != nil {
		return nil, apperror.Internal("failed to create note", err)
	}
	return toResponse(&n), nil
}

func (s *service) List(userID uuid.UUID) ([]NoteResponse, error) {
	notes, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return nil, apperror.Internal("failed to list notes", err)
	}

	responses := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, *toResponse(&notes[i]))
	}
	return responses, nil
}

func toResponse(n *Note) *NoteResponse {
	return &NoteResponse{
		ID:          n.ID,
		Description: n.Description,
		ImagePath:   n.ImagePath,
		UserID:      n.UserID,
		CreatedAt:   n.CreatedAt,
	}
}
