package note

import (
	"time"

	"github.com/google/uuid"
)

type NoteResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	ImagePath   *string   `json:"imagePath,omitempty"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}
