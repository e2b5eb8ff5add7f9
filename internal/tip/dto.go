package tip

import (
	"time"

	"github.com/google/uuid"
)

type TipResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
