package tip

import (
	"time"

	"github.com/google/uuid"
)

var starterTips = []string{
	"Brush your teeth for two full minutes, twice a day.",
	"Floss at least once a day to clean where your brush can't reach.",
	"Replace your toothbrush every three months, or sooner if the bristles fray.",
	"Limit sugary snacks and drinks between meals.",
	"Drink water after meals to rinse away food particles.",
	"Use a fluoride toothpaste to strengthen enamel.",
	"Don't brush immediately after acidic food; wait about 30 minutes.",
	"See your dentist for a check-up every six months.",
	"Clean your tongue daily to reduce bacteria and freshen breath.",
	"Avoid using your teeth to open packaging.",
}

// Seed installs the starter tip catalog on an empty table.
func Seed(repo Repository) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	tips := make([]Tip, 0, len(starterTips))
	for _, content := range starterTips {
		tips = append(tips, Tip{
			ID:        uuid.New(),
			Content:   content,
			IsActive:  true,
			CreatedAt: now,
		})
	}
	return repo.CreateAll(tips)
}
