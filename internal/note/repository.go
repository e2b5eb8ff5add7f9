package note

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(n *Note) error
	FindAllByUserID(userID uuid.UUID) ([]Note, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(n *Note) error {
	return r.db.Create(n).Error
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Note, error) {
	var notes []Note
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
