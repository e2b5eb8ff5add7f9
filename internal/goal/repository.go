package goal

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityStore is the slice of the activity repository the goal store needs
// for guarded and cascading deletion. Both methods run inside the goal
// store's transaction. Implemented by the activity package; wired in the
// container.
type ActivityStore interface {
	CountByGoalID(tx *gorm.DB, goalID uuid.UUID) (int64, error)
	DeleteByGoalID(tx *gorm.DB, goalID uuid.UUID) error
}

type Repository interface {
	Create(g *Goal) error
	FindAllByUserID(userID uuid.UUID) ([]Goal, error)
	FindByIDAndUserID(id, userID uuid.UUID) (*Goal, error)
	Update(g *Goal) error
	DeleteIfUnreferenced(id uuid.UUID) (bool, error)
	ForceDelete(id uuid.UUID) error
}

type repository struct {
	db         *gorm.DB
	activities ActivityStore
}

func NewRepository(db *gorm.DB, activities ActivityStore) Repository {
	return &repository{db: db, activities: activities}
}

func (r *repository) Create(g *Goal) error {
	return r.db.Create(g).Error
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Goal, error) {
	var goals []Goal
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// FindByIDAndUserID folds the ownership check into the lookup so a foreign
// goal is indistinguishable from an absent one.
func (r *repository) FindByIDAndUserID(id, userID uuid.UUID) (*Goal, error) {
	var g Goal
	if err := r.db.First(&g, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) Update(g *Goal) error {
	return r.db.Save(g).Error
}

// DeleteIfUnreferenced deletes the goal only when no activities reference it.
// The count and the delete share one transaction so an activity logged in
// between cannot be orphaned. Returns false when activities exist.
func (r *repository) DeleteIfUnreferenced(id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		count, err := r.activities.CountByGoalID(tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		deleted = true
		return tx.Delete(&Goal{}, "id = ?", id).Error
	})
	return deleted, err
}

// ForceDelete removes the goal's activities and the goal itself in one
// transaction; a partial result must never be observable.
func (r *repository) ForceDelete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.activities.DeleteByGoalID(tx, id); err != nil {
			return err
		}
		return tx.Delete(&Goal{}, "id = ?", id).Error
	})
}
