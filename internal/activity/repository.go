package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(a *Activity) error
	FindSince(userID uuid.UUID, since time.Time) ([]Activity, error)
	FindByGoalID(userID, goalID uuid.UUID) ([]Activity, error)
	CountByGoalID(tx *gorm.DB, goalID uuid.UUID) (int64, error)
	DeleteByGoalID(tx *gorm.DB, goalID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns the activity store. It also satisfies
// goal.ActivityStore for the guarded/cascading goal deletion flow.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(a *Activity) error {
	return r.db.Create(a).Error
}

func (r *repository) FindSince(userID uuid.UUID, since time.Time) ([]Activity, error) {
	var activities []Activity
	if err := r.db.
		Where("user_id = ? AND activity_date >= ?", userID, since).
		Order("activity_date DESC, created_at DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *repository) FindByGoalID(userID, goalID uuid.UUID) ([]Activity, error) {
	var activities []Activity
	if err := r.db.
		Where("user_id = ? AND goal_id = ?", userID, goalID).
		Order("activity_date DESC, created_at DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// CountByGoalID runs inside the caller's transaction so the guarded goal
// delete sees a consistent count.
func (r *repository) CountByGoalID(tx *gorm.DB, goalID uuid.UUID) (int64, error) {
	var count int64
	if err := tx.Model(&Activity{}).Where("goal_id = ?", goalID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByGoalID runs inside the caller's transaction so goal force-delete
// stays atomic.
func (r *repository) DeleteByGoalID(tx *gorm.DB, goalID uuid.UUID) error {
	return tx.Delete(&Activity{}, "goal_id = ?", goalID).Error
}
