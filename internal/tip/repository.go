package tip

import "gorm.io/gorm"

type Repository interface {
	FindActive() ([]Tip, error)
	Count() (int64, error)
	CreateAll(tips []Tip) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActive() ([]Tip, error) {
	var tips []Tip
	if err := r.db.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Tip{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CreateAll(tips []Tip) error {
	if len(tips) == 0 {
		return nil
	}
	return r.db.Create(&tips).Error
}
