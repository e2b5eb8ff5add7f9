package goal

import "gorm.io/gorm"

type GoalContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewGoalContainer(db *gorm.DB, activities ActivityStore) *GoalContainer {
	repo := NewRepository(db, activities)
	service := NewService(repo)
	handler := NewHandler(service)

	return &GoalContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
